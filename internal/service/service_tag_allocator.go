package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-matjip/internal/logger"
	"github.com/MKhiriev/go-matjip/internal/metrics"
	"github.com/MKhiriev/go-matjip/internal/store"
	"github.com/MKhiriev/go-matjip/models"
)

const defaultTagRetryDelay = 5 * time.Millisecond

// tagAllocator reserves tags from the storage sequence and hands each one to
// a claim function. The sequence is atomic, so a claim only fails on a tag
// that was inserted past it (for example by an import) or on a transient
// storage error; both are retried with a fresh tag up to maxRetries times.
type tagAllocator struct {
	sequence   store.TagSequence
	maxRetries uint64
	delay      time.Duration
	logger     *logger.Logger
}

// NewTagAllocator returns a [TagAllocator] that retries at most maxRetries
// times.
func NewTagAllocator(sequence store.TagSequence, maxRetries uint64, logger *logger.Logger) TagAllocator {
	return &tagAllocator{
		sequence:   sequence,
		maxRetries: maxRetries,
		delay:      defaultTagRetryDelay,
		logger:     logger,
	}
}

// Allocate reserves tags until claim accepts one. Exhausting the retries
// returns [ErrAllocationExhausted]; any other claim error is returned as is.
func (a *tagAllocator) Allocate(ctx context.Context, claim func(ctx context.Context, tag models.Tag) error) (models.Tag, error) {
	log := logger.FromContext(ctx)

	var (
		tag     models.Tag
		attempt int
	)
	backoff := retry.WithMaxRetries(a.maxRetries, retry.NewConstant(a.delay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if attempt > 0 {
			metrics.RecordTagRetry()
		}
		attempt++

		next, err := a.sequence.Next(ctx)
		if err != nil {
			return retryable(err)
		}

		if err = claim(ctx, next); err != nil {
			log.Debug().Err(err).Str("func", "*tagAllocator.Allocate").Stringer("tag", next).Int("attempt", attempt).Msg("tag claim failed")
			return retryable(err)
		}

		tag = next
		return nil
	})
	if err != nil {
		if isRetryableAllocationError(err) {
			log.Error().Err(err).Str("func", "*tagAllocator.Allocate").Int("attempts", attempt).Msg("tag allocation exhausted")
			return 0, fmt.Errorf("%w: %w", ErrAllocationExhausted, err)
		}
		return 0, err
	}

	metrics.RecordTagAllocation()
	return tag, nil
}

func retryable(err error) error {
	if isRetryableAllocationError(err) {
		return retry.RetryableError(err)
	}

	return err
}

func isRetryableAllocationError(err error) bool {
	return errors.Is(err, store.ErrTagTaken) || errors.Is(err, store.ErrTransient)
}
