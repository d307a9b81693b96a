package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-matjip/internal/logger"
	"github.com/MKhiriev/go-matjip/models"
)

// tagSequence reserves tags with a single atomic statement: nextval on the
// PostgreSQL sequence, or an UPDATE ... RETURNING on the SQLite counter row.
// Neither rolls back with the surrounding work, so a reserved value is
// never handed out again.
type tagSequence struct {
	db     *DB
	logger *logger.Logger
}

// NewTagSequence constructs a [TagSequence] for db's dialect.
func NewTagSequence(db *DB, logger *logger.Logger) TagSequence {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating tag sequence")
	return &tagSequence{
		db:     db,
		logger: logger,
	}
}

func (s *tagSequence) Next(ctx context.Context) (models.Tag, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildNextTagQuery(s.db.builder(), s.db.dialect)
	if err != nil {
		log.Err(err).Str("func", "*tagSequence.Next").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var tag int64
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&tag); err != nil {
		log.Err(err).Str("func", "*tagSequence.Next").Msg("error reserving tag")
		return 0, s.db.classify(err, ErrExecutingQuery)
	}

	return models.Tag(tag), nil
}
