package pagination

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Page is one slice of a listing.
type Page[T any] struct {
	// Items is never nil, so an empty page encodes as [].
	Items []T

	// Next is nil when no further page exists.
	Next *Cursor
}

// LastCursor returns Next as a nullable integer for the wire.
func (p Page[T]) LastCursor() *int64 {
	if p.Next == nil {
		return nil
	}

	v := int64(*p.Next)
	return &v
}

// NewPage assembles a page from the rows fetched for it.
func NewPage[T any](items []T, size uint64, key func(T) int64) Page[T] {
	if items == nil {
		items = []T{}
	}

	page := Page[T]{Items: items}
	if size == 0 || uint64(len(items)) < size {
		return page
	}

	next := Cursor(key(items[len(items)-1]))
	page.Next = &next
	return page
}

// Fetcher loads at most limit rows with key below cursor (all rows when the
// cursor is [Start]), ordered by key descending.
type Fetcher[T any] func(ctx context.Context, cursor Cursor, limit uint64) ([]T, error)

// Engine pages through one kind of row with a fixed page size.
type Engine[T any] struct {
	size uint64
	key  func(T) int64
}

// NewEngine returns an engine producing pages of size rows keyed by key.
func NewEngine[T any](size uint64, key func(T) int64) *Engine[T] {
	return &Engine[T]{size: size, key: key}
}

// List fetches the page that starts after cursor. Running out of rows is not
// an error: the result is an empty page with a nil Next.
func (e *Engine[T]) List(ctx context.Context, cursor Cursor, fetch Fetcher[T]) (Page[T], error) {
	items, err := fetch(ctx, cursor, e.size)
	if err != nil {
		return Page[T]{}, fmt.Errorf("error fetching page after cursor %s: %w", cursor, err)
	}

	return NewPage(items, e.size, e.key), nil
}

// Apply restricts a select to one page: key column below cursor, newest
// first, at most limit rows.
func Apply(b sq.SelectBuilder, column string, cursor Cursor, limit uint64) sq.SelectBuilder {
	if !cursor.IsStart() {
		b = b.Where(sq.Lt{column: int64(cursor)})
	}

	return b.OrderBy(column + " DESC").Limit(limit)
}
