// Package docstore provides a thin generic wrapper over Firestore collections.
// Services compose it per resource and add their domain rules on top; the
// wrapper only knows documents, filters, ordering, and offset pagination.
package docstore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound indicates the document does not exist.
var ErrNotFound = errors.New("document not found")

// Filter is a single equality-style constraint on a document field.
type Filter struct {
	Path  string
	Op    string // "==", "in", "array-contains-any", ...
	Value any
}

// Item pairs a decoded document with its ID, which Firestore keeps on the
// document reference rather than in the document body.
type Item[T any] struct {
	ID   string
	Data T
}

// ListQuery describes a filtered, ordered, paged read.
type ListQuery struct {
	Filters []Filter
	OrderBy string
	Desc    bool
	Offset  int
	Limit   int
}

// Collection wraps one Firestore collection holding documents of type T.
type Collection[T any] struct {
	client *firestore.Client
	name   string
}

// NewCollection binds a typed collection to the given Firestore client.
func NewCollection[T any](client *firestore.Client, name string) *Collection[T] {
	return &Collection[T]{client: client, name: name}
}

// Name returns the underlying collection name.
func (c *Collection[T]) Name() string {
	return c.name
}

// Create writes a new document under the given ID.
func (c *Collection[T]) Create(ctx context.Context, id string, doc T) error {
	_, err := c.client.Collection(c.name).Doc(id).Create(ctx, doc)
	return err
}

// Set overwrites the document under the given ID.
func (c *Collection[T]) Set(ctx context.Context, id string, doc T) error {
	_, err := c.client.Collection(c.name).Doc(id).Set(ctx, doc)
	return err
}

// Get reads one document, returning ErrNotFound when it does not exist.
func (c *Collection[T]) Get(ctx context.Context, id string) (*T, error) {
	snap, err := c.client.Collection(c.name).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var out T
	if err := snap.DataTo(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update applies a partial update to an existing document.
func (c *Collection[T]) Update(ctx context.Context, id string, updates []firestore.Update) error {
	_, err := c.client.Collection(c.name).Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

// Delete removes the document. Deleting a missing document is ErrNotFound so
// callers can surface a 404 instead of silently succeeding.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	ref := c.client.Collection(c.name).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return err
	}
	_, err := ref.Delete(ctx)
	return err
}

// FindOne returns the first document matching the filters, or ErrNotFound.
func (c *Collection[T]) FindOne(ctx context.Context, filters []Filter) (*T, string, error) {
	q := c.applyFilters(c.client.Collection(c.name).Query, filters).Limit(1)
	iter := q.Documents(ctx)
	defer iter.Stop()
	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}
	var out T
	if err := snap.DataTo(&out); err != nil {
		return nil, "", err
	}
	return &out, snap.Ref.ID, nil
}

// List runs a filtered, ordered, offset/limit paged read.
func (c *Collection[T]) List(ctx context.Context, q ListQuery) ([]Item[T], error) {
	query := c.applyFilters(c.client.Collection(c.name).Query, q.Filters)
	if q.OrderBy != "" {
		dir := firestore.Asc
		if q.Desc {
			dir = firestore.Desc
		}
		query = query.OrderBy(q.OrderBy, dir)
	}
	if q.Offset > 0 {
		query = query.Offset(q.Offset)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var out []Item[T]
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var doc T
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		out = append(out, Item[T]{ID: snap.Ref.ID, Data: doc})
	}
	return out, nil
}

// Count returns the number of documents matching the filters using a server
// side aggregation, so totals do not require reading every document.
func (c *Collection[T]) Count(ctx context.Context, filters []Filter) (int, error) {
	query := c.applyFilters(c.client.Collection(c.name).Query, filters)
	agg := query.NewAggregationQuery().WithCount("total")
	res, err := agg.Get(ctx)
	if err != nil {
		return 0, err
	}
	v, ok := res["total"]
	if !ok {
		return 0, errors.New("count aggregation missing result")
	}
	pbValue, ok := v.(*firestorepb.Value)
	if !ok {
		return 0, errors.New("count aggregation unexpected value type")
	}
	return int(pbValue.GetIntegerValue()), nil
}

func (c *Collection[T]) applyFilters(query firestore.Query, filters []Filter) firestore.Query {
	for _, f := range filters {
		query = query.Where(f.Path, f.Op, f.Value)
	}
	return query
}
