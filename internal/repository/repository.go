// Package repository implements filtered, sorted reads and create/update/delete
// writes over one document collection per entity type.
package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gomesdev1/portfolio-api/internal/codec"
	"github.com/gomesdev1/portfolio-api/internal/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sort selects the list ordering. The zero value sorts by order ascending.
type Sort struct {
	Field      string
	Descending bool
}

var ByOrder = Sort{Field: "order"}

func (s Sort) document() bson.D {
	field := s.Field
	if field == "" {
		field = "order"
	}
	dir := 1
	if s.Descending {
		dir = -1
	}
	// ObjectIDs grow with insertion, so _id breaks ties in storage order.
	return bson.D{{Key: field, Value: dir}, {Key: "_id", Value: 1}}
}

type Repository[T any] struct {
	coll database.Collection
	name string
	now  func() time.Time
}

func New[T any](store database.Store, name string) *Repository[T] {
	return &Repository[T]{
		coll: store.Collection(name),
		name: name,
		now:  time.Now,
	}
}

// WithClock replaces the time source used for created_at/updated_at.
func (r *Repository[T]) WithClock(now func() time.Time) *Repository[T] {
	r.now = now
	return r
}

func (r *Repository[T]) Name() string {
	return r.name
}

func (r *Repository[T]) List(ctx context.Context, filter bson.M, sort Sort) ([]T, error) {
	docs, err := r.coll.Find(ctx, filter, database.FindOptions{Sort: sort.document()})
	if err != nil {
		return nil, storeError("list "+r.name, err)
	}

	items := make([]T, 0, len(docs))
	for _, doc := range docs {
		item, err := r.decode(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// GetOne reads a singleton collection. When more than one document exists the
// first in storage order wins and a warning is logged.
func (r *Repository[T]) GetOne(ctx context.Context) (*T, error) {
	docs, err := r.coll.Find(ctx, bson.M{}, database.FindOptions{Limit: 2})
	if err != nil {
		return nil, storeError("get "+r.name, err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%s: %w", r.name, ErrNotFound)
	}
	if len(docs) > 1 {
		log.Printf("warning: %s holds more than one document, using the first", r.name)
	}

	item, err := r.decode(docs[0])
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repository[T]) Create(ctx context.Context, item T) (*T, error) {
	doc, err := codec.EncodeNew(item, r.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	id, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, storeError("insert "+r.name, err)
	}

	return r.findByID(ctx, id)
}

// Update applies patch, a struct of pointer fields, and returns the document
// as stored after the write.
func (r *Repository[T]) Update(ctx context.Context, id string, patch any) (*T, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	set, err := codec.EncodePatch(patch, r.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	matched, err := r.coll.UpdateByID(ctx, oid, set)
	if err != nil {
		return nil, storeError("update "+r.name, err)
	}
	if matched == 0 {
		return nil, fmt.Errorf("%s %s: %w", r.name, id, ErrNotFound)
	}

	return r.findByID(ctx, oid)
}

func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	deleted, err := r.coll.DeleteByID(ctx, oid)
	if err != nil {
		return storeError("delete "+r.name, err)
	}
	if deleted == 0 {
		return fmt.Errorf("%s %s: %w", r.name, id, ErrNotFound)
	}
	return nil
}

// Clear removes every document of the collection.
func (r *Repository[T]) Clear(ctx context.Context) (int64, error) {
	n, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, storeError("clear "+r.name, err)
	}
	return n, nil
}

func (r *Repository[T]) findByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	doc, err := r.coll.FindByID(ctx, id)
	if errors.Is(err, database.ErrNoDocument) {
		return nil, fmt.Errorf("%s %s: %w", r.name, id.Hex(), ErrNotFound)
	}
	if err != nil {
		return nil, storeError("read "+r.name, err)
	}

	item, err := r.decode(doc)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repository[T]) decode(doc bson.M) (T, error) {
	item, err := codec.Decode[T](doc)
	if err != nil {
		return item, fmt.Errorf("%s: %w: %w", r.name, ErrValidation, err)
	}
	return item, nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%q: %w", id, ErrInvalidID)
	}
	return oid, nil
}
