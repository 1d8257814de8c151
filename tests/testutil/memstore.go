package testutil

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/gomesdev1/portfolio-api/internal/database"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemStore is an in-memory database.Store. Documents round-trip through BSON
// on every write and read, so callers see the same coercions as with MongoDB.
type MemStore struct {
	mu          sync.Mutex
	collections map[string]*MemCollection
	PingErr     error
}

// NewMemStore creates an empty in-memory store
func NewMemStore() *MemStore {
	return &MemStore{collections: make(map[string]*MemCollection)}
}

func (s *MemStore) Collection(name string) database.Collection {
	return s.Coll(name)
}

// Coll returns the concrete collection so tests can inspect calls and inject errors
func (s *MemStore) Coll(name string) *MemCollection {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.collections[name]
	if !ok {
		c = &MemCollection{}
		s.collections[name] = c
	}
	return c
}

func (s *MemStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.PingErr
}

// TotalCalls sums the store calls made across every collection
func (s *MemStore) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, c := range s.collections {
		total += c.Calls()
	}
	return total
}

// MemCollection stores documents in insertion order.
type MemCollection struct {
	mu    sync.Mutex
	docs  []bson.M
	calls int

	// Err, when set, is returned by every operation.
	Err error
}

func (c *MemCollection) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// Len returns the number of stored documents
func (c *MemCollection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.docs)
}

// Raw returns a copy of the stored document with the given id, or nil
func (c *MemCollection) Raw(id primitive.ObjectID) bson.M {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(id); i >= 0 {
		return clone(c.docs[i])
	}
	return nil
}

// Put inserts doc as-is, generating an _id when absent, and returns the id
func (c *MemCollection) Put(doc bson.M) primitive.ObjectID {
	c.mu.Lock()
	defer c.mu.Unlock()
	stored := clone(doc)
	id, ok := stored["_id"].(primitive.ObjectID)
	if !ok {
		id = primitive.NewObjectID()
		stored["_id"] = id
	}
	c.docs = append(c.docs, stored)
	return id
}

func (c *MemCollection) begin(ctx context.Context) error {
	c.calls++
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.Err
}

func (c *MemCollection) Find(ctx context.Context, filter bson.M, opts database.FindOptions) ([]bson.M, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(ctx); err != nil {
		return nil, err
	}

	out := []bson.M{}
	for _, doc := range c.docs {
		if matches(doc, filter) {
			out = append(out, clone(doc))
		}
	}

	if len(opts.Sort) > 0 {
		sort.SliceStable(out, func(i, j int) bool {
			for _, key := range opts.Sort {
				cmp := compare(out[i][key.Key], out[j][key.Key])
				if dir, _ := key.Value.(int); dir < 0 {
					cmp = -cmp
				}
				if cmp != 0 {
					return cmp < 0
				}
			}
			return false
		})
	}

	if opts.Limit > 0 && int64(len(out)) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (c *MemCollection) FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(ctx); err != nil {
		return nil, err
	}
	if i := c.indexOf(id); i >= 0 {
		return clone(c.docs[i]), nil
	}
	return nil, database.ErrNoDocument
}

func (c *MemCollection) InsertOne(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(ctx); err != nil {
		return primitive.NilObjectID, err
	}
	if _, ok := doc["_id"]; ok {
		return primitive.NilObjectID, fmt.Errorf("memstore: insert with explicit _id")
	}
	stored := clone(doc)
	id := primitive.NewObjectID()
	stored["_id"] = id
	c.docs = append(c.docs, stored)
	return id, nil
}

func (c *MemCollection) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(ctx); err != nil {
		return 0, err
	}
	i := c.indexOf(id)
	if i < 0 {
		return 0, nil
	}
	for k, v := range clone(set) {
		c.docs[i][k] = v
	}
	return 1, nil
}

func (c *MemCollection) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(ctx); err != nil {
		return 0, err
	}
	i := c.indexOf(id)
	if i < 0 {
		return 0, nil
	}
	c.docs = append(c.docs[:i], c.docs[i+1:]...)
	return 1, nil
}

func (c *MemCollection) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.begin(ctx); err != nil {
		return 0, err
	}
	kept := c.docs[:0]
	var n int64
	for _, doc := range c.docs {
		if matches(doc, filter) {
			n++
			continue
		}
		kept = append(kept, doc)
	}
	c.docs = kept
	return n, nil
}

func (c *MemCollection) indexOf(id primitive.ObjectID) int {
	for i, doc := range c.docs {
		if doc["_id"] == id {
			return i
		}
	}
	return -1
}

func clone(doc bson.M) bson.M {
	raw, err := bson.Marshal(doc)
	if err != nil {
		panic(fmt.Sprintf("memstore: marshal: %v", err))
	}
	var out bson.M
	if err := bson.Unmarshal(raw, &out); err != nil {
		panic(fmt.Sprintf("memstore: unmarshal: %v", err))
	}
	return out
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok {
			return false
		}
		if compare(got, want) != 0 {
			return false
		}
	}
	return true
}

func compare(a, b any) int {
	if fa, ok := number(a); ok {
		if fb, ok := number(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			}
			return 0
		}
	}
	if ia, ok := a.(primitive.ObjectID); ok {
		if ib, ok := b.(primitive.ObjectID); ok {
			for i := range ia {
				if ia[i] != ib[i] {
					if ia[i] < ib[i] {
						return -1
					}
					return 1
				}
			}
			return 0
		}
	}
	if reflect.DeepEqual(a, b) {
		return 0
	}
	return 1
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
