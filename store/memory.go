package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps records in process memory. It is used in tests and when
// running the API without a database.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string][]any
	err     error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]any)}
}

// FailWith makes every following Insert return err. Pass nil to recover.
func (m *MemoryStore) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MemoryStore) Insert(ctx context.Context, collection string, record any) (string, error) {
	if collection == "" {
		return "", ErrNoCollection
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	m.records[collection] = append(m.records[collection], record)
	return primitive.NewObjectID().Hex(), nil
}

// Records returns a copy of everything inserted into collection, in insert order
func (m *MemoryStore) Records(collection string) []any {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]any, len(m.records[collection]))
	copy(out, m.records[collection])
	return out
}
