// Package store is the persistence gateway for submitted records.
//
// The only capability handlers get is Insert: records are append-only and
// nothing in the API reads them back.
package store

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNotConnected is returned when the store was never reachable.
	ErrNotConnected = errors.New("store not connected")
	// ErrNoCollection is returned when a record is inserted without a collection name.
	ErrNoCollection = errors.New("collection name is required")
)

// Inserter writes a single record to a named collection and returns its id.
type Inserter interface {
	Insert(ctx context.Context, collection string, record any) (string, error)
}

// Unavailable is used in place of a real store when the initial connection
// could not be set up. Every insert fails with ErrNotConnected.
type Unavailable struct {
	Cause error
}

func (u Unavailable) Insert(ctx context.Context, collection string, record any) (string, error) {
	if u.Cause == nil {
		return "", ErrNotConnected
	}
	return "", fmt.Errorf("%w: %v", ErrNotConnected, u.Cause)
}
