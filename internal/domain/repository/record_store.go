// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"encoding/json"
	"sync"
)

// RecordStore persists the full list of stored warranty documents as one value.
// Documents are kept as raw JSON so older shapes survive until migrated.
type RecordStore interface {
	// Load returns every stored document in entry order. A missing value reads as empty.
	Load(ctx context.Context) ([]json.RawMessage, error)

	// Save replaces the stored list in a single write.
	Save(ctx context.Context, docs []json.RawMessage) error
}

// StoreLock serializes read-modify-write cycles against the RecordStore.
// Every writer in the process shares one instance.
type StoreLock struct {
	sync.Mutex
}

// NewStoreLock creates the process-wide store lock.
func NewStoreLock() *StoreLock {
	return &StoreLock{}
}
