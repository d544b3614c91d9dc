// Package memory is a process-local record backend.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/SergeyBogomolovv/logistics-tracker/internal/store"
)

type Backend struct {
	mu     sync.RWMutex
	stages map[store.Stage][]json.RawMessage
}

func New() *Backend {
	return &Backend{stages: make(map[store.Stage][]json.RawMessage)}
}

func (b *Backend) Init(_ context.Context, stage store.Stage) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.stages[stage]; !ok {
		b.stages[stage] = []json.RawMessage{}
	}
	return nil
}

func (b *Backend) ReadAll(_ context.Context, stage store.Stage) ([]json.RawMessage, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	records, ok := b.stages[stage]
	if !ok {
		return nil, fmt.Errorf("stage %s is not initialized", stage)
	}
	out := make([]json.RawMessage, len(records))
	copy(out, records)
	return out, nil
}

func (b *Backend) Append(_ context.Context, stage store.Stage, record json.RawMessage) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	records, ok := b.stages[stage]
	if !ok {
		return fmt.Errorf("stage %s is not initialized", stage)
	}
	rec := make(json.RawMessage, len(record))
	copy(rec, record)
	b.stages[stage] = append(records, rec)
	return nil
}

// Len reports the number of records in stage.
func (b *Backend) Len(stage store.Stage) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.stages[stage])
}
