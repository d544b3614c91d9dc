// Package jsonfile stores each stage as a JSON array in its own file.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/SergeyBogomolovv/logistics-tracker/internal/store"
)

const filePerm = 0o644

type Backend struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) (*Backend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store dir: %w", err)
	}
	return &Backend{dir: dir}, nil
}

// Path returns the file backing stage.
func (b *Backend) Path(stage store.Stage) string {
	return filepath.Join(b.dir, string(stage)+".json")
}

func (b *Backend) Init(ctx context.Context, stage store.Stage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	_, err := os.Stat(b.Path(stage))
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return b.write(stage, []json.RawMessage{})
}

func (b *Backend) ReadAll(ctx context.Context, stage store.Stage) ([]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.read(stage)
}

func (b *Backend) Append(ctx context.Context, stage store.Stage, record json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	records, err := b.read(stage)
	if err != nil {
		return err
	}
	return b.write(stage, append(records, record))
}

func (b *Backend) read(stage store.Stage) ([]json.RawMessage, error) {
	data, err := os.ReadFile(b.Path(stage))
	if err != nil {
		return nil, err
	}
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("malformed store file %s: %w", b.Path(stage), err)
	}
	return records, nil
}

// write replaces the stage file through a rename so readers never see a partial array.
func (b *Backend) write(stage store.Stage, records []json.RawMessage) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(b.dir, string(stage)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), b.Path(stage))
}
