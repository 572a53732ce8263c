package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/example/entscheidungshelfer-bot/internal/model"
)

// ErrStateCorrupt reports a state document that exists but cannot be parsed.
// Loading must not fall back to defaults in that case: the document still
// holds subscriber records that a default state would silently erase.
var ErrStateCorrupt = errors.New("state document is corrupt")

// StateRepository abstracts persistence of the bot state document.
type StateRepository interface {
	Load(ctx context.Context) (*model.State, error)
	Save(ctx context.Context, state *model.State) error
}

// FileStateRepository stores the state document in a JSON file.
type FileStateRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileStateRepository(path string) *FileStateRepository {
	return &FileStateRepository{path: path}
}

// Load reads the document from disk. A missing file yields the default
// state; an unreadable document yields ErrStateCorrupt.
func (r *FileStateRepository) Load(ctx context.Context) (*model.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	file, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.DefaultState(), nil
		}
		return nil, fmt.Errorf("load state: %w", err)
	}
	defer file.Close()
	var state model.State
	if err := json.NewDecoder(file).Decode(&state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStateCorrupt, err)
	}
	if state.Users == nil {
		state.Users = map[int64]*model.UserRecord{}
	}
	return &state, nil
}

// Save writes the document to a temp file in the same directory and renames
// it over the target, so a concurrent reader never sees a half-written file.
func (r *FileStateRepository) Save(ctx context.Context, state *model.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".state-*.json")
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("save state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save state: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}
