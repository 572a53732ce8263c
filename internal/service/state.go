package service

import (
	"context"
	"sync"
	"time"

	"github.com/example/entscheidungshelfer-bot/internal/model"
	"github.com/example/entscheidungshelfer-bot/internal/repository"
)

// StateService owns the shared state document. Every read and mutation goes
// through its mutex, and every mutating method flushes the document to the
// repository before returning, so a crash right after a reply can never lose
// the state that produced that reply.
type StateService struct {
	mu    sync.Mutex
	state *model.State
	repo  repository.StateRepository
	now   func() time.Time
}

// NewStateService loads the persisted state. A corrupt document fails here
// and must abort startup; only a missing one falls back to defaults.
func NewStateService(ctx context.Context, repo repository.StateRepository) (*StateService, error) {
	state, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &StateService{state: state, repo: repo, now: time.Now}, nil
}

// persistLocked flushes the document. Callers hold s.mu.
func (s *StateService) persistLocked(ctx context.Context) error {
	return s.repo.Save(ctx, s.state)
}

// Persist flushes the document without changing it. Used by the admin
// dispatcher, which writes even after an unrecognized argument.
func (s *StateService) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked(ctx)
}
