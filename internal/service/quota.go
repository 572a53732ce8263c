package service

import (
	"context"

	"github.com/example/entscheidungshelfer-bot/internal/model"
)

// getOrInitLocked returns the user's record, creating it lazily and rolling
// it over when the stored day is no longer today. Reports whether the record
// was created or rolled over. Callers hold s.mu.
func (s *StateService) getOrInitLocked(userID int64) (*model.UserRecord, bool) {
	today := dayString(s.now())
	u, ok := s.state.Users[userID]
	if !ok {
		u = &model.UserRecord{Today: today}
		s.state.Users[userID] = u
		return u, true
	}
	if u.Today != today {
		u.Today = today
		u.Count = 0
		return u, true
	}
	return u, false
}

// Allow reports whether userID may make a request right now. It applies the
// day rollover (persisting it when it changed anything) but does not consume
// quota. Active subscribers are never limited.
func (s *StateService) Allow(ctx context.Context, userID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, changed := s.getOrInitLocked(userID)
	if changed {
		if err := s.persistLocked(ctx); err != nil {
			return false, err
		}
	}
	if s.isSubscriberLocked(userID) {
		return true, nil
	}
	return u.Count < s.state.Limits.FreePerDay, nil
}

// Consume records one accepted request. It must run after Allow reported
// true and before the generation call, so a failed generation cannot be
// retried without spending quota.
func (s *StateService) Consume(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, _ := s.getOrInitLocked(userID)
	u.Count++
	return s.persistLocked(ctx)
}

// StatsSnapshot is the read-only view behind /stats.
type StatsSnapshot struct {
	Count        int
	FreePerDay   int
	IsSubscriber bool
}

// Stats returns the user's usage for today without mutating state. A record
// from a previous day reads as zero; the stored record is rolled over by the
// next gated request instead.
func (s *StateService) Stats(userID int64) StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := StatsSnapshot{
		FreePerDay:   s.state.Limits.FreePerDay,
		IsSubscriber: s.isSubscriberLocked(userID),
	}
	if u, ok := s.state.Users[userID]; ok && u.Today == dayString(s.now()) {
		snap.Count = u.Count
	}
	return snap
}
