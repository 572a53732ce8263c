package service

import (
	"context"
	"math/rand"

	"github.com/example/entscheidungshelfer-bot/internal/model"
)

// adRates maps ad mode to the per-reply show probability.
var adRates = map[string]float64{
	model.AdModeLow:    0.10,
	model.AdModeLight:  0.25,
	model.AdModeNormal: 0.50,
}

// ShouldShowAd rolls the weighted coin for the given ads config. Stateless
// across calls: there is no frequency capping beyond the per-call rate.
func ShouldShowAd(cfg model.AdsConfig) bool {
	if !cfg.Enabled {
		return false
	}
	return rand.Float64() < adRates[cfg.Mode]
}

// ShouldShowAd decides whether to append ad copy to the current reply.
func (s *StateService) ShouldShowAd() bool {
	s.mu.Lock()
	cfg := s.state.Ads
	s.mu.Unlock()
	return ShouldShowAd(cfg)
}

// isSubscriberLocked reports an active subscription. Callers hold s.mu.
func (s *StateService) isSubscriberLocked(userID int64) bool {
	if !s.state.Subscriptions.Enabled {
		return false
	}
	for _, id := range s.state.Subscriptions.Users {
		if id == userID {
			return true
		}
	}
	return false
}

// IsSubscriber reports whether the subscriptions feature is on and userID is
// on the allow-list.
func (s *StateService) IsSubscriber(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isSubscriberLocked(userID)
}

// SetAdsEnabled toggles ad injection and persists.
func (s *StateService) SetAdsEnabled(ctx context.Context, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Ads.Enabled = on
	return s.persistLocked(ctx)
}

// SetAdsMode switches the ad rate mode and persists. The caller validates
// the mode literal.
func (s *StateService) SetAdsMode(ctx context.Context, mode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Ads.Mode = mode
	return s.persistLocked(ctx)
}

// SetSubscriptionsEnabled toggles the subscriber bypass and persists.
func (s *StateService) SetSubscriptionsEnabled(ctx context.Context, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Subscriptions.Enabled = on
	return s.persistLocked(ctx)
}

// AddSubscriber puts userID on the allow-list. Adding an ID that is already
// present leaves the list unchanged.
func (s *StateService) AddSubscriber(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.state.Subscriptions.Users {
		if id == userID {
			return s.persistLocked(ctx)
		}
	}
	s.state.Subscriptions.Users = append(s.state.Subscriptions.Users, userID)
	return s.persistLocked(ctx)
}

// RemoveSubscriber takes userID off the allow-list. Removing an absent ID
// is a no-op, not an error.
func (s *StateService) RemoveSubscriber(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := s.state.Subscriptions.Users[:0]
	for _, id := range s.state.Subscriptions.Users {
		if id != userID {
			users = append(users, id)
		}
	}
	s.state.Subscriptions.Users = users
	return s.persistLocked(ctx)
}
