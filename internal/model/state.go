package model

// AdsConfig controls promotional text injection. Only the admin mutates it.
type AdsConfig struct {
	Enabled bool   `json:"enabled"`
	Mode    string `json:"mode"`
}

// Ad rate modes.
const (
	AdModeLow    = "low"
	AdModeLight  = "light"
	AdModeNormal = "normal"
)

// SubscriptionConfig holds the quota-bypass allow-list.
type SubscriptionConfig struct {
	Enabled bool    `json:"enabled"`
	Users   []int64 `json:"users"`
}

// Limits holds the static quota configuration.
type Limits struct {
	FreePerDay int `json:"free_per_day"`
}

// UserRecord tracks one user's usage for a single calendar day.
// Count is only meaningful relative to Today: a record read on a later day
// must be rolled over (Today advanced, Count zeroed) before use.
type UserRecord struct {
	Today string `json:"today"`
	Count int    `json:"count"`
}

// State is the whole persisted bot state document. User IDs are encoded as
// decimal strings in the stored document.
type State struct {
	Ads           AdsConfig             `json:"ads"`
	Subscriptions SubscriptionConfig    `json:"subscriptions"`
	Limits        Limits                `json:"limits"`
	Users         map[int64]*UserRecord `json:"users"`
}

// DefaultState returns the state used when no document has been persisted yet.
func DefaultState() *State {
	return &State{
		Ads:           AdsConfig{Enabled: false, Mode: AdModeLow},
		Subscriptions: SubscriptionConfig{Enabled: false, Users: []int64{}},
		Limits:        Limits{FreePerDay: 1},
		Users:         map[int64]*UserRecord{},
	}
}
