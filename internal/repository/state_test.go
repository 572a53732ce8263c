package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/entscheidungshelfer-bot/internal/model"
)

func TestFileStateRepository_MissingFileDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	repo := NewFileStateRepository(path)
	state, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if state.Ads.Enabled || state.Ads.Mode != model.AdModeLow {
		t.Fatalf("unexpected ads default: %+v", state.Ads)
	}
	if state.Subscriptions.Enabled || len(state.Subscriptions.Users) != 0 {
		t.Fatalf("unexpected subscriptions default: %+v", state.Subscriptions)
	}
	if state.Limits.FreePerDay != 1 {
		t.Fatalf("unexpected limit default: %d", state.Limits.FreePerDay)
	}
	if len(state.Users) != 0 {
		t.Fatalf("expected no users, got %d", len(state.Users))
	}
}

func TestFileStateRepository_CorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	repo := NewFileStateRepository(path)
	if _, err := repo.Load(context.Background()); !errors.Is(err, ErrStateCorrupt) {
		t.Fatalf("expected ErrStateCorrupt, got %v", err)
	}
}

func TestFileStateRepository_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	repo := NewFileStateRepository(path)
	ctx := context.Background()

	state := model.DefaultState()
	state.Ads = model.AdsConfig{Enabled: true, Mode: model.AdModeNormal}
	state.Subscriptions = model.SubscriptionConfig{Enabled: true, Users: []int64{555, 42}}
	state.Limits.FreePerDay = 3
	state.Users[99] = &model.UserRecord{Today: "2024-05-01", Count: 2}

	if err := repo.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Users[99] == nil || got.Users[99].Count != 2 || got.Users[99].Today != "2024-05-01" {
		t.Fatalf("user record did not survive: %#v", got.Users[99])
	}
	if len(got.Subscriptions.Users) != 2 {
		t.Fatalf("subscribers did not survive: %v", got.Subscriptions.Users)
	}

	// Loading and re-saving without modification must reproduce the file.
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(first) != string(second) {
		t.Fatalf("round trip changed the document:\n%s\nvs\n%s", first, second)
	}
}

func TestFileStateRepository_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileStateRepository(filepath.Join(dir, "data.json"))
	if err := repo.Save(context.Background(), model.DefaultState()); err != nil {
		t.Fatalf("save: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "data.json" {
		t.Fatalf("unexpected directory contents: %v", entries)
	}
}
