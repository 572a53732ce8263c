package service

import (
	"context"
	"math"
	"testing"

	"github.com/example/entscheidungshelfer-bot/internal/model"
)

func TestAddSubscriber_Deduplicates(t *testing.T) {
	repo := newMemStateRepo()
	svc, _ := newTestService(t, repo)
	ctx := context.Background()

	if err := svc.AddSubscriber(ctx, 555); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.AddSubscriber(ctx, 555); err != nil {
		t.Fatalf("add again: %v", err)
	}
	if got := repo.state.Subscriptions.Users; len(got) != 1 || got[0] != 555 {
		t.Fatalf("expected exactly one occurrence, got %v", got)
	}
}

func TestRemoveSubscriber_AbsentIsNoOp(t *testing.T) {
	repo := newMemStateRepo()
	svc, _ := newTestService(t, repo)
	ctx := context.Background()

	if err := svc.AddSubscriber(ctx, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.RemoveSubscriber(ctx, 999); err != nil {
		t.Fatalf("removing an absent ID must not fail: %v", err)
	}
	if got := repo.state.Subscriptions.Users; len(got) != 1 || got[0] != 1 {
		t.Fatalf("set changed by absent removal: %v", got)
	}
	if err := svc.RemoveSubscriber(ctx, 1); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := repo.state.Subscriptions.Users; len(got) != 0 {
		t.Fatalf("expected empty set, got %v", got)
	}
}

func TestAdminMutationsPersist(t *testing.T) {
	repo := newMemStateRepo()
	svc, _ := newTestService(t, repo)
	ctx := context.Background()

	before := repo.saves
	if err := svc.SetAdsEnabled(ctx, true); err != nil {
		t.Fatalf("ads on: %v", err)
	}
	if err := svc.SetAdsMode(ctx, model.AdModeLight); err != nil {
		t.Fatalf("ads mode: %v", err)
	}
	if err := svc.Persist(ctx); err != nil {
		t.Fatalf("persist: %v", err)
	}
	if repo.saves != before+3 {
		t.Fatalf("expected 3 saves, got %d", repo.saves-before)
	}
	if !repo.state.Ads.Enabled || repo.state.Ads.Mode != model.AdModeLight {
		t.Fatalf("unexpected ads config: %+v", repo.state.Ads)
	}
}

func TestShouldShowAd_Disabled(t *testing.T) {
	cfg := model.AdsConfig{Enabled: false, Mode: model.AdModeNormal}
	for i := 0; i < 1000; i++ {
		if ShouldShowAd(cfg) {
			t.Fatalf("disabled ads must never show")
		}
	}
}

func TestShouldShowAd_NormalRate(t *testing.T) {
	cfg := model.AdsConfig{Enabled: true, Mode: model.AdModeNormal}
	const n = 100000
	shown := 0
	for i := 0; i < n; i++ {
		if ShouldShowAd(cfg) {
			shown++
		}
	}
	rate := float64(shown) / n
	if math.Abs(rate-0.5) > 0.01 {
		t.Fatalf("normal mode rate = %.4f, want ~0.5", rate)
	}
}

func TestShouldShowAd_LowBelowLight(t *testing.T) {
	const n = 100000
	count := func(mode string) int {
		cfg := model.AdsConfig{Enabled: true, Mode: mode}
		c := 0
		for i := 0; i < n; i++ {
			if ShouldShowAd(cfg) {
				c++
			}
		}
		return c
	}
	low := count(model.AdModeLow)
	light := count(model.AdModeLight)
	if math.Abs(float64(low)/n-0.10) > 0.01 {
		t.Fatalf("low mode rate = %.4f, want ~0.10", float64(low)/n)
	}
	if math.Abs(float64(light)/n-0.25) > 0.01 {
		t.Fatalf("light mode rate = %.4f, want ~0.25", float64(light)/n)
	}
}
