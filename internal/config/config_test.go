package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromEnv_RequiresToken(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	if _, err := FromEnv(); err == nil {
		t.Fatalf("expected error without TELEGRAM_TOKEN")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("ADMIN_TELEGRAM_ID", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("STATE_FILE", "")
	t.Setenv("KEYWORDS_FILE", "")
	t.Setenv("AMAZON_TAG", "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.OpenAIModel != "gpt-4.1-mini" {
		t.Fatalf("unexpected model default: %q", cfg.OpenAIModel)
	}
	if cfg.StatePath != "data.json" {
		t.Fatalf("unexpected state path default: %q", cfg.StatePath)
	}
	if cfg.AmazonTag != "entscheidungshelfer-21" {
		t.Fatalf("unexpected tag default: %q", cfg.AmazonTag)
	}
	if cfg.AdminID != 0 {
		t.Fatalf("unexpected admin default: %d", cfg.AdminID)
	}
	if len(cfg.Keywords.Quick) == 0 || cfg.Keywords.Quick[0] != "Kurz" {
		t.Fatalf("unexpected keyword defaults: %+v", cfg.Keywords)
	}
}

func TestFromEnv_BadAdminID(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("ADMIN_TELEGRAM_ID", "not-a-number")
	if _, err := FromEnv(); err == nil {
		t.Fatalf("expected error for unparseable admin id")
	}
}

func TestFromEnv_KeywordsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.json")
	if err := os.WriteFile(path, []byte(`{"quick":["Tip"],"pro_con":["Pros"]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("KEYWORDS_FILE", path)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("from env: %v", err)
	}
	if len(cfg.Keywords.Quick) != 1 || cfg.Keywords.Quick[0] != "Tip" {
		t.Fatalf("keyword file not loaded: %+v", cfg.Keywords)
	}
}
