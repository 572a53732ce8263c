package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Keywords maps UI phrases to response modes. Matching is case-sensitive and
// checked quick-first, so retargeting the bot to another language only means
// swapping this table, not touching the classifier.
type Keywords struct {
	Quick  []string `json:"quick"`
	ProCon []string `json:"pro_con"`
}

// DefaultKeywords matches the German reply-keyboard labels.
func DefaultKeywords() Keywords {
	return Keywords{
		Quick:  []string{"Kurz"},
		ProCon: []string{"Pro"},
	}
}

type Config struct {
	TelegramToken string
	OpenAIToken   string
	OpenAIBaseURL string
	OpenAIModel   string
	AdminID       int64
	DBConnString  string
	StatePath     string
	KeywordsFile  string
	AmazonTag     string

	Keywords Keywords
}

// FromEnv loads configuration from environment variables. TELEGRAM_TOKEN is
// required. DATABASE_URL is optional; when set the bot keeps its state in
// Postgres instead of the JSON file at STATE_FILE. ADMIN_TELEGRAM_ID of 0
// (unset) disables admin commands entirely.
func FromEnv() (*Config, error) {
	c := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		OpenAIToken:   os.Getenv("OPENAI_TOKEN"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:   os.Getenv("OPENAI_MODEL"),
		DBConnString:  os.Getenv("DATABASE_URL"),
		StatePath:     os.Getenv("STATE_FILE"),
		KeywordsFile:  os.Getenv("KEYWORDS_FILE"),
		AmazonTag:     os.Getenv("AMAZON_TAG"),
	}
	if c.TelegramToken == "" {
		return nil, errors.New("TELEGRAM_TOKEN is not set")
	}
	if raw := os.Getenv("ADMIN_TELEGRAM_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_TELEGRAM_ID: %w", err)
		}
		c.AdminID = id
	}
	if c.OpenAIBaseURL == "" {
		c.OpenAIBaseURL = "https://api.openai.com/v1"
	}
	if c.OpenAIModel == "" {
		c.OpenAIModel = "gpt-4.1-mini"
	}
	if c.StatePath == "" {
		c.StatePath = "data.json"
	}
	if c.AmazonTag == "" {
		c.AmazonTag = "entscheidungshelfer-21"
	}
	if err := c.loadKeywords(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) loadKeywords() error {
	if c.KeywordsFile == "" {
		c.Keywords = DefaultKeywords()
		return nil
	}
	file, err := os.Open(c.KeywordsFile)
	if err != nil {
		return err
	}
	defer file.Close()
	return json.NewDecoder(file).Decode(&c.Keywords)
}
