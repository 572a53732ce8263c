package service

import (
	"strings"

	"github.com/example/entscheidungshelfer-bot/internal/config"
)

// Mode selects the response style for a request.
type Mode string

const (
	ModeQuick    Mode = "quick"
	ModeProCon   Mode = "pro"
	ModeDecision Mode = "decision"
)

// Classify maps free message text to a response mode by case-sensitive
// substring match, quick keywords before pro/contra ones, falling back to
// the full decision mode.
func Classify(text string, kw config.Keywords) Mode {
	for _, k := range kw.Quick {
		if strings.Contains(text, k) {
			return ModeQuick
		}
	}
	for _, k := range kw.ProCon {
		if strings.Contains(text, k) {
			return ModeProCon
		}
	}
	return ModeDecision
}
