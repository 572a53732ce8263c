package service

import (
	"context"
	"strings"
)

// AIClient describes the part of the OpenAI client used by the service.
type AIClient interface {
	ChatCompletion(ctx context.Context, system, user string) (string, error)
}

const systemPrompt = "Du bist ein klarer Entscheidungshelfer.\n" +
	"Kurz, strukturiert, immer mit Empfehlung.\n"

// DecisionService turns a classified user message into a generated answer.
type DecisionService struct {
	ai AIClient
}

func NewDecisionService(ai AIClient) *DecisionService {
	return &DecisionService{ai: ai}
}

// taskFor returns the mode-specific instruction prepended to the user text.
func taskFor(mode Mode) string {
	switch mode {
	case ModeQuick:
		return "Gib 1 Satz Empfehlung + 1 Satz nächsten Schritt."
	case ModeProCon:
		return "Erstelle Pro/Contra + Mini-Empfehlung."
	default:
		return "1) Kurzfazit\n" +
			"2) Pro\n" +
			"3) Contra\n" +
			"4) Empfehlung + nächster Schritt"
	}
}

// Answer asks the backend for a reply to text in the given mode.
func (s *DecisionService) Answer(ctx context.Context, text string, mode Mode) (string, error) {
	out, err := s.ai.ChatCompletion(ctx, systemPrompt, taskFor(mode)+"\n\n"+text)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
