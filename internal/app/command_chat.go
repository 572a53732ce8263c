package app

import (
	"context"
	"log"

	"github.com/example/entscheidungshelfer-bot/internal/service"
	"github.com/example/entscheidungshelfer-bot/pkg/telegram"
)

// handleChat runs the full reply pipeline for a free-text message: quota
// check, intent classification, quota consumption, generation, ad decision,
// reply. Quota is consumed before the generation call so a failed completion
// cannot be retried without spending quota.
func (a *App) handleChat(ctx context.Context, m *telegram.Message) {
	userID := senderID(m)
	log.Printf("user %d sent a message", userID)

	allowed, err := a.state.Allow(ctx, userID)
	if err != nil {
		log.Println("quota check:", err)
		return
	}
	if !allowed {
		a.sendMessage(ctx, m.Chat.ID, limitText, mainKeyboard)
		return
	}

	mode := service.Classify(m.Text, a.cfg.Keywords)

	if err := a.state.Consume(ctx, userID); err != nil {
		// The increment may not have reached disk; do not reply as if the
		// request succeeded.
		log.Println("consume quota:", err)
		return
	}

	answer, err := a.decision.Answer(ctx, m.Text, mode)
	if err != nil {
		log.Println("generate answer:", err)
		return
	}

	if !a.state.IsSubscriber(userID) && a.state.ShouldShowAd() {
		answer += a.adText
	}
	a.sendMessage(ctx, m.Chat.ID, answer, mainKeyboard)
}
