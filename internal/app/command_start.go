package app

import (
	"context"
	"fmt"
	"log"

	"github.com/example/entscheidungshelfer-bot/pkg/telegram"
)

// handleStartCommand sends the welcome text with the main keyboard.
func (a *App) handleStartCommand(ctx context.Context, m *telegram.Message) {
	log.Printf("user %d called /start", senderID(m))
	if err := a.tgClient.SendMessageMarkdown(ctx, m.Chat.ID, startText, mainKeyboard); err != nil {
		log.Printf("error when sending message to chat id %v: %v", m.Chat.ID, err)
	}
}

// handleHelpCommand sends the usage overview.
func (a *App) handleHelpCommand(ctx context.Context, m *telegram.Message) {
	log.Printf("user %d called /help", senderID(m))
	a.sendMessage(ctx, m.Chat.ID, helpText, mainKeyboard)
}

// handleStatsCommand reports today's usage for the requesting user. The
// snapshot is read-only; a stale record is shown as zero without touching
// the stored state.
func (a *App) handleStatsCommand(ctx context.Context, m *telegram.Message) {
	userID := senderID(m)
	log.Printf("user %d called /stats", userID)
	snap := a.state.Stats(userID)
	sub := "NEIN"
	if snap.IsSubscriber {
		sub = "JA"
	}
	text := fmt.Sprintf("📊 Heute: %d/%d\nAbo: %s", snap.Count, snap.FreePerDay, sub)
	a.sendMessage(ctx, m.Chat.ID, text, mainKeyboard)
}

// handleRestartCommand only acknowledges; the bot keeps no per-chat
// conversation state that would need clearing.
func (a *App) handleRestartCommand(ctx context.Context, m *telegram.Message) {
	log.Printf("user %d called /restart", senderID(m))
	a.sendMessage(ctx, m.Chat.ID, restartText, mainKeyboard)
}
