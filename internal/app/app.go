package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/example/entscheidungshelfer-bot/internal/config"
	"github.com/example/entscheidungshelfer-bot/internal/service"
	"github.com/example/entscheidungshelfer-bot/pkg/openai"
	"github.com/example/entscheidungshelfer-bot/pkg/telegram"
)

// App coordinates the services and the telegram client.
type App struct {
	cfg      *config.Config
	state    *service.StateService
	decision *service.DecisionService
	tgClient *telegram.Client
	adText   string
}

func New(cfg *config.Config, state *service.StateService) *App {
	ai := openai.NewClient(cfg.OpenAIToken, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	return &App{
		cfg:      cfg,
		state:    state,
		decision: service.NewDecisionService(ai),
		tgClient: telegram.NewClient(cfg.TelegramToken),
		adText:   adText(cfg.AmazonTag),
	}
}

func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	a.setCommands(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.handleUpdates(ctx)
	}()

	<-ctx.Done()
	wg.Wait()
	return nil
}

func (a *App) handleUpdates(ctx context.Context) {
	offset := 0
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		updates, err := a.tgClient.GetUpdates(ctx, offset)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Println("get updates:", err)
			time.Sleep(time.Second)
			continue
		}
		for _, u := range updates {
			offset = u.UpdateID + 1
			if u.Message == nil {
				continue
			}
			// One goroutine per message: a slow completion for one user
			// must not hold up another user's quota check.
			go a.handleMessage(ctx, u.Message)
		}
	}
}

func (a *App) handleMessage(ctx context.Context, m *telegram.Message) {
	fields := strings.Fields(m.Text)
	if len(fields) > 0 && strings.HasPrefix(fields[0], "/") {
		switch fields[0] {
		case "/start":
			a.handleStartCommand(ctx, m)
		case "/help":
			a.handleHelpCommand(ctx, m)
		case "/stats":
			a.handleStatsCommand(ctx, m)
		case "/restart":
			a.handleRestartCommand(ctx, m)
		case "/ads":
			a.handleAdsCommand(ctx, m, fields[1:])
		case "/sub":
			a.handleSubCommand(ctx, m, fields[1:])
		default:
			// ignore unknown commands
		}
		return
	}
	a.handleChat(ctx, m)
}

// senderID identifies the requesting user. Quota and admin checks key on the
// sender, not the chat, so the bot behaves in group chats too.
func senderID(m *telegram.Message) int64 {
	if m.From != nil {
		return m.From.ID
	}
	return m.Chat.ID
}

func (a *App) sendMessage(ctx context.Context, chatID int64, text string, keyboard [][]string) {
	if err := a.tgClient.SendMessage(ctx, chatID, text, keyboard); err != nil {
		log.Printf("error when sending message to chat id %v: %v", chatID, err)
	}
}

func (a *App) setCommands(ctx context.Context) {
	cmds := []telegram.BotCommand{
		{Command: "start", Description: "Bot starten"},
		{Command: "help", Description: "Hilfe anzeigen"},
		{Command: "stats", Description: "Tagesnutzung anzeigen"},
		{Command: "restart", Description: "Neustart"},
	}
	if err := a.tgClient.SetCommands(ctx, cmds); err != nil {
		log.Println("set commands:", err)
	}
}
