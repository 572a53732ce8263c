package app

import (
	"context"
	"log"
	"strconv"

	"github.com/example/entscheidungshelfer-bot/internal/model"
	"github.com/example/entscheidungshelfer-bot/pkg/telegram"
)

// adminAction enumerates the recognized admin command variants. Anything
// that does not parse becomes actionUnrecognized, which the dispatcher
// treats as a persisted no-op instead of an error.
type adminAction int

const (
	actionUnrecognized adminAction = iota
	actionAdsEnable
	actionAdsDisable
	actionAdsMode
	actionSubsEnable
	actionSubsDisable
	actionSubAdd
	actionSubDel
)

type adminCommand struct {
	action adminAction
	mode   string
	userID int64
}

// parseAdsArgs parses the /ads argument: on|off|low|light|normal.
func parseAdsArgs(args []string) adminCommand {
	if len(args) == 0 {
		return adminCommand{}
	}
	switch args[0] {
	case "on":
		return adminCommand{action: actionAdsEnable}
	case "off":
		return adminCommand{action: actionAdsDisable}
	case model.AdModeLow, model.AdModeLight, model.AdModeNormal:
		return adminCommand{action: actionAdsMode, mode: args[0]}
	}
	return adminCommand{}
}

// parseSubArgs parses the /sub arguments: on|off or add|del with a user ID.
func parseSubArgs(args []string) adminCommand {
	if len(args) == 0 {
		return adminCommand{}
	}
	switch args[0] {
	case "on":
		return adminCommand{action: actionSubsEnable}
	case "off":
		return adminCommand{action: actionSubsDisable}
	case "add", "del":
		if len(args) < 2 {
			return adminCommand{}
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return adminCommand{}
		}
		if args[0] == "add" {
			return adminCommand{action: actionSubAdd, userID: id}
		}
		return adminCommand{action: actionSubDel, userID: id}
	}
	return adminCommand{}
}

// isAdmin checks the sender against the one configured admin ID. An unset
// (zero) admin ID matches nobody.
func (a *App) isAdmin(m *telegram.Message) bool {
	return a.cfg.AdminID != 0 && senderID(m) == a.cfg.AdminID
}

// handleAdsCommand applies an /ads command. Non-admin callers get no reply
// at all. Unrecognized arguments still persist the (unchanged) state and
// acknowledge, so bad input never crashes or errors the bot.
func (a *App) handleAdsCommand(ctx context.Context, m *telegram.Message, args []string) {
	if !a.isAdmin(m) {
		return
	}
	log.Printf("admin %d called /ads %v", senderID(m), args)
	a.applyAdminCommand(ctx, m, parseAdsArgs(args))
}

// handleSubCommand applies a /sub command with the same rules as /ads.
func (a *App) handleSubCommand(ctx context.Context, m *telegram.Message, args []string) {
	if !a.isAdmin(m) {
		return
	}
	log.Printf("admin %d called /sub %v", senderID(m), args)
	a.applyAdminCommand(ctx, m, parseSubArgs(args))
}

func (a *App) applyAdminCommand(ctx context.Context, m *telegram.Message, cmd adminCommand) {
	var err error
	switch cmd.action {
	case actionAdsEnable:
		err = a.state.SetAdsEnabled(ctx, true)
	case actionAdsDisable:
		err = a.state.SetAdsEnabled(ctx, false)
	case actionAdsMode:
		err = a.state.SetAdsMode(ctx, cmd.mode)
	case actionSubsEnable:
		err = a.state.SetSubscriptionsEnabled(ctx, true)
	case actionSubsDisable:
		err = a.state.SetSubscriptionsEnabled(ctx, false)
	case actionSubAdd:
		err = a.state.AddSubscriber(ctx, cmd.userID)
	case actionSubDel:
		err = a.state.RemoveSubscriber(ctx, cmd.userID)
	case actionUnrecognized:
		err = a.state.Persist(ctx)
	}
	if err != nil {
		// The change may not have reached disk; do not acknowledge.
		log.Println("admin command:", err)
		return
	}
	a.sendMessage(ctx, m.Chat.ID, okText, nil)
}
