package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/samber/lo"

	channelService "querywizard/internal/modules/channel/service"
	queryService "querywizard/internal/modules/query/service"
	"querywizard/internal/shared/config"
)

// Handler handles Telegram bot interactions
type Handler struct {
	cfg            *config.Config
	channelService *channelService.Service
	queryService   *queryService.Service
}

// New creates a new Telegram handler
func New(cfg *config.Config, channelService *channelService.Service, queryService *queryService.Service) *Handler {
	return &Handler{
		cfg:            cfg,
		channelService: channelService,
		queryService:   queryService,
	}
}

// RegisterCommands registers bot commands
func (h *Handler) RegisterCommands(b *bot.Bot) {
	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, h.handleStart)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, h.handleStart)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/channels", bot.MatchTypeExact, h.handleListChannels)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/addchannel", bot.MatchTypePrefix, h.handleAddChannel)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/removechannel", bot.MatchTypePrefix, h.handleRemoveChannel)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/renamechannel", bot.MatchTypePrefix, h.handleRenameChannel)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/query", bot.MatchTypePrefix, h.handleQuery)
}

// checkAuthorization allows everyone when no allow-list is configured.
func (h *Handler) checkAuthorization(userID int64) bool {
	if len(h.cfg.AllowedUsers) == 0 {
		return true
	}
	return lo.Contains(h.cfg.AllowedUsers, userID)
}

func (h *Handler) reply(ctx context.Context, b *bot.Bot, update *models.Update, text string) {
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   text,
	})
}

func (h *Handler) authorized(ctx context.Context, b *bot.Bot, update *models.Update) bool {
	if h.checkAuthorization(update.Message.From.ID) {
		return true
	}
	h.reply(ctx, b, update, "❌ You are not authorized to use this bot.")
	return false
}

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.authorized(ctx, b, update) {
		return
	}

	text := `👋 Welcome to the Slack Search Query Wizard!

I build Slack search queries from structured filters and keep your list of saved channels.

Available commands:
/help - Show this help message
/channels - List saved channels
/addchannel <name> - Save a channel (with or without #)
/removechannel <name> - Remove a saved channel
/renamechannel <old> <new> - Rename a saved channel
/query [filters] [keywords] - Build a search query

Query filters (all optional):
in=<channel> from=<user> type=<pdf|image|snippet|gdoc|spreadsheet>
during=<date> or after=<date> before=<date>
Dates accept today, yesterday, 2024-03-05, a month name, or a year.

Example:
/query in=eng from=bob type=pdf after=2024-03-01 deploy error`

	h.reply(ctx, b, update, text)
}

func (h *Handler) handleListChannels(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.authorized(ctx, b, update) {
		return
	}

	channels := h.channelService.List()
	if len(channels) == 0 {
		h.reply(ctx, b, update, "No channels saved yet. Add one with /addchannel <name>")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 Saved channels (%d):\n", len(channels)))
	for _, ch := range channels {
		sb.WriteString(fmt.Sprintf("  #%s\n", ch))
	}
	h.reply(ctx, b, update, sb.String())
}

func (h *Handler) handleAddChannel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.authorized(ctx, b, update) {
		return
	}

	parts := strings.Fields(update.Message.Text)
	if len(parts) < 2 {
		h.reply(ctx, b, update, "Usage: /addchannel <name>\nExample: /addchannel general")
		return
	}

	message, err := h.channelService.Add(strings.Join(parts[1:], " "))
	if err != nil {
		h.reply(ctx, b, update, fmt.Sprintf("❌ %v", err))
		return
	}
	h.reply(ctx, b, update, fmt.Sprintf("✅ %s", message))
}

func (h *Handler) handleRemoveChannel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.authorized(ctx, b, update) {
		return
	}

	parts := strings.Fields(update.Message.Text)
	if len(parts) < 2 {
		h.reply(ctx, b, update, "Usage: /removechannel <name>")
		return
	}

	message, err := h.channelService.Remove(parts[1])
	if err != nil {
		h.reply(ctx, b, update, fmt.Sprintf("❌ %v", err))
		return
	}
	h.reply(ctx, b, update, fmt.Sprintf("✅ %s", message))
}

func (h *Handler) handleRenameChannel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.authorized(ctx, b, update) {
		return
	}

	parts := strings.Fields(update.Message.Text)
	if len(parts) < 3 {
		h.reply(ctx, b, update, "Usage: /renamechannel <old> <new>")
		return
	}

	message, err := h.channelService.Rename(parts[1], parts[2])
	if err != nil {
		h.reply(ctx, b, update, fmt.Sprintf("❌ %v", err))
		return
	}
	h.reply(ctx, b, update, fmt.Sprintf("✅ %s", message))
}

func (h *Handler) handleQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if !h.authorized(ctx, b, update) {
		return
	}

	args := strings.Fields(update.Message.Text)[1:]
	sel := ParseSelection(args)

	query := h.queryService.Build(sel)
	if query == "" {
		h.reply(ctx, b, update, "No criteria given. Try /query in=eng from=bob deploy")
		return
	}

	h.reply(ctx, b, update, fmt.Sprintf("🔍 %s\n\nPaste this into Slack's search bar.", query))
}
