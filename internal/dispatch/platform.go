package dispatch

import (
	"context"

	"github.com/crystaldolphin/discordmcp/internal/discord"
)

// Platform is the set of operations tool calls are routed to. *discord.Client
// implements it. Lookups return a nil pointer when nothing matches.
type Platform interface {
	ServerInfo(ctx context.Context, guildID string) (*discord.ServerInfo, error)

	UserIDByName(ctx context.Context, username, guildID string) (*discord.MemberInfo, error)
	SendPrivateMessage(ctx context.Context, userID, content string) (*discord.SentMessage, error)
	EditPrivateMessage(ctx context.Context, userID, messageID, content string) (*discord.EditedMessage, error)
	DeletePrivateMessage(ctx context.Context, userID, messageID string) error
	ReadPrivateMessages(ctx context.Context, userID string, count int) ([]discord.MessageRecord, error)

	SendMessage(ctx context.Context, channelID, content string) (*discord.SentMessage, error)
	EditMessage(ctx context.Context, channelID, messageID, content string) (*discord.EditedMessage, error)
	DeleteMessage(ctx context.Context, channelID, messageID string) error
	ReadMessages(ctx context.Context, channelID string, count int) ([]discord.ChannelMessageRecord, error)
	AddReaction(ctx context.Context, channelID, messageID, emoji string) error
	RemoveReaction(ctx context.Context, channelID, messageID, emoji string) error

	CreateTextChannel(ctx context.Context, name, categoryID, guildID string) (*discord.ChannelSummary, error)
	DeleteChannel(ctx context.Context, channelID, guildID string) error
	FindChannel(ctx context.Context, name, guildID string) (*discord.ChannelInfo, error)
	ListChannels(ctx context.Context, guildID string) ([]discord.ChannelInfo, error)

	CreateCategory(ctx context.Context, name, guildID string) (*discord.ChannelSummary, error)
	DeleteCategory(ctx context.Context, categoryID, guildID string) error
	FindCategory(ctx context.Context, name, guildID string) (*discord.ChannelSummary, error)
	ListChannelsInCategory(ctx context.Context, categoryID, guildID string) ([]discord.ChannelSummary, error)

	CreateWebhook(ctx context.Context, channelID, name string) (*discord.WebhookRecord, error)
	DeleteWebhook(ctx context.Context, webhookID string) error
	ListWebhooks(ctx context.Context, channelID string) ([]discord.WebhookRecord, error)
	SendWebhookMessage(ctx context.Context, webhookURL, content string) error
}

var _ Platform = (*discord.Client)(nil)
