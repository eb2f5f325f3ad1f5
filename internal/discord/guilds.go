package discord

import (
	"context"
	"net/http"
	"strings"
)

const cdnBase = "https://cdn.discordapp.com"

// ServerInfo describes a guild.
func (c *Client) ServerInfo(ctx context.Context, guildID string) (*ServerInfo, error) {
	var g apiGuild
	if _, err := c.guildCall(ctx, guildID, http.MethodGet, "?with_counts=true", nil, &g); err != nil {
		return nil, err
	}
	features := g.Features
	if features == nil {
		features = []string{}
	}
	return &ServerInfo{
		ID:          g.ID,
		Name:        g.Name,
		Icon:        iconURL(g.ID, g.Icon),
		MemberCount: g.ApproximateMemberCount,
		OwnerID:     g.OwnerID,
		CreatedAt:   isoTime(snowflakeTime(g.ID)),
		Description: g.Description,
		Features:    features,
	}, nil
}

func iconURL(guildID string, hash *string) *string {
	if hash == nil || *hash == "" {
		return nil
	}
	ext := ".png"
	if strings.HasPrefix(*hash, "a_") {
		ext = ".gif"
	}
	url := cdnBase + "/icons/" + guildID + "/" + *hash + ext
	return &url
}

// channels lists every channel of the guild in API order.
func (c *Client) channels(ctx context.Context, guildID string) ([]channel, string, error) {
	var raw []apiChannel
	id, err := c.guildCall(ctx, guildID, http.MethodGet, "/channels", nil, &raw)
	if err != nil {
		return nil, id, err
	}
	out := make([]channel, 0, len(raw))
	for _, ch := range raw {
		out = append(out, classify(ch))
	}
	return out, id, nil
}

// ListChannels returns every channel in the guild.
func (c *Client) ListChannels(ctx context.Context, guildID string) ([]ChannelInfo, error) {
	chans, _, err := c.channels(ctx, guildID)
	if err != nil {
		return nil, err
	}
	out := make([]ChannelInfo, 0, len(chans))
	for _, ch := range chans {
		out = append(out, ChannelInfo{ChannelSummary: summarize(ch.apiChannel), ParentID: ch.ParentID})
	}
	return out, nil
}

// FindChannel returns the first channel whose name matches
// case-insensitively, or nil.
func (c *Client) FindChannel(ctx context.Context, name, guildID string) (*ChannelInfo, error) {
	chans, _, err := c.channels(ctx, guildID)
	if err != nil {
		return nil, err
	}
	for _, ch := range chans {
		if sameName(ch.Name, name) {
			return &ChannelInfo{ChannelSummary: summarize(ch.apiChannel), ParentID: ch.ParentID}, nil
		}
	}
	return nil, nil
}

// FindCategory returns the first category whose name matches
// case-insensitively, or nil.
func (c *Client) FindCategory(ctx context.Context, name, guildID string) (*ChannelSummary, error) {
	chans, _, err := c.channels(ctx, guildID)
	if err != nil {
		return nil, err
	}
	for _, ch := range chans {
		if ch.kind == KindCategory && sameName(ch.Name, name) {
			s := summarize(ch.apiChannel)
			return &s, nil
		}
	}
	return nil, nil
}

// ListChannelsInCategory returns the channels whose parent is categoryID.
// An unknown category yields an empty list.
func (c *Client) ListChannelsInCategory(ctx context.Context, categoryID, guildID string) ([]ChannelSummary, error) {
	chans, _, err := c.channels(ctx, guildID)
	if err != nil {
		return nil, err
	}
	out := []ChannelSummary{}
	for _, ch := range chans {
		if ch.ParentID != nil && *ch.ParentID == categoryID {
			out = append(out, summarize(ch.apiChannel))
		}
	}
	return out, nil
}

// CreateTextChannel creates a text channel, optionally under a category.
func (c *Client) CreateTextChannel(ctx context.Context, name, categoryID, guildID string) (*ChannelSummary, error) {
	body := map[string]any{"name": name, "type": channelTypeGuildText}
	if categoryID != "" {
		body["parent_id"] = categoryID
	}
	return c.createChannel(ctx, guildID, body)
}

// CreateCategory creates a category channel.
func (c *Client) CreateCategory(ctx context.Context, name, guildID string) (*ChannelSummary, error) {
	return c.createChannel(ctx, guildID, map[string]any{"name": name, "type": channelTypeGuildCategory})
}

func (c *Client) createChannel(ctx context.Context, guildID string, body map[string]any) (*ChannelSummary, error) {
	var created apiChannel
	if _, err := c.guildCall(ctx, guildID, http.MethodPost, "/channels", body, &created); err != nil {
		return nil, err
	}
	s := summarize(created)
	return &s, nil
}

// DeleteChannel deletes a channel of the guild.
func (c *Client) DeleteChannel(ctx context.Context, channelID, guildID string) error {
	return c.deleteGuildChannel(ctx, channelID, guildID, "Channel")
}

// DeleteCategory deletes a category of the guild. Any guild channel ID is
// accepted, matching DeleteChannel.
func (c *Client) DeleteCategory(ctx context.Context, categoryID, guildID string) error {
	return c.deleteGuildChannel(ctx, categoryID, guildID, "Category")
}

func (c *Client) deleteGuildChannel(ctx context.Context, channelID, guildID, kind string) error {
	chans, _, err := c.channels(ctx, guildID)
	if err != nil {
		return err
	}
	for _, ch := range chans {
		if ch.ID == channelID {
			return c.do(ctx, http.MethodDelete, "/channels/"+channelID, nil, nil)
		}
	}
	return &NotFoundError{Kind: kind, ID: channelID}
}

func sameName(a, b string) bool {
	return strings.ToLower(a) == strings.ToLower(b)
}
