package discord

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
)

const webhookURLBase = "https://discord.com/api/webhooks/"

var webhookURLPattern = regexp.MustCompile(`/webhooks/(\d+)/([^/]+)`)

// webhookChannel fetches a channel and requires it to be a guild text channel.
func (c *Client) webhookChannel(ctx context.Context, channelID string) error {
	if err := c.waitReady(ctx); err != nil {
		return err
	}
	var raw apiChannel
	err := c.do(ctx, http.MethodGet, "/channels/"+url.PathEscape(channelID), nil, &raw)
	if isInaccessible(err) || (err == nil && raw.Type != channelTypeGuildText) {
		return &NotFoundError{Kind: "Text channel", ID: channelID}
	}
	return err
}

func webhookRecord(w apiWebhook) WebhookRecord {
	var name string
	if w.Name != nil {
		name = *w.Name
	}
	return WebhookRecord{
		ID:        w.ID,
		Name:      name,
		URL:       webhookURLBase + w.ID + "/" + w.Token,
		ChannelID: w.ChannelID,
	}
}

// ListWebhooks returns the webhooks of a guild text channel.
func (c *Client) ListWebhooks(ctx context.Context, channelID string) ([]WebhookRecord, error) {
	if err := c.webhookChannel(ctx, channelID); err != nil {
		return nil, err
	}
	var hooks []apiWebhook
	if err := c.do(ctx, http.MethodGet, "/channels/"+url.PathEscape(channelID)+"/webhooks", nil, &hooks); err != nil {
		return nil, err
	}
	out := make([]WebhookRecord, 0, len(hooks))
	for _, w := range hooks {
		out = append(out, webhookRecord(w))
	}
	return out, nil
}

// CreateWebhook creates a webhook on a guild text channel.
func (c *Client) CreateWebhook(ctx context.Context, channelID, name string) (*WebhookRecord, error) {
	if err := c.webhookChannel(ctx, channelID); err != nil {
		return nil, err
	}
	var w apiWebhook
	if err := c.do(ctx, http.MethodPost, "/channels/"+url.PathEscape(channelID)+"/webhooks", map[string]any{"name": name}, &w); err != nil {
		return nil, err
	}
	rec := webhookRecord(w)
	return &rec, nil
}

// DeleteWebhook deletes a webhook by ID.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) error {
	if err := c.waitReady(ctx); err != nil {
		return err
	}
	path := "/webhooks/" + url.PathEscape(webhookID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil); err != nil {
		if isInaccessible(err) {
			return &NotFoundError{Kind: "Webhook", ID: webhookID}
		}
		return err
	}
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// SendWebhookMessage posts content through a webhook URL. The URL is checked
// before waiting for readiness.
func (c *Client) SendWebhookMessage(ctx context.Context, webhookURL, content string) error {
	match := webhookURLPattern.FindStringSubmatch(webhookURL)
	if match == nil {
		return ErrInvalidWebhookURL
	}
	if err := c.waitReady(ctx); err != nil {
		return err
	}
	path := "/webhooks/" + match[1] + "/" + url.PathEscape(match[2])
	if err := c.do(ctx, http.MethodGet, path, nil, nil); err != nil {
		if isInaccessible(err) {
			return &NotFoundError{Kind: "Webhook", ID: match[1]}
		}
		return err
	}
	return c.do(ctx, http.MethodPost, path, map[string]any{"content": content}, nil)
}
