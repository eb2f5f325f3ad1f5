package discord

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultMessageCount = 50
	maxMessageCount     = 100
)

// textChannel fetches a channel and requires it to be text-capable.
func (c *Client) textChannel(ctx context.Context, channelID string) (channel, error) {
	if err := c.waitReady(ctx); err != nil {
		return channel{}, err
	}
	var raw apiChannel
	err := c.do(ctx, http.MethodGet, "/channels/"+url.PathEscape(channelID), nil, &raw)
	if isInaccessible(err) {
		return channel{}, &NotFoundError{Kind: "Text channel", ID: channelID}
	}
	if err != nil {
		return channel{}, err
	}
	ch := classify(raw)
	if ch.kind != KindText {
		return channel{}, &NotFoundError{Kind: "Text channel", ID: channelID}
	}
	return ch, nil
}

func messagesPath(channelID string) string {
	return "/channels/" + url.PathEscape(channelID) + "/messages"
}

func messagePath(channelID, messageID string) string {
	return messagesPath(channelID) + "/" + url.PathEscape(messageID)
}

func clampCount(count int) int {
	if count <= 0 {
		return defaultMessageCount
	}
	return min(count, maxMessageCount)
}

func (c *Client) send(ctx context.Context, channelID, content string) (*SentMessage, error) {
	var m apiMessage
	if err := c.do(ctx, http.MethodPost, messagesPath(channelID), map[string]any{"content": content}, &m); err != nil {
		return nil, err
	}
	return sentMessage(m), nil
}

func (c *Client) edit(ctx context.Context, channelID, messageID, content string) (apiMessage, error) {
	var m apiMessage
	err := c.do(ctx, http.MethodPatch, messagePath(channelID, messageID), map[string]any{"content": content}, &m)
	return m, err
}

func (c *Client) fetchMessages(ctx context.Context, channelID string, count int) ([]apiMessage, error) {
	var msgs []apiMessage
	path := messagesPath(channelID) + "?limit=" + strconv.Itoa(clampCount(count))
	if err := c.do(ctx, http.MethodGet, path, nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// SendMessage posts content to a text channel.
func (c *Client) SendMessage(ctx context.Context, channelID, content string) (*SentMessage, error) {
	if _, err := c.textChannel(ctx, channelID); err != nil {
		return nil, err
	}
	return c.send(ctx, channelID, content)
}

// EditMessage replaces the content of a message the bot authored.
func (c *Client) EditMessage(ctx context.Context, channelID, messageID, content string) (*EditedMessage, error) {
	if _, err := c.textChannel(ctx, channelID); err != nil {
		return nil, err
	}
	m, err := c.edit(ctx, channelID, messageID, content)
	if err != nil {
		return nil, err
	}
	return &EditedMessage{
		ID:        m.ID,
		Content:   m.Content,
		ChannelID: m.ChannelID,
		EditedAt:  editedAt(m),
	}, nil
}

func editedAt(m apiMessage) string {
	if m.EditedTimestamp == nil {
		return ""
	}
	return normalizeTimestamp(*m.EditedTimestamp)
}

// DeleteMessage deletes one message.
func (c *Client) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	if _, err := c.textChannel(ctx, channelID); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, messagePath(channelID, messageID), nil, nil)
}

// ReadMessages returns up to count recent messages, newest first.
func (c *Client) ReadMessages(ctx context.Context, channelID string, count int) ([]ChannelMessageRecord, error) {
	if _, err := c.textChannel(ctx, channelID); err != nil {
		return nil, err
	}
	msgs, err := c.fetchMessages(ctx, channelID, count)
	if err != nil {
		return nil, err
	}
	out := make([]ChannelMessageRecord, 0, len(msgs))
	for _, m := range msgs {
		urls := make([]string, 0, len(m.Attachments))
		for _, a := range m.Attachments {
			urls = append(urls, a.URL)
		}
		out = append(out, ChannelMessageRecord{MessageRecord: messageRecord(m), Attachments: urls})
	}
	return out, nil
}

// AddReaction reacts to a message as the bot. emoji is a unicode emoji or a
// custom emoji in <:name:id> form.
func (c *Client) AddReaction(ctx context.Context, channelID, messageID, emoji string) error {
	if _, err := c.textChannel(ctx, channelID); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, reactionPath(channelID, messageID, emojiRoute(emoji)), nil, nil)
}

// RemoveReaction removes the bot's reaction. emoji may be the emoji name or
// its rendered form; an emoji not present on the message is a no-op.
func (c *Client) RemoveReaction(ctx context.Context, channelID, messageID, emoji string) error {
	if _, err := c.textChannel(ctx, channelID); err != nil {
		return err
	}
	var m apiMessage
	if err := c.do(ctx, http.MethodGet, messagePath(channelID, messageID), nil, &m); err != nil {
		return err
	}
	for _, r := range m.Reactions {
		if r.Emoji.Name == emoji || r.Emoji.String() == emoji {
			return c.do(ctx, http.MethodDelete, reactionPath(channelID, messageID, reactionRoute(r.Emoji)), nil, nil)
		}
	}
	return nil
}

func reactionPath(channelID, messageID, route string) string {
	return messagePath(channelID, messageID) + "/reactions/" + url.PathEscape(route) + "/@me"
}

// emojiRoute converts user input to the name:id form the reactions endpoint
// expects for custom emoji. Anything else is treated as unicode.
func emojiRoute(emoji string) string {
	if strings.HasPrefix(emoji, "<") && strings.HasSuffix(emoji, ">") {
		parts := strings.Split(strings.Trim(emoji, "<>"), ":")
		if len(parts) == 3 && parts[1] != "" && parts[2] != "" {
			return parts[1] + ":" + parts[2]
		}
	}
	return emoji
}

func reactionRoute(e apiEmoji) string {
	if e.ID == nil {
		return e.Name
	}
	return e.Name + ":" + *e.ID
}
