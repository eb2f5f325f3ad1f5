package discord

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const memberPageSize = 1000

// UserIDByName looks a guild member up by username, display name or
// name#discriminator, case-insensitively. It returns nil when nobody matches.
func (c *Client) UserIDByName(ctx context.Context, username, guildID string) (*MemberInfo, error) {
	parts := strings.Split(username, "#")
	name, discriminator := parts[0], ""
	if len(parts) > 1 {
		discriminator = parts[1]
	}

	after := "0"
	for {
		var page []apiMember
		suffix := "/members?limit=" + strconv.Itoa(memberPageSize) + "&after=" + after
		if _, err := c.guildCall(ctx, guildID, http.MethodGet, suffix, nil, &page); err != nil {
			return nil, err
		}
		for _, m := range page {
			if m.User == nil {
				continue
			}
			if memberMatches(m, name, discriminator) {
				return &MemberInfo{
					ID:            m.User.ID,
					Username:      m.User.Username,
					DisplayName:   m.displayName(),
					Discriminator: m.User.Discriminator,
				}, nil
			}
		}
		if len(page) < memberPageSize || page[len(page)-1].User == nil {
			return nil, nil
		}
		after = page[len(page)-1].User.ID
	}
}

func memberMatches(m apiMember, name, discriminator string) bool {
	if discriminator != "" {
		return sameName(m.User.Username, name) && m.User.Discriminator == discriminator
	}
	return sameName(m.User.Username, name) || sameName(m.displayName(), name)
}

// dmChannel opens (or reuses) the DM channel with a user.
func (c *Client) dmChannel(ctx context.Context, userID string) (string, error) {
	if err := c.waitReady(ctx); err != nil {
		return "", err
	}
	var u apiUser
	err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID), nil, &u)
	if isInaccessible(err) {
		return "", &NotFoundError{Kind: "User", ID: userID}
	}
	if err != nil {
		return "", err
	}
	var dm apiChannel
	if err := c.do(ctx, http.MethodPost, "/users/@me/channels", map[string]any{"recipient_id": u.ID}, &dm); err != nil {
		return "", err
	}
	return dm.ID, nil
}

// SendPrivateMessage sends a direct message to a user.
func (c *Client) SendPrivateMessage(ctx context.Context, userID, content string) (*SentMessage, error) {
	dm, err := c.dmChannel(ctx, userID)
	if err != nil {
		return nil, err
	}
	return c.send(ctx, dm, content)
}

// EditPrivateMessage edits a direct message the bot sent.
func (c *Client) EditPrivateMessage(ctx context.Context, userID, messageID, content string) (*EditedMessage, error) {
	dm, err := c.dmChannel(ctx, userID)
	if err != nil {
		return nil, err
	}
	m, err := c.edit(ctx, dm, messageID, content)
	if err != nil {
		return nil, err
	}
	return &EditedMessage{ID: m.ID, Content: m.Content, EditedAt: editedAt(m)}, nil
}

// DeletePrivateMessage deletes a direct message.
func (c *Client) DeletePrivateMessage(ctx context.Context, userID, messageID string) error {
	dm, err := c.dmChannel(ctx, userID)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, messagePath(dm, messageID), nil, nil)
}

// ReadPrivateMessages returns up to count recent direct messages.
func (c *Client) ReadPrivateMessages(ctx context.Context, userID string, count int) ([]MessageRecord, error) {
	dm, err := c.dmChannel(ctx, userID)
	if err != nil {
		return nil, err
	}
	msgs, err := c.fetchMessages(ctx, dm, count)
	if err != nil {
		return nil, err
	}
	out := make([]MessageRecord, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messageRecord(m))
	}
	return out, nil
}
