package discord

import (
	"strconv"
	"time"
)

// Discord channel type numbers.
const (
	channelTypeGuildText          = 0
	channelTypeDM                 = 1
	channelTypeGuildVoice         = 2
	channelTypeGroupDM            = 3
	channelTypeGuildCategory      = 4
	channelTypeGuildAnnouncement  = 5
	channelTypeAnnouncementThread = 10
	channelTypePublicThread       = 11
	channelTypePrivateThread      = 12
	channelTypeGuildStageVoice    = 13
)

// ChannelKind is the capability class of a channel, decided once when the
// channel is fetched.
type ChannelKind int

const (
	// KindOther channels cannot carry messages (forums, directories, ...).
	KindOther ChannelKind = iota
	// KindText channels can send and fetch messages.
	KindText
	// KindCategory channels group other channels.
	KindCategory
)

func (k ChannelKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindCategory:
		return "category"
	default:
		return "other"
	}
}

func kindOf(channelType int) ChannelKind {
	switch channelType {
	case channelTypeGuildText, channelTypeDM, channelTypeGuildVoice, channelTypeGroupDM,
		channelTypeGuildAnnouncement, channelTypeAnnouncementThread, channelTypePublicThread,
		channelTypePrivateThread, channelTypeGuildStageVoice:
		return KindText
	case channelTypeGuildCategory:
		return KindCategory
	default:
		return KindOther
	}
}

// User is the logged-in bot account.
type User struct {
	ID            string
	Username      string
	Discriminator string
}

// Tag renders the user as name#discriminator, or just the name for accounts
// migrated to unique usernames.
func (u User) Tag() string {
	if u.Discriminator == "" || u.Discriminator == "0" {
		return u.Username
	}
	return u.Username + "#" + u.Discriminator
}

// Wire shapes of the Discord REST and gateway APIs. Only the fields this
// package reads are declared.

type apiUser struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	Discriminator string  `json:"discriminator"`
	GlobalName    *string `json:"global_name"`
	Bot           bool    `json:"bot"`
}

type apiMember struct {
	User *apiUser `json:"user"`
	Nick *string  `json:"nick"`
}

func (m apiMember) displayName() string {
	switch {
	case m.Nick != nil && *m.Nick != "":
		return *m.Nick
	case m.User.GlobalName != nil && *m.User.GlobalName != "":
		return *m.User.GlobalName
	default:
		return m.User.Username
	}
}

type apiGuild struct {
	ID                       string   `json:"id"`
	Name                     string   `json:"name"`
	Icon                     *string  `json:"icon"`
	OwnerID                  string   `json:"owner_id"`
	Description              *string  `json:"description"`
	Features                 []string `json:"features"`
	ApproximateMemberCount   int      `json:"approximate_member_count"`
	ApproximatePresenceCount int      `json:"approximate_presence_count"`
}

type apiChannel struct {
	ID       string  `json:"id"`
	Type     int     `json:"type"`
	Name     string  `json:"name"`
	GuildID  string  `json:"guild_id"`
	ParentID *string `json:"parent_id"`
}

// channel is a fetched channel together with its capability class.
type channel struct {
	apiChannel
	kind ChannelKind
}

func classify(c apiChannel) channel {
	return channel{apiChannel: c, kind: kindOf(c.Type)}
}

type apiAttachment struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

type apiEmoji struct {
	ID       *string `json:"id"`
	Name     string  `json:"name"`
	Animated bool    `json:"animated"`
}

// String renders the emoji the way a user would type it in a message.
func (e apiEmoji) String() string {
	if e.ID == nil {
		return e.Name
	}
	prefix := "<:"
	if e.Animated {
		prefix = "<a:"
	}
	return prefix + e.Name + ":" + *e.ID + ">"
}

type apiReaction struct {
	Count int      `json:"count"`
	Me    bool     `json:"me"`
	Emoji apiEmoji `json:"emoji"`
}

type apiMessage struct {
	ID              string          `json:"id"`
	ChannelID       string          `json:"channel_id"`
	Content         string          `json:"content"`
	Author          apiUser         `json:"author"`
	Timestamp       string          `json:"timestamp"`
	EditedTimestamp *string         `json:"edited_timestamp"`
	Attachments     []apiAttachment `json:"attachments"`
	Reactions       []apiReaction   `json:"reactions"`
}

type apiWebhook struct {
	ID        string  `json:"id"`
	Type      int     `json:"type"`
	Name      *string `json:"name"`
	Token     string  `json:"token"`
	ChannelID string  `json:"channel_id"`
	GuildID   string  `json:"guild_id"`
}

// discordEpoch is the first millisecond of 2015 in Unix milliseconds.
const discordEpoch = 1420070400000

// snowflakeTime extracts the creation time encoded in a Discord ID.
func snowflakeTime(id string) time.Time {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(int64(n>>22) + discordEpoch).UTC()
}

// isoFormat matches JavaScript's Date.prototype.toISOString.
const isoFormat = "2006-01-02T15:04:05.000Z"

func isoTime(t time.Time) string {
	return t.UTC().Format(isoFormat)
}

// normalizeTimestamp converts a Discord timestamp to ISO-8601 UTC with
// millisecond precision. Unparseable values are returned unchanged.
func normalizeTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	return isoTime(t)
}
