package discord

// Records returned by the facade. Their JSON keys are part of the tool
// output contract.

type ServerInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Icon        *string  `json:"icon"`
	MemberCount int      `json:"memberCount"`
	OwnerID     string   `json:"ownerId"`
	CreatedAt   string   `json:"createdAt"`
	Description *string  `json:"description"`
	Features    []string `json:"features"`
}

type ChannelSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type int    `json:"type"`
}

type ChannelInfo struct {
	ChannelSummary
	ParentID *string `json:"parentId"`
}

type SentMessage struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	ChannelID string `json:"channelId"`
	CreatedAt string `json:"createdAt"`
}

type EditedMessage struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	ChannelID string `json:"channelId,omitempty"`
	EditedAt  string `json:"editedAt,omitempty"`
}

type MessageRecord struct {
	ID         string `json:"id"`
	Content    string `json:"content"`
	AuthorID   string `json:"authorId"`
	AuthorName string `json:"authorName"`
	CreatedAt  string `json:"createdAt"`
}

type ChannelMessageRecord struct {
	MessageRecord
	Attachments []string `json:"attachments"`
}

type MemberInfo struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	DisplayName   string `json:"displayName"`
	Discriminator string `json:"discriminator"`
}

type WebhookRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	ChannelID string `json:"channelId"`
}

func summarize(c apiChannel) ChannelSummary {
	return ChannelSummary{ID: c.ID, Name: c.Name, Type: c.Type}
}

func messageRecord(m apiMessage) MessageRecord {
	return MessageRecord{
		ID:         m.ID,
		Content:    m.Content,
		AuthorID:   m.Author.ID,
		AuthorName: m.Author.Username,
		CreatedAt:  normalizeTimestamp(m.Timestamp),
	}
}

func sentMessage(m apiMessage) *SentMessage {
	return &SentMessage{
		ID:        m.ID,
		Content:   m.Content,
		ChannelID: m.ChannelID,
		CreatedAt: normalizeTimestamp(m.Timestamp),
	}
}
