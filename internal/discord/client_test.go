package discord

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/crystaldolphin/discordmcp/internal/config/platform"
)

func testConfig(guildID string) platform.DiscordConfig {
	cfg := platform.DefaultDiscordConfig()
	cfg.GuildID = guildID
	return cfg
}

// fakeDiscord is an in-memory stand-in for the REST API. It records every
// request as "METHOD /path".
type fakeDiscord struct {
	mux *http.ServeMux

	mu       sync.Mutex
	requests []string
	bodies   map[string]map[string]any
}

func newFakeDiscord() *fakeDiscord {
	return &fakeDiscord{mux: http.NewServeMux(), bodies: map[string]map[string]any{}}
}

func (f *fakeDiscord) handle(pattern string, status int, body any) {
	f.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		if status == http.StatusNoContent {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	})
}

func (f *fakeDiscord) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	f.mu.Lock()
	f.requests = append(f.requests, key)
	if data, _ := io.ReadAll(r.Body); len(data) > 0 {
		var m map[string]any
		_ = json.Unmarshal(data, &m)
		f.bodies[key] = m
	}
	f.mu.Unlock()
	if r.Header.Get("Authorization") != "Bot test-token" {
		http.Error(w, `{"message":"401: Unauthorized","code":0}`, http.StatusUnauthorized)
		return
	}
	f.mux.ServeHTTP(w, r)
}

func (f *fakeDiscord) called(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.requests {
		if r == key {
			return true
		}
	}
	return false
}

func (f *fakeDiscord) body(key string) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bodies[key]
}

// newTestClient returns a ready client talking to f.
func newTestClient(t *testing.T, f *fakeDiscord, guildID string) *Client {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	cfg := testConfig(guildID)
	cfg.Token = "test-token"
	cfg.APIBase = srv.URL
	c := NewClient(cfg)
	c.ready.Resolve(User{ID: "bot", Username: "mcpbot"})
	return c
}

var guildChannels = []map[string]any{
	{"id": "10", "type": 4, "name": "Projects", "parent_id": nil},
	{"id": "11", "type": 0, "name": "general", "parent_id": "10"},
	{"id": "12", "type": 2, "name": "Voice", "parent_id": "10"},
	{"id": "13", "type": 0, "name": "General", "parent_id": nil},
	{"id": "14", "type": 15, "name": "forum", "parent_id": nil},
}

// ─── Guilds ────────────────────────────────────────────────────────────────

func TestServerInfo(t *testing.T) {
	f := newFakeDiscord()
	f.handle("GET /guilds/81384788765712384", 200, map[string]any{
		"id": "81384788765712384", "name": "Test Server", "icon": "a_abc",
		"owner_id": "7", "description": nil, "features": []string{"COMMUNITY"},
		"approximate_member_count": 42,
	})
	c := newTestClient(t, f, "81384788765712384")

	info, err := c.ServerInfo(context.Background(), "")
	if err != nil {
		t.Fatalf("ServerInfo: %v", err)
	}
	if info.Name != "Test Server" || info.MemberCount != 42 || info.OwnerID != "7" {
		t.Errorf("info = %+v", info)
	}
	if info.CreatedAt != "2015-08-13T13:54:05.698Z" {
		t.Errorf("createdAt = %q", info.CreatedAt)
	}
	if info.Icon == nil || *info.Icon != "https://cdn.discordapp.com/icons/81384788765712384/a_abc.gif" {
		t.Errorf("icon = %v", info.Icon)
	}
	if info.Description != nil {
		t.Errorf("description = %v, want nil", *info.Description)
	}
}

func TestGuildResolution(t *testing.T) {
	f := newFakeDiscord()
	f.handle("GET /guilds/999", 404, map[string]any{"message": "Unknown Guild", "code": 10004})
	f.handle("GET /guilds/888", 403, map[string]any{"message": "Missing Access", "code": 50001})

	c := newTestClient(t, f, "")
	if _, err := c.ServerInfo(context.Background(), ""); !errors.Is(err, ErrNoGuild) {
		t.Errorf("no guild: err = %v", err)
	} else if err.Error() != "No guild ID provided and no default guild ID configured" {
		t.Errorf("no guild message = %q", err)
	}

	for _, id := range []string{"999", "888"} {
		_, err := c.ServerInfo(context.Background(), id)
		want := "Guild not found: " + id + ". Make sure the bot is added to this server."
		if err == nil || err.Error() != want {
			t.Errorf("guild %s: err = %v, want %q", id, err, want)
		}
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("guild %s: error should match ErrNotFound", id)
		}
	}
}

func TestGuildIDIsPathEscaped(t *testing.T) {
	var (
		mu   sync.Mutex
		uris []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		uris = append(uris, r.RequestURI)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, "[]")
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig("")
	cfg.Token = "test-token"
	cfg.APIBase = srv.URL
	c := NewClient(cfg)
	c.ready.Resolve(User{ID: "bot"})

	if _, err := c.ListChannels(context.Background(), "123/../../users/@me/guilds?x="); err != nil {
		t.Fatalf("ListChannels: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	want := "/guilds/123%2F..%2F..%2Fusers%2F@me%2Fguilds%3Fx=/channels"
	if len(uris) != 1 || uris[0] != want {
		t.Errorf("request URIs = %v, want [%s]", uris, want)
	}
}

func TestListAndFindChannels(t *testing.T) {
	f := newFakeDiscord()
	f.handle("GET /guilds/1/channels", 200, guildChannels)
	c := newTestClient(t, f, "1")
	ctx := context.Background()

	list, err := c.ListChannels(ctx, "")
	if err != nil {
		t.Fatalf("ListChannels: %v", err)
	}
	if len(list) != 5 || list[0].ParentID != nil || *list[1].ParentID != "10" {
		t.Errorf("list = %+v", list)
	}

	ch, err := c.FindChannel(ctx, "GENERAL", "")
	if err != nil {
		t.Fatalf("FindChannel: %v", err)
	}
	if ch == nil || ch.ID != "11" {
		t.Errorf("FindChannel = %+v, want first match 11", ch)
	}
	if ch, _ := c.FindChannel(ctx, "missing", ""); ch != nil {
		t.Errorf("FindChannel(missing) = %+v, want nil", ch)
	}

	cat, err := c.FindCategory(ctx, "projects", "")
	if err != nil || cat == nil || cat.ID != "10" || cat.Type != 4 {
		t.Errorf("FindCategory = %+v, %v", cat, err)
	}
	if cat, _ := c.FindCategory(ctx, "general", ""); cat != nil {
		t.Errorf("FindCategory(general) = %+v, want nil for non-category", cat)
	}

	in, err := c.ListChannelsInCategory(ctx, "10", "")
	if err != nil {
		t.Fatalf("ListChannelsInCategory: %v", err)
	}
	if len(in) != 2 || in[0].ID != "11" || in[1].ID != "12" {
		t.Errorf("in category = %+v", in)
	}
	empty, err := c.ListChannelsInCategory(ctx, "nope", "")
	if err != nil || empty == nil || len(empty) != 0 {
		t.Errorf("unknown category = %#v, %v; want empty non-nil", empty, err)
	}
}

func TestCreateTextChannel(t *testing.T) {
	f := newFakeDiscord()
	f.handle("POST /guilds/1/channels", 201, map[string]any{"id": "20", "type": 0, "name": "news"})
	c := newTestClient(t, f, "1")

	ch, err := c.CreateTextChannel(context.Background(), "news", "10", "")
	if err != nil {
		t.Fatalf("CreateTextChannel: %v", err)
	}
	if ch.ID != "20" || ch.Name != "news" || ch.Type != 0 {
		t.Errorf("channel = %+v", ch)
	}
	body := f.body("POST /guilds/1/channels")
	if body["parent_id"] != "10" || body["type"] != float64(0) {
		t.Errorf("request body = %v", body)
	}
}

func TestDeleteChannelAndCategory(t *testing.T) {
	f := newFakeDiscord()
	f.handle("GET /guilds/1/channels", 200, guildChannels)
	f.handle("DELETE /channels/11", 200, map[string]any{"id": "11"})
	c := newTestClient(t, f, "1")
	ctx := context.Background()

	if err := c.DeleteChannel(ctx, "11", ""); err != nil {
		t.Fatalf("DeleteChannel: %v", err)
	}
	if !f.called("DELETE /channels/11") {
		t.Error("DELETE not issued")
	}
	if err := c.DeleteChannel(ctx, "77", ""); err == nil || err.Error() != "Channel not found: 77" {
		t.Errorf("DeleteChannel(77) = %v", err)
	}
	if err := c.DeleteCategory(ctx, "78", ""); err == nil || err.Error() != "Category not found: 78" {
		t.Errorf("DeleteCategory(78) = %v", err)
	}
}

// ─── Messages ──────────────────────────────────────────────────────────────

func TestSendMessage(t *testing.T) {
	f := newFakeDiscord()
	f.handle("GET /channels/11", 200, map[string]any{"id": "11", "type": 0, "name": "general"})
	f.handle("POST /channels/11/messages", 200, map[string]any{
		"id": "500", "channel_id": "11", "content": "hello",
		"timestamp": "2024-01-02T03:04:05.678000+00:00",
		"author":    map[string]any{"id": "bot", "username": "mcpbot"},
	})
	c := newTestClient(t, f, "")

	sent, err := c.SendMessage(context.Background(), "11", "hello")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	want := SentMessage{ID: "500", Content: "hello", ChannelID: "11", CreatedAt: "2024-01-02T03:04:05.678Z"}
	if *sent != want {
		t.Errorf("sent = %+v, want %+v", *sent, want)
	}
	if f.body("POST /channels/11/messages")["content"] != "hello" {
		t.Error("content not sent")
	}
}

func TestMessageOps_RequireTextChannel(t *testing.T) {
	f := newFakeDiscord()
	f.handle("GET /channels/10", 200, map[string]any{"id": "10", "type": 4, "name": "Projects"})
	f.handle("GET /channels/404", 404, map[string]any{"message": "Unknown Channel", "code": 10003})
	c := newTestClient(t, f, "")
	ctx := context.Background()

	for _, id := range []string{"10", "404"} {
		_, err := c.SendMessage(ctx, id, "x")
		if err == nil || err.Error() != "Text channel not found: "+id {
			t.Errorf("SendMessage(%s) = %v", id, err)
		}
	}
	if f.called("POST /channels/10/messages") {
		t.Error("message posted to a category")
	}
}

func TestReadMessages(t *testing.T) {
	f := newFakeDiscord()
	var gotLimit string
	f.handle("GET /channels/11", 200, map[string]any{"id": "11", "type": 0})
	f.mux.HandleFunc("GET /channels/11/messages", func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		_ = json.NewEncoder(w).Encode([]map[string]any{{
			"id": "1", "content": "hi", "timestamp": "2024-01-02T03:04:05+00:00",
			"author":      map[string]any{"id": "u1", "username": "alice"},
			"attachments": []map[string]any{{"id": "a", "url": "https://cdn/x.png"}},
		}, {
			"id": "2", "content": "yo", "timestamp": "2024-01-02T03:04:06+00:00",
			"author": map[string]any{"id": "u2", "username": "bob"},
		}})
	})
	c := newTestClient(t, f, "")

	msgs, err := c.ReadMessages(context.Background(), "11", 500)
	if err != nil {
		t.Fatalf("ReadMessages: %v", err)
	}
	if gotLimit != "100" {
		t.Errorf("limit = %q, want 100", gotLimit)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages", len(msgs))
	}
	if msgs[0].AuthorName != "alice" || len(msgs[0].Attachments) != 1 || msgs[0].Attachments[0] != "https://cdn/x.png" {
		t.Errorf("first = %+v", msgs[0])
	}
	if msgs[1].Attachments == nil {
		t.Error("attachments should be an empty list, not nil")
	}
	if msgs[0].CreatedAt != "2024-01-02T03:04:05.000Z" {
		t.Errorf("createdAt = %q", msgs[0].CreatedAt)
	}
}

func TestEditAndDeleteMessage(t *testing.T) {
	f := newFakeDiscord()
	f.handle("GET /channels/11", 200, map[string]any{"id": "11", "type": 0})
	f.handle("PATCH /channels/11/messages/5", 200, map[string]any{
		"id": "5", "channel_id": "11", "content": "new",
		"timestamp": "2024-01-02T03:04:05+00:00", "edited_timestamp": "2024-01-02T04:00:00.5+00:00",
	})
	f.handle("DELETE /channels/11/messages/5", http.StatusNoContent, nil)
	f.handle("DELETE /channels/11/messages/6", 404, map[string]any{"message": "Unknown Message", "code": 10008})
	c := newTestClient(t, f, "")
	ctx := context.Background()

	edited, err := c.EditMessage(ctx, "11", "5", "new")
	if err != nil {
		t.Fatalf("EditMessage: %v", err)
	}
	want := EditedMessage{ID: "5", Content: "new", ChannelID: "11", EditedAt: "2024-01-02T04:00:00.500Z"}
	if *edited != want {
		t.Errorf("edited = %+v, want %+v", *edited, want)
	}
	if err := c.DeleteMessage(ctx, "11", "5"); err != nil {
		t.Errorf("DeleteMessage: %v", err)
	}
	err = c.DeleteMessage(ctx, "11", "6")
	if err == nil || err.Error() != "Unknown Message" {
		t.Errorf("DeleteMessage(6) = %v, want Discord's message", err)
	}
}

func TestReactions(t *testing.T) {
	f := newFakeDiscord()
	f.handle("GET /channels/11", 200, map[string]any{"id": "11", "type": 0})
	f.handle("PUT /channels/11/messages/5/reactions/{emoji}/@me", http.StatusNoContent, nil)
	f.handle("GET /channels/11/messages/5", 200, map[string]any{
		"id": "5",
		"reactions": []map[string]any{
			{"count": 1, "me": true, "emoji": map[string]any{"id": nil, "name": "👍"}},
			{"count": 1, "me": true, "emoji": map[string]any{"id": "99", "name": "party"}},
		},
	})
	f.handle("DELETE /channels/11/messages/5/reactions/{emoji}/@me", http.StatusNoContent, nil)
	c := newTestClient(t, f, "")
	ctx := context.Background()

	if err := c.AddReaction(ctx, "11", "5", "👍"); err != nil {
		t.Fatalf("AddReaction: %v", err)
	}
	if !f.called("PUT /channels/11/messages/5/reactions/👍/@me") {
		t.Error("unicode reaction not added")
	}
	if err := c.AddReaction(ctx, "11", "5", "<:party:99>"); err != nil {
		t.Fatalf("AddReaction custom: %v", err)
	}
	if !f.called("PUT /channels/11/messages/5/reactions/party:99/@me") {
		t.Error("custom reaction not added as name:id")
	}

	if err := c.RemoveReaction(ctx, "11", "5", "party"); err != nil {
		t.Fatalf("RemoveReaction: %v", err)
	}
	if !f.called("DELETE /channels/11/messages/5/reactions/party:99/@me") {
		t.Error("custom reaction not removed")
	}
	if err := c.RemoveReaction(ctx, "11", "5", "🎉"); err != nil {
		t.Fatalf("RemoveReaction absent emoji: %v", err)
	}
	if f.called("DELETE /channels/11/messages/5/reactions/🎉/@me") {
		t.Error("absent reaction should be a no-op")
	}
}

func TestAPIErrorPassthrough(t *testing.T) {
	f := newFakeDiscord()
	f.handle("GET /channels/11", 200, map[string]any{"id": "11", "type": 0})
	f.handle("POST /channels/11/messages", 403, map[string]any{"message": "Missing Permissions", "code": 50013})
	c := newTestClient(t, f, "")

	_, err := c.SendMessage(context.Background(), "11", "x")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T %v, want *APIError", err, err)
	}
	if apiErr.Status != 403 || apiErr.Code != 50013 || err.Error() != "Missing Permissions" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

// ─── Users ─────────────────────────────────────────────────────────────────

func TestUserIDByName(t *testing.T) {
	f := newFakeDiscord()
	f.handle("GET /guilds/1/members", 200, []map[string]any{
		{"nick": nil, "user": map[string]any{"id": "1", "username": "alice", "discriminator": "0", "global_name": "Alice A"}},
		{"nick": "Bobby", "user": map[string]any{"id": "2", "username": "bob", "discriminator": "1234"}},
	})
	c := newTestClient(t, f, "1")
	ctx := context.Background()

	tests := []struct {
		query  string
		wantID string
	}{
		{"ALICE", "1"},
		{"alice a", "1"},
		{"bobby", "2"},
		{"bob#1234", "2"},
		{"bob#1234#extra", "2"},
		{"bob#9999", ""},
		{"Bobby#1234", ""},
		{"carol", ""},
	}
	for _, tt := range tests {
		m, err := c.UserIDByName(ctx, tt.query, "")
		if err != nil {
			t.Fatalf("UserIDByName(%q): %v", tt.query, err)
		}
		switch {
		case tt.wantID == "" && m != nil:
			t.Errorf("UserIDByName(%q) = %+v, want nil", tt.query, m)
		case tt.wantID != "" && (m == nil || m.ID != tt.wantID):
			t.Errorf("UserIDByName(%q) = %+v, want id %s", tt.query, m, tt.wantID)
		}
	}

	m, _ := c.UserIDByName(ctx, "bob", "")
	want := MemberInfo{ID: "2", Username: "bob", DisplayName: "Bobby", Discriminator: "1234"}
	if m == nil || *m != want {
		t.Errorf("member = %+v, want %+v", m, want)
	}
}

func TestPrivateMessages(t *testing.T) {
	f := newFakeDiscord()
	f.handle("GET /users/7", 200, map[string]any{"id": "7", "username": "carol"})
	f.handle("GET /users/8", 404, map[string]any{"message": "Unknown User", "code": 10013})
	f.handle("POST /users/@me/channels", 200, map[string]any{"id": "900", "type": 1})
	f.handle("POST /channels/900/messages", 200, map[string]any{
		"id": "1", "channel_id": "900", "content": "psst", "timestamp": "2024-01-02T03:04:05+00:00",
	})
	f.handle("PATCH /channels/900/messages/1", 200, map[string]any{
		"id": "1", "channel_id": "900", "content": "edited", "edited_timestamp": "2024-01-02T03:05:00+00:00",
	})
	f.handle("GET /channels/900/messages", 200, []map[string]any{{
		"id": "1", "content": "psst", "timestamp": "2024-01-02T03:04:05+00:00",
		"author": map[string]any{"id": "bot", "username": "mcpbot"},
	}})
	c := newTestClient(t, f, "")
	ctx := context.Background()

	sent, err := c.SendPrivateMessage(ctx, "7", "psst")
	if err != nil || sent.ChannelID != "900" {
		t.Fatalf("SendPrivateMessage = %+v, %v", sent, err)
	}
	if f.body("POST /users/@me/channels")["recipient_id"] != "7" {
		t.Error("DM channel not opened for recipient")
	}

	edited, err := c.EditPrivateMessage(ctx, "7", "1", "edited")
	if err != nil {
		t.Fatalf("EditPrivateMessage: %v", err)
	}
	if edited.ChannelID != "" || edited.EditedAt != "2024-01-02T03:05:00.000Z" {
		t.Errorf("edited = %+v", edited)
	}
	out, _ := json.Marshal(edited)
	if string(out) != `{"id":"1","content":"edited","editedAt":"2024-01-02T03:05:00.000Z"}` {
		t.Errorf("edited json = %s", out)
	}

	msgs, err := c.ReadPrivateMessages(ctx, "7", 0)
	if err != nil || len(msgs) != 1 || msgs[0].AuthorName != "mcpbot" {
		t.Errorf("ReadPrivateMessages = %+v, %v", msgs, err)
	}

	if _, err := c.SendPrivateMessage(ctx, "8", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown user err = %v", err)
	}
}

// ─── Webhooks ──────────────────────────────────────────────────────────────

func TestWebhooks(t *testing.T) {
	f := newFakeDiscord()
	f.handle("GET /channels/11", 200, map[string]any{"id": "11", "type": 0})
	f.handle("GET /channels/12", 200, map[string]any{"id": "12", "type": 2})
	f.handle("GET /channels/11/webhooks", 200, []map[string]any{
		{"id": "300", "name": "hook", "token": "tok", "channel_id": "11"},
	})
	f.handle("POST /channels/11/webhooks", 200, map[string]any{"id": "301", "name": "new", "token": "t2", "channel_id": "11"})
	f.handle("GET /webhooks/300", 200, map[string]any{"id": "300"})
	f.handle("DELETE /webhooks/300", http.StatusNoContent, nil)
	f.handle("GET /webhooks/301", 404, map[string]any{"message": "Unknown Webhook", "code": 10015})
	c := newTestClient(t, f, "")
	ctx := context.Background()

	hooks, err := c.ListWebhooks(ctx, "11")
	if err != nil {
		t.Fatalf("ListWebhooks: %v", err)
	}
	want := WebhookRecord{ID: "300", Name: "hook", URL: "https://discord.com/api/webhooks/300/tok", ChannelID: "11"}
	if len(hooks) != 1 || hooks[0] != want {
		t.Errorf("hooks = %+v", hooks)
	}

	created, err := c.CreateWebhook(ctx, "11", "new")
	if err != nil || created.ID != "301" || f.body("POST /channels/11/webhooks")["name"] != "new" {
		t.Errorf("CreateWebhook = %+v, %v", created, err)
	}

	if _, err := c.ListWebhooks(ctx, "12"); err == nil || err.Error() != "Text channel not found: 12" {
		t.Errorf("ListWebhooks(voice) = %v", err)
	}

	if err := c.DeleteWebhook(ctx, "300"); err != nil || !f.called("DELETE /webhooks/300") {
		t.Errorf("DeleteWebhook = %v", err)
	}
	if err := c.DeleteWebhook(ctx, "301"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteWebhook(301) = %v", err)
	}
}

func TestSendWebhookMessage(t *testing.T) {
	f := newFakeDiscord()
	f.handle("GET /webhooks/300/tok", 200, map[string]any{"id": "300"})
	f.handle("POST /webhooks/300/tok", http.StatusNoContent, nil)
	c := newTestClient(t, f, "")

	err := c.SendWebhookMessage(context.Background(), "https://discord.com/api/webhooks/300/tok", "hi")
	if err != nil {
		t.Fatalf("SendWebhookMessage: %v", err)
	}
	if f.body("POST /webhooks/300/tok")["content"] != "hi" {
		t.Error("content not posted")
	}
}

func TestSendWebhookMessage_InvalidURLSkipsReadiness(t *testing.T) {
	c := NewClient(testConfig(""))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := c.SendWebhookMessage(ctx, "not-a-url", "hi")
	if !errors.Is(err, ErrInvalidWebhookURL) || err.Error() != "Invalid webhook URL" {
		t.Errorf("err = %v, want Invalid webhook URL", err)
	}
}

func TestOperationsWaitForReadiness(t *testing.T) {
	c := NewClient(testConfig("1"))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := c.ListChannels(ctx, ""); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("ListChannels before ready = %v, want deadline exceeded", err)
	}
}
