package discord

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/crystaldolphin/discordmcp/internal/config/platform"
)

// Client is the Discord platform facade. REST operations wait for the
// gateway session to become ready and then talk to the HTTP API.
type Client struct {
	token          string
	defaultGuildID string
	apiBase        string
	httpClient     *http.Client
	ready          *Readiness
	gateway        *Gateway

	mu      sync.Mutex
	cancel  context.CancelFunc
	closed  bool
	stopped chan struct{}
}

// NewClient builds a facade from cfg. It does not connect; call Start.
func NewClient(cfg platform.DiscordConfig) *Client {
	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ready := NewReadiness()
	return &Client{
		token:          cfg.Token,
		defaultGuildID: cfg.GuildID,
		apiBase:        strings.TrimRight(cfg.APIBase, "/"),
		httpClient:     &http.Client{Timeout: timeout},
		ready:          ready,
		gateway:        NewGateway(cfg.GatewayURL, cfg.Token, cfg.Intents, ready),
		stopped:        make(chan struct{}),
	}
}

// Start logs in over the gateway and keeps the session alive until ctx is
// cancelled or Close is called. It must be called at most once.
func (c *Client) Start(ctx context.Context) error {
	defer close(c.stopped)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()
	defer cancel()

	if c.token == "" {
		c.ready.Fail(ErrTokenMissing)
		return ErrTokenMissing
	}
	return c.gateway.Run(ctx)
}

// WaitReady blocks until the session is ready and returns the bot user.
func (c *Client) WaitReady(ctx context.Context) (User, error) {
	return c.ready.Wait(ctx)
}

// Close ends the gateway session. Pending and future operations fail with
// ErrClosed unless the session was already ready.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	cancel := c.cancel
	c.mu.Unlock()

	c.ready.Fail(ErrClosed)
	if cancel == nil {
		return nil
	}
	cancel()
	<-c.stopped
	slog.Info("discord: client closed")
	return nil
}

func (c *Client) waitReady(ctx context.Context) error {
	_, err := c.ready.Wait(ctx)
	return err
}

// resolveGuildID picks the explicit guild ID, falling back to the default.
func (c *Client) resolveGuildID(guildID string) (string, error) {
	if guildID != "" {
		return guildID, nil
	}
	if c.defaultGuildID != "" {
		return c.defaultGuildID, nil
	}
	return "", ErrNoGuild
}

// guildCall waits for readiness, resolves the guild and performs a request
// scoped to it. An inaccessible guild is reported as not found.
func (c *Client) guildCall(ctx context.Context, guildID, method, suffix string, body, out any) (string, error) {
	if err := c.waitReady(ctx); err != nil {
		return "", err
	}
	id, err := c.resolveGuildID(guildID)
	if err != nil {
		return "", err
	}
	err = c.do(ctx, method, "/guilds/"+url.PathEscape(id)+suffix, body, out)
	if isInaccessible(err) {
		return id, guildNotFound(id)
	}
	return id, err
}

func guildNotFound(id string) error {
	return &NotFoundError{Kind: "Guild", ID: id, Hint: "Make sure the bot is added to this server."}
}
