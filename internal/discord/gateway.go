package discord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// Gateway opcodes.
const (
	opDispatch       = 0
	opHeartbeat      = 1
	opIdentify       = 2
	opReconnect      = 7
	opInvalidSession = 9
	opHello          = 10
	opHeartbeatAck   = 11
)

// Gateway close codes that end the session for good.
const (
	closeAuthenticationFailed = 4004
	closeInvalidIntents       = 4013
	closeDisallowedIntents    = 4014
)

// Gateway maintains the Discord gateway websocket session and settles the
// readiness signal on the first READY event.
type Gateway struct {
	url     string
	token   string
	intents int
	ready   *Readiness
	dialer  *websocket.Dialer

	// ReconnectDelay is the pause between sessions after the first READY.
	ReconnectDelay time.Duration
}

func NewGateway(url, token string, intents int, ready *Readiness) *Gateway {
	return &Gateway{
		url:            url,
		token:          token,
		intents:        intents,
		ready:          ready,
		dialer:         websocket.DefaultDialer,
		ReconnectDelay: 5 * time.Second,
	}
}

// Run connects and reconnects until ctx is done. A session that ends before
// the first READY fails the readiness signal and Run returns its error;
// after READY only fatal close codes stop the loop.
func (g *Gateway) Run(ctx context.Context) error {
	for {
		err := g.session(ctx)
		if ctx.Err() != nil {
			g.ready.Fail(fmt.Errorf("%w: %w", ErrNotReady, ctx.Err()))
			return ctx.Err()
		}
		if g.ready.Fail(err) {
			slog.Error("discord: login failed", "err", err)
			return err
		}
		if errors.Is(err, ErrAuthentication) || errors.Is(err, ErrDisallowedIntents) {
			slog.Error("discord: gateway closed", "err", err)
			return err
		}
		slog.Warn("discord: gateway disconnected, reconnecting", "err", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(g.ReconnectDelay):
		}
	}
}

type gatewayPayload struct {
	Op int             `json:"op"`
	S  *int64          `json:"s,omitempty"`
	T  string          `json:"t,omitempty"`
	D  json.RawMessage `json:"d"`
}

// wsConn serializes writes; gorilla allows one concurrent writer.
type wsConn struct {
	*websocket.Conn
	mu sync.Mutex
}

func (w *wsConn) writeJSON(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.WriteJSON(v)
}

func (g *Gateway) session(ctx context.Context) error {
	raw, _, err := g.dialer.DialContext(ctx, g.url, nil)
	if err != nil {
		return fmt.Errorf("discord: gateway dial: %w", err)
	}
	conn := &wsConn{Conn: raw}
	defer conn.Close()
	slog.Info("discord: gateway connected")

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-stop:
		}
	}()

	var seq atomic.Int64
	seq.Store(-1)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return closeError(err)
		}

		var payload gatewayPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			continue
		}
		if payload.S != nil {
			seq.Store(*payload.S)
		}

		switch payload.Op {
		case opHello:
			var hello struct {
				HeartbeatInterval int `json:"heartbeat_interval"`
			}
			_ = json.Unmarshal(payload.D, &hello)
			interval := time.Duration(hello.HeartbeatInterval) * time.Millisecond
			if interval > 0 {
				go g.heartbeatLoop(conn, interval, &seq, stop)
			}
			if err := g.identify(conn); err != nil {
				return err
			}
		case opHeartbeat:
			if err := conn.writeJSON(heartbeat(&seq)); err != nil {
				return err
			}
		case opDispatch:
			if payload.T == "READY" {
				g.handleReady(payload.D)
			}
		case opReconnect:
			return errReconnectRequested
		case opInvalidSession:
			return ErrInvalidSession
		case opHeartbeatAck:
		}
	}
}

func (g *Gateway) handleReady(d json.RawMessage) {
	var ready struct {
		User apiUser `json:"user"`
	}
	_ = json.Unmarshal(d, &ready)
	user := User{ID: ready.User.ID, Username: ready.User.Username, Discriminator: ready.User.Discriminator}
	if g.ready.Resolve(user) {
		slog.Info("discord: logged in", "user", user.Tag())
	} else {
		slog.Info("discord: session resumed", "user", user.Tag())
	}
}

func (g *Gateway) heartbeatLoop(conn *wsConn, interval time.Duration, seq *atomic.Int64, stop <-chan struct{}) {
	tick := time.NewTicker(interval)
	defer tick.Stop()
	for {
		select {
		case <-tick.C:
			if err := conn.writeJSON(heartbeat(seq)); err != nil {
				return
			}
		case <-stop:
			return
		}
	}
}

func heartbeat(seq *atomic.Int64) map[string]any {
	var d any
	if s := seq.Load(); s >= 0 {
		d = s
	}
	return map[string]any{"op": opHeartbeat, "d": d}
}

func (g *Gateway) identify(conn *wsConn) error {
	return conn.writeJSON(map[string]any{
		"op": opIdentify,
		"d": map[string]any{
			"token":   g.token,
			"intents": g.intents,
			"properties": map[string]any{
				"os": "linux", "browser": "discordmcp", "device": "discordmcp",
			},
		},
	})
}

func closeError(err error) error {
	var ce *websocket.CloseError
	if errors.As(err, &ce) {
		switch ce.Code {
		case closeAuthenticationFailed:
			return fmt.Errorf("%w: %s", ErrAuthentication, ce.Text)
		case closeInvalidIntents, closeDisallowedIntents:
			return fmt.Errorf("%w: %s", ErrDisallowedIntents, ce.Text)
		}
	}
	return fmt.Errorf("discord: gateway read: %w", err)
}
