// Package dispatch routes a named tool call with its arguments to the
// platform operation that implements it and folds the outcome into an
// Envelope.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/crystaldolphin/discordmcp/internal/shared/stringutils"
	"github.com/crystaldolphin/discordmcp/internal/tools"
)

// argsPreviewLen bounds the argument dump in debug logs.
const argsPreviewLen = 200

// Observation describes one completed dispatch.
type Observation struct {
	CallID   string
	Tool     string
	Start    time.Time
	Duration time.Duration
	Success  bool
	Error    string
}

// Observer receives an Observation after every dispatch.
type Observer interface {
	ObserveCall(ctx context.Context, o Observation)
}

type handler func(ctx context.Context, p Platform, args tools.ArgumentBag) (any, error)

// Dispatcher is stateless across calls and safe for concurrent use.
type Dispatcher struct {
	platform Platform
	handlers map[tools.ToolName]handler
	observer Observer
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithObserver attaches an observer. A nil observer is ignored.
func WithObserver(o Observer) Option {
	return func(d *Dispatcher) {
		if o != nil {
			d.observer = o
		}
	}
}

func New(p Platform, opts ...Option) *Dispatcher {
	d := &Dispatcher{platform: p, handlers: handlers()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handles reports whether name has a route.
func (d *Dispatcher) Handles(name string) bool {
	_, ok := d.handlers[tools.ToolName(name)]
	return ok
}

// Dispatch runs the named tool. It never returns an error or panics: every
// failure becomes an Err envelope carrying the failure's message. Arguments
// are not validated here.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args tools.ArgumentBag) (env Envelope) {
	callID := uuid.NewString()
	start := time.Now()
	log := slog.With("call_id", callID, "tool", name)

	defer func() {
		if r := recover(); r != nil {
			log.Error("dispatch: panic", "panic", r)
			env = Err(fmt.Sprint(r))
		}
		elapsed := time.Since(start)
		if env.IsOk() {
			log.Debug("dispatch: call succeeded", "duration", elapsed)
		} else {
			log.Warn("dispatch: call failed", "duration", elapsed, "err", env.Message())
		}
		if d.observer != nil {
			d.observer.ObserveCall(ctx, Observation{
				CallID:   callID,
				Tool:     name,
				Start:    start,
				Duration: elapsed,
				Success:  env.IsOk(),
				Error:    env.Message(),
			})
		}
	}()

	h, ok := d.handlers[tools.ToolName(name)]
	if !ok {
		return Err("Unknown tool: " + name)
	}
	if args == nil {
		args = tools.ArgumentBag{}
	}
	log.Debug("dispatch: call", "args", stringutils.Truncate(fmt.Sprint(args), argsPreviewLen))
	v, err := h(ctx, d.platform, args)
	if err != nil {
		return Err(err.Error())
	}
	return Ok(v)
}

// void adapts an operation without a result to the success marker.
func void(err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return success, nil
}

func handlers() map[tools.ToolName]handler {
	s := stringArg
	return map[tools.ToolName]handler{
		tools.ToolGetServerInfo: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return p.ServerInfo(ctx, s(a, "guildId"))
		},

		tools.ToolGetUserIDByName: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return p.UserIDByName(ctx, s(a, "username"), s(a, "guildId"))
		},
		tools.ToolSendPrivateMessage: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return p.SendPrivateMessage(ctx, s(a, "userId"), s(a, "message"))
		},
		tools.ToolEditPrivateMessage: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return p.EditPrivateMessage(ctx, s(a, "userId"), s(a, "messageId"), s(a, "newMessage"))
		},
		tools.ToolDeletePrivateMessage: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return void(p.DeletePrivateMessage(ctx, s(a, "userId"), s(a, "messageId")))
		},
		tools.ToolReadPrivateMessages: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return p.ReadPrivateMessages(ctx, s(a, "userId"), countArg(a))
		},

		tools.ToolSendMessage: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return p.SendMessage(ctx, s(a, "channelId"), s(a, "message"))
		},
		tools.ToolEditMessage: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return p.EditMessage(ctx, s(a, "channelId"), s(a, "messageId"), s(a, "newMessage"))
		},
		tools.ToolDeleteMessage: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return void(p.DeleteMessage(ctx, s(a, "channelId"), s(a, "messageId")))
		},
		tools.ToolReadMessages: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return p.ReadMessages(ctx, s(a, "channelId"), countArg(a))
		},
		tools.ToolAddReaction: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return void(p.AddReaction(ctx, s(a, "channelId"), s(a, "messageId"), s(a, "emoji")))
		},
		tools.ToolRemoveReaction: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return void(p.RemoveReaction(ctx, s(a, "channelId"), s(a, "messageId"), s(a, "emoji")))
		},

		tools.ToolCreateTextChannel: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return p.CreateTextChannel(ctx, s(a, "name"), s(a, "categoryId"), s(a, "guildId"))
		},
		tools.ToolDeleteChannel: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return void(p.DeleteChannel(ctx, s(a, "channelId"), s(a, "guildId")))
		},
		tools.ToolFindChannel: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return p.FindChannel(ctx, s(a, "channelName"), s(a, "guildId"))
		},
		tools.ToolListChannels: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return p.ListChannels(ctx, s(a, "guildId"))
		},

		tools.ToolCreateCategory: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return p.CreateCategory(ctx, s(a, "name"), s(a, "guildId"))
		},
		tools.ToolDeleteCategory: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return void(p.DeleteCategory(ctx, s(a, "categoryId"), s(a, "guildId")))
		},
		tools.ToolFindCategory: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return p.FindCategory(ctx, s(a, "categoryName"), s(a, "guildId"))
		},
		tools.ToolListChannelsInCategory: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return p.ListChannelsInCategory(ctx, s(a, "categoryId"), s(a, "guildId"))
		},

		tools.ToolCreateWebhook: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return p.CreateWebhook(ctx, s(a, "channelId"), s(a, "name"))
		},
		tools.ToolDeleteWebhook: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return void(p.DeleteWebhook(ctx, s(a, "webhookId")))
		},
		tools.ToolListWebhooks: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return p.ListWebhooks(ctx, s(a, "channelId"))
		},
		tools.ToolSendWebhookMessage: func(ctx context.Context, p Platform, a tools.ArgumentBag) (any, error) {
			return void(p.SendWebhookMessage(ctx, s(a, "webhookUrl"), s(a, "message")))
		},
	}
}
