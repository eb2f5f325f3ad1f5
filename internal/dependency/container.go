// Package dependency wires discordmcp services using go.uber.org/dig.
package dependency

import (
	"context"
	"errors"

	"go.uber.org/dig"

	"github.com/crystaldolphin/discordmcp/internal/config"
	"github.com/crystaldolphin/discordmcp/internal/discord"
	"github.com/crystaldolphin/discordmcp/internal/dispatch"
	"github.com/crystaldolphin/discordmcp/internal/mcpserver"
	"github.com/crystaldolphin/discordmcp/internal/telemetry"
	"github.com/crystaldolphin/discordmcp/internal/tools"
)

// Container holds the resolved service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	client     *discord.Client
	registry   *tools.Registry
	dispatcher *dispatch.Dispatcher
	server     *mcpserver.Server
	telemetry  *telemetry.Provider
}

func (c *Container) DiscordClient() *discord.Client   { return c.client }
func (c *Container) Registry() *tools.Registry        { return c.registry }
func (c *Container) Dispatcher() *dispatch.Dispatcher { return c.dispatcher }
func (c *Container) MCPServer() *mcpserver.Server     { return c.server }
func (c *Container) Telemetry() *telemetry.Provider   { return c.telemetry }

// New builds and wires all services from cfg. Nothing connects until the
// caller starts the Discord client.
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(func(cfg *config.Config) (*telemetry.Provider, error) {
		return telemetry.NewProvider(ctx, cfg.Telemetry)
	}); err != nil {
		return nil, err
	}
	if err := d.Provide(newCallObserver); err != nil {
		return nil, err
	}
	if err := d.Provide(newDiscordClient); err != nil {
		return nil, err
	}
	if err := d.Provide(tools.Catalog); err != nil {
		return nil, err
	}
	if err := d.Provide(newDispatcher); err != nil {
		return nil, err
	}
	if err := d.Provide(newMCPServer); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(
		client *discord.Client,
		registry *tools.Registry,
		dispatcher *dispatch.Dispatcher,
		server *mcpserver.Server,
		tp *telemetry.Provider,
	) {
		result = &Container{
			client:     client,
			registry:   registry,
			dispatcher: dispatcher,
			server:     server,
			telemetry:  tp,
		}
	})
	return result, err
}

// Close tears down the Discord session and flushes telemetry.
func (c *Container) Close(ctx context.Context) error {
	return errors.Join(c.client.Close(), c.telemetry.Shutdown(ctx))
}

func newCallObserver(tp *telemetry.Provider) (*telemetry.CallObserver, error) {
	return tp.Observer()
}

func newDiscordClient(cfg *config.Config) *discord.Client {
	return discord.NewClient(cfg.Discord)
}

func newDispatcher(client *discord.Client, obs *telemetry.CallObserver) *dispatch.Dispatcher {
	return dispatch.New(client, dispatch.WithObserver(obs))
}

func newMCPServer(cfg *config.Config, registry *tools.Registry, d *dispatch.Dispatcher) *mcpserver.Server {
	return mcpserver.New(cfg.Server, registry, d)
}
