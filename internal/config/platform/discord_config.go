package platform

// DiscordConfig configures the Discord bot session.
type DiscordConfig struct {
	Token          string `json:"token" yaml:"token"`
	GuildID        string `json:"guildId" yaml:"guildId"`
	GatewayURL     string `json:"gatewayUrl" yaml:"gatewayUrl"`
	APIBase        string `json:"apiBase" yaml:"apiBase"`
	Intents        int    `json:"intents" yaml:"intents"`
	RequestTimeout int    `json:"requestTimeout" yaml:"requestTimeout"` // seconds
}

func DefaultDiscordConfig() DiscordConfig {
	return DiscordConfig{
		GatewayURL:     "wss://gateway.discord.gg/?v=10&encoding=json",
		APIBase:        "https://discord.com/api/v10",
		Intents:        37379, // GUILDS + GUILD_MEMBERS + GUILD_MESSAGES + DIRECT_MESSAGES + MESSAGE_CONTENT
		RequestTimeout: 30,
	}
}
