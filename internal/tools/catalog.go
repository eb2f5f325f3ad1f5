package tools

var catalog = NewRegistryBuilder().
	// Server
	WithTool(Descriptor{
		Name:        ToolGetServerInfo,
		Description: "Get detailed discord server information",
		Group:       GroupServer,
		Params:      []Param{guildParam()},
	}).

	// User
	WithTool(Descriptor{
		Name:        ToolGetUserIDByName,
		Description: "Get a Discord user's ID by username in a guild for ping usage <@id>.",
		Group:       GroupUser,
		Params: []Param{
			required("username", "Discord username (optionally username#discriminator)"),
			guildParam(),
		},
	}).
	WithTool(Descriptor{
		Name:        ToolSendPrivateMessage,
		Description: "Send a private message to a specific user",
		Group:       GroupUser,
		Params: []Param{
			required("userId", "Discord user ID"),
			required("message", "Message content"),
		},
	}).
	WithTool(Descriptor{
		Name:        ToolEditPrivateMessage,
		Description: "Edit a private message from a specific user",
		Group:       GroupUser,
		Params: []Param{
			required("userId", "Discord user ID"),
			required("messageId", "Specific message ID"),
			required("newMessage", "New message content"),
		},
	}).
	WithTool(Descriptor{
		Name:        ToolDeletePrivateMessage,
		Description: "Delete a private message from a specific user",
		Group:       GroupUser,
		Params: []Param{
			required("userId", "Discord user ID"),
			required("messageId", "Specific message ID"),
		},
	}).
	WithTool(Descriptor{
		Name:        ToolReadPrivateMessages,
		Description: "Read recent message history from a specific user",
		Group:       GroupUser,
		Params: []Param{
			required("userId", "Discord user ID"),
			optional("count", "Number of messages to retrieve"),
		},
	}).

	// Message
	WithTool(Descriptor{
		Name:        ToolSendMessage,
		Description: "Send a message to a specific channel",
		Group:       GroupMessage,
		Params: []Param{
			required("channelId", "Discord channel ID"),
			required("message", "Message content"),
		},
	}).
	WithTool(Descriptor{
		Name:        ToolEditMessage,
		Description: "Edit a message from a specific channel",
		Group:       GroupMessage,
		Params: []Param{
			required("channelId", "Discord channel ID"),
			required("messageId", "Specific message ID"),
			required("newMessage", "New message content"),
		},
	}).
	WithTool(Descriptor{
		Name:        ToolDeleteMessage,
		Description: "Delete a message from a specific channel",
		Group:       GroupMessage,
		Params: []Param{
			required("channelId", "Discord channel ID"),
			required("messageId", "Specific message ID"),
		},
	}).
	WithTool(Descriptor{
		Name:        ToolReadMessages,
		Description: "Read recent message history from a specific channel",
		Group:       GroupMessage,
		Params: []Param{
			required("channelId", "Discord channel ID"),
			optional("count", "Number of messages to retrieve"),
		},
	}).
	WithTool(Descriptor{
		Name:        ToolAddReaction,
		Description: "Add a reaction (emoji) to a specific message",
		Group:       GroupMessage,
		Params: []Param{
			required("channelId", "Discord channel ID"),
			required("messageId", "Discord message ID"),
			required("emoji", "Emoji (Unicode or string)"),
		},
	}).
	WithTool(Descriptor{
		Name:        ToolRemoveReaction,
		Description: "Remove a specified reaction (emoji) from a message",
		Group:       GroupMessage,
		Params: []Param{
			required("channelId", "Discord channel ID"),
			required("messageId", "Discord message ID"),
			required("emoji", "Emoji (Unicode or string)"),
		},
	}).

	// Channel
	WithTool(Descriptor{
		Name:        ToolCreateTextChannel,
		Description: "Create a new text channel",
		Group:       GroupChannel,
		Params: []Param{
			required("name", "Channel name"),
			optional("categoryId", "Category ID (optional)"),
			guildParam(),
		},
	}).
	WithTool(Descriptor{
		Name:        ToolDeleteChannel,
		Description: "Delete a channel",
		Group:       GroupChannel,
		Params: []Param{
			required("channelId", "Discord channel ID"),
			guildParam(),
		},
	}).
	WithTool(Descriptor{
		Name:        ToolFindChannel,
		Description: "Find a channel type and ID using name and server ID",
		Group:       GroupChannel,
		Params: []Param{
			required("channelName", "Discord channel name"),
			guildParam(),
		},
	}).
	WithTool(Descriptor{
		Name:        ToolListChannels,
		Description: "List of all channels",
		Group:       GroupChannel,
		Params:      []Param{guildParam()},
	}).

	// Category
	WithTool(Descriptor{
		Name:        ToolCreateCategory,
		Description: "Create a new category for channels",
		Group:       GroupCategory,
		Params: []Param{
			required("name", "Discord category name"),
			guildParam(),
		},
	}).
	WithTool(Descriptor{
		Name:        ToolDeleteCategory,
		Description: "Delete a category",
		Group:       GroupCategory,
		Params: []Param{
			required("categoryId", "Discord category ID"),
			guildParam(),
		},
	}).
	WithTool(Descriptor{
		Name:        ToolFindCategory,
		Description: "Find a category ID using name and server ID",
		Group:       GroupCategory,
		Params: []Param{
			required("categoryName", "Discord category name"),
			guildParam(),
		},
	}).
	WithTool(Descriptor{
		Name:        ToolListChannelsInCategory,
		Description: "List of channels in a specific category",
		Group:       GroupCategory,
		Params: []Param{
			required("categoryId", "Discord category ID"),
			guildParam(),
		},
	}).

	// Webhook
	WithTool(Descriptor{
		Name:        ToolCreateWebhook,
		Description: "Create a new webhook on a specific channel",
		Group:       GroupWebhook,
		Params: []Param{
			required("channelId", "Discord channel ID"),
			required("name", "Webhook name"),
		},
	}).
	WithTool(Descriptor{
		Name:        ToolDeleteWebhook,
		Description: "Delete a webhook",
		Group:       GroupWebhook,
		Params:      []Param{required("webhookId", "Discord webhook ID")},
	}).
	WithTool(Descriptor{
		Name:        ToolListWebhooks,
		Description: "List of webhooks on a specific channel",
		Group:       GroupWebhook,
		Params:      []Param{required("channelId", "Discord channel ID")},
	}).
	WithTool(Descriptor{
		Name:        ToolSendWebhookMessage,
		Description: "Send a message via webhook",
		Group:       GroupWebhook,
		Params: []Param{
			required("webhookUrl", "Discord webhook link"),
			required("message", "Message content"),
		},
	}).
	MustBuild()

// Catalog returns the process-wide tool registry. It is built once at
// package initialisation and never modified.
func Catalog() *Registry { return catalog }

func guildParam() Param { return optional("guildId", "Discord server ID") }
