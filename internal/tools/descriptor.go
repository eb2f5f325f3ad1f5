package tools

// ToolName is the canonical name of a tool in the catalog.
type ToolName string

const (
	ToolGetServerInfo ToolName = "get_server_info"

	ToolGetUserIDByName      ToolName = "get_user_id_by_name"
	ToolSendPrivateMessage   ToolName = "send_private_message"
	ToolEditPrivateMessage   ToolName = "edit_private_message"
	ToolDeletePrivateMessage ToolName = "delete_private_message"
	ToolReadPrivateMessages  ToolName = "read_private_messages"

	ToolSendMessage    ToolName = "send_message"
	ToolEditMessage    ToolName = "edit_message"
	ToolDeleteMessage  ToolName = "delete_message"
	ToolReadMessages   ToolName = "read_messages"
	ToolAddReaction    ToolName = "add_reaction"
	ToolRemoveReaction ToolName = "remove_reaction"

	ToolCreateTextChannel ToolName = "create_text_channel"
	ToolDeleteChannel     ToolName = "delete_channel"
	ToolFindChannel       ToolName = "find_channel"
	ToolListChannels      ToolName = "list_channels"

	ToolCreateCategory         ToolName = "create_category"
	ToolDeleteCategory         ToolName = "delete_category"
	ToolFindCategory           ToolName = "find_category"
	ToolListChannelsInCategory ToolName = "list_channels_in_category"

	ToolCreateWebhook      ToolName = "create_webhook"
	ToolDeleteWebhook      ToolName = "delete_webhook"
	ToolListWebhooks       ToolName = "list_webhooks"
	ToolSendWebhookMessage ToolName = "send_webhook_message"
)

// Group organises the catalog by domain. It has no runtime meaning.
type Group string

const (
	GroupServer   Group = "server"
	GroupUser     Group = "user"
	GroupMessage  Group = "message"
	GroupChannel  Group = "channel"
	GroupCategory Group = "category"
	GroupWebhook  Group = "webhook"
)

// ParamType is the JSON Schema type of a parameter. Discord identifiers are
// string snowflakes, so every parameter in the catalog is a string; numeric
// values such as message counts are parsed by the dispatcher.
type ParamType string

const ParamString ParamType = "string"

// Param describes one tool parameter.
type Param struct {
	Name        string    `json:"name" yaml:"name"`
	Type        ParamType `json:"type" yaml:"type"`
	Description string    `json:"description" yaml:"description"`
	Required    bool      `json:"required" yaml:"required"`
}

// Descriptor is the immutable description of one tool.
type Descriptor struct {
	Name        ToolName `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Group       Group    `json:"group" yaml:"group"`
	Params      []Param  `json:"params" yaml:"params"`
}

// Required returns the required parameter names in declaration order.
func (d Descriptor) Required() []string {
	out := make([]string, 0, len(d.Params))
	for _, p := range d.Params {
		if p.Required {
			out = append(out, p.Name)
		}
	}
	return out
}

// Param returns the parameter with the given name.
func (d Descriptor) Param(name string) (Param, bool) {
	for _, p := range d.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// InputSchema returns the JSON Schema object for the tool's arguments.
func (d Descriptor) InputSchema() map[string]any {
	props := make(map[string]any, len(d.Params))
	for _, p := range d.Params {
		props[p.Name] = map[string]any{
			"type":        string(p.Type),
			"description": p.Description,
		}
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   d.Required(),
	}
}

func required(name, description string) Param {
	return Param{Name: name, Type: ParamString, Description: description, Required: true}
}

func optional(name, description string) Param {
	return Param{Name: name, Type: ParamString, Description: description}
}
