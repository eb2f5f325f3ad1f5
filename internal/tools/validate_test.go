package tools

import (
	"reflect"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		tool string
		args ArgumentBag
		want []string
	}{
		{
			name: "unknown tool",
			tool: "unknown_tool",
			args: ArgumentBag{},
			want: []string{"Unknown tool: unknown_tool"},
		},
		{
			name: "send_message missing everything",
			tool: "send_message",
			args: ArgumentBag{},
			want: []string{
				"Missing required parameter: channelId",
				"Missing required parameter: message",
			},
		},
		{
			name: "send_message complete",
			tool: "send_message",
			args: ArgumentBag{"channelId": "123456", "message": "Hello"},
			want: []string{},
		},
		{
			name: "list_channels has no required params",
			tool: "list_channels",
			args: ArgumentBag{},
			want: []string{},
		},
		{
			name: "get_user_id_by_name missing username",
			tool: "get_user_id_by_name",
			args: ArgumentBag{},
			want: []string{"Missing required parameter: username"},
		},
		{
			name: "get_user_id_by_name with username",
			tool: "get_user_id_by_name",
			args: ArgumentBag{"username": "test"},
			want: []string{},
		},
		{
			name: "empty string and nil count as missing",
			tool: "edit_message",
			args: ArgumentBag{"channelId": "", "messageId": nil, "newMessage": "hi"},
			want: []string{
				"Missing required parameter: channelId",
				"Missing required parameter: messageId",
			},
		},
		{
			name: "extra params ignored",
			tool: "delete_webhook",
			args: ArgumentBag{"webhookId": "1", "bogus": "x"},
			want: []string{},
		},
		{
			name: "non-string value is present",
			tool: "list_webhooks",
			args: ArgumentBag{"channelId": 0},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Catalog().Validate(tt.tool, tt.args)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Validate(%q) = %#v, want %#v", tt.tool, got, tt.want)
			}
		})
	}
}

func TestValidate_Idempotent(t *testing.T) {
	args := ArgumentBag{"channelId": "1"}
	first := Catalog().Validate("add_reaction", args)
	second := Catalog().Validate("add_reaction", args)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ: %v vs %v", first, second)
	}
	if len(args) != 1 || args["channelId"] != "1" {
		t.Errorf("args mutated: %v", args)
	}
}
