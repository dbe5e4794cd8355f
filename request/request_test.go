package request_test

import (
	"testing"

	"github.com/xraph/cadence/request"
)

func TestRequest_TypeField(t *testing.T) {
	req := request.Request{"type": "private_chat", "content": "hi"}
	if got := req.Type(); got != "private_chat" {
		t.Errorf("Type() = %q, want %q", got, "private_chat")
	}
}

func TestRequest_TypeAbsentOrWrongKind(t *testing.T) {
	if got := (request.Request{}).Type(); got != "" {
		t.Errorf("Type() on empty request = %q, want empty", got)
	}
	req := request.Request{"type": 42}
	if got := req.Type(); got != "" {
		t.Errorf("Type() on non-string type field = %q, want empty", got)
	}
}

func TestRequest_RetryCount(t *testing.T) {
	req := request.Request{"type": "group_chat"}
	if got := req.RetryCount(); got != 0 {
		t.Errorf("RetryCount() on fresh request = %d, want 0", got)
	}

	req.SetRetryCount(2)
	if got := req.RetryCount(); got != 2 {
		t.Errorf("RetryCount() after SetRetryCount(2) = %d, want 2", got)
	}

	// Producer fields survive counter updates.
	if got := req.Type(); got != "group_chat" {
		t.Errorf("Type() after SetRetryCount = %q, want %q", got, "group_chat")
	}
}
