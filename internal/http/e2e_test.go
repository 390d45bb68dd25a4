package http

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"nutrition-coach/internal/chatclient"
	"nutrition-coach/internal/domain"
	"nutrition-coach/internal/llm"
)

func TestChatRoundTrip_ClientThroughProxy(t *testing.T) {
	mock := &llm.MockClient{Response: "Try hummus with carrot sticks."}
	srv := httptest.NewServer(setupChatRouter(zap.NewNop(), mock))
	defer srv.Close()

	store := chatclient.NewMemoryStore()
	c := chatclient.NewController(store, chatclient.NewHTTPChatAPI(srv.URL, srv.Client()))
	if err := c.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize: %v", err)
	}

	if err := c.Submit(context.Background(), "afternoon snack?"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	v := c.View()
	if len(v.Messages) != 3 || v.Messages[2] != domain.AssistantMessage("Try hummus with carrot sticks.") {
		t.Fatalf("unexpected conversation %+v", v.Messages)
	}

	mock.SetResult("", errors.New("provider unavailable"))
	if err := c.Submit(context.Background(), "and for dinner?"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	v = c.View()
	if len(v.Messages) != 5 || v.Messages[4] != domain.AssistantMessage(chatclient.Apology) {
		t.Fatalf("expected apology after upstream failure, got %+v", v.Messages)
	}
	if got := mock.LastRequest().UserMessage; got != "and for dinner?" {
		t.Fatalf("expected only the latest turn forwarded, got %q", got)
	}
}
