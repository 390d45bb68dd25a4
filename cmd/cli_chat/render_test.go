package main

import (
	"bytes"
	"strings"
	"testing"

	"nutrition-coach/internal/chatclient"
	"nutrition-coach/internal/domain"
)

func TestTerminalRenderer_PrintsOnlyNewAssistantTurns(t *testing.T) {
	var buf bytes.Buffer
	r := newTerminalRenderer(&buf)

	r.Render(chatclient.View{Messages: domain.Conversation{domain.AssistantMessage("hi")}})
	r.Render(chatclient.View{
		Messages: domain.Conversation{domain.AssistantMessage("hi"), domain.UserMessage("snack?")},
		State:    chatclient.StateSubmitting,
		Thinking: true,
	})
	r.Render(chatclient.View{Messages: domain.Conversation{
		domain.AssistantMessage("hi"),
		domain.UserMessage("snack?"),
		domain.AssistantMessage("an apple"),
	}})

	out := buf.String()
	if strings.Count(out, "Coach > hi\n") != 1 {
		t.Fatalf("expected greeting printed once, got %q", out)
	}
	if strings.Contains(out, "snack?") {
		t.Fatalf("expected user turn not to be echoed, got %q", out)
	}
	if !strings.Contains(out, "Coach > ...\n") || !strings.HasSuffix(out, "Coach > an apple\n") {
		t.Fatalf("expected thinking indicator then reply, got %q", out)
	}
}

func TestTerminalRenderer_ClearShowsSuggestionsOnce(t *testing.T) {
	var buf bytes.Buffer
	r := newTerminalRenderer(&buf)

	r.Render(chatclient.View{Messages: domain.Conversation{domain.AssistantMessage("hi")}})
	empty := chatclient.View{Messages: domain.Conversation{}, Suggestions: chatclient.Suggestions}
	r.Render(empty)
	r.Render(empty)

	out := buf.String()
	if !strings.Contains(out, "--- conversation cleared ---") {
		t.Fatalf("expected clear notice, got %q", out)
	}
	if strings.Count(out, "Try asking me things like:") != 1 {
		t.Fatalf("expected suggestions printed once, got %q", out)
	}
	if !strings.Contains(out, "/3 What snack should I eat after my workout?") {
		t.Fatalf("expected numbered suggestions, got %q", out)
	}
}

func TestTerminalRenderer_RestoredConversationShowsUserTurns(t *testing.T) {
	var buf bytes.Buffer
	r := newTerminalRenderer(&buf)

	r.Render(chatclient.View{Messages: domain.Conversation{
		domain.UserMessage("what about soda?"),
		domain.AssistantMessage("try sparkling water"),
	}})
	want := "You > what about soda?\nCoach > try sparkling water\n"
	if buf.String() != want {
		t.Fatalf("expected restored turns %q, got %q", want, buf.String())
	}

	buf.Reset()
	r.Render(chatclient.View{Messages: domain.Conversation{
		domain.UserMessage("what about soda?"),
		domain.AssistantMessage("try sparkling water"),
		domain.UserMessage("and juice?"),
	}})
	if buf.String() != "" {
		t.Fatalf("expected typed turn not to be echoed, got %q", buf.String())
	}
}
