package service

import (
	"strings"
	"testing"
	"time"
)

func TestBuildSystemPrompt_EmbedsTimestamp(t *testing.T) {
	now := time.Date(2026, 3, 14, 18, 5, 9, 0, time.UTC)
	prompt := CoachPromptBuilder{}.BuildSystemPrompt(now)

	if !strings.HasPrefix(prompt, "You are a Smart Nutrition Coach") {
		t.Fatalf("expected coach identity first, got %q", prompt[:40])
	}
	if !strings.HasSuffix(prompt, "Current time context: 3/14/2026, 6:05:09 PM") {
		t.Fatalf("expected time context suffix, got %q", prompt)
	}
}

func TestBuildSystemPrompt_Directives(t *testing.T) {
	prompt := CoachPromptBuilder{}.BuildSystemPrompt(time.Now())
	for _, want := range []string{
		"Suggest whole foods and balanced meals",
		"Be specific with portion sizes when relevant",
		"Avoid giving medical advice",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("expected directive %q in prompt", want)
		}
	}
}

func TestBuildSystemPrompt_DiffersPerCall(t *testing.T) {
	b := CoachPromptBuilder{}
	t0 := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	if b.BuildSystemPrompt(t0) == b.BuildSystemPrompt(t0.Add(time.Second)) {
		t.Fatalf("expected prompt to change with the timestamp")
	}
}
