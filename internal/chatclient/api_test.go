package chatclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nutrition-coach/internal/domain"
)

func TestHTTPChatAPISend_Success(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/chat" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Eat more greens."}`))
	}))
	defer srv.Close()

	api := NewHTTPChatAPI(srv.URL+"/", srv.Client())
	out, err := api.Send(context.Background(), "tips?")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out != "Eat more greens." {
		t.Fatalf("unexpected reply %q", out)
	}
	if gotBody["message"] != "tips?" {
		t.Fatalf("expected message field, got %+v", gotBody)
	}
}

func TestHTTPChatAPISend_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to get response from AI assistant","details":"boom"}`))
	}))
	defer srv.Close()

	_, err := NewHTTPChatAPI(srv.URL, nil).Send(context.Background(), "x")
	var tErr *domain.ClientTransportError
	if !errors.As(err, &tErr) || tErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected transport error with status 500, got %v", err)
	}
	if !errors.Is(err, domain.ErrClientTransport) {
		t.Fatalf("expected ErrClientTransport")
	}
}

func TestHTTPChatAPISend_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewHTTPChatAPI(url, nil).Send(context.Background(), "x")
	if !errors.Is(err, domain.ErrClientTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestHTTPChatAPISend_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	if _, err := NewHTTPChatAPI(srv.URL, nil).Send(context.Background(), "x"); !errors.Is(err, domain.ErrClientTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
}
