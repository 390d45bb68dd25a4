package chatclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"nutrition-coach/internal/domain"
)

// ChatAPI envia un mensaje al endpoint proxy y devuelve el texto del asistente.
type ChatAPI interface {
	Send(ctx context.Context, message string) (string, error)
}

// HTTPChatAPI implementa ChatAPI contra POST <baseURL>/api/chat.
type HTTPChatAPI struct {
	endpoint string
	client   *http.Client
}

// NewHTTPChatAPI crea el cliente. Sin httpClient se usa http.DefaultClient (sin timeout propio).
func NewHTTPChatAPI(baseURL string, httpClient *http.Client) *HTTPChatAPI {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPChatAPI{
		endpoint: strings.TrimRight(baseURL, "/") + "/api/chat",
		client:   httpClient,
	}
}

// Send hace un unico intento. Toda falla se devuelve como *domain.ClientTransportError.
func (a *HTTPChatAPI) Send(ctx context.Context, message string) (string, error) {
	body, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return "", &domain.ClientTransportError{Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &domain.ClientTransportError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", &domain.ClientTransportError{Err: fmt.Errorf("do request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &domain.ClientTransportError{StatusCode: resp.StatusCode}
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &domain.ClientTransportError{Err: fmt.Errorf("decode response: %w", err)}
	}
	return out.Message, nil
}
