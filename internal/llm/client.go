package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Parametros fijos de cada completion; no son configurables por llamada.
const (
	MaxTokens   = 500
	Temperature = float32(0.7)
)

// CompletionRequest es el pedido efimero de un turno: instruccion de sistema + mensaje del usuario.
type CompletionRequest struct {
	SystemPrompt string
	UserMessage  string
}

// ChatCompleter define la interfaz para pedir una respuesta al proveedor.
type ChatCompleter interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// OpenAIClient implementa ChatCompleter sobre la API de chat completions.
type OpenAIClient struct {
	api    *openai.Client
	model  string
	logger *zap.Logger
}

// NewOpenAIClient construye el cliente del proveedor. Se crea una vez al arrancar y se reutiliza.
func NewOpenAIClient(baseURL, apiKey, model string, logger *zap.Logger) *OpenAIClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	cfg.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAIClient{
		api:    openai.NewClientWithConfig(cfg),
		model:  model,
		logger: logger,
	}
}

// Complete envia exactamente dos turnos (system + user) y devuelve el texto del primer choice.
// Si el proveedor no devuelve texto usable se retorna "" sin error.
func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserMessage},
		},
		MaxTokens:   MaxTokens,
		Temperature: Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}

	c.logger.Debug("llm completion",
		zap.String("model", resp.Model),
		zap.Int("choices", len(resp.Choices)),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
	)

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
