package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"nutrition-coach/internal/domain"
	"nutrition-coach/internal/llm"
)

// FallbackReply se usa cuando el proveedor responde sin texto usable.
const FallbackReply = "Sorry, I couldn't generate a response."

var ErrCoachServiceNotConfigured = errors.New("coach service not configured")

// CoachService orquesta un turno: arma el prompt, llama al proveedor una sola vez y devuelve el texto.
// No guarda estado entre llamadas.
type CoachService struct {
	llm     llm.ChatCompleter
	prompts CoachPromptBuilder
	now     func() time.Time
	logger  *zap.Logger
}

// NewCoachService crea el servicio. now puede ser nil para usar el reloj del sistema.
func NewCoachService(client llm.ChatCompleter, now func() time.Time, logger *zap.Logger) *CoachService {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CoachService{
		llm:    client,
		now:    now,
		logger: logger,
	}
}

// Reply valida el mensaje y obtiene la respuesta del coach.
// Devuelve *domain.ValidationError si el mensaje esta vacio y *domain.UpstreamError ante cualquier falla del proveedor.
func (s *CoachService) Reply(ctx context.Context, message string) (string, error) {
	if s == nil || s.llm == nil {
		return "", ErrCoachServiceNotConfigured
	}
	if strings.TrimSpace(message) == "" {
		return "", &domain.ValidationError{Err: domain.ErrMessageRequired}
	}

	req := llm.CompletionRequest{
		SystemPrompt: s.prompts.BuildSystemPrompt(s.now()),
		UserMessage:  message,
	}

	start := time.Now()
	text, err := s.llm.Complete(ctx, req)
	if err != nil {
		return "", &domain.UpstreamError{Err: err}
	}
	s.logger.Debug("coach reply generated", zap.Duration("latency", time.Since(start)), zap.Int("chars", len(text)))

	if text == "" {
		return FallbackReply, nil
	}
	return text, nil
}
