package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nutrition-coach/internal/domain"
	"nutrition-coach/internal/service"
)

const upstreamErrorMessage = "Failed to get response from AI assistant"

// ChatHandler expone el endpoint proxy hacia el proveedor.
type ChatHandler struct {
	logger *zap.Logger
	coach  *service.CoachService
}

// NewChatHandler crea una instancia de ChatHandler con dependencias necesarias.
func NewChatHandler(logger *zap.Logger, coach *service.CoachService) *ChatHandler {
	return &ChatHandler{
		logger: logger,
		coach:  coach,
	}
}

// PostChat maneja POST /api/chat.
func (h *ChatHandler) PostChat(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		// Un body que no es JSON se trata como falla del turno (500), igual que un error del proveedor.
		if isMalformedJSON(err) {
			h.logger.Error("chat request body unreadable",
				zap.Error(err),
				zap.String("request_id", c.GetString(requestIDKey)),
			)
			chatTurnsTotal.WithLabelValues(outcomeMalformedBody).Inc()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   upstreamErrorMessage,
				"details": err.Error(),
			})
			return
		}
		h.logger.Warn("invalid chat request", zap.Error(err))
		chatTurnsTotal.WithLabelValues(outcomeInvalid).Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMessageRequired.Error()})
		return
	}

	reply, err := h.coach.Reply(c.Request.Context(), req.Message)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			chatTurnsTotal.WithLabelValues(outcomeInvalid).Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			return
		}

		details := err.Error()
		var upErr *domain.UpstreamError
		if errors.As(err, &upErr) {
			details = upErr.Err.Error()
		}
		h.logger.Error("llm request failed",
			zap.Error(err),
			zap.String("request_id", c.GetString(requestIDKey)),
		)
		chatTurnsTotal.WithLabelValues(outcomeUpstreamError).Inc()
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   upstreamErrorMessage,
			"details": details,
		})
		return
	}

	chatTurnsTotal.WithLabelValues(outcomeSuccess).Inc()
	c.JSON(http.StatusOK, gin.H{"message": reply})
}

func isMalformedJSON(err error) bool {
	var syntaxErr *json.SyntaxError
	return errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF)
}
