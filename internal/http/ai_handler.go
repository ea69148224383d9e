package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mindful-ai/internal/domain"
	"mindful-ai/internal/service"
)

// emailHeader identifica al usuario en todos los endpoints, igual que en el
// cuestionario que alimenta la base.
const emailHeader = "X-Email-Id"

// AIHandler mantiene dependencias para el endpoint de conversacion.
type AIHandler struct {
	logger  *zap.Logger
	chatSvc *service.ChatService
	limiter service.ChatRateLimiter
}

// NewAIHandler crea una instancia de AIHandler con dependencias necesarias.
func NewAIHandler(logger *zap.Logger, chatSvc *service.ChatService, limiter service.ChatRateLimiter) *AIHandler {
	return &AIHandler{
		logger:  logger,
		chatSvc: chatSvc,
		limiter: limiter,
	}
}

// Chat maneja POST /ai/chat.
func (h *AIHandler) Chat(c *gin.Context) {
	emailID := strings.TrimSpace(c.GetHeader(emailHeader))
	if emailID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + emailHeader + " header"})
		return
	}

	var req struct {
		Message string             `json:"message" binding:"required"`
		History domain.ChatHistory `json:"history"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(emailID) {
		h.logger.Warn("chat rate limited", zap.String("email_id", emailID))
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many chat requests"})
		return
	}

	result, err := h.chatSvc.Advance(c.Request.Context(), emailID, req.Message, req.History)
	if err != nil {
		h.logger.Error("chat turn failed", zap.Error(err), zap.String("email_id", emailID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate chat response"})
		return
	}

	c.JSON(http.StatusOK, result)
}
