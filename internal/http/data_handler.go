package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"mindful-ai/internal/classifier"
	"mindful-ai/internal/domain"
	"mindful-ai/internal/repository"
)

// DataHandler mantiene dependencias para los endpoints CRUD de documentos:
// respuestas del cuestionario, datos personales y transcripciones.
type DataHandler struct {
	logger    *zap.Logger
	responses repository.ResponseRepository
	personal  repository.PersonalInfoRepository
	chats     repository.ChatRecordRepository
}

// NewDataHandler crea una instancia de DataHandler con dependencias necesarias.
func NewDataHandler(
	logger *zap.Logger,
	responses repository.ResponseRepository,
	personal repository.PersonalInfoRepository,
	chats repository.ChatRecordRepository,
) *DataHandler {
	return &DataHandler{
		logger:    logger,
		responses: responses,
		personal:  personal,
		chats:     chats,
	}
}

func requireEmail(c *gin.Context) (string, bool) {
	emailID := strings.TrimSpace(c.GetHeader(emailHeader))
	if emailID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing " + emailHeader + " header"})
		return "", false
	}
	return emailID, true
}

// bindResponsePayload valida el payload de 50 digitos y arma el registro.
func (h *DataHandler) bindResponsePayload(c *gin.Context, emailID string) (domain.SurveyResponse, bool) {
	var req struct {
		Data string `json:"data" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid response payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return domain.SurveyResponse{}, false
	}

	features, err := classifier.ParseVector(req.Data)
	if err != nil {
		h.logger.Warn("response vector rejected", zap.String("email_id", emailID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "data is not correct"})
		return domain.SurveyResponse{}, false
	}

	return domain.SurveyResponse{
		EmailID:   emailID,
		Data:      req.Data,
		Features:  pgvector.NewVector(features),
		UpdatedAt: time.Now().UTC(),
	}, true
}

// WriteResponse maneja POST /data/responses.
func (h *DataHandler) WriteResponse(c *gin.Context) {
	emailID, ok := requireEmail(c)
	if !ok {
		return
	}
	response, ok := h.bindResponsePayload(c, emailID)
	if !ok {
		return
	}

	if err := h.responses.Upsert(c.Request.Context(), response); err != nil {
		h.logger.Error("write response failed", zap.Error(err), zap.String("email_id", emailID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not write response"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// ReadResponse maneja GET /data/responses.
func (h *DataHandler) ReadResponse(c *gin.Context) {
	emailID, ok := requireEmail(c)
	if !ok {
		return
	}

	response, err := h.responses.Get(c.Request.Context(), emailID)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no response for this email id"})
		return
	}
	if err != nil {
		h.logger.Error("read response failed", zap.Error(err), zap.String("email_id", emailID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read response"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": response.Data})
}

// UpdateResponse maneja PUT /data/responses.
func (h *DataHandler) UpdateResponse(c *gin.Context) {
	emailID, ok := requireEmail(c)
	if !ok {
		return
	}
	response, ok := h.bindResponsePayload(c, emailID)
	if !ok {
		return
	}

	err := h.responses.Update(c.Request.Context(), response)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no response for this email id"})
		return
	}
	if err != nil {
		h.logger.Error("update response failed", zap.Error(err), zap.String("email_id", emailID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update response"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// DeleteResponse maneja DELETE /data/responses.
func (h *DataHandler) DeleteResponse(c *gin.Context) {
	emailID, ok := requireEmail(c)
	if !ok {
		return
	}

	err := h.responses.Delete(c.Request.Context(), emailID)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no response for this email id"})
		return
	}
	if err != nil {
		h.logger.Error("delete response failed", zap.Error(err), zap.String("email_id", emailID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete response"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// ListEmails maneja GET /data/emails.
func (h *DataHandler) ListEmails(c *gin.Context) {
	emails, err := h.responses.ListEmails(c.Request.Context())
	if err != nil {
		h.logger.Error("list emails failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list emails"})
		return
	}
	if emails == nil {
		emails = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": emails})
}

// AddPersonalInfo maneja POST /data/personal-info.
func (h *DataHandler) AddPersonalInfo(c *gin.Context) {
	emailID, ok := requireEmail(c)
	if !ok {
		return
	}

	var req struct {
		FirstName        string `json:"first_name" binding:"required"`
		LastName         string `json:"last_name" binding:"required"`
		Age              int    `json:"age" binding:"required,gte=0"`
		Gender           string `json:"gender" binding:"required"`
		MaritalStatus    bool   `json:"marital_status"`
		EmploymentStatus bool   `json:"employment_status"`
		Education        bool   `json:"education"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid personal info request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	info := domain.PersonalInfo{
		EmailID:          emailID,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Age:              req.Age,
		Gender:           req.Gender,
		MaritalStatus:    req.MaritalStatus,
		EmploymentStatus: req.EmploymentStatus,
		Education:        req.Education,
		UpdatedAt:        time.Now().UTC(),
	}

	if err := h.personal.Upsert(c.Request.Context(), info); err != nil {
		h.logger.Error("write personal info failed", zap.Error(err), zap.String("email_id", emailID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not write personal info"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// GetPersonalInfo maneja GET /data/personal-info.
func (h *DataHandler) GetPersonalInfo(c *gin.Context) {
	emailID, ok := requireEmail(c)
	if !ok {
		return
	}

	info, err := h.personal.Get(c.Request.Context(), emailID)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no personal info for this email id"})
		return
	}
	if err != nil {
		h.logger.Error("read personal info failed", zap.Error(err), zap.String("email_id", emailID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read personal info"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": info})
}

// ListChats maneja GET /data/chats.
func (h *DataHandler) ListChats(c *gin.Context) {
	emailID, ok := requireEmail(c)
	if !ok {
		return
	}

	records, err := h.chats.ListByEmail(c.Request.Context(), emailID)
	if err != nil {
		h.logger.Error("list chats failed", zap.Error(err), zap.String("email_id", emailID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list chats"})
		return
	}
	if records == nil {
		records = []domain.ChatRecord{}
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "data": records})
}
