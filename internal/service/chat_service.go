package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mindful-ai/internal/classifier"
	"mindful-ai/internal/domain"
	"mindful-ai/internal/llm"
	"mindful-ai/internal/repository"
)

// Respuestas terminales fijas del contrato conversacional.
const (
	NoDataResponse         = "No data found for this email id"
	NoPersonalInfoFallback = "No personal information found for this email id"
	StoppingChatResponse   = "STOPPING CHAT "
)

const (
	readTimeout  = 3 * time.Second
	writeTimeout = 5 * time.Second
	llmTimeout   = 60 * time.Second
)

// ChatService orquesta un turno de conversacion: clasifica la personalidad
// del usuario, decide si la sesion termina y delega la respuesta al LLM.
// No guarda estado entre turnos; el historial lo aporta el caller.
type ChatService struct {
	logger     *zap.Logger
	responses  repository.ResponseRepository
	personal   repository.PersonalInfoRepository
	chats      repository.ChatRecordRepository
	classifier classifier.Classifier
	llmClient  llm.LLMClient
	prompts    PromptBuilder
	parser     ReplyParser
}

func NewChatService(
	logger *zap.Logger,
	responses repository.ResponseRepository,
	personal repository.PersonalInfoRepository,
	chats repository.ChatRecordRepository,
	clf classifier.Classifier,
	llmClient llm.LLMClient,
) *ChatService {
	return &ChatService{
		logger:     logger,
		responses:  responses,
		personal:   personal,
		chats:      chats,
		classifier: clf,
		llmClient:  llmClient,
	}
}

// Advance procesa un turno de conversacion para emailID.
// Devuelve la respuesta, el historial actualizado y el flag de terminacion.
// Datos faltantes o clasificacion inutilizable producen un cierre
// conversacional (stop=true), no un error; solo fallos de infraestructura
// (storage, modelo, LLM) se propagan como error.
func (s *ChatService) Advance(ctx context.Context, emailID, message string, history domain.ChatHistory) (domain.ChatResult, error) {
	if history == nil {
		history = domain.ChatHistory{}
	}

	response, err := s.fetchResponse(ctx, emailID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ChatResult{Response: NoDataResponse, History: history, Stop: true}, nil
	}
	if err != nil {
		return domain.ChatResult{}, fmt.Errorf("fetch response vector: %w", err)
	}

	inference, err := s.classify(response.Data)
	if errors.Is(err, domain.ErrInvalidVector) || errors.Is(err, domain.ErrUnknownCategory) {
		// Datos almacenados inutilizables: mismo cierre que la ausencia de datos.
		s.logger.Warn("stored response vector unusable", zap.String("email_id", emailID), zap.Error(err))
		return domain.ChatResult{Response: NoDataResponse, History: history, Stop: true}, nil
	}
	if err != nil {
		return domain.ChatResult{}, err
	}

	personalInfo := s.fetchPersonalInfo(ctx, emailID)

	if ContainsStopWord(message) {
		if err := s.saveChatRecord(ctx, emailID, history, inference); err != nil {
			return domain.ChatResult{}, fmt.Errorf("persist chat record: %w", err)
		}
		return domain.ChatResult{Response: StoppingChatResponse, History: history, Stop: true}, nil
	}

	prompt := s.prompts.BuildChatPrompt(personalInfo, history, inference, message)

	ctxLLM, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()
	reply, err := s.llmClient.Generate(ctxLLM, prompt)
	if err != nil {
		return domain.ChatResult{}, fmt.Errorf("llm generate: %w", err)
	}

	text, stopped := s.parser.ParseReply(reply)
	if stopped {
		// Terminacion iniciada por el modelo: el turno no entra al historial.
		return domain.ChatResult{Response: text, History: history, Stop: true}, nil
	}

	history = append(history, domain.ChatTurn{Message: message, Response: text})
	return domain.ChatResult{Response: text, History: history, Stop: false}, nil
}

// fetchResponse lee el vector de respuestas con timeout y un unico
// reintento. La lectura es idempotente; un not-found es definitivo.
func (s *ChatService) fetchResponse(ctx context.Context, emailID string) (domain.SurveyResponse, error) {
	var (
		response domain.SurveyResponse
		err      error
	)
	for attempt := 0; attempt < 2; attempt++ {
		ctxRead, cancel := context.WithTimeout(ctx, readTimeout)
		response, err = s.responses.Get(ctxRead, emailID)
		cancel()
		if err == nil || errors.Is(err, domain.ErrNotFound) {
			return response, err
		}
	}
	return response, err
}

// classify corre validador, clasificador e interprete sobre el payload crudo.
func (s *ChatService) classify(raw string) (domain.CategoryProfile, error) {
	features, err := classifier.ParseVector(raw)
	if err != nil {
		return domain.CategoryProfile{}, err
	}

	category, err := s.classifier.Predict(features)
	if err != nil {
		return domain.CategoryProfile{}, fmt.Errorf("predict category: %w", err)
	}

	return domain.InterpretCategory(category)
}

// fetchPersonalInfo devuelve los datos personales serializados, o el texto
// de reemplazo si no existen. Nunca corta la conversacion.
func (s *ChatService) fetchPersonalInfo(ctx context.Context, emailID string) string {
	var (
		info domain.PersonalInfo
		err  error
	)
	for attempt := 0; attempt < 2; attempt++ {
		ctxRead, cancel := context.WithTimeout(ctx, readTimeout)
		info, err = s.personal.Get(ctxRead, emailID)
		cancel()
		if err == nil || errors.Is(err, domain.ErrNotFound) {
			break
		}
	}
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("personal info fetch failed", zap.String("email_id", emailID), zap.Error(err))
		}
		return NoPersonalInfoFallback
	}

	infoJSON, err := json.Marshal(info)
	if err != nil {
		return NoPersonalInfoFallback
	}
	return string(infoJSON)
}

func (s *ChatService) saveChatRecord(ctx context.Context, emailID string, history domain.ChatHistory, inference domain.CategoryProfile) error {
	record := domain.ChatRecord{
		ID:        uuid.NewString(),
		EmailID:   emailID,
		History:   history,
		Inference: inference,
		CreatedAt: time.Now().UTC(),
	}

	ctxWrite, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return s.chats.Create(ctxWrite, record)
}
