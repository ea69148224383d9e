package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mindful-ai/internal/domain"
	"mindful-ai/internal/llm"
	"mindful-ai/internal/service"
)

func newDataRouter(t *testing.T, responses *mockResponseRepo, personal *mockPersonalInfoRepo, chats *mockChatRecordRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	chatSvc := service.NewChatService(logger, responses, personal, chats, &stubClassifier{}, &llm.MockClient{})
	aiH := NewAIHandler(logger, chatSvc, nil)
	dataH := NewDataHandler(logger, responses, personal, chats)
	return NewRouter(logger, aiH, dataH)
}

func doDataRequest(t *testing.T, router *gin.Engine, method, path, email string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if email != "" {
		req.Header.Set(emailHeader, email)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestWriteResponseRejectsWrongLength(t *testing.T) {
	responses := &mockResponseRepo{}
	router := newDataRouter(t, responses, &mockPersonalInfoRepo{}, &mockChatRecordRepo{})

	rec := doDataRequest(t, router, http.MethodPost, "/data/responses", "a@b.com", gin.H{"data": strings.Repeat("3", 49)})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(responses.upserts) != 0 {
		t.Fatalf("nothing should be persisted on invalid payload")
	}
}

func TestWriteResponseRejectsNonDigits(t *testing.T) {
	router := newDataRouter(t, &mockResponseRepo{}, &mockPersonalInfoRepo{}, &mockChatRecordRepo{})

	rec := doDataRequest(t, router, http.MethodPost, "/data/responses", "a@b.com", gin.H{"data": strings.Repeat("3", 49) + "x"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestWriteResponsePersistsVector(t *testing.T) {
	responses := &mockResponseRepo{}
	router := newDataRouter(t, responses, &mockPersonalInfoRepo{}, &mockChatRecordRepo{})

	rec := doDataRequest(t, router, http.MethodPost, "/data/responses", "a@b.com", gin.H{"data": validData()})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	if len(responses.upserts) != 1 {
		t.Fatalf("expected one upsert, got %d", len(responses.upserts))
	}
	saved := responses.upserts[0]
	if saved.EmailID != "a@b.com" || saved.Data != validData() {
		t.Fatalf("unexpected saved response: %+v", saved)
	}
	if len(saved.Features.Slice()) != 50 {
		t.Fatalf("features should have 50 entries, got %d", len(saved.Features.Slice()))
	}
}

func TestReadResponseNotFound(t *testing.T) {
	responses := &mockResponseRepo{err: domain.ErrNotFound}
	router := newDataRouter(t, responses, &mockPersonalInfoRepo{}, &mockChatRecordRepo{})

	rec := doDataRequest(t, router, http.MethodGet, "/data/responses", "a@b.com", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestListEmails(t *testing.T) {
	router := newDataRouter(t, &mockResponseRepo{}, &mockPersonalInfoRepo{}, &mockChatRecordRepo{})

	rec := doDataRequest(t, router, http.MethodGet, "/data/emails", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Status string   `json:"status"`
		Data   []string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Status != "success" || len(body.Data) != 1 || body.Data[0] != "a@b.com" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestAddPersonalInfoValidation(t *testing.T) {
	router := newDataRouter(t, &mockResponseRepo{}, &mockPersonalInfoRepo{}, &mockChatRecordRepo{})

	rec := doDataRequest(t, router, http.MethodPost, "/data/personal-info", "a@b.com", gin.H{"first_name": "Ana"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetPersonalInfoNotFound(t *testing.T) {
	personal := &mockPersonalInfoRepo{err: domain.ErrNotFound}
	router := newDataRouter(t, &mockResponseRepo{}, personal, &mockChatRecordRepo{})

	rec := doDataRequest(t, router, http.MethodGet, "/data/personal-info", "a@b.com", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestListChats(t *testing.T) {
	chats := &mockChatRecordRepo{created: []domain.ChatRecord{{ID: "1", EmailID: "a@b.com"}}}
	router := newDataRouter(t, &mockResponseRepo{}, &mockPersonalInfoRepo{}, chats)

	rec := doDataRequest(t, router, http.MethodGet, "/data/chats", "a@b.com", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Status string              `json:"status"`
		Data   []domain.ChatRecord `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Data) != 1 || body.Data[0].EmailID != "a@b.com" {
		t.Fatalf("unexpected chats body: %+v", body)
	}
}
