package analyses_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"airesume-backend/internal/analyses"
	"airesume-backend/internal/llm"
)

type scriptedLLM struct {
	reply string
	err   error
}

func (s *scriptedLLM) Complete(ctx context.Context, req llm.Request) (string, error) {
	return s.reply, s.err
}

func newTestRouter(t *testing.T, email string, client llm.Client) (*gin.Engine, *analyses.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userEmail", email)
		c.Next()
	})
	repo := analyses.NewMemoryRepo()
	svc := &analyses.Service{Repo: repo, LLM: client}
	analyses.NewHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router, repo
}

func TestAnalyzeMultipartUpload(t *testing.T) {
	router, _ := newTestRouter(t, "a@x.com", &scriptedLLM{
		reply: `Result: {"score": 91, "strengths": ["clear"], "improvements": [], "grammarFixes": []}`,
	})

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("jobRole", "Backend Engineer"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	part, err := writer.CreateFormFile("file", "jane-doe.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("Ten years building Go services.")); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/analyze", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var got struct {
		ResumeName string `json:"resumeName"`
		Score      int    `json:"score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Score != 91 {
		t.Errorf("score = %d, want 91", got.Score)
	}
	if got.ResumeName != "jane-doe" {
		t.Errorf("resume name should come from the file name, got %q", got.ResumeName)
	}
}

func TestAnalyzeTextFieldWithoutFile(t *testing.T) {
	router, _ := newTestRouter(t, "a@x.com", &scriptedLLM{reply: `{"score": 40}`})

	form := bytes.NewBufferString("jobRole=QA&text=manual+testing+experience&resumeName=draft")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/analyze", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestAnalyzeMissingJobRole(t *testing.T) {
	router, _ := newTestRouter(t, "a@x.com", &scriptedLLM{reply: `{"score": 40}`})

	form := bytes.NewBufferString("text=some+resume+text")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/analyze", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestAnalyzeModelDownReturnsBadGateway(t *testing.T) {
	router, repo := newTestRouter(t, "a@x.com", &scriptedLLM{err: context.DeadlineExceeded})

	form := bytes.NewBufferString("jobRole=QA&text=resume+text")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/analyze", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.Code)
	}
	runs, _ := repo.ListByEmail(context.Background(), "a@x.com")
	if len(runs) != 0 {
		t.Fatalf("failed analysis must not be recorded")
	}
}

func TestEnhanceEndpointFallsBack(t *testing.T) {
	router, _ := newTestRouter(t, "a@x.com", &scriptedLLM{err: context.DeadlineExceeded})

	payload, _ := json.Marshal(gin.H{"text": "my original wording"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/enhance", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 fallback, got %d", resp.Code)
	}
	var got struct {
		Enhanced string `json:"enhanced"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Enhanced != "my original wording" {
		t.Fatalf("expected original text back, got %q", got.Enhanced)
	}
}

func TestHistoryAndDelete(t *testing.T) {
	router, repo := newTestRouter(t, "a@x.com", &scriptedLLM{})

	date := analyses.NormalizeDate(time.Now())
	run := analyses.Run{ID: "r1", Email: "a@x.com", ResumeName: "My Resume", JobRole: "Backend", Score: 70, Date: date}
	if err := repo.Append(context.Background(), run); err != nil {
		t.Fatalf("append: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ai/history", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 history, got %d", resp.Code)
	}
	var got struct {
		History []json.RawMessage `json:"history"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.History) != 1 {
		t.Fatalf("expected one run, got %d", len(got.History))
	}

	payload, _ := json.Marshal(gin.H{"resumeName": "My Resume", "jobRole": "Backend", "date": date})
	delReq := httptest.NewRequest(http.MethodDelete, "/api/v1/ai/history", bytes.NewReader(payload))
	delReq.Header.Set("Content-Type", "application/json")
	delResp := httptest.NewRecorder()
	router.ServeHTTP(delResp, delReq)
	if delResp.Code != http.StatusOK {
		t.Fatalf("expected 200 delete, got %d: %s", delResp.Code, delResp.Body.String())
	}

	delResp = httptest.NewRecorder()
	delReq = httptest.NewRequest(http.MethodDelete, "/api/v1/ai/history", bytes.NewReader(payload))
	delReq.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(delResp, delReq)
	if delResp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", delResp.Code)
	}
}
