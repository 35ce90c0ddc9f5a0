package analyses

import (
	"context"
	"errors"
	"testing"
	"time"

	"airesume-backend/internal/llm"
)

type fakeLLM struct {
	reply string
	err   error
	last  llm.Request
}

func (f *fakeLLM) Complete(ctx context.Context, req llm.Request) (string, error) {
	f.last = req
	return f.reply, f.err
}

func TestAnalyzeAppendsRun(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{
		Repo: repo,
		LLM:  &fakeLLM{reply: `Sure! {"score": 85, "strengths": ["solid"], "improvements": ["metrics"], "grammarFixes": []}`},
	}

	run, err := svc.Analyze(context.Background(), "a@x.com", "My Resume", "Backend Engineer", "ten years of Go")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if run.Score != 85 {
		t.Errorf("score = %d, want 85", run.Score)
	}
	if run.ID == "" {
		t.Errorf("run must get an id")
	}
	if !run.Date.Equal(run.Date.UTC().Truncate(time.Microsecond)) {
		t.Errorf("date must be stored at microsecond precision in UTC")
	}

	history, err := svc.History(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected one run in history, got %d", len(history))
	}
}

func TestAnalyzeModelErrorAppendsNothing(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo, LLM: &fakeLLM{err: errors.New("connection refused")}}

	_, err := svc.Analyze(context.Background(), "a@x.com", "My Resume", "Backend Engineer", "text")
	if !errors.Is(err, ErrAnalysisFailed) {
		t.Fatalf("expected ErrAnalysisFailed, got %v", err)
	}

	history, _ := svc.History(context.Background(), "a@x.com")
	if len(history) != 0 {
		t.Fatalf("failed analysis must not append a run, got %d", len(history))
	}
}

func TestAnalyzeUnparseableReplyAppendsNothing(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo, LLM: &fakeLLM{reply: "I cannot help with that"}}

	_, err := svc.Analyze(context.Background(), "a@x.com", "My Resume", "Backend Engineer", "text")
	if !errors.Is(err, ErrAnalysisFailed) {
		t.Fatalf("expected ErrAnalysisFailed, got %v", err)
	}
	history, _ := svc.History(context.Background(), "a@x.com")
	if len(history) != 0 {
		t.Fatalf("unparseable reply must not append a run")
	}
}

func TestAnalyzeValidation(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), LLM: &fakeLLM{reply: `{"score":1}`}}
	ctx := context.Background()

	cases := []struct {
		name       string
		email      string
		jobRole    string
		resumeText string
	}{
		{"missing email", "", "role", "text"},
		{"missing job role", "a@x.com", "", "text"},
		{"missing text", "a@x.com", "role", "   "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Analyze(ctx, tc.email, "r", tc.jobRole, tc.resumeText)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestEnhanceReturnsModelReply(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), LLM: &fakeLLM{reply: "  Led a team of five engineers.  "}}

	got, err := svc.Enhance(context.Background(), "i led some engineers")
	if err != nil {
		t.Fatalf("Enhance: %v", err)
	}
	if got != "Led a team of five engineers." {
		t.Fatalf("unexpected enhancement %q", got)
	}
}

func TestEnhanceFallsBackToOriginalOnError(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), LLM: &fakeLLM{err: errors.New("timeout")}}

	got, err := svc.Enhance(context.Background(), "original text")
	if err != nil {
		t.Fatalf("Enhance must not fail when the model is unreachable: %v", err)
	}
	if got != "original text" {
		t.Fatalf("expected original text back, got %q", got)
	}
}

func TestEnhanceFallsBackOnEmptyReply(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), LLM: &fakeLLM{reply: "   "}}

	got, err := svc.Enhance(context.Background(), "original text")
	if err != nil {
		t.Fatalf("Enhance: %v", err)
	}
	if got != "original text" {
		t.Fatalf("expected original text back, got %q", got)
	}
}

func TestEnhanceRequiresText(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), LLM: &fakeLLM{reply: "x"}}
	if _, err := svc.Enhance(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDeleteRunExactMatch(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo, LLM: &fakeLLM{}}
	ctx := context.Background()

	date := NormalizeDate(time.Now())
	run := Run{ID: "r1", Email: "a@x.com", ResumeName: "My Resume", JobRole: "Backend", Date: date}
	if err := repo.Append(ctx, run); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := svc.DeleteRun(ctx, "a@x.com", "My Resume", "Frontend", date); !errors.Is(err, ErrNotFound) {
		t.Fatalf("mismatched job role must not delete, got %v", err)
	}
	if err := svc.DeleteRun(ctx, "a@x.com", "My Resume", "Backend", date.Add(time.Second)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("mismatched date must not delete, got %v", err)
	}

	if err := svc.DeleteRun(ctx, "a@x.com", "My Resume", "Backend", date); err != nil {
		t.Fatalf("exact match delete: %v", err)
	}
	history, _ := svc.History(ctx, "a@x.com")
	if len(history) != 0 {
		t.Fatalf("run should be gone, got %d", len(history))
	}
}
