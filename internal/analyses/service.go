package analyses

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"airesume-backend/internal/llm"
	"airesume-backend/internal/shared/metrics"
	"airesume-backend/internal/shared/telemetry"
)

// Service contains business logic for resume analysis.
type Service struct {
	Repo RunsRepo
	LLM  llm.Client
}

// Analyze scores the resume text against a job role and appends the run to
// the user's history. Model and parse failures surface as ErrAnalysisFailed
// and leave the history untouched.
func (s *Service) Analyze(ctx context.Context, email, resumeName, jobRole, resumeText string) (Run, error) {
	email = strings.TrimSpace(email)
	resumeName = strings.TrimSpace(resumeName)
	jobRole = strings.TrimSpace(jobRole)

	switch {
	case email == "":
		return Run{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	case jobRole == "":
		return Run{}, fmt.Errorf("%w: job role is required", ErrInvalidInput)
	case strings.TrimSpace(resumeText) == "":
		return Run{}, fmt.Errorf("%w: no text could be extracted from the resume", ErrInvalidInput)
	}
	if resumeName == "" {
		resumeName = "resume"
	}

	metrics.IncAnalysisStarted()
	started := time.Now()

	reply, err := s.LLM.Complete(ctx, llm.AnalyzePrompt(jobRole, resumeText))
	if err != nil {
		metrics.IncAnalysisFailed()
		telemetry.Error("analysis.model_error", map[string]any{
			"user_email":  email,
			"resume_name": resumeName,
			"error":       err.Error(),
		})
		return Run{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	result, err := ParseResult(reply)
	if err != nil {
		metrics.IncAnalysisFailed()
		telemetry.Error("analysis.parse_error", map[string]any{
			"user_email":  email,
			"resume_name": resumeName,
			"error":       err.Error(),
		})
		return Run{}, err
	}

	run := Run{
		ID:           uuid.NewString(),
		Email:        email,
		ResumeName:   resumeName,
		JobRole:      jobRole,
		Score:        result.Score,
		Strengths:    result.Strengths,
		Improvements: result.Improvements,
		GrammarFixes: result.GrammarFixes,
		Date:         NormalizeDate(time.Now()),
	}
	if err := s.Repo.Append(ctx, run); err != nil {
		metrics.IncAnalysisFailed()
		return Run{}, err
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(started).Milliseconds()))
	return run, nil
}

// Enhance rewrites a resume section. When the model is unreachable or replies
// with nothing usable, the original text comes back unchanged so the editor
// never loses content.
func (s *Service) Enhance(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: text is required", ErrInvalidInput)
	}

	reply, err := s.LLM.Complete(ctx, llm.EnhancePrompt(text))
	if err != nil || strings.TrimSpace(reply) == "" {
		metrics.IncEnhanceFallback()
		if err != nil {
			telemetry.Warn("enhance.fallback", map[string]any{"error": err.Error()})
		}
		return text, nil
	}
	return strings.TrimSpace(reply), nil
}

// History returns the user's analysis runs newest-first.
func (s *Service) History(ctx context.Context, email string) ([]Run, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	return s.Repo.ListByEmail(ctx, strings.TrimSpace(email))
}

// DeleteRun removes the run matching all four fields exactly.
func (s *Service) DeleteRun(ctx context.Context, email, resumeName, jobRole string, date time.Time) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(resumeName) == "" || strings.TrimSpace(jobRole) == "" {
		return fmt.Errorf("%w: resume name and job role are required", ErrInvalidInput)
	}
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, email, strings.TrimSpace(resumeName), strings.TrimSpace(jobRole), date)
}
