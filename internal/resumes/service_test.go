package resumes

import (
	"context"
	"testing"
)

func TestSubmitKeepsCategoryTemplateAndScore(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	if _, err := svc.Create(ctx, "a@x.com", "R1", "tech"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.ChangeTemplate(ctx, "a@x.com", "R1", "tpl-9"); err != nil {
		t.Fatalf("change template: %v", err)
	}
	if err := svc.SetScore(ctx, "a@x.com", "R1", 77); err != nil {
		t.Fatalf("set score: %v", err)
	}

	submitted, err := svc.Submit(ctx, Project{
		Email: "a@x.com",
		Name:  "R1",
		Final: map[string]any{"summary": "v2"},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if submitted.Category != "tech" || submitted.SelectedTemplateID != "tpl-9" || submitted.Score != 77 {
		t.Fatalf("submit must not touch category/template/score, got %+v", submitted)
	}

	got, err := svc.Get(ctx, "a@x.com", "R1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Category != "tech" {
		t.Fatalf("category lost on submit: %q", got.Category)
	}
	if got.SelectedTemplateID != "tpl-9" {
		t.Fatalf("template lost on submit: %q", got.SelectedTemplateID)
	}
	if got.Score != 77 {
		t.Fatalf("score lost on submit: %d", got.Score)
	}
	if got.Final["summary"] != "v2" {
		t.Fatalf("submit must overwrite the document, got %v", got.Final)
	}
}

func TestSubmitCreatesMissingProject(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	ctx := context.Background()

	p, err := svc.Submit(ctx, Project{
		Email:    "a@x.com",
		Name:     "Fresh",
		Category: "design",
		Final:    map[string]any{"summary": "v1"},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if p.Category != "design" {
		t.Fatalf("category from the first submit must be stored, got %q", p.Category)
	}
	if p.Modified.IsZero() {
		t.Fatalf("modified must be stamped on submit")
	}
}
