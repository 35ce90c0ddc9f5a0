package resumes

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Service contains business logic for resume projects.
type Service struct {
	Repo ProjectsRepo
}

// Create starts a new empty project for the user. Duplicate names are
// rejected with ErrConflict.
func (s *Service) Create(ctx context.Context, email, name, category string) (Project, error) {
	email, name, err := normalizeKey(email, name)
	if err != nil {
		return Project{}, err
	}
	p := Project{
		Email:    email,
		Name:     name,
		Category: strings.TrimSpace(category),
		Final:    map[string]any{},
		Modified: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return Project{}, err
	}
	return p, nil
}

// Submit saves the builder document under the project name, creating the
// project when it does not exist yet. Resubmitting overwrites only the
// document and the modified stamp; category, template and score stay as
// stored.
func (s *Service) Submit(ctx context.Context, p Project) (Project, error) {
	email, name, err := normalizeKey(p.Email, p.Name)
	if err != nil {
		return Project{}, err
	}
	p.Email = email
	p.Name = name
	p.Category = strings.TrimSpace(p.Category)
	if p.Final == nil {
		p.Final = map[string]any{}
	}
	p.Modified = time.Now().UTC()
	if err := s.Repo.Upsert(ctx, p); err != nil {
		return Project{}, err
	}
	return s.Repo.GetByName(ctx, email, name)
}

// Get returns one project by name.
func (s *Service) Get(ctx context.Context, email, name string) (Project, error) {
	email, name, err := normalizeKey(email, name)
	if err != nil {
		return Project{}, err
	}
	return s.Repo.GetByName(ctx, email, name)
}

// List returns the user's projects newest-first.
func (s *Service) List(ctx context.Context, email string) ([]Project, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	return s.Repo.ListByEmail(ctx, strings.TrimSpace(email))
}

// Delete removes one project by name.
func (s *Service) Delete(ctx context.Context, email, name string) error {
	email, name, err := normalizeKey(email, name)
	if err != nil {
		return err
	}
	return s.Repo.Delete(ctx, email, name)
}

// ChangeTemplate switches the project's selected template.
func (s *Service) ChangeTemplate(ctx context.Context, email, name, templateID string) error {
	email, name, err := normalizeKey(email, name)
	if err != nil {
		return err
	}
	if strings.TrimSpace(templateID) == "" {
		return fmt.Errorf("%w: templateId is required", ErrInvalidInput)
	}
	return s.Repo.SetTemplate(ctx, email, name, strings.TrimSpace(templateID))
}

// SetScore stores a score for the project.
func (s *Service) SetScore(ctx context.Context, email, name string, score int) error {
	email, name, err := normalizeKey(email, name)
	if err != nil {
		return err
	}
	if score < 0 || score > 100 {
		return fmt.Errorf("%w: score must be between 0 and 100", ErrInvalidInput)
	}
	return s.Repo.SetScore(ctx, email, name, score)
}

func normalizeKey(email, name string) (string, string, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" {
		return "", "", fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if name == "" {
		return "", "", fmt.Errorf("%w: resume name is required", ErrInvalidInput)
	}
	return email, name, nil
}
