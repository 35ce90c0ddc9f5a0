package templates

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"airesume-backend/internal/shared/storage/object"
	"airesume-backend/internal/shared/telemetry"
)

const thumbnailDir = "template-thumbnails"

// Service contains business logic for the template catalog.
type Service struct {
	Repo  TemplatesRepo
	Store object.ObjectStore
}

// Create adds a new template to the catalog.
func (s *Service) Create(ctx context.Context, name, description, category string, index int) (Template, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Template{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if index < 0 {
		return Template{}, fmt.Errorf("%w: template index must not be negative", ErrInvalidInput)
	}

	now := time.Now().UTC()
	t := Template{
		ID:            uuid.NewString(),
		Name:          name,
		Description:   strings.TrimSpace(description),
		Category:      strings.TrimSpace(category),
		TemplateIndex: index,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		return Template{}, err
	}
	return t, nil
}

// GetByIndex returns the template at the given position.
func (s *Service) GetByIndex(ctx context.Context, index int) (Template, error) {
	return s.Repo.GetByIndex(ctx, index)
}

// List returns all templates ordered by index.
func (s *Service) List(ctx context.Context) ([]Template, error) {
	return s.Repo.List(ctx)
}

// UploadThumbnail saves a preview image for a template.
func (s *Service) UploadThumbnail(ctx context.Context, id, fileName string, r io.Reader) (Template, error) {
	if strings.TrimSpace(id) == "" || strings.TrimSpace(fileName) == "" {
		return Template{}, fmt.Errorf("%w: template id and file name are required", ErrInvalidInput)
	}

	key, _, _, err := s.Store.Save(ctx, thumbnailDir, fileName, r)
	if err != nil {
		return Template{}, err
	}
	if err := s.Repo.SetThumbnail(ctx, id, key); err != nil {
		if delErr := s.Store.Delete(ctx, key); delErr != nil {
			telemetry.Warn("templates.orphan_thumbnail", map[string]any{"key": key, "error": delErr.Error()})
		}
		return Template{}, err
	}

	templates, err := s.Repo.List(ctx)
	if err != nil {
		return Template{}, err
	}
	for _, t := range templates {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, ErrNotFound
}

// Delete removes a template and its stored thumbnail.
func (s *Service) Delete(ctx context.Context, id string) error {
	t, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if t.ThumbnailKey != "" {
		if err := s.Store.Delete(ctx, t.ThumbnailKey); err != nil {
			telemetry.Warn("templates.thumbnail_delete_failed", map[string]any{"key": t.ThumbnailKey, "error": err.Error()})
		}
	}
	return nil
}
