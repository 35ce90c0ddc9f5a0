package templates

import "context"

// TemplatesRepo defines persistence operations for the template catalog.
type TemplatesRepo interface {
	Create(ctx context.Context, t Template) error
	GetByIndex(ctx context.Context, index int) (Template, error)
	List(ctx context.Context) ([]Template, error)
	SetThumbnail(ctx context.Context, id, thumbnailKey string) error
	Delete(ctx context.Context, id string) (Template, error)
}
