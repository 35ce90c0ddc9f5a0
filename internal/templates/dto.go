package templates

// TemplateResponse is the outward-facing representation of a template.
type TemplateResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category,omitempty"`
	TemplateIndex int    `json:"templateIndex"`
	ThumbnailKey  string `json:"thumbnailKey,omitempty"`
}

func toResponse(t Template) TemplateResponse {
	return TemplateResponse{
		ID:            t.ID,
		Name:          t.Name,
		Description:   t.Description,
		Category:      t.Category,
		TemplateIndex: t.TemplateIndex,
		ThumbnailKey:  t.ThumbnailKey,
	}
}

func toResponses(templates []Template) []TemplateResponse {
	out := make([]TemplateResponse, 0, len(templates))
	for _, t := range templates {
		out = append(out, toResponse(t))
	}
	return out
}
