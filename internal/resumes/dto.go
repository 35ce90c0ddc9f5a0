package resumes

import "time"

// ProjectResponse is the outward-facing representation of a resume project.
type ProjectResponse struct {
	Name               string         `json:"name"`
	Category           string         `json:"category,omitempty"`
	SelectedTemplateID string         `json:"selectedTemplateId,omitempty"`
	Final              map[string]any `json:"final"`
	Score              int            `json:"score"`
	Modified           time.Time      `json:"modified"`
}

func toResponse(p Project) ProjectResponse {
	final := p.Final
	if final == nil {
		final = map[string]any{}
	}
	return ProjectResponse{
		Name:               p.Name,
		Category:           p.Category,
		SelectedTemplateID: p.SelectedTemplateID,
		Final:              final,
		Score:              p.Score,
		Modified:           p.Modified,
	}
}

func toResponses(projects []Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toResponse(p))
	}
	return out
}
