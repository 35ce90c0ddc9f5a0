package analyses

import "time"

// RunResponse is the outward-facing representation of an analysis run.
type RunResponse struct {
	ResumeName   string    `json:"resumeName"`
	JobRole      string    `json:"jobRole"`
	Score        int       `json:"score"`
	Strengths    []string  `json:"strengths"`
	Improvements []string  `json:"improvements"`
	GrammarFixes []string  `json:"grammarFixes"`
	Date         time.Time `json:"date"`
}

func toResponse(run Run) RunResponse {
	return RunResponse{
		ResumeName:   run.ResumeName,
		JobRole:      run.JobRole,
		Score:        run.Score,
		Strengths:    run.Strengths,
		Improvements: run.Improvements,
		GrammarFixes: run.GrammarFixes,
		Date:         run.Date,
	}
}

func toResponses(runs []Run) []RunResponse {
	out := make([]RunResponse, 0, len(runs))
	for _, run := range runs {
		out = append(out, toResponse(run))
	}
	return out
}
