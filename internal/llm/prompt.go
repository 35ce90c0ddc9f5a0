package llm

import (
	"strings"

	_ "embed"
)

var (
	//go:embed prompts/analyze.txt
	analyzeTemplate string
	//go:embed prompts/enhance.txt
	enhanceTemplate string
)

// AnalyzePrompt renders the resume review prompt for the given job role.
func AnalyzePrompt(jobRole, resumeText string) Request {
	user := strings.ReplaceAll(analyzeTemplate, "{{jobRole}}", jobRole)
	user = strings.ReplaceAll(user, "{{resumeText}}", resumeText)
	return Request{
		User:        user,
		Temperature: 0.3,
	}
}

// EnhancePrompt renders the section rewrite prompt.
func EnhancePrompt(text string) Request {
	return Request{
		User:        strings.ReplaceAll(enhanceTemplate, "{{text}}", text),
		Temperature: 0.3,
	}
}
