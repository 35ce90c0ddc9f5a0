package analyses

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Result is the structured outcome parsed out of a model reply.
type Result struct {
	Score        int
	Strengths    []string
	Improvements []string
	GrammarFixes []string
}

// ParseResult extracts the first balanced JSON object from a model reply and
// reads the analysis keys out of it. Models often wrap the object in prose or
// markdown fences, so the scan starts at every '{' and keeps the first
// candidate that decodes. Missing keys fall back to zero values; a reply with
// no decodable object reports ErrAnalysisFailed.
func ParseResult(reply string) (Result, error) {
	obj, ok := firstJSONObject(reply)
	if !ok {
		return Result{}, fmt.Errorf("%w: no JSON object in model reply", ErrAnalysisFailed)
	}

	var raw struct {
		Score        json.Number `json:"score"`
		Strengths    []string    `json:"strengths"`
		Improvements []string    `json:"improvements"`
		GrammarFixes []string    `json:"grammarFixes"`
	}
	if err := json.Unmarshal([]byte(obj), &raw); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	res := Result{
		Strengths:    emptyIfNil(raw.Strengths),
		Improvements: emptyIfNil(raw.Improvements),
		GrammarFixes: emptyIfNil(raw.GrammarFixes),
	}
	if raw.Score != "" {
		if f, err := raw.Score.Float64(); err == nil {
			res.Score = int(f)
		}
	}
	return res, nil
}

// firstJSONObject returns the first substring of s that is a syntactically
// complete JSON object. json.Decoder stops at the end of the first value, so
// nested braces and braces inside strings are handled for free.
func firstJSONObject(s string) (string, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] != '{' {
			continue
		}
		dec := json.NewDecoder(strings.NewReader(s[i:]))
		var obj map[string]any
		if err := dec.Decode(&obj); err != nil {
			continue
		}
		return s[i : i+int(dec.InputOffset())], true
	}
	return "", false
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
