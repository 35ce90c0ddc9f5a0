package analyses

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseResultTolerantOfSurroundingProse(t *testing.T) {
	reply := "Here is my assessment:\n```json\n" +
		`{"score": 85, "strengths": ["clear layout"], "improvements": ["add metrics"], "grammarFixes": []}` +
		"\n```\nLet me know if you need more."

	res, err := ParseResult(reply)
	if err != nil {
		t.Fatalf("ParseResult: %v", err)
	}
	if res.Score != 85 {
		t.Errorf("score = %d, want 85", res.Score)
	}
	if !reflect.DeepEqual(res.Strengths, []string{"clear layout"}) {
		t.Errorf("strengths = %v", res.Strengths)
	}
	if !reflect.DeepEqual(res.GrammarFixes, []string{}) {
		t.Errorf("grammarFixes = %v, want empty", res.GrammarFixes)
	}
}

func TestParseResultMissingKeysDefault(t *testing.T) {
	res, err := ParseResult(`{"score": 70}`)
	if err != nil {
		t.Fatalf("ParseResult: %v", err)
	}
	if res.Score != 70 {
		t.Errorf("score = %d, want 70", res.Score)
	}
	for name, list := range map[string][]string{
		"strengths":    res.Strengths,
		"improvements": res.Improvements,
		"grammarFixes": res.GrammarFixes,
	} {
		if list == nil || len(list) != 0 {
			t.Errorf("%s = %v, want empty non-nil slice", name, list)
		}
	}
}

func TestParseResultNoObjectFails(t *testing.T) {
	_, err := ParseResult("the resume looks fine, no structured data here")
	if !errors.Is(err, ErrAnalysisFailed) {
		t.Fatalf("expected ErrAnalysisFailed, got %v", err)
	}
}

func TestParseResultSkipsUnparseableBraces(t *testing.T) {
	reply := `{broken json} oops {"score": 42, "strengths": ["ok"]}`
	res, err := ParseResult(reply)
	if err != nil {
		t.Fatalf("ParseResult: %v", err)
	}
	if res.Score != 42 {
		t.Errorf("score = %d, want 42", res.Score)
	}
}

func TestParseResultNestedBracesAndStrings(t *testing.T) {
	reply := `{"score": 12, "strengths": ["uses {braces} in text"], "improvements": [], "grammarFixes": ["fix \"quoting\""]}`
	res, err := ParseResult(reply)
	if err != nil {
		t.Fatalf("ParseResult: %v", err)
	}
	if res.Strengths[0] != "uses {braces} in text" {
		t.Errorf("strengths = %v", res.Strengths)
	}
}

func TestParseResultFractionalScoreTruncates(t *testing.T) {
	res, err := ParseResult(`{"score": 87.9}`)
	if err != nil {
		t.Fatalf("ParseResult: %v", err)
	}
	if res.Score != 87 {
		t.Errorf("score = %d, want 87", res.Score)
	}
}
