package extract

import (
	"context"
	"strings"
	"testing"
)

func TestTextPlainUTF8(t *testing.T) {
	got, err := Text(context.Background(), []byte("  Senior Go engineer.\nBuilt APIs.  "), "text/plain; charset=utf-8", "resume.txt")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "Senior Go engineer.\nBuilt APIs." {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestTextInvalidUTF8YieldsEmpty(t *testing.T) {
	got, err := Text(context.Background(), []byte{0xff, 0xfe, 0x00}, "text/plain", "resume.txt")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
}

func TestTextUnsupportedMimeYieldsEmpty(t *testing.T) {
	got, err := Text(context.Background(), []byte("PK\x03\x04"), "application/zip", "resume.zip")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty text for unsupported mime, got %q", got)
	}
}

func TestTextBrokenPDFReturnsError(t *testing.T) {
	_, err := Text(context.Background(), []byte("not a pdf"), "application/pdf", "resume.pdf")
	if err == nil || !strings.Contains(err.Error(), "extract pdf") {
		t.Fatalf("expected pdf extraction error, got %v", err)
	}
}

func TestTextFallsBackToExtension(t *testing.T) {
	got, err := Text(context.Background(), []byte("plain body"), "application/octet-stream", "resume.txt")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "plain body" {
		t.Fatalf("expected extension fallback, got %q", got)
	}
}

func TestTextCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Text(ctx, []byte("x"), "text/plain", "a.txt"); err == nil {
		t.Fatal("expected context error")
	}
}
