package summarizer

import (
	"strings"
	"testing"
)

func TestSummarizeCapsSentences(t *testing.T) {
	text := "Go is a compiled language. Go has goroutines for concurrency. " +
		"The weather was nice today. Go compiles quickly to machine code. " +
		"Lunch was served at noon. Go tooling is famously simple."

	s := NewFrequency()
	got, err := s.Summarize(text, 2)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(got, "."); n != 2 {
		t.Errorf("expected 2 sentences, got %d: %q", n, got)
	}
}

func TestSummarizeKeepsDocumentOrder(t *testing.T) {
	text := "Alpha alpha alpha first. Beta beta beta second. Unrelated filler words here."

	s := NewFrequency()
	got, err := s.Summarize(text, 2)
	if err != nil {
		t.Fatal(err)
	}
	first := strings.Index(got, "first")
	second := strings.Index(got, "second")
	if first == -1 || second == -1 || first > second {
		t.Errorf("selected sentences out of order: %q", got)
	}
}

func TestSummarizeNoSentencePunctuation(t *testing.T) {
	s := NewFrequency()
	got, err := s.Summarize("  just a fragment without punctuation  ", 3)
	if err != nil {
		t.Fatal(err)
	}
	if got != "just a fragment without punctuation" {
		t.Errorf("got %q", got)
	}
}
