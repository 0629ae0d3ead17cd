package chunker

import (
	"strings"
	"testing"
)

func TestChunkSplitsParagraphsWithOverlap(t *testing.T) {
	p1 := strings.Repeat("a", 80) + " endmarkerone"
	p2 := strings.Repeat("b", 80) + " endmarkertwo"
	p3 := strings.Repeat("c", 80) + " endmarkerthree"
	text := p1 + "\n\n" + p2 + "\n\n" + p3

	c := New(120, 20)
	chunks := c.Chunk(text)

	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	for i, ch := range chunks {
		if len(ch) <= 50 {
			t.Errorf("chunk %d shorter than floor: %d chars", i, len(ch))
		}
		if len(ch) > 120+20 {
			t.Errorf("chunk %d exceeds size+overlap bound: %d chars", i, len(ch))
		}
	}
	// the second chunk carries the tail of the first as overlap
	if !strings.Contains(chunks[1], "endmarkerone") {
		t.Errorf("chunk 1 missing overlap from previous chunk: %q", chunks[1])
	}
	if !strings.Contains(chunks[2], "endmarkertwo") {
		t.Errorf("chunk 2 missing overlap from previous chunk: %q", chunks[2])
	}
}

func TestChunkFloor(t *testing.T) {
	c := New(800, 150)

	if got := c.Chunk("too short to index"); len(got) != 0 {
		t.Errorf("expected short text to be discarded, got %v", got)
	}
	exactly50 := strings.Repeat("x", 50)
	if got := c.Chunk(exactly50); len(got) != 0 {
		t.Errorf("expected 50-char chunk to be discarded, got %v", got)
	}
	over50 := strings.Repeat("x", 51)
	if got := c.Chunk(over50); len(got) != 1 {
		t.Errorf("expected 51-char chunk to survive, got %v", got)
	}
}

func TestChunkCharacterFallback(t *testing.T) {
	// no separators at all forces the character-level windows
	text := strings.Repeat("a", 500)
	c := New(120, 20)
	chunks := c.Chunk(text)

	if len(chunks) != 5 {
		t.Fatalf("expected 5 chunks, got %d", len(chunks))
	}
	for i, ch := range chunks {
		if len(ch) > 140 {
			t.Errorf("chunk %d exceeds bound: %d chars", i, len(ch))
		}
	}
}

func TestChunkSmallTextSinglePiece(t *testing.T) {
	text := "This single sentence is comfortably under the configured chunk size limit."
	c := New(800, 150)
	chunks := c.Chunk(text)

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != text {
		t.Errorf("expected chunk to equal input, got %q", chunks[0])
	}
}

func TestChunkTrimsWhitespace(t *testing.T) {
	text := "   " + strings.Repeat("word ", 15) + "\n\n"
	c := New(800, 150)
	chunks := c.Chunk(text)

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != strings.TrimSpace(text) {
		t.Errorf("chunk not trimmed: %q", chunks[0])
	}
}
