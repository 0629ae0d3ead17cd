package chunker

import "strings"

// minChunkChars is the floor below which a trimmed chunk is discarded.
// Fragments that short carry no useful context for retrieval.
const minChunkChars = 50

// RecursiveChunker splits text into size-bounded chunks with shared overlap.
// It tries to split at the largest break unit first (paragraph, line,
// sentence, word) and only falls back to smaller separators for pieces that
// are still oversized.
type RecursiveChunker struct {
	sizeChars    int
	overlapChars int
	separators   []string
}

// New creates a chunker producing chunks of at most roughly sizeChars
// characters, with overlapChars characters shared between adjacent chunks.
func New(sizeChars, overlapChars int) *RecursiveChunker {
	if sizeChars <= 0 {
		sizeChars = 800
	}
	if overlapChars < 0 {
		overlapChars = 0
	}
	if overlapChars >= sizeChars {
		overlapChars = sizeChars / 4
	}
	return &RecursiveChunker{
		sizeChars:    sizeChars,
		overlapChars: overlapChars,
		separators:   []string{"\n\n", "\n", ". ", " ", ""},
	}
}

// Chunk splits one document's text into trimmed chunks. Chunks of 50
// characters or fewer after trimming are dropped.
func (c *RecursiveChunker) Chunk(text string) []string {
	pieces := c.split(text, 0)
	merged := c.merge(pieces)
	out := make([]string, 0, len(merged))
	for _, m := range merged {
		t := strings.TrimSpace(m)
		if len(t) > minChunkChars {
			out = append(out, t)
		}
	}
	return out
}

// split breaks text into pieces no longer than sizeChars, recursing into the
// next smaller separator for pieces a single separator cannot bound.
func (c *RecursiveChunker) split(text string, level int) []string {
	if len(text) <= c.sizeChars {
		if text == "" {
			return nil
		}
		return []string{text}
	}
	sep := c.separators[level]
	if sep == "" {
		// Character-level fallback: fixed windows with overlap.
		step := c.sizeChars - c.overlapChars
		if step <= 0 {
			step = c.sizeChars
		}
		var parts []string
		for start := 0; start < len(text); start += step {
			end := start + c.sizeChars
			if end > len(text) {
				end = len(text)
			}
			parts = append(parts, text[start:end])
			if end == len(text) {
				break
			}
		}
		return parts
	}
	var parts []string
	for _, piece := range strings.SplitAfter(text, sep) {
		if piece == "" {
			continue
		}
		if len(piece) > c.sizeChars {
			parts = append(parts, c.split(piece, level+1)...)
		} else {
			parts = append(parts, piece)
		}
	}
	return parts
}

// merge greedily packs pieces into chunks of at most sizeChars, carrying the
// tail of each finished chunk into the next one as overlap.
func (c *RecursiveChunker) merge(pieces []string) []string {
	var chunks []string
	var cur strings.Builder
	for _, p := range pieces {
		if cur.Len() > 0 && cur.Len()+len(p) > c.sizeChars {
			chunk := cur.String()
			chunks = append(chunks, chunk)
			cur.Reset()
			if c.overlapChars > 0 && len(chunk) > c.overlapChars {
				cur.WriteString(chunk[len(chunk)-c.overlapChars:])
			}
		}
		cur.WriteString(p)
	}
	if cur.Len() > 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}
