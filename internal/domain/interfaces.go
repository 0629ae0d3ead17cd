package domain

import "context"

// Chunker splits raw document text into overlapping pieces suitable for
// embedding.
type Chunker interface {
	Chunk(text string) []string
}

// Embedder converts free text into unit-normalized embedding vectors.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
}

// Completer issues a single chat completion request.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// IndexStore persists one generation of chunk records as a whole.
type IndexStore interface {
	Load() ([]ChunkRecord, error)
	Save(records []ChunkRecord) error
}

// Summarizer produces a brief summary of the provided text.
type Summarizer interface {
	Summarize(text string, maxSentences int) (string, error)
}
