// Package answer turns ranked chunks into a cited context block and asks the
// chat model for the final reply.
package answer

import (
	"context"
	"fmt"
	"strings"

	"askme/internal/domain"
)

const systemPrompt = `You answer questions about one person using only the provided context.
Reply with at most two one-sentence bullet points.
Cite the context blocks you used with their [C#] tags.
If the context does not contain the answer, say you don't know.
Never fabricate facts.`

// Composer assembles the prompt and delegates to a chat completion client.
type Composer struct {
	completer domain.Completer
}

// New creates a Composer over the given completion client.
func New(completer domain.Completer) *Composer {
	return &Composer{completer: completer}
}

// Context renders ranked chunks into the bracketed-citation block fed to the
// model. Block order follows result order, so citation tags line up with the
// retriever's ranking.
func Context(results []domain.ScoredChunk) string {
	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "[%s] (%s) %s\n\n", r.CID, r.Source, r.Text)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Answer issues one chat completion request for the question over the ranked
// chunks. Completion failures surface unmodified.
func (c *Composer) Answer(ctx context.Context, question string, results []domain.ScoredChunk) (string, error) {
	user := fmt.Sprintf("Context:\n%s\n\nQuestion: %s", Context(results), question)
	reply, err := c.completer.Complete(ctx, systemPrompt, user)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	return reply, nil
}
