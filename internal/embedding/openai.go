// Package embedding adapts a hosted embedding API to the domain Embedder
// interface. Vectors leave this package unit-normalized.
package embedding

import (
	"context"
	"fmt"
	"math"

	openai "github.com/sashabaranov/go-openai"
)

// batchSize bounds the request payload; batching never changes output order
// or values.
const batchSize = 64

// normEpsilon guards the division for degenerate all-zero vectors.
const normEpsilon = 1e-12

// Client embeds text through an OpenAI-compatible embeddings endpoint.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient wraps an already-constructed API client. The client is injected
// so the embedding and chat adapters can share one connection.
func NewClient(api *openai.Client, model string) *Client {
	if model == "" {
		model = string(openai.SmallEmbedding3)
	}
	return &Client{api: api, model: model}
}

// Embed returns the unit-normalized embedding of a single text.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	vecs, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

// EmbedBatch returns one unit vector per input text, order-preserving.
// Requests are issued in sub-batches sequentially; any API error aborts the
// whole call. There is no retry, the failure surfaces to the caller.
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	out := make([][]float64, 0, len(texts))
	for start := 0; start < len(texts); start += batchSize {
		end := start + batchSize
		if end > len(texts) {
			end = len(texts)
		}
		resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
			Model: openai.EmbeddingModel(c.model),
			Input: texts[start:end],
		})
		if err != nil {
			return nil, fmt.Errorf("create embeddings: %w", err)
		}
		if len(resp.Data) != end-start {
			return nil, fmt.Errorf("embeddings response: want %d vectors, got %d", end-start, len(resp.Data))
		}
		for _, d := range resp.Data {
			vec := make([]float64, len(d.Embedding))
			for i, x := range d.Embedding {
				vec[i] = float64(x)
			}
			out = append(out, Normalize(vec))
		}
	}
	return out, nil
}

// Normalize scales v to unit Euclidean length. The epsilon floor keeps
// all-zero vectors finite instead of producing NaN.
func Normalize(v []float64) []float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	norm := math.Sqrt(sum)
	if norm < normEpsilon {
		norm = normEpsilon
	}
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / norm
	}
	return out
}
