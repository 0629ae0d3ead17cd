// Package retriever ranks indexed chunks against a query vector. It combines
// cosine similarity with domain filtering and ensure-term promotion, and
// assigns positional citation ids to the final list.
package retriever

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"askme/internal/domain"
)

// cosineEpsilon keeps the similarity division finite for zero vectors.
const cosineEpsilon = 1e-12

// Options scope a retrieval call.
type Options struct {
	// Domain, when non-empty, keeps only records of that domain. Records
	// without a domain count as resume.
	Domain domain.Domain
	// EnsureTerms force any candidate containing one of them (case-insensitive
	// substring) to the front of the result, regardless of score.
	EnsureTerms []string
}

// Retrieve returns at most k chunks ranked for the query vector. Ensured
// matches come first in score order, then the remaining candidates by score
// descending; ties keep original index order. Citation ids C1..Ck are
// assigned on the final list.
func Retrieve(query []float64, records []domain.ChunkRecord, k int, opts Options) []domain.ScoredChunk {
	candidates := records
	if opts.Domain != "" {
		candidates = make([]domain.ChunkRecord, 0, len(records))
		for _, r := range records {
			if r.EffectiveDomain() == opts.Domain {
				candidates = append(candidates, r)
			}
		}
		if len(candidates) == 0 {
			return nil
		}
	}

	scored := make([]domain.ScoredChunk, len(candidates))
	for i, r := range candidates {
		scored[i] = domain.ScoredChunk{ChunkRecord: r, Score: Cosine(query, r.Embedding)}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	final := scored
	if terms := foldTerms(opts.EnsureTerms); len(terms) > 0 {
		ensured := make([]domain.ScoredChunk, 0, len(terms))
		placed := make(map[int]bool, len(terms))
		for _, c := range scored {
			if !placed[c.ID] && containsAny(c.Text, terms) {
				placed[c.ID] = true
				ensured = append(ensured, c)
			}
		}
		if len(ensured) > 0 {
			final = make([]domain.ScoredChunk, 0, len(scored))
			final = append(final, ensured...)
			for _, c := range scored {
				if !placed[c.ID] {
					final = append(final, c)
				}
			}
		}
	}

	if k > 0 && len(final) > k {
		final = final[:k]
	}
	for i := range final {
		final[i].CID = fmt.Sprintf("C%d", i+1)
	}
	return final
}

// Cosine returns the cosine similarity of a and b. Index and query vectors
// are already unit-normalized, so this is nearly a dot product, but the
// norms are still part of the division so scores match the persisted
// pipeline exactly.
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	return dot / (math.Sqrt(na)*math.Sqrt(nb) + cosineEpsilon)
}

func foldTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func containsAny(text string, folded []string) bool {
	lower := strings.ToLower(text)
	for _, t := range folded {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}
