// Package service wires the chunker, embedder, index store, retriever and
// answer composer into the two operations the entrypoints need: building the
// index and answering questions.
package service

import (
	"context"
	"fmt"

	"askme/internal/answer"
	"askme/internal/docs"
	"askme/internal/domain"
	"askme/internal/index"
	"askme/internal/retriever"
	"askme/internal/router"
)

// QA is the application core. The record slice is loaded once and read-only
// afterwards, so concurrent requests may share it.
type QA struct {
	docsDir    string
	chunker    domain.Chunker
	embedder   domain.Embedder
	store      domain.IndexStore
	composer   *answer.Composer
	summarizer domain.Summarizer
	rules      router.EnsureRules
	topK       int

	records []domain.ChunkRecord
}

// New constructs the service from its collaborators. Every external client
// is injected; the service holds no globals.
func New(docsDir string, chunker domain.Chunker, embedder domain.Embedder, store domain.IndexStore,
	composer *answer.Composer, summarizer domain.Summarizer, rules router.EnsureRules, topK int) *QA {
	if topK <= 0 {
		topK = 5
	}
	if rules == nil {
		rules = router.DefaultEnsureRules()
	}
	return &QA{
		docsDir:    docsDir,
		chunker:    chunker,
		embedder:   embedder,
		store:      store,
		composer:   composer,
		summarizer: summarizer,
		rules:      rules,
		topK:       topK,
	}
}

// BuildIndex loads the corpus, chunks and embeds it, and persists a fresh
// index generation, fully replacing the prior one. It returns the number of
// indexed chunks and a short corpus summary.
func (s *QA) BuildIndex(ctx context.Context) (int, string, error) {
	documents, err := docs.Load(s.docsDir)
	if err != nil {
		return 0, "", err
	}

	var records []domain.ChunkRecord
	var texts []string
	var corpus string
	for _, d := range documents {
		for _, text := range s.chunker.Chunk(d.Text) {
			records = append(records, domain.ChunkRecord{
				ID:     len(records),
				Text:   text,
				Source: d.Source,
				Domain: d.Domain,
			})
			texts = append(texts, text)
		}
		corpus += "\n" + d.Text
	}
	if len(records) == 0 {
		return 0, "", fmt.Errorf("documents produced no chunks: %w", docs.ErrNoDocuments)
	}

	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return 0, "", fmt.Errorf("embed chunks: %w", err)
	}
	for i := range records {
		records[i].Embedding = vectors[i]
	}

	if err := s.store.Save(records); err != nil {
		return 0, "", fmt.Errorf("save index: %w", err)
	}
	s.records = records

	var summary string
	if s.summarizer != nil {
		summary, err = s.summarizer.Summarize(corpus, 3)
		if err != nil {
			return 0, "", fmt.Errorf("summarize corpus: %w", err)
		}
	}
	return len(records), summary, nil
}

// LoadIndex reads the persisted index into memory for serving. Call it once
// at startup before answering.
func (s *QA) LoadIndex() error {
	records, err := s.store.Load()
	if err != nil {
		return err
	}
	s.records = records
	return nil
}

// Summary summarizes the loaded index's text, for display surfaces.
func (s *QA) Summary() string {
	if s.summarizer == nil || len(s.records) == 0 {
		return ""
	}
	var corpus string
	for _, r := range s.records {
		corpus += r.Text + " "
	}
	summary, err := s.summarizer.Summarize(corpus, 3)
	if err != nil {
		return ""
	}
	return summary
}

// Retrieve classifies the question, derives ensure-terms and returns the
// ranked chunks under the routing policy:
//   - ensure-terms present: search the whole index, terms promoted;
//   - personal: filtered search, one unfiltered retry when it comes up empty;
//   - resume: filtered search, no fallback;
//   - both/unknown: unfiltered search.
func (s *QA) Retrieve(ctx context.Context, question string) ([]domain.ScoredChunk, error) {
	if len(s.records) == 0 {
		return nil, index.ErrMissingOrEmpty
	}
	queryVec, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}

	if terms := s.rules.Terms(question); len(terms) > 0 {
		return retriever.Retrieve(queryVec, s.records, s.topK, retriever.Options{EnsureTerms: terms}), nil
	}
	switch router.Classify(question) {
	case router.HintPersonal:
		results := retriever.Retrieve(queryVec, s.records, s.topK, retriever.Options{Domain: domain.DomainPersonal})
		if len(results) == 0 {
			results = retriever.Retrieve(queryVec, s.records, s.topK, retriever.Options{})
		}
		return results, nil
	case router.HintResume:
		return retriever.Retrieve(queryVec, s.records, s.topK, retriever.Options{Domain: domain.DomainResume}), nil
	default:
		return retriever.Retrieve(queryVec, s.records, s.topK, retriever.Options{}), nil
	}
}

// Answer runs retrieval for the question and composes the final reply.
func (s *QA) Answer(ctx context.Context, question string) (string, error) {
	results, err := s.Retrieve(ctx, question)
	if err != nil {
		return "", err
	}
	return s.composer.Answer(ctx, question, results)
}
