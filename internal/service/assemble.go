package service

import (
	openai "github.com/sashabaranov/go-openai"

	"askme/internal/answer"
	"askme/internal/chunker"
	"askme/internal/config"
	"askme/internal/embedding"
	"askme/internal/index"
	"askme/internal/router"
	"askme/internal/summarizer"
)

// FromConfig assembles the service with real API clients. One OpenAI client
// is shared between the embedding and chat adapters.
func FromConfig(cfg *config.AppConfig) (*QA, error) {
	key, err := cfg.APIKey()
	if err != nil {
		return nil, err
	}
	clientCfg := openai.DefaultConfig(key)
	if cfg.OpenAI.BaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAI.BaseURL
	}
	api := openai.NewClientWithConfig(clientCfg)

	return New(
		cfg.Docs.Dir,
		chunker.New(cfg.Chunker.SizeChars, cfg.Chunker.OverlapChars),
		embedding.NewClient(api, cfg.Embedding.Model),
		index.NewFileStore(cfg.Index.Path, cfg.Index.LegacyPath),
		answer.New(answer.NewOpenAIChat(api, cfg.Chat.Model)),
		summarizer.NewFrequency(),
		router.DefaultEnsureRules(),
		cfg.Retrieval.TopK,
	), nil
}
