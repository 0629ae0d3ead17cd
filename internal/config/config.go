// Package config loads the application configuration from YAML with
// environment-variable overrides for the tunable knobs.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// OpenAIConfig holds connection details shared by the embedding and chat
// clients. The key itself stays in the environment.
type OpenAIConfig struct {
	APIKeyEnv string `yaml:"api_key_env"`
	BaseURL   string `yaml:"base_url,omitempty"`
}

// EmbeddingConfig selects the embedding model.
type EmbeddingConfig struct {
	Model string `yaml:"model"`
}

// ChatConfig selects the chat completion model.
type ChatConfig struct {
	Model string `yaml:"model"`
}

// ChunkerConfig configures chunk size and overlap, in characters.
type ChunkerConfig struct {
	SizeChars    int `yaml:"size_chars"`
	OverlapChars int `yaml:"overlap_chars"`
}

// RetrievalConfig caps the number of chunks returned per question.
type RetrievalConfig struct {
	TopK int `yaml:"top_k"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// DocsConfig points at the corpus directory.
type DocsConfig struct {
	Dir string `yaml:"dir"`
}

// IndexConfig points at the index artifact. LegacyPath is only ever read,
// and only when the primary path is absent.
type IndexConfig struct {
	Path       string `yaml:"path"`
	LegacyPath string `yaml:"legacy_path"`
}

// AppConfig is the root application configuration.
type AppConfig struct {
	OpenAI    OpenAIConfig    `yaml:"openai"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Chat      ChatConfig      `yaml:"chat"`
	Chunker   ChunkerConfig   `yaml:"chunker"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	Server    ServerConfig    `yaml:"server"`
	Docs      DocsConfig      `yaml:"docs"`
	Index     IndexConfig     `yaml:"index"`
}

// Load reads a config from path. A missing file yields the defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/askme/config.yaml.
// If neither exists, it writes defaults to the user path and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnvOverrides(cfg)
	return cfg, userPath, nil
}

// Save writes the config to path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// APIKey resolves the API key from the configured environment variable.
// A missing key is a startup error; the process must not serve without it.
func (c *AppConfig) APIKey() (string, error) {
	key := os.Getenv(c.OpenAI.APIKeyEnv)
	if key == "" {
		return "", errors.New("missing API key in env " + c.OpenAI.APIKeyEnv)
	}
	return key, nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "askme", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *AppConfig) {
	if cfg.OpenAI.APIKeyEnv == "" {
		cfg.OpenAI.APIKeyEnv = "OPENAI_API_KEY"
	}
	if cfg.Embedding.Model == "" {
		cfg.Embedding.Model = "text-embedding-3-small"
	}
	if cfg.Chat.Model == "" {
		cfg.Chat.Model = "gpt-4o-mini"
	}
	if cfg.Chunker.SizeChars == 0 {
		cfg.Chunker.SizeChars = 800
	}
	if cfg.Chunker.OverlapChars == 0 {
		cfg.Chunker.OverlapChars = 150
	}
	if cfg.Retrieval.TopK == 0 {
		cfg.Retrieval.TopK = 5
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Docs.Dir == "" {
		cfg.Docs.Dir = "docs"
	}
	if cfg.Index.Path == "" {
		cfg.Index.Path = filepath.Join("data", "index.json")
	}
	if cfg.Index.LegacyPath == "" {
		cfg.Index.LegacyPath = "embeddings.json"
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	setString(&cfg.Embedding.Model, "ASKME_EMBED_MODEL")
	setString(&cfg.Chat.Model, "ASKME_CHAT_MODEL")
	setInt(&cfg.Chunker.SizeChars, "ASKME_CHUNK_SIZE")
	setInt(&cfg.Chunker.OverlapChars, "ASKME_CHUNK_OVERLAP")
	setInt(&cfg.Retrieval.TopK, "ASKME_TOP_K")
	setInt(&cfg.Server.Port, "ASKME_PORT")
	setString(&cfg.Docs.Dir, "ASKME_DOCS_DIR")
	setString(&cfg.Index.Path, "ASKME_INDEX_PATH")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			*dst = n
		}
	}
}
