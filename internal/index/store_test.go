package index

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"askme/internal/domain"
)

func sampleRecords() []domain.ChunkRecord {
	return []domain.ChunkRecord{
		{ID: 0, Text: "first chunk of the resume document", Source: "resume.txt", Domain: domain.DomainResume, Embedding: []float64{1, 0}},
		{ID: 1, Text: "second chunk about personal interests", Source: "about.md", Domain: domain.DomainPersonal, Embedding: []float64{0, 1}},
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "index.json")
	store := NewFileStore(path, "")

	require.NoError(t, store.Save(sampleRecords()))

	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, sampleRecords(), got)
}

func TestLoadMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "index.json"), "")
	_, err := store.Load()
	require.ErrorIs(t, err, ErrMissingOrEmpty)
}

func TestLoadEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	store := NewFileStore(path, "")
	_, err := store.Load()
	require.ErrorIs(t, err, ErrMissingOrEmpty)
}

func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewFileStore(path, "")
	_, err := store.Load()
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrMissingOrEmpty))
}

func TestLoadLegacyFallback(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "index.json")
	legacy := filepath.Join(dir, "embeddings.json")

	legacyStore := NewFileStore(legacy, "")
	require.NoError(t, legacyStore.Save(sampleRecords()))

	store := NewFileStore(primary, legacy)
	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, sampleRecords(), got)
}

func TestLoadPrimaryWinsOverLegacy(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "index.json")
	legacy := filepath.Join(dir, "embeddings.json")

	primaryRecords := sampleRecords()
	legacyRecords := sampleRecords()[:1]
	require.NoError(t, NewFileStore(primary, "").Save(primaryRecords))
	require.NoError(t, NewFileStore(legacy, "").Save(legacyRecords))

	got, err := NewFileStore(primary, legacy).Load()
	require.NoError(t, err)
	require.Equal(t, primaryRecords, got)
}

func TestSaveReplacesPriorGeneration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	store := NewFileStore(path, "")

	require.NoError(t, store.Save(sampleRecords()))
	replacement := []domain.ChunkRecord{
		{ID: 0, Text: "the only chunk in the new generation of the index", Source: "resume.txt", Domain: domain.DomainResume, Embedding: []float64{1}},
	}
	require.NoError(t, store.Save(replacement))

	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, replacement, got)
}
