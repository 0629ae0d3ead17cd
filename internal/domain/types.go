package domain

// Domain is the coarse category a chunk belongs to, used to scope retrieval.
type Domain string

const (
	DomainResume   Domain = "resume"
	DomainPersonal Domain = "personal"
)

// ChunkRecord is the atomic indexed unit: one embedded substring of a source
// document. IDs are assigned by insertion order during an index build and are
// stable for the lifetime of that index generation.
type ChunkRecord struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Source    string    `json:"source"`
	Domain    Domain    `json:"domain"`
	Embedding []float64 `json:"embedding"`
}

// EffectiveDomain returns the record's domain, defaulting to resume for
// legacy indexes written before domains existed.
func (r ChunkRecord) EffectiveDomain() Domain {
	if r.Domain == "" {
		return DomainResume
	}
	return r.Domain
}

// ScoredChunk is a chunk record extended with its similarity score and an
// ephemeral citation id. CIDs are positional ("C1", "C2", ...) and assigned
// only after final ranking; they are not a property of the stored record.
type ScoredChunk struct {
	ChunkRecord
	Score float64
	CID   string
}
