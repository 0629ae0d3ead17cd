// Package docs loads the personal corpus from a fixed set of base filenames
// and assigns each document a retrieval domain.
package docs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"askme/internal/domain"
)

// ErrNoDocuments reports that none of the known base documents exist.
var ErrNoDocuments = errors.New("no documents found")

// UnsupportedFormatError reports a source file whose extension has no
// extraction function.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return "unsupported document format: " + e.Ext
}

// Document is one source file's extracted text with its provenance and
// domain.
type Document struct {
	Source string
	Text   string
	Domain domain.Domain
}

// baseNames are the recognized document base names, in load order. For each
// base, the first extension present wins and the rest are ignored.
var baseNames = []string{"resume", "profile", "personal", "about", "bio", "interests"}

var domainByBase = map[string]domain.Domain{
	"resume":    domain.DomainResume,
	"profile":   domain.DomainResume,
	"personal":  domain.DomainPersonal,
	"about":     domain.DomainPersonal,
	"bio":       domain.DomainPersonal,
	"interests": domain.DomainPersonal,
}

// extensions lists the supported formats in priority order. Each maps to a
// dedicated extraction function in extractors.
var extensions = []string{".txt", ".md"}

var extractors = map[string]func(path string) (string, error){
	".txt": extractPlain,
	".md":  extractPlain,
}

// Load reads every known base document under dir. Zero documents is a build
// error.
func Load(dir string) ([]Document, error) {
	var out []Document
	for _, base := range baseNames {
		for _, ext := range extensions {
			path := filepath.Join(dir, base+ext)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			text, err := Extract(path)
			if err != nil {
				return nil, err
			}
			out = append(out, Document{
				Source: base + ext,
				Text:   text,
				Domain: domainByBase[base],
			})
			break
		}
	}
	if len(out) == 0 {
		return nil, ErrNoDocuments
	}
	return out, nil
}

// Extract dispatches on the file extension to the matching extraction
// function.
func Extract(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	extract, ok := extractors[ext]
	if !ok {
		return "", &UnsupportedFormatError{Ext: ext}
	}
	text, err := extract(path)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", filepath.Base(path), err)
	}
	return text, nil
}

func extractPlain(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
