// Package router classifies free-text questions into a domain hint and
// derives ensure-terms from a keyword trigger table.
package router

import (
	"sort"
	"strings"
)

// Hint is the coarse routing category derived from a question.
type Hint string

const (
	HintResume   Hint = "resume"
	HintPersonal Hint = "personal"
	HintBoth     Hint = "both"
	HintUnknown  Hint = "unknown"
)

// The two indicator sets are disjoint; a question matching both sets
// classifies as both.
var personalIndicators = []string{
	"hobby", "hobbies", "interest", "personal", "family",
	"music", "travel", "free time", "fun",
}

var resumeIndicators = []string{
	"work", "job", "experience", "skill", "project", "education",
	"company", "career", "role", "employer", "intern",
}

// Classify buckets a question by case-insensitive substring match against
// the indicator sets.
func Classify(question string) Hint {
	q := strings.ToLower(question)
	personal := matchesAny(q, personalIndicators)
	resume := matchesAny(q, resumeIndicators)
	switch {
	case personal && resume:
		return HintBoth
	case personal:
		return HintPersonal
	case resume:
		return HintResume
	default:
		return HintUnknown
	}
}

// EnsureRules maps a trigger substring to terms that must surface in
// retrieval results whenever the trigger appears in the question. The table
// models "when asked about X, always include context about Y even if it
// scores low".
type EnsureRules map[string][]string

// DefaultEnsureRules returns the shipped trigger table.
func DefaultEnsureRules() EnsureRules {
	return EnsureRules{
		"fynd": {"ratl.ai", "ratl"},
	}
}

// Terms returns the deduplicated ensure-terms for every trigger found in the
// question, in deterministic trigger order.
func (r EnsureRules) Terms(question string) []string {
	q := strings.ToLower(question)
	triggers := make([]string, 0, len(r))
	for t := range r {
		triggers = append(triggers, t)
	}
	sort.Strings(triggers)

	var terms []string
	seen := make(map[string]bool)
	for _, trigger := range triggers {
		if !strings.Contains(q, strings.ToLower(trigger)) {
			continue
		}
		for _, term := range r[trigger] {
			folded := strings.ToLower(term)
			if !seen[folded] {
				seen[folded] = true
				terms = append(terms, term)
			}
		}
	}
	return terms
}

func matchesAny(folded string, indicators []string) bool {
	for _, ind := range indicators {
		if strings.Contains(folded, ind) {
			return true
		}
	}
	return false
}
