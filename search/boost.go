package search

import (
	"strings"

	"github.com/poiesic/rowctx/core"
)

// Boost adjusts raw similarity scores with lexical-overlap heuristics
// between the original (unexpanded) query and each document's raw content.
// Each document starts at a multiplier of 1.0:
//
//   - every state term present in both query and document compounds the
//     state factor;
//   - every health term present in both compounds the health factor;
//   - the location factor applies once when query and document each contain
//     any location term;
//   - the penalty factor applies once when the query mentions the penalty
//     term but the document does not.
//
// The computation is local per document; documents never interact.
func Boost(scores []float64, query string, docs []*core.Document, b Boosts) []float64 {
	queryLower := strings.ToLower(query)
	boosted := make([]float64, len(scores))

	for i, doc := range docs {
		if i >= len(scores) {
			break
		}
		content := strings.ToLower(doc.Content)
		factor := 1.0

		for _, state := range b.StateTerms {
			if strings.Contains(queryLower, state) && strings.Contains(content, state) {
				factor *= b.StateFactor
			}
		}

		for _, health := range b.HealthTerms {
			if strings.Contains(queryLower, health) && strings.Contains(content, health) {
				factor *= b.HealthFactor
			}
		}

		if containsAny(queryLower, b.LocationTerms) && containsAny(content, b.LocationTerms) {
			factor *= b.LocationFactor
		}

		if b.PenaltyTerm != "" &&
			strings.Contains(queryLower, b.PenaltyTerm) && !strings.Contains(content, b.PenaltyTerm) {
			factor *= b.PenaltyFactor
		}

		boosted[i] = scores[i] * factor
	}

	return boosted
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
