package search

import "strings"

// ExpandQuery rewrites a raw query to improve lexical overlap with indexed
// rows. The query is lower-cased, state aliases inject abbreviations while
// retaining the matched phrase, health aliases replace condition names with
// their synonym expansions, and contextual keywords append likely column
// names. All matching is substring-based and applied in rule order.
func ExpandQuery(query string, rules Rules) string {
	processed := strings.ToLower(query)

	for _, alias := range rules.StateAliases {
		if strings.Contains(processed, alias.Term) {
			processed = strings.ReplaceAll(processed, alias.Term, alias.Expansion)
		}
	}

	for _, alias := range rules.HealthAliases {
		if strings.Contains(processed, alias.Term) {
			processed = strings.ReplaceAll(processed, alias.Term, alias.Expansion)
		}
	}

	for _, inj := range rules.Injections {
		for _, trigger := range inj.Triggers {
			if strings.Contains(processed, trigger) {
				processed += " " + inj.Tokens
				break
			}
		}
	}

	return processed
}
