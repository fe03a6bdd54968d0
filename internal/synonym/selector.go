// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synonym

import (
	"sort"
	"strings"
)

// DefaultLimit is the number of synonyms kept for prompts.
const DefaultLimit = 3

// AliasCount pairs an alias with its number of occurrences in a paper.
type AliasCount struct {
	Alias string `json:"alias" yaml:"alias"`
	Count int    `json:"count" yaml:"count"`
}

// Rank counts every alias of primaryID in paperText and returns those that
// occur at least once, most frequent first. The primary identifier, empty
// strings, and duplicates are dropped before counting. Equal counts are
// ordered lexicographically so the ranking does not depend on the order in
// which the alias source returned its rows.
func Rank(primaryID string, aliases []string, paperText string) []AliasCount {
	seen := make(map[string]bool, len(aliases))
	var ranked []AliasCount
	for _, alias := range aliases {
		if alias == "" || alias == primaryID || seen[alias] {
			continue
		}
		seen[alias] = true

		if n := CountOccurrences(paperText, alias); n > 0 {
			ranked = append(ranked, AliasCount{Alias: alias, Count: n})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Alias < ranked[j].Alias
	})
	return ranked
}

// SelectTopAliases returns at most limit aliases of primaryID that appear in
// paperText, ordered by descending occurrence count. A non-positive limit
// uses DefaultLimit. The result is empty, never nil, when nothing matches.
func SelectTopAliases(primaryID string, aliases []string, paperText string, limit int) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}
	ranked := Rank(primaryID, aliases, paperText)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	top := make([]string, 0, len(ranked))
	for _, r := range ranked {
		top = append(top, r.Alias)
	}
	return top
}

// GeneContext renders a gene identifier and its synonyms for substitution
// into prompt templates: "PF3D7_1133400 ( also known as AMA1 or AMA-1 )", or
// the bare identifier when there are no synonyms.
func GeneContext(geneID string, synonyms []string) string {
	if len(synonyms) == 0 {
		return geneID
	}
	return geneID + " ( also known as " + strings.Join(synonyms, " or ") + " )"
}
