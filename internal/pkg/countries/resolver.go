package countries

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/atlasworks/travelatlas/internal/core/domain"
)

// similarityThreshold is the minimum normalized Levenshtein similarity
// for a fuzzy match to be accepted.
const similarityThreshold = 0.88

var (
	byCode  map[string]*domain.Country
	byAlias map[string]*domain.Country
)

func init() {
	byCode = make(map[string]*domain.Country, len(dataset))
	byAlias = make(map[string]*domain.Country, len(dataset)*2)
	for i := range dataset {
		c := &dataset[i]
		byCode[c.Code] = c
		byAlias[normalize(c.Name)] = c
		for _, a := range c.Aliases {
			byAlias[normalize(a)] = c
		}
	}
}

// All returns every country in the dataset, ordered by name.
func All() []domain.Country {
	out := make([]domain.Country, len(dataset))
	copy(out, dataset)
	return out
}

// ByCode looks up a country by its ISO alpha-2 code (case-insensitive).
func ByCode(code string) (*domain.Country, bool) {
	c, ok := byCode[strings.ToLower(strings.TrimSpace(code))]
	return c, ok
}

// Resolve finds the country best matching free-form text.
// Pipeline: alias/name table lookup, then substring match, then Levenshtein
// similarity against every name and alias with a 0.88 acceptance threshold.
// Returns nil when nothing matches.
func Resolve(q string) *domain.Country {
	norm := normalize(q)
	if norm == "" {
		return nil
	}

	// Two-letter input is treated as an ISO code first.
	if len(norm) == 2 {
		if c, ok := byCode[norm]; ok {
			return c
		}
	}

	if c, ok := byAlias[norm]; ok {
		return c
	}

	// Substring in either direction, longest candidate name wins so that
	// "the netherlands" beats shorter accidental hits.
	var subMatch *domain.Country
	subLen := 0
	for key, c := range byAlias {
		if len(key) < 4 {
			continue // too short to be a meaningful substring
		}
		if strings.Contains(norm, key) || strings.Contains(key, norm) {
			if len(key) > subLen {
				subMatch, subLen = c, len(key)
			}
		}
	}
	if subMatch != nil {
		return subMatch
	}

	// Fuzzy pass over every name and alias.
	var best *domain.Country
	bestSim := 0.0
	for key, c := range byAlias {
		sim := similarity(norm, key)
		if sim > bestSim {
			best, bestSim = c, sim
		}
	}
	if bestSim >= similarityThreshold {
		return best
	}
	return nil
}

// similarity is 1 - dist/maxLen over already-normalized strings.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 0
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1 - float64(d)/float64(maxLen)
}

// normalize lowercases, trims, folds common diacritics to ASCII, and
// collapses internal whitespace.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		if folded, ok := diacriticFold[r]; ok {
			r = folded
		}
		switch {
		case r == ' ' || r == '\t' || r == '-' || r == '_':
			if !prevSpace && b.Len() > 0 {
				b.WriteRune(' ')
				prevSpace = true
			}
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			prevSpace = false
		}
		// Anything else (punctuation, unmapped runes) is dropped.
	}
	return strings.TrimSpace(b.String())
}

var diacriticFold = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ä': 'a', 'ã': 'a', 'å': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'ö': 'o', 'õ': 'o', 'ø': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
	'ñ': 'n', 'ç': 'c', 'ß': 's', 'ı': 'i', 'ş': 's', 'ğ': 'g',
}
