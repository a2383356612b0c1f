// File: services/dialogue/fuzzy.go
package dialogue

import "strings"

// MatchParams tunes the fuzzy scorer per catalog kind. The weights and
// thresholds are part of the external contract; tests pin them.
type MatchParams struct {
	SubstringBonus     int
	TokenExact         int
	TokenPartial       int
	TypoBonus          int // 0 disables the edit-distance check
	Threshold          int
	ThresholdInclusive bool
}

var (
	// ItemMatch tolerates typos: menu item names are long and user-typed.
	ItemMatch = MatchParams{SubstringBonus: 80, TokenExact: 20, TokenPartial: 10, TypoBonus: 15, Threshold: 25}
	// CategoryMatch and RestaurantMatch favour containment of short names.
	CategoryMatch   = MatchParams{SubstringBonus: 100, TokenExact: 30, TokenPartial: 10, Threshold: 20, ThresholdInclusive: true}
	RestaurantMatch = MatchParams{SubstringBonus: 100, TokenExact: 30, TokenPartial: 10, Threshold: 20, ThresholdInclusive: true}
)

// ResolveName scores every candidate name against the query and returns the
// index of the best one, or -1 when nothing clears the acceptance threshold.
// Callers must treat -1 as "not found" and prompt the user, never guess.
func ResolveName(names []string, query string, p MatchParams) int {
	nq := normalizeName(query)
	if nq == "" {
		return -1
	}
	qTokens := strings.Fields(nq)

	best := -1
	bestScore := 0
	for i, name := range names {
		nc := normalizeName(name)
		if nc == "" {
			continue
		}
		// Exact normalized match short-circuits.
		if nc == nq {
			return i
		}

		score := 0
		if strings.Contains(nc, nq) || strings.Contains(nq, nc) {
			score += p.SubstringBonus
		}

		cTokens := strings.Fields(nc)
		for _, qt := range qTokens {
			for _, ct := range cTokens {
				if qt == ct {
					score += p.TokenExact
					break
				}
				if len(qt) > 2 && len(ct) > 2 &&
					(strings.Contains(ct, qt) || strings.Contains(qt, ct)) {
					score += p.TokenPartial
					break
				}
			}
		}

		if p.TypoBonus > 0 && len(nq) > 3 && levenshtein(nq, nc) <= 2 {
			score += p.TypoBonus
		}

		if score > bestScore {
			bestScore = score
			best = i
		}
	}

	if best < 0 {
		return -1
	}
	if p.ThresholdInclusive {
		if bestScore >= p.Threshold {
			return best
		}
	} else if bestScore > p.Threshold {
		return best
	}
	return -1
}

// levenshtein computes the edit distance between two strings.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
