package matching

import (
	"math"
	"strings"

	"github.com/villagekeep/villagekeep-backend/internal/domain/catalog"
)

type MatchType string

const (
	MatchTypeName MatchType = "name"
	MatchTypeSKU  MatchType = "sku"
)

const (
	// minMatchScore is the hard acceptance floor: anything below it is
	// noise, not a candidate.
	minMatchScore = 70
	// skuPreferenceFloor: a SKU score only outranks the name score when it
	// is at least this strong.
	skuPreferenceFloor = 90
)

// MatchInput is the slice of a canonical record the matcher cares about.
type MatchInput struct {
	Name string
	SKU  string
}

// Match is the winning candidate for one input record.
type Match struct {
	Product catalog.ScrapedProduct
	Score   int
	Type    MatchType
}

func normalizeScoreInput(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// MatchScore rates two strings 0-100: 100 for an exact match ignoring case
// and whitespace, 85 for containment either way, otherwise the fraction of
// tokens from s1 that pair up with a token of s2 (equal or containing in
// either direction, each s2 token usable once), scaled over the larger
// token count. This is deliberately a different scorer from Similarity:
// search wants a normalized [0,1] trigram measure, the matcher wants this
// integer heuristic.
func MatchScore(s1, s2 string) int {
	a := normalizeScoreInput(s1)
	b := normalizeScoreInput(s2)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 85
	}

	tokensA := strings.Fields(a)
	tokensB := strings.Fields(b)
	used := make([]bool, len(tokensB))
	matched := 0
	for _, ta := range tokensA {
		for j, tb := range tokensB {
			if used[j] {
				continue
			}
			if ta == tb || strings.Contains(ta, tb) || strings.Contains(tb, ta) {
				used[j] = true
				matched++
				break
			}
		}
	}

	denom := len(tokensA)
	if len(tokensB) > denom {
		denom = len(tokensB)
	}
	return int(math.Round(float64(matched) / float64(denom) * 100))
}

// FindBestMatch scans the candidate pool and keeps the single best-scoring
// product. Each candidate competes on its SKU score only when both sides
// carry a SKU, the SKU score clears skuPreferenceFloor and beats the name
// score; otherwise it competes on the name score. First-seen wins exact
// ties. No match is returned when the pool is empty or the best score is
// under the floor.
func FindBestMatch(rec MatchInput, pool []catalog.ScrapedProduct) (Match, bool) {
	var best Match
	for _, cand := range pool {
		nameScore := MatchScore(rec.Name, cand.Name)
		score := nameScore
		matchType := MatchTypeName
		if rec.SKU != "" && cand.SKU != "" {
			skuScore := MatchScore(rec.SKU, cand.SKU)
			if skuScore >= skuPreferenceFloor && skuScore > nameScore {
				score = skuScore
				matchType = MatchTypeSKU
			}
		}
		if score > best.Score {
			best = Match{Product: cand, Score: score, Type: matchType}
		}
	}
	if best.Score < minMatchScore {
		return Match{}, false
	}
	return best, true
}
