package matching

import (
	"time"

	"github.com/villagekeep/villagekeep-backend/internal/domain/catalog"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// PriorityForScore tiers a match score: >=90 high, >=80 medium, else low.
func PriorityForScore(score int) Priority {
	switch {
	case score >= 90:
		return PriorityHigh
	case score >= 80:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Opportunity is one house with a usable match and at least one proposed
// enrichment. Computed per scan and discarded, never persisted.
type Opportunity struct {
	House       catalog.House          `json:"house"`
	Matched     catalog.ScrapedProduct `json:"matched"`
	MatchScore  int                    `json:"match_score"`
	MatchType   MatchType              `json:"match_type"`
	Enrichments []catalog.Enrichment   `json:"enrichments"`
	Priority    Priority               `json:"priority"`
}

type ScanResult struct {
	Success            bool          `json:"success"`
	TotalScanned       int           `json:"total_items_scanned"`
	OpportunitiesFound int           `json:"opportunities_found"`
	HighPriority       int           `json:"high_priority"`
	MediumPriority     int           `json:"medium_priority"`
	LowPriority        int           `json:"low_priority"`
	Opportunities      []Opportunity `json:"opportunities"`
	IndexSize          int           `json:"index_size"`
	GeneratedAt        time.Time     `json:"generated_at"`
}

// Scan runs the matcher and the enrichment detector over every house
// against a fixed candidate index and aggregates counts per priority tier.
// It is read-only over its inputs.
func Scan(houses []catalog.House, index []catalog.ScrapedProduct) ScanResult {
	result := ScanResult{
		Success:      true,
		TotalScanned: len(houses),
		IndexSize:    len(index),
		GeneratedAt:  time.Now().UTC(),
	}

	for _, house := range houses {
		input := MatchInput{Name: house.Name, SKU: textOf(house.ItemNumber)}
		match, ok := FindBestMatch(input, index)
		if !ok {
			continue
		}
		enrichments := DetectEnrichments(house, match.Product)
		if len(enrichments) == 0 {
			continue
		}
		opp := Opportunity{
			House:       house,
			Matched:     match.Product,
			MatchScore:  match.Score,
			MatchType:   match.Type,
			Enrichments: enrichments,
			Priority:    PriorityForScore(match.Score),
		}
		result.Opportunities = append(result.Opportunities, opp)
		switch opp.Priority {
		case PriorityHigh:
			result.HighPriority++
		case PriorityMedium:
			result.MediumPriority++
		default:
			result.LowPriority++
		}
	}
	result.OpportunitiesFound = len(result.Opportunities)
	return result
}
