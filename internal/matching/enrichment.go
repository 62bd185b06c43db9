package matching

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/villagekeep/villagekeep-backend/internal/domain/catalog"
)

// priceTolerance is the float slack under which two retail prices count as
// equal.
var priceTolerance = decimal.NewFromFloat(0.01)

func hasText(p *string) bool {
	return p != nil && strings.TrimSpace(*p) != ""
}

func textOf(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

// ParsePrice reads a price string with an optional currency symbol and
// thousands separators. The bool is false for anything non-numeric, which
// callers treat as "comparison skipped", never as an error.
func ParsePrice(s string) (decimal.Decimal, bool) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimLeft(cleaned, "$€£ ")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// DetectEnrichments compares a house against its matched scraped product
// field by field, in a fixed order for reproducible output: introduction
// year, retired year, SKU, description, primary image, collection,
// additional images, retail price. A field missing on the house side with
// a candidate value emits KindMissing; both present and different emits
// KindEnhancement — except description and primary image, which are never
// second-guessed once the house has one. It never fails: absent or
// malformed values mean "nothing to suggest".
func DetectEnrichments(house catalog.House, cand catalog.ScrapedProduct) []catalog.Enrichment {
	var out []catalog.Enrichment

	// Introduction year.
	if cand.IntroYear != nil {
		if house.Year == nil {
			out = append(out, yearEnrichment(catalog.FieldIntroductionYear, catalog.KindMissing, "", *cand.IntroYear))
		} else if *house.Year != *cand.IntroYear {
			out = append(out, yearEnrichment(catalog.FieldIntroductionYear, catalog.KindEnhancement, strconv.Itoa(*house.Year), *cand.IntroYear))
		}
	}

	// Retired year.
	if cand.RetiredYear != nil {
		if house.RetiredYear == nil {
			out = append(out, yearEnrichment(catalog.FieldRetiredYear, catalog.KindMissing, "", *cand.RetiredYear))
		} else if *house.RetiredYear != *cand.RetiredYear {
			out = append(out, yearEnrichment(catalog.FieldRetiredYear, catalog.KindEnhancement, strconv.Itoa(*house.RetiredYear), *cand.RetiredYear))
		}
	}

	// SKU.
	if sku := strings.TrimSpace(cand.SKU); sku != "" {
		if !hasText(house.ItemNumber) {
			out = append(out, textEnrichment(catalog.FieldSKU, catalog.KindMissing, "", sku))
		} else if textOf(house.ItemNumber) != sku {
			out = append(out, textEnrichment(catalog.FieldSKU, catalog.KindEnhancement, textOf(house.ItemNumber), sku))
		}
	}

	// Description: suggested only when the house has none. An existing
	// description is never overwritten-suggested.
	if desc := strings.TrimSpace(cand.Description); desc != "" && !hasText(house.Notes) {
		out = append(out, textEnrichment(catalog.FieldDescription, catalog.KindMissing, "", desc))
	}

	// Primary image: same rule as description.
	if photo := strings.TrimSpace(cand.PhotoURL); photo != "" && !hasText(house.PhotoURL) {
		out = append(out, textEnrichment(catalog.FieldPrimaryImage, catalog.KindMissing, "", photo))
	}

	// Collection.
	if coll := strings.TrimSpace(cand.Collection); coll != "" {
		if !hasText(house.Collection) {
			out = append(out, textEnrichment(catalog.FieldCollection, catalog.KindMissing, "", coll))
		} else if textOf(house.Collection) != coll {
			out = append(out, textEnrichment(catalog.FieldCollection, catalog.KindEnhancement, textOf(house.Collection), coll))
		}
	}

	// Additional images: only when the candidate carries a real gallery,
	// always an enhancement regardless of what the house has today.
	if len(cand.Images) > 1 {
		current := "No images"
		if hasText(house.PhotoURL) {
			current = "Single image"
		}
		out = append(out, catalog.Enrichment{
			Field:     catalog.FieldAdditionalImages,
			Kind:      catalog.KindEnhancement,
			Current:   current,
			Suggested: fmt.Sprintf("%d images available", len(cand.Images)),
			Images:    append([]string(nil), cand.Images...),
		})
	}

	// Retail price. Unparseable strings on either side skip the
	// comparison.
	if srp, ok := ParsePrice(cand.SRP); ok {
		if house.Price == nil {
			out = append(out, priceEnrichment(catalog.KindMissing, "", srp))
		} else if house.Price.Sub(srp).Abs().GreaterThan(priceTolerance) {
			out = append(out, priceEnrichment(catalog.KindEnhancement, "$"+house.Price.StringFixed(2), srp))
		}
	}

	return out
}

func yearEnrichment(field catalog.EnrichmentField, kind catalog.EnrichmentKind, current string, year int) catalog.Enrichment {
	y := year
	return catalog.Enrichment{
		Field:     field,
		Kind:      kind,
		Current:   current,
		Suggested: strconv.Itoa(year),
		YearValue: &y,
	}
}

func textEnrichment(field catalog.EnrichmentField, kind catalog.EnrichmentKind, current, suggested string) catalog.Enrichment {
	s := suggested
	return catalog.Enrichment{
		Field:     field,
		Kind:      kind,
		Current:   current,
		Suggested: suggested,
		TextValue: &s,
	}
}

func priceEnrichment(kind catalog.EnrichmentKind, current string, price decimal.Decimal) catalog.Enrichment {
	p := price
	return catalog.Enrichment{
		Field:      catalog.FieldRetailPrice,
		Kind:       kind,
		Current:    current,
		Suggested:  "$" + price.StringFixed(2),
		PriceValue: &p,
	}
}
