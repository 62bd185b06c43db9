package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// EnrichmentField is the closed set of house fields the enrichment detector
// may propose changes for. Field dispatch happens over these constants,
// never over free-form strings.
type EnrichmentField string

const (
	FieldIntroductionYear EnrichmentField = "introduction_year"
	FieldRetiredYear      EnrichmentField = "retired_year"
	FieldSKU              EnrichmentField = "sku"
	FieldDescription      EnrichmentField = "description"
	FieldPrimaryImage     EnrichmentField = "primary_image"
	FieldCollection       EnrichmentField = "collection"
	FieldAdditionalImages EnrichmentField = "additional_images"
	FieldRetailPrice      EnrichmentField = "retail_price"
)

type EnrichmentKind string

const (
	// KindMissing: the house has no value for the field and the matched
	// product does.
	KindMissing EnrichmentKind = "missing"
	// KindEnhancement: both sides have a value and they differ.
	KindEnhancement EnrichmentKind = "enhancement"
)

// Enrichment is one proposed field-level change. Current/Suggested are
// display strings; the typed payload lives in exactly one of YearValue,
// TextValue, PriceValue or Images depending on Field.
type Enrichment struct {
	Field     EnrichmentField `json:"field"`
	Kind      EnrichmentKind  `json:"kind"`
	Current   string          `json:"current,omitempty"`
	Suggested string          `json:"suggested"`

	YearValue  *int             `json:"year_value,omitempty"`
	TextValue  *string          `json:"text_value,omitempty"`
	PriceValue *decimal.Decimal `json:"price_value,omitempty"`
	Images     []string         `json:"images,omitempty"`
}

// HouseUpdate is a typed, partial update of the enrichable house columns.
// Nil fields are left untouched.
type HouseUpdate struct {
	Year        *int
	RetiredYear *int
	ItemNumber  *string
	Notes       *string
	PhotoURL    *string
	Collection  *string
	Price       *decimal.Decimal
}

// IsZero reports whether the update would change nothing.
func (u HouseUpdate) IsZero() bool {
	return u.Year == nil && u.RetiredYear == nil && u.ItemNumber == nil &&
		u.Notes == nil && u.PhotoURL == nil && u.Collection == nil && u.Price == nil
}

// ToHouseUpdate converts the enrichment into a typed update. It fails when
// the typed payload does not match the field, so a malformed enrichment can
// never turn into a silent partial write.
func (e Enrichment) ToHouseUpdate() (HouseUpdate, error) {
	var u HouseUpdate
	switch e.Field {
	case FieldIntroductionYear:
		if e.YearValue == nil {
			return u, fmt.Errorf("enrichment %s: missing year value", e.Field)
		}
		u.Year = e.YearValue
	case FieldRetiredYear:
		if e.YearValue == nil {
			return u, fmt.Errorf("enrichment %s: missing year value", e.Field)
		}
		u.RetiredYear = e.YearValue
	case FieldSKU:
		if e.TextValue == nil {
			return u, fmt.Errorf("enrichment %s: missing text value", e.Field)
		}
		u.ItemNumber = e.TextValue
	case FieldDescription:
		if e.TextValue == nil {
			return u, fmt.Errorf("enrichment %s: missing text value", e.Field)
		}
		u.Notes = e.TextValue
	case FieldPrimaryImage:
		if e.TextValue == nil {
			return u, fmt.Errorf("enrichment %s: missing text value", e.Field)
		}
		u.PhotoURL = e.TextValue
	case FieldCollection:
		if e.TextValue == nil {
			return u, fmt.Errorf("enrichment %s: missing text value", e.Field)
		}
		u.Collection = e.TextValue
	case FieldAdditionalImages:
		if len(e.Images) == 0 {
			return u, fmt.Errorf("enrichment %s: missing image list", e.Field)
		}
		// The primary image column is the only persisted image slot; the
		// gallery itself is served from storage, so applying this variant
		// promotes the first image.
		first := e.Images[0]
		u.PhotoURL = &first
	case FieldRetailPrice:
		if e.PriceValue == nil {
			return u, fmt.Errorf("enrichment %s: missing price value", e.Field)
		}
		u.Price = e.PriceValue
	default:
		return u, fmt.Errorf("unrecognized enrichment field %q", e.Field)
	}
	return u, nil
}
