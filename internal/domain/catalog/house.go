package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// House is the canonical catalog row. The five fields the reconciliation
// engine may rewrite are Name, Year, ItemNumber, Notes and PhotoURL;
// everything else is only touched by direct edits or enrichment applies.
type House struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"column:name;not null;index" json:"name"`
	Year        *int      `gorm:"column:year" json:"year,omitempty"`
	RetiredYear *int      `gorm:"column:retired_year" json:"retired_year,omitempty"`
	ItemNumber  *string   `gorm:"column:item_number;index" json:"item_number,omitempty"`
	Notes       *string   `gorm:"column:notes;type:text" json:"notes,omitempty"`
	PhotoURL    *string   `gorm:"column:photo_url" json:"photo_url,omitempty"`
	Collection  *string   `gorm:"column:collection;index" json:"collection,omitempty"`

	Price *decimal.Decimal `gorm:"column:price;type:numeric(10,2)" json:"price,omitempty"`

	// Revision guards concurrent reconciliation: the approve flow reads it
	// with the pre-image and the canonical update compare-and-swaps on it.
	Revision int `gorm:"column:revision;not null;default:0" json:"revision"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (House) TableName() string { return "houses" }

// ReconciledFields is the five-field slice of a house that approve/undo
// read and write as a unit.
type ReconciledFields struct {
	Name       string
	Year       *int
	ItemNumber *string
	Notes      *string
	PhotoURL   *string
}

// Reconciled returns the house's current pre-image.
func (h *House) Reconciled() ReconciledFields {
	return ReconciledFields{
		Name:       h.Name,
		Year:       h.Year,
		ItemNumber: h.ItemNumber,
		Notes:      h.Notes,
		PhotoURL:   h.PhotoURL,
	}
}
