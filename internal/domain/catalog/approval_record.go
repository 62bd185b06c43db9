package catalog

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalRecord is one row of the approval-history ledger: the complete
// pre- and post-image of the five reconciled house fields for a single
// approval. Rows are append-only; undo stamps UndoneAt/UndoneBy and puts
// the pre-image back, it never deletes.
type ApprovalRecord struct {
	ID            uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StagedHouseID uuid.UUID    `gorm:"column:staged_house_id;type:uuid;not null;index" json:"staged_house_id"`
	StagedHouse   *StagedHouse `gorm:"constraint:OnDelete:CASCADE;foreignKey:StagedHouseID;references:ID" json:"staged_house,omitempty"`
	HouseID       uuid.UUID    `gorm:"column:house_id;type:uuid;not null;index" json:"house_id"`
	House         *House       `gorm:"constraint:OnDelete:CASCADE;foreignKey:HouseID;references:ID" json:"house,omitempty"`

	OldName       string  `gorm:"column:old_name;not null" json:"old_name"`
	OldYear       *int    `gorm:"column:old_year" json:"old_year,omitempty"`
	OldItemNumber *string `gorm:"column:old_item_number" json:"old_item_number,omitempty"`
	OldNotes      *string `gorm:"column:old_notes;type:text" json:"old_notes,omitempty"`
	OldPhotoURL   *string `gorm:"column:old_photo_url" json:"old_photo_url,omitempty"`

	NewName       string  `gorm:"column:new_name;not null" json:"new_name"`
	NewYear       *int    `gorm:"column:new_year" json:"new_year,omitempty"`
	NewItemNumber *string `gorm:"column:new_item_number" json:"new_item_number,omitempty"`
	NewNotes      *string `gorm:"column:new_notes;type:text" json:"new_notes,omitempty"`
	NewPhotoURL   *string `gorm:"column:new_photo_url" json:"new_photo_url,omitempty"`

	ApprovedBy string    `gorm:"column:approved_by;not null" json:"approved_by"`
	ApprovedAt time.Time `gorm:"column:approved_at;not null;index" json:"approved_at"`

	UndoneAt *time.Time `gorm:"column:undone_at;index" json:"undone_at,omitempty"`
	UndoneBy *string    `gorm:"column:undone_by" json:"undone_by,omitempty"`
}

func (ApprovalRecord) TableName() string { return "approval_history" }

// PreImage returns the house field values captured before the approval.
func (r *ApprovalRecord) PreImage() ReconciledFields {
	return ReconciledFields{
		Name:       r.OldName,
		Year:       r.OldYear,
		ItemNumber: r.OldItemNumber,
		Notes:      r.OldNotes,
		PhotoURL:   r.OldPhotoURL,
	}
}

// PostImage returns the house field values the approval applied.
func (r *ApprovalRecord) PostImage() ReconciledFields {
	return ReconciledFields{
		Name:       r.NewName,
		Year:       r.NewYear,
		ItemNumber: r.NewItemNumber,
		Notes:      r.NewNotes,
		PhotoURL:   r.NewPhotoURL,
	}
}
