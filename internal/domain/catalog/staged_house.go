package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StagedStatusPending  = "pending"
	StagedStatusApproved = "approved"
	StagedStatusRejected = "rejected"
)

// StagedHouse is a scraped product queued for moderator review, linked to
// at most one house. A nil OriginalHouseID means approval would have to
// create a brand-new house, which the review flow does not support.
type StagedHouse struct {
	ID              uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OriginalHouseID *uuid.UUID `gorm:"column:original_house_id;type:uuid;index" json:"original_house_id,omitempty"`
	OriginalHouse   *House     `gorm:"constraint:OnDelete:SET NULL;foreignKey:OriginalHouseID;references:ID" json:"original_house,omitempty"`

	// Scraped payload, immutable once staged.
	Name             string         `gorm:"column:name;not null" json:"name"`
	IntroYear        *int           `gorm:"column:intro_year" json:"intro_year,omitempty"`
	RetireYear       *int           `gorm:"column:retire_year" json:"retire_year,omitempty"`
	ItemNumber       *string        `gorm:"column:item_number" json:"item_number,omitempty"`
	Description      *string        `gorm:"column:description;type:text" json:"description,omitempty"`
	PrimaryImageURL  *string        `gorm:"column:primary_image_url" json:"primary_image_url,omitempty"`
	AdditionalImages datatypes.JSON `gorm:"column:additional_images;type:jsonb" json:"additional_images,omitempty"`
	DiscoveredSeries *string        `gorm:"column:discovered_series" json:"discovered_series,omitempty"`
	SourceURL        *string        `gorm:"column:source_url" json:"source_url,omitempty"`
	SRP              *string        `gorm:"column:srp" json:"srp,omitempty"`

	// Confidence scores in [0,1], produced by the ingestion scraper.
	NameMatchScore         float64 `gorm:"column:name_match_score;not null;default:0" json:"name_match_score"`
	DetailsConfidenceScore float64 `gorm:"column:details_confidence_score;not null;default:0" json:"details_confidence_score"`
	OverallConfidenceScore float64 `gorm:"column:overall_confidence_score;not null;default:0;index" json:"overall_confidence_score"`

	Status       string     `gorm:"column:status;not null;default:'pending';index" json:"status"`
	ReviewedBy   *string    `gorm:"column:reviewed_by" json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	ReviewReason *string    `gorm:"column:review_reason;type:text" json:"review_reason,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (StagedHouse) TableName() string { return "staged_houses" }
