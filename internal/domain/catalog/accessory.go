package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Accessory is a smaller companion piece, optionally linked to a house.
// Accessories are browsed and edited directly; they do not go through the
// staged-review pipeline.
type Accessory struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	HouseID    *uuid.UUID `gorm:"column:house_id;type:uuid;index" json:"house_id,omitempty"`
	House      *House     `gorm:"constraint:OnDelete:SET NULL;foreignKey:HouseID;references:ID" json:"house,omitempty"`
	Name       string     `gorm:"column:name;not null;index" json:"name"`
	Year       *int       `gorm:"column:year" json:"year,omitempty"`
	ItemNumber *string    `gorm:"column:item_number" json:"item_number,omitempty"`
	Notes      *string    `gorm:"column:notes;type:text" json:"notes,omitempty"`
	PhotoURL   *string    `gorm:"column:photo_url" json:"photo_url,omitempty"`

	Price *decimal.Decimal `gorm:"column:price;type:numeric(10,2)" json:"price,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Accessory) TableName() string { return "accessories" }
