package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/villagekeep/villagekeep-backend/internal/domain/catalog"
)

func SeedHouse(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.House {
	tb.Helper()
	h := &types.House{
		ID:   uuid.New(),
		Name: name,
	}
	if err := tx.WithContext(ctx).Create(h).Error; err != nil {
		tb.Fatalf("seed house: %v", err)
	}
	return h
}

func SeedStagedHouse(tb testing.TB, ctx context.Context, tx *gorm.DB, houseID *uuid.UUID, confidence float64) *types.StagedHouse {
	tb.Helper()
	desc := "A hand-painted ceramic lit house."
	sh := &types.StagedHouse{
		ID:                     uuid.New(),
		OriginalHouseID:        houseID,
		Name:                   "Staged House",
		Description:            &desc,
		Status:                 types.StagedStatusPending,
		OverallConfidenceScore: confidence,
	}
	if err := tx.WithContext(ctx).Create(sh).Error; err != nil {
		tb.Fatalf("seed staged house: %v", err)
	}
	return sh
}

func SeedAccessory(tb testing.TB, ctx context.Context, tx *gorm.DB, houseID *uuid.UUID, name string) *types.Accessory {
	tb.Helper()
	a := &types.Accessory{
		ID:      uuid.New(),
		HouseID: houseID,
		Name:    name,
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed accessory: %v", err)
	}
	return a
}
