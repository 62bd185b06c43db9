package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villagekeep/villagekeep-backend/internal/domain/catalog"
)

func TestPriorityForScore(t *testing.T) {
	assert.Equal(t, PriorityHigh, PriorityForScore(100))
	assert.Equal(t, PriorityHigh, PriorityForScore(90))
	assert.Equal(t, PriorityMedium, PriorityForScore(89))
	assert.Equal(t, PriorityMedium, PriorityForScore(80))
	assert.Equal(t, PriorityLow, PriorityForScore(79))
	assert.Equal(t, PriorityLow, PriorityForScore(70))
}

func TestScanAggregatesTiers(t *testing.T) {
	houses := []catalog.House{
		{Name: "Adobe House"},                     // exact name match -> 100 -> high
		{Name: "Crooked Fence Cottage"},           // containment -> 85 -> medium
		{Name: "completely unrelated zzqq entry"}, // no match
	}
	index := []catalog.ScrapedProduct{
		{Name: "Adobe House", IntroYear: intPtr(2005)},
		{Name: "Crooked Fence Cottage Retired", IntroYear: intPtr(1998)},
	}

	result := Scan(houses, index)
	require.True(t, result.Success)
	assert.Equal(t, 3, result.TotalScanned)
	assert.Equal(t, 2, result.OpportunitiesFound)
	assert.Equal(t, 1, result.HighPriority)
	assert.Equal(t, 1, result.MediumPriority)
	assert.Equal(t, 0, result.LowPriority)
	assert.Equal(t, 2, result.IndexSize)

	require.Len(t, result.Opportunities, 2)
	assert.Equal(t, PriorityHigh, result.Opportunities[0].Priority)
	assert.Equal(t, MatchTypeName, result.Opportunities[0].MatchType)
}

func TestScanSkipsHousesWithNothingToSuggest(t *testing.T) {
	// Perfect match but the candidate carries no extra data: no
	// opportunity is reported.
	houses := []catalog.House{{Name: "Adobe House"}}
	index := []catalog.ScrapedProduct{{Name: "Adobe House"}}

	result := Scan(houses, index)
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.OpportunitiesFound)
	assert.Empty(t, result.Opportunities)
}

func TestScanEmptyInputs(t *testing.T) {
	result := Scan(nil, nil)
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.TotalScanned)
	assert.Equal(t, 0, result.OpportunitiesFound)
}
