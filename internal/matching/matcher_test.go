package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villagekeep/villagekeep-backend/internal/domain/catalog"
)

func TestMatchScoreExact(t *testing.T) {
	assert.Equal(t, 100, MatchScore("Adobe House", "Adobe House"))
	assert.Equal(t, 100, MatchScore("adobe house", "ADOBE  HOUSE"))
}

func TestMatchScoreEmpty(t *testing.T) {
	assert.Equal(t, 0, MatchScore("", "x"))
	assert.Equal(t, 0, MatchScore("x", ""))
	assert.Equal(t, 0, MatchScore("   ", "x"))
}

func TestMatchScoreContainment(t *testing.T) {
	assert.Equal(t, 85, MatchScore("Adobe House", "The Adobe House Retired"))
	assert.Equal(t, 85, MatchScore("The Adobe House Retired", "Adobe House"))
}

func TestMatchScoreTokenOverlap(t *testing.T) {
	// 2 of max(3,3) tokens pair up -> 67.
	assert.Equal(t, 67, MatchScore("crooked fence cottage", "crooked fence barn"))
	// Disjoint tokens -> 0.
	assert.Equal(t, 0, MatchScore("apple pear", "stone brick"))
}

func TestMatchScoreNoDoubleCounting(t *testing.T) {
	// Both "mill" tokens on the left may not consume the single "mill" on
	// the right twice: 1 of max(2,2) -> 50.
	assert.Equal(t, 50, MatchScore("mill mill", "mill barn"))
}

// Thirteen tokens, nine shared: 9/13 rounds to 69, just under the floor.
const name69a = "crimson azure emerald amber violet indigo teal maroon coral apple pear plum grape"
const name69b = "crimson azure emerald amber violet indigo teal maroon coral stone brick metal wood"

// Ten tokens, seven shared: exactly 70.
const name70a = "crimson azure emerald amber violet indigo teal apple pear plum"
const name70b = "crimson azure emerald amber violet indigo teal stone brick metal"

func TestFindBestMatchAcceptanceFloor(t *testing.T) {
	require.Equal(t, 69, MatchScore(name69a, name69b))
	require.Equal(t, 70, MatchScore(name70a, name70b))

	_, ok := FindBestMatch(MatchInput{Name: name69a}, []catalog.ScrapedProduct{{Name: name69b}})
	assert.False(t, ok, "69 is under the floor")

	match, ok := FindBestMatch(MatchInput{Name: name70a}, []catalog.ScrapedProduct{{Name: name70b}})
	require.True(t, ok, "70 meets the floor")
	assert.Equal(t, 70, match.Score)
	assert.Equal(t, MatchTypeName, match.Type)
}

func TestFindBestMatchEmptyPool(t *testing.T) {
	_, ok := FindBestMatch(MatchInput{Name: "Adobe House"}, nil)
	assert.False(t, ok)
}

func TestFindBestMatchSKUTieBreak(t *testing.T) {
	// First candidate: skuScore=100 (>=90 and beats its name score), so it
	// competes on SKU. Second candidate competes on name at 85. SKU wins.
	rec := MatchInput{Name: "Crooked Fence Cottage", SKU: "56.58344"}
	pool := []catalog.ScrapedProduct{
		{Name: "totally different product", SKU: "56.58344"},
		{Name: "Crooked Fence Cottage Retired"},
	}
	match, ok := FindBestMatch(rec, pool)
	require.True(t, ok)
	assert.Equal(t, MatchTypeSKU, match.Type)
	assert.Equal(t, 100, match.Score)
	assert.Equal(t, "totally different product", match.Product.Name)
}

func TestFindBestMatchNamePreferredOverWeakSKU(t *testing.T) {
	// SKU score below 90 never outranks the name score.
	rec := MatchInput{Name: "Crooked Fence Cottage", SKU: "56.58344 extra tokens here"}
	pool := []catalog.ScrapedProduct{
		{Name: "Crooked Fence Cottage", SKU: "something else entirely"},
	}
	match, ok := FindBestMatch(rec, pool)
	require.True(t, ok)
	assert.Equal(t, MatchTypeName, match.Type)
	assert.Equal(t, 100, match.Score)
}

func TestFindBestMatchFirstSeenWinsTies(t *testing.T) {
	rec := MatchInput{Name: "Adobe House"}
	pool := []catalog.ScrapedProduct{
		{Name: "Adobe House", URL: "first"},
		{Name: "Adobe House", URL: "second"},
	}
	match, ok := FindBestMatch(rec, pool)
	require.True(t, ok)
	assert.Equal(t, "first", match.Product.URL)
}
