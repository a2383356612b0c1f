package dialogue

import (
	"testing"

	"dinebot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchParamsArePinned(t *testing.T) {
	assert.Equal(t, MatchParams{SubstringBonus: 80, TokenExact: 20, TokenPartial: 10, TypoBonus: 15, Threshold: 25}, ItemMatch)
	assert.Equal(t, MatchParams{SubstringBonus: 100, TokenExact: 30, TokenPartial: 10, Threshold: 20, ThresholdInclusive: true}, CategoryMatch)
	assert.Equal(t, MatchParams{SubstringBonus: 100, TokenExact: 30, TokenPartial: 10, Threshold: 20, ThresholdInclusive: true}, RestaurantMatch)
}

func TestResolveItemExactMatchWins(t *testing.T) {
	items := []models.Item{
		{ID: "i1", Name: "Chicken Biryani Special"},
		{ID: "i2", Name: "Chicken Biryani"},
	}
	got := ResolveItem(items, "chicken biryani")
	require.NotNil(t, got)
	assert.Equal(t, "i2", got.ID)
}

func TestResolveItemToleratesTypos(t *testing.T) {
	items := testCatalog().Items
	got := ResolveItem(items, "chicken biriyani")
	require.NotNil(t, got)
	assert.Equal(t, "Chicken Biryani", got.Name)
}

func TestResolveItemRejectsUnknown(t *testing.T) {
	items := testCatalog().Items
	assert.Nil(t, ResolveItem(items, "pizza"))
	assert.Nil(t, ResolveItem(items, ""))
}

func TestResolveItemSingleTokenOverlapBelowThreshold(t *testing.T) {
	items := []models.Item{{Name: "Chicken Biryani"}}
	// One shared token scores 20, under the exclusive threshold of 25.
	assert.Nil(t, ResolveItem(items, "chicken karahi"))
}

func TestResolveCategoryByContainment(t *testing.T) {
	categories := testCatalog().Categories

	got := ResolveCategory(categories, "dessert")
	require.NotNil(t, got)
	assert.Equal(t, "Desserts", got.Name)

	got = ResolveCategory(categories, "fast food")
	require.NotNil(t, got)
	assert.Equal(t, "Fast Food", got.Name)

	assert.Nil(t, ResolveCategory(categories, "drinks"))
}

func TestResolveRestaurantFromFreeText(t *testing.T) {
	restaurants := testCatalog().Restaurants

	got := ResolveRestaurant(restaurants, "book at kabab house tonight")
	require.NotNil(t, got)
	assert.Equal(t, "Kabab House", got.Name)

	assert.Nil(t, ResolveRestaurant(restaurants, "somewhere nice"))
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, levenshtein("biryani", "biryani"))
	assert.Equal(t, 1, levenshtein("biriyani", "biryani"))
	assert.Equal(t, 7, levenshtein("", "biryani"))
}
