package dialogue

import (
	"testing"

	"dinebot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMostOrderedReplyTakesTopFive(t *testing.T) {
	cat := testCatalog()
	cat.Items = append(cat.Items,
		models.Item{Name: "A", OrderCount: 500},
		models.Item{Name: "B", OrderCount: 400},
		models.Item{Name: "C", OrderCount: 10},
	)

	reply := mostOrderedReply(cat)

	assert.Contains(t, reply, "A — ordered 500 times")
	assert.Contains(t, reply, "Chicken Biryani")
	assert.NotContains(t, reply, "• C —", "only the top five are listed")
}

func TestCategoryBrowseReply(t *testing.T) {
	reply, action := categoryBrowseReply(testCatalog(), "desserts")

	require.NotNil(t, action)
	assert.Equal(t, "explore-category", action.Type)
	assert.Equal(t, "Desserts", action.Category)
	assert.Contains(t, reply, "Gulab Jamun")
	assert.NotContains(t, reply, "Zinger Burger")
}

func TestCategoryBrowseReplyUnknownCategory(t *testing.T) {
	reply, action := categoryBrowseReply(testCatalog(), "seafood")

	assert.Nil(t, action)
	assert.Contains(t, reply, "Desserts")
	assert.Contains(t, reply, "Fast Food")
}

func TestGreetingReplyUsesName(t *testing.T) {
	assert.Contains(t, greetingReply(&models.UserProfile{Name: "Ayesha"}), "Hello Ayesha!")
	assert.Contains(t, greetingReply(nil), "Hello!")
}

func TestRecommendReplyPicksPopularItem(t *testing.T) {
	reply, suggestion := recommendReply(testCatalog())

	require.NotNil(t, suggestion)
	assert.Equal(t, "Chicken Biryani", suggestion.Item)
	assert.Equal(t, "Spice Route", suggestion.Restaurant)
	assert.Contains(t, reply, "Chicken Biryani")
}

func TestPaymentInstructionsListEveryChannel(t *testing.T) {
	got := paymentInstructions(450)

	assert.Contains(t, got, "Rs. 450")
	for _, ch := range models.PaymentChannels {
		assert.Contains(t, got, ch.Method)
	}
	assert.Contains(t, got, "transaction id")
}
