package intelligence

import (
	"strings"
	"testing"
	"time"

	"dinebot/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptIncludesCatalogAndProfile(t *testing.T) {
	q := Query{
		Message: "what should i eat",
		Profile: &models.UserProfile{Name: "Ayesha"},
		Catalog: models.Catalog{
			Restaurants: []models.Restaurant{{Name: "Spice Route"}},
			Items:       []models.Item{{Name: "Chicken Biryani", Price: 450}},
		},
		Now: time.Date(2025, 12, 22, 19, 0, 0, 0, time.UTC),
	}

	prompt := buildPrompt(q)

	assert.Contains(t, prompt, "Spice Route")
	assert.Contains(t, prompt, "Chicken Biryani: Rs. 450")
	assert.Contains(t, prompt, "Ayesha")
	assert.Contains(t, prompt, "Monday 2025-12-22 19:00")
	assert.Contains(t, prompt, "Customer: what should i eat")
}

func TestBuildPromptCapsMenuSize(t *testing.T) {
	items := make([]models.Item, maxPromptItems+10)
	for i := range items {
		items[i] = models.Item{Name: "Dish", Price: 100}
	}
	q := Query{Message: "hi", Catalog: models.Catalog{Items: items}}

	prompt := buildPrompt(q)

	assert.Equal(t, maxPromptItems, strings.Count(prompt, "- Dish"))
}
