// File: services/intelligence/prompt.go
package intelligence

import (
	"fmt"
	"strings"
	"time"

	"dinebot/models"
)

// maxPromptItems caps the catalog summary so prompts stay inside the token
// budget of the secondary model too.
const maxPromptItems = 30

// Query carries everything the cascade needs to compose a reply.
type Query struct {
	Message string
	UserID  string
	Profile *models.UserProfile
	Catalog models.Catalog
	Now     time.Time
}

// buildPrompt composes the context-rich prompt: assistant persona, catalog
// summary, opening hours, current time, and the user's message.
func buildPrompt(q Query) string {
	var b strings.Builder

	b.WriteString("You are a friendly assistant for a restaurant ordering and reservation service. ")
	b.WriteString("Answer briefly and concretely, using the menu below. ")
	b.WriteString("You can help with menu questions, food orders, and table reservations. ")
	b.WriteString("Opening hours are 11:00 to 22:00 daily.\n\n")

	if len(q.Catalog.Restaurants) > 0 {
		names := make([]string, len(q.Catalog.Restaurants))
		for i, r := range q.Catalog.Restaurants {
			names[i] = r.Name
		}
		fmt.Fprintf(&b, "Restaurants: %s\n", strings.Join(names, ", "))
	}

	if len(q.Catalog.Items) > 0 {
		b.WriteString("Menu:\n")
		items := q.Catalog.Items
		if len(items) > maxPromptItems {
			items = items[:maxPromptItems]
		}
		for _, it := range items {
			fmt.Fprintf(&b, "- %s: Rs. %.0f\n", it.Name, it.Price)
		}
	}

	if !q.Now.IsZero() {
		fmt.Fprintf(&b, "Current time: %s\n", q.Now.Format("Monday 2006-01-02 15:04"))
	}
	if q.Profile != nil && q.Profile.Name != "" {
		fmt.Fprintf(&b, "The customer's name is %s.\n", q.Profile.Name)
	}

	fmt.Fprintf(&b, "\nCustomer: %s\nAssistant:", q.Message)
	return b.String()
}
