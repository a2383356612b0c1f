// File: services/dialogue/handlers.go
package dialogue

import (
	"fmt"
	"sort"
	"strings"

	"dinebot/models"
)

// Quick static handlers: listings and canned replies that need no workflow
// state. They always echo the caller's pending state untouched.

func greetingReply(profile *models.UserProfile) string {
	if profile != nil && profile.Name != "" {
		return fmt.Sprintf("Hello %s! I can show you the menu, take an order, or book a table. What would you like?", profile.Name)
	}
	return "Hello! I can show you the menu, take an order, or book a table. What would you like?"
}

func menuReply(cat models.Catalog) string {
	if len(cat.Items) == 0 {
		return "I couldn't load the menu right now. Please try again in a moment."
	}
	var b strings.Builder
	b.WriteString("Here's what we have on the menu:\n")
	for _, it := range cat.Items {
		fmt.Fprintf(&b, "• %s — Rs. %.0f\n", it.Name, it.Price)
	}
	b.WriteString("Tell me the name of anything you'd like to order.")
	return b.String()
}

func categoriesReply(cat models.Catalog) string {
	if len(cat.Categories) == 0 {
		return "I couldn't load the categories right now. Please try again in a moment."
	}
	names := make([]string, len(cat.Categories))
	for i, c := range cat.Categories {
		names[i] = c.Name
	}
	return "We have these categories: " + strings.Join(names, ", ") +
		". Say \"show me the <name> category\" to browse one."
}

func popularReply(cat models.Catalog) string {
	var lines []string
	for _, it := range cat.Items {
		if it.Popular {
			lines = append(lines, fmt.Sprintf("• %s — Rs. %.0f", it.Name, it.Price))
		}
	}
	if len(lines) == 0 {
		return "We don't have popular picks marked right now, but I can show you the full menu."
	}
	return "Our most popular dishes:\n" + strings.Join(lines, "\n")
}

func specialReply(cat models.Catalog) string {
	var lines []string
	for _, it := range cat.Items {
		if it.Special {
			lines = append(lines, fmt.Sprintf("• %s — Rs. %.0f", it.Name, it.Price))
		}
	}
	if len(lines) == 0 {
		return "No specials are running today, but I can show you the full menu."
	}
	return "Today's specials:\n" + strings.Join(lines, "\n")
}

func mostOrderedReply(cat models.Catalog) string {
	if len(cat.Items) == 0 {
		return "I couldn't load the menu right now. Please try again in a moment."
	}
	items := make([]models.Item, len(cat.Items))
	copy(items, cat.Items)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].OrderCount > items[j].OrderCount
	})
	if len(items) > 5 {
		items = items[:5]
	}
	var lines []string
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("• %s — ordered %d times", it.Name, it.OrderCount))
	}
	return "Our most ordered dishes:\n" + strings.Join(lines, "\n")
}

// categoryBrowseReply resolves the asked-for category and lists its items,
// attaching an explore-category action for the UI.
func categoryBrowseReply(cat models.Catalog, query string) (string, *models.ChatAction) {
	matched := ResolveCategory(cat.Categories, query)
	if matched == nil {
		names := make([]string, len(cat.Categories))
		for i, c := range cat.Categories {
			names[i] = c.Name
		}
		return fmt.Sprintf("I couldn't find a category like %q. We have: %s.",
			query, strings.Join(names, ", ")), nil
	}

	var lines []string
	for _, it := range cat.Items {
		if it.CategoryID == matched.ID || strings.EqualFold(it.CategoryName, matched.Name) {
			lines = append(lines, fmt.Sprintf("• %s — Rs. %.0f", it.Name, it.Price))
		}
	}
	action := &models.ChatAction{Type: "explore-category", Category: matched.Name, ID: matched.ID}
	if len(lines) == 0 {
		return fmt.Sprintf("%s is empty at the moment.", matched.Name), action
	}
	return fmt.Sprintf("Here's the %s category:\n%s", matched.Name, strings.Join(lines, "\n")), action
}

func trackingReply() string {
	return "To track an order, please share the order id from your confirmation and I'll check it with the kitchen."
}

func helpReply() string {
	return "I can help you browse the menu (\"show me the menu\", \"popular dishes\"), " +
		"order food (\"order a zinger burger\"), or book a table " +
		"(\"book a table for 4 tomorrow at 7pm\"). What would you like to do?"
}

// recommendReply proposes a dish and records it as the last suggestion so a
// plain "yes" on the next turn can start an order for it.
func recommendReply(cat models.Catalog) (string, *models.Suggestion) {
	var pick *models.Item
	for i := range cat.Items {
		if cat.Items[i].Popular {
			pick = &cat.Items[i]
			break
		}
	}
	if pick == nil && len(cat.Items) > 0 {
		pick = &cat.Items[0]
	}
	if pick == nil {
		return "I couldn't load the menu right now, so I have nothing to recommend yet.", nil
	}

	var restaurant string
	for _, r := range cat.Restaurants {
		if r.ID == pick.RestaurantID {
			restaurant = r.Name
			break
		}
	}
	suggestion := &models.Suggestion{
		Item:       pick.Name,
		Category:   pick.CategoryName,
		Restaurant: restaurant,
	}
	return fmt.Sprintf("I'd recommend the %s (Rs. %.0f). Want me to order it for you?", pick.Name, pick.Price), suggestion
}

// paymentInstructions enumerates the supported channels with their accounts.
func paymentInstructions(amount float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The total is Rs. %.0f. You can pay via:\n", amount)
	for _, ch := range models.PaymentChannels {
		if ch.Account != "" {
			fmt.Fprintf(&b, "• %s — account %s\n", ch.Method, ch.Account)
		} else {
			fmt.Fprintf(&b, "• %s\n", ch.Method)
		}
	}
	b.WriteString("Reply with the payment method and your transaction id (at least 6 characters), or say \"cash on delivery\".")
	return b.String()
}
