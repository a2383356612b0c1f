// File: services/dialogue/resolve.go
package dialogue

import "dinebot/models"

// Typed wrappers over ResolveName for the three catalog kinds.

func ResolveItem(items []models.Item, query string) *models.Item {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	idx := ResolveName(names, query, ItemMatch)
	if idx < 0 {
		return nil
	}
	return &items[idx]
}

func ResolveCategory(categories []models.Category, query string) *models.Category {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	idx := ResolveName(names, query, CategoryMatch)
	if idx < 0 {
		return nil
	}
	return &categories[idx]
}

func ResolveRestaurant(restaurants []models.Restaurant, query string) *models.Restaurant {
	names := make([]string, len(restaurants))
	for i, r := range restaurants {
		names[i] = r.Name
	}
	idx := ResolveName(names, query, RestaurantMatch)
	if idx < 0 {
		return nil
	}
	return &restaurants[idx]
}
