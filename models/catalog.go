package models

// Catalog records are read-only references fetched fresh from the external CRUD
// service each turn. The dialogue engine never caches or mutates them.

type Restaurant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	RestaurantID string `json:"restaurantId,omitempty"`
}

type Item struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	CategoryID   string  `json:"categoryId,omitempty"`
	CategoryName string  `json:"categoryName,omitempty"`
	RestaurantID string  `json:"restaurantId,omitempty"`
	Popular      bool    `json:"popular,omitempty"`
	Special      bool    `json:"special,omitempty"`
	OrderCount   int     `json:"orderCount,omitempty"`
}

// Catalog bundles the per-turn read-only snapshot.
type Catalog struct {
	Restaurants []Restaurant
	Categories  []Category
	Items       []Item
}
