package models

// OrderPayload is submitted to the external order service once an order has a
// recognized payment method and transaction reference.
type OrderPayload struct {
	ClientRef     string  `json:"clientRef"`
	ItemID        string  `json:"itemId"`
	ItemName      string  `json:"itemName"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	RestaurantID  string  `json:"restaurantId"`
	Restaurant    string  `json:"restaurant,omitempty"`
	UserEmail     string  `json:"userEmail,omitempty"`
	PaymentMethod string  `json:"paymentMethod"`
	TransactionID string  `json:"transactionId,omitempty"`
}

// ReservationPayload is submitted to the external reservation service after
// payment details are collected.
type ReservationPayload struct {
	ClientRef     string  `json:"clientRef"`
	RestaurantID  string  `json:"restaurantId"`
	Restaurant    string  `json:"restaurant,omitempty"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	PartySize     int     `json:"partySize"`
	TableID       string  `json:"tableId"`
	TableNumber   int     `json:"tableNumber"`
	Fee           float64 `json:"fee"`
	PaymentMethod string  `json:"paymentMethod"`
	TransactionID string  `json:"transactionId,omitempty"`
	UserEmail     string  `json:"userEmail,omitempty"`
}
