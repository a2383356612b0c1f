package models

// Reservation workflow steps. Steps only advance forward; a missing or invalid
// field re-enters collecting_info rather than advancing.
const (
	StepCollectingInfo       = "collecting_info"
	StepAwaitingConfirmation = "awaiting_confirmation"
	StepPayment              = "payment"
)

// UserProfile is optional session metadata sent by the client.
type UserProfile struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// ReservationData holds the slots collected so far for a reservation.
type ReservationData struct {
	Restaurant   string `json:"restaurant,omitempty"`
	RestaurantID string `json:"restaurantId,omitempty"`
	Date         string `json:"date,omitempty"`
	Time         string `json:"time,omitempty"`
	PartySize    int    `json:"partySize,omitempty"`
	Table        string `json:"table,omitempty"`
	TableNumber  int    `json:"tableNumber,omitempty"`
}

// PendingReservation is the caller-held record of an in-progress reservation.
type PendingReservation struct {
	Step string          `json:"step"`
	Data ReservationData `json:"data"`
}

// PendingOrder is the caller-held record of an in-progress order.
type PendingOrder struct {
	Item         string `json:"item,omitempty"`
	Category     string `json:"category,omitempty"`
	Restaurant   string `json:"restaurant,omitempty"`
	RestaurantID string `json:"restaurantId,omitempty"`
}

// PendingReservationRequest is created when no table fits the requested time
// and alternative slots are being offered.
type PendingReservationRequest struct {
	Restaurant     string   `json:"restaurant,omitempty"`
	RestaurantID   string   `json:"restaurantId,omitempty"`
	Date           string   `json:"date,omitempty"`
	PartySize      int      `json:"partySize,omitempty"`
	AvailableTimes []string `json:"availableTimes,omitempty"`
}

// Suggestion is the last item the assistant proposed, so a bare "yes" can
// promote it into a PendingOrder without the user repeating its name.
type Suggestion struct {
	Item       string `json:"item,omitempty"`
	Category   string `json:"category,omitempty"`
	Restaurant string `json:"restaurant,omitempty"`
}

// ChatRequest is the payload coming from the frontend into /api/chat.
// All dialogue state is client-held: the pending fields must be resent
// verbatim from the previous response on every call.
type ChatRequest struct {
	Message                   string                     `json:"message"`
	UserProfile               *UserProfile               `json:"userProfile,omitempty"`
	PendingOrder              *PendingOrder              `json:"pendingOrder,omitempty"`
	PendingReservation        *PendingReservation        `json:"pendingReservation,omitempty"`
	PendingReservationRequest *PendingReservationRequest `json:"pendingReservationRequest,omitempty"`
	SuggestTime               bool                       `json:"suggestTime,omitempty"`
	LastSuggestion            *Suggestion                `json:"lastSuggestion,omitempty"`
}

// ChatAction is a structured action for the frontend to act on.
type ChatAction struct {
	Type          string  `json:"type"` // "order", "reservation", or "explore-category"
	ID            string  `json:"id,omitempty"`
	Item          string  `json:"item,omitempty"`
	Category      string  `json:"category,omitempty"`
	Restaurant    string  `json:"restaurant,omitempty"`
	RestaurantID  string  `json:"restaurantId,omitempty"`
	Date          string  `json:"date,omitempty"`
	Time          string  `json:"time,omitempty"`
	PartySize     int     `json:"partySize,omitempty"`
	TableNumber   int     `json:"tableNumber,omitempty"`
	Total         float64 `json:"total,omitempty"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
}

// ChatResponse carries the reply plus the full authoritative dialogue state.
// An absent pending field means that workflow is cleared; a present one (even
// unchanged) means it is still active.
type ChatResponse struct {
	Reply                     string                     `json:"reply"`
	Action                    *ChatAction                `json:"action,omitempty"`
	PendingOrder              *PendingOrder              `json:"pendingOrder,omitempty"`
	PendingReservation        *PendingReservation        `json:"pendingReservation,omitempty"`
	PendingReservationRequest *PendingReservationRequest `json:"pendingReservationRequest,omitempty"`
	LastSuggestion            *Suggestion                `json:"lastSuggestion,omitempty"`
	Source                    string                     `json:"source,omitempty"`
	Confidence                float64                    `json:"confidence,omitempty"`
}
