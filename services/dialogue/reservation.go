// File: services/dialogue/reservation.go
package dialogue

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"dinebot/models"
	"dinebot/services/orders"
	"dinebot/services/tables"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const adapterApology = "Sorry, I'm having trouble reaching our booking system right now. Nothing was changed — please try that again in a moment."

// ReservationFlow drives the multi-turn table reservation state machine. All
// state lives in the caller-held PendingReservation; the flow itself is
// stateless and safe for concurrent turns.
type ReservationFlow struct {
	availability tables.AvailabilityService
	orders       orders.OrderService
	fee          float64
	logger       *zap.Logger
	now          func() time.Time
}

func NewReservationFlow(availability tables.AvailabilityService, orderSvc orders.OrderService, fee float64, logger *zap.Logger) *ReservationFlow {
	return &ReservationFlow{
		availability: availability,
		orders:       orderSvc,
		fee:          fee,
		logger:       logger,
		now:          time.Now,
	}
}

// Collect starts a reservation or merges newly extracted slots into one in
// collecting_info. Already-filled fields are never overwritten. Once date,
// time, and party size are all present the booking is restated and the step
// advances to awaiting_confirmation.
func (f *ReservationFlow) Collect(text string, pending *models.PendingReservation, cat models.Catalog) *models.ChatResponse {
	if pending == nil {
		pending = &models.PendingReservation{Step: models.StepCollectingInfo}
	}
	data := &pending.Data

	if size, ok := ExtractPartySize(text); ok && data.PartySize == 0 {
		if size < MinPartySize || size > MaxPartySize {
			return &models.ChatResponse{
				Reply: fmt.Sprintf("We can seat parties of %d to %d. How many people should I book for?",
					MinPartySize, MaxPartySize),
				PendingReservation: pending,
			}
		}
		data.PartySize = size
	}

	if t, ok := ExtractTime(text); ok && data.Time == "" {
		if !withinBusinessHours(t) {
			return &models.ChatResponse{
				Reply: fmt.Sprintf("We're open from %s to %s. What time inside opening hours would suit you?",
					OpeningTime, ClosingTime),
				PendingReservation: pending,
			}
		}
		data.Time = t
	}

	if d, ok := ExtractDate(text, f.now()); ok && data.Date == "" {
		data.Date = d
	}

	if data.Restaurant == "" {
		if r := ResolveRestaurant(cat.Restaurants, text); r != nil {
			data.Restaurant = r.Name
			data.RestaurantID = r.ID
		}
	}

	if missing := missingSlots(data); len(missing) > 0 {
		pending.Step = models.StepCollectingInfo
		return &models.ChatResponse{
			Reply:              "I'd love to book that table. I still need: " + strings.Join(missing, ", ") + ".",
			PendingReservation: pending,
		}
	}

	if data.Restaurant == "" {
		if r := defaultRestaurant(cat.Restaurants); r != nil {
			data.Restaurant = r.Name
			data.RestaurantID = r.ID
		}
	}

	pending.Step = models.StepAwaitingConfirmation
	return &models.ChatResponse{
		Reply: fmt.Sprintf("To confirm: a table for %d at %s on %s, %s. Shall I go ahead?",
			data.PartySize, data.Restaurant, data.Date, data.Time),
		PendingReservation: pending,
	}
}

// Resume restates where an in-progress reservation stands without touching
// its step or data. Used for reservation talk that arrives after
// collecting_info, since steps only move forward.
func (f *ReservationFlow) Resume(pending *models.PendingReservation) *models.ChatResponse {
	data := pending.Data
	if pending.Step == models.StepPayment {
		return &models.ChatResponse{
			Reply: fmt.Sprintf("Your table for %d on %s at %s is held, waiting on the reservation fee. %s",
				data.PartySize, data.Date, data.Time, paymentInstructions(f.fee)),
			PendingReservation: pending,
		}
	}
	return &models.ChatResponse{
		Reply: fmt.Sprintf("To confirm: a table for %d at %s on %s, %s. Shall I go ahead?",
			data.PartySize, data.Restaurant, data.Date, data.Time),
		PendingReservation: pending,
	}
}

func missingSlots(data *models.ReservationData) []string {
	var missing []string
	if data.Date == "" {
		missing = append(missing, "the date")
	}
	if data.Time == "" {
		missing = append(missing, "the time")
	}
	if data.PartySize == 0 {
		missing = append(missing, "the party size")
	}
	return missing
}

// Confirm handles the affirmative in awaiting_confirmation: it asks the
// availability service for the smallest table that fits. On success the step
// advances to payment carrying the chosen table; when nothing fits the
// reservation is replaced by a PendingReservationRequest offering alternate
// slots. An adapter failure leaves the state untouched.
func (f *ReservationFlow) Confirm(ctx context.Context, pending *models.PendingReservation) *models.ChatResponse {
	data := &pending.Data
	offer, err := f.availability.Check(ctx, tables.Query{
		RestaurantID: data.RestaurantID,
		Date:         data.Date,
		Time:         data.Time,
		PartySize:    data.PartySize,
	})
	if err != nil {
		return &models.ChatResponse{Reply: adapterApology, PendingReservation: pending}
	}

	if !offer.Available {
		request := &models.PendingReservationRequest{
			Restaurant:   data.Restaurant,
			RestaurantID: data.RestaurantID,
			Date:         data.Date,
			PartySize:    data.PartySize,
		}
		return &models.ChatResponse{
			Reply: fmt.Sprintf("Unfortunately no table for %d is free at %s on %s. Say \"suggest times\" and I'll scan for open slots that day.",
				data.PartySize, data.Time, data.Date),
			PendingReservationRequest: request,
		}
	}

	data.Table = offer.TableID
	data.TableNumber = offer.TableNumber
	pending.Step = models.StepPayment
	reply := fmt.Sprintf("Table %d (seats %d) is yours pending payment of the reservation fee. %s",
		offer.TableNumber, offer.TableSize, paymentInstructions(f.fee))
	return &models.ChatResponse{Reply: reply, PendingReservation: pending}
}

// CompletePayment submits the reservation once a payment method and a
// transaction reference appear in one message. On adapter failure the payment
// state is preserved so the user can retry the same turn.
func (f *ReservationFlow) CompletePayment(ctx context.Context, text string, pending *models.PendingReservation, profile *models.UserProfile) *models.ChatResponse {
	method, txn, ok := PaymentDetails(text)
	if !ok {
		return &models.ChatResponse{
			Reply:              paymentInstructions(f.fee),
			PendingReservation: pending,
		}
	}

	data := pending.Data
	payload := models.ReservationPayload{
		ClientRef:     uuid.New().String(),
		RestaurantID:  data.RestaurantID,
		Restaurant:    data.Restaurant,
		Date:          data.Date,
		Time:          data.Time,
		PartySize:     data.PartySize,
		TableID:       data.Table,
		TableNumber:   data.TableNumber,
		Fee:           f.fee,
		PaymentMethod: method,
		TransactionID: txn,
	}
	if profile != nil {
		payload.UserEmail = profile.Email
	}

	id, err := f.orders.SubmitReservation(ctx, payload)
	if err != nil {
		return &models.ChatResponse{Reply: adapterApology, PendingReservation: pending}
	}

	f.logger.Info("reservation persisted",
		zap.String("reservationId", id),
		zap.String("restaurant", data.Restaurant),
		zap.String("date", data.Date))

	return &models.ChatResponse{
		Reply: fmt.Sprintf("All set! Your table for %d on %s at %s is booked (reference %s). See you then!",
			data.PartySize, data.Date, data.Time, id),
		Action: &models.ChatAction{
			Type:         "reservation",
			ID:           id,
			Restaurant:   data.Restaurant,
			RestaurantID: data.RestaurantID,
			Date:         data.Date,
			Time:         data.Time,
			PartySize:    data.PartySize,
			TableNumber:  data.TableNumber,
		},
	}
}

// SuggestTimes brute-force probes every half-hour slot between 12:00 and
// 22:00 and returns the ones with a fitting table, preserving time order.
func (f *ReservationFlow) SuggestTimes(ctx context.Context, request *models.PendingReservationRequest) *models.ChatResponse {
	var open []string
	for hour := 12; hour < 22; hour++ {
		for _, minute := range []int{0, 30} {
			slot := fmt.Sprintf("%02d:%02d", hour, minute)
			offer, err := f.availability.Check(ctx, tables.Query{
				RestaurantID: request.RestaurantID,
				Date:         request.Date,
				Time:         slot,
				PartySize:    request.PartySize,
			})
			if err != nil {
				return &models.ChatResponse{Reply: adapterApology, PendingReservationRequest: request}
			}
			if offer.Available {
				open = append(open, slot)
			}
		}
	}

	if len(open) == 0 {
		return &models.ChatResponse{
			Reply: fmt.Sprintf("I checked the whole day on %s and nothing is free for %d people. Would another date work?",
				request.Date, request.PartySize),
			PendingReservationRequest: request,
		}
	}

	request.AvailableTimes = open
	return &models.ChatResponse{
		Reply: fmt.Sprintf("These times are open on %s for %d people: %s. Which one should I book?",
			request.Date, request.PartySize, strings.Join(open, ", ")),
		PendingReservationRequest: request,
	}
}

var transactionTokenRe = regexp.MustCompile(`\b([a-z]*\d[a-z0-9]*)\b`)

// PaymentDetails extracts a supported payment method token and a transaction
// reference from one message. The reference must be at least 6 characters and
// contain a digit; cash on delivery needs no reference.
func PaymentDetails(text string) (method, txn string, ok bool) {
	method = models.MatchPaymentMethod(text)
	if method == "" {
		return "", "", false
	}
	if method == models.CashOnDelivery {
		return method, models.CashOnDelivery, true
	}
	for _, m := range transactionTokenRe.FindAllStringSubmatch(text, -1) {
		if len(m[1]) >= models.MinTransactionIDLen {
			return method, m[1], true
		}
	}
	return "", "", false
}
