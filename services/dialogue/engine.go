// File: services/dialogue/engine.go
package dialogue

import (
	"context"
	"time"

	"dinebot/models"
	"dinebot/services/catalog"
	"dinebot/services/intelligence"
	"dinebot/utils"

	"go.uber.org/zap"
)

// Engine is the default dialogue service. Each turn is self-contained:
// normalize, snapshot the catalog, then walk the dispatch order until a
// handler claims the message. The dispatch order is a contract — narrow
// checks run before generic ones, and the AI cascade is last.
type Engine struct {
	catalog      catalog.Fetcher
	reservations *ReservationFlow
	orderFlow    *OrderFlow
	fallback     Responder
	logger       *zap.Logger
	now          func() time.Time
}

func NewEngine(cat catalog.Fetcher, reservations *ReservationFlow, orderFlow *OrderFlow, fallback Responder, logger *zap.Logger) *Engine {
	return &Engine{
		catalog:      cat,
		reservations: reservations,
		orderFlow:    orderFlow,
		fallback:     fallback,
		logger:       logger,
		now:          time.Now,
	}
}

func (e *Engine) ProcessTurn(ctx context.Context, req models.ChatRequest) models.ChatResponse {
	text := Normalize(req.Message)
	cat := e.catalog.FetchAll(ctx)

	resp, route := e.dispatch(ctx, req, text, cat)
	utils.ChatTurns.WithLabelValues(route).Inc()
	e.logger.Debug("chat turn handled", zap.String("route", route))
	return resp
}

func (e *Engine) dispatch(ctx context.Context, req models.ChatRequest, text string, cat models.Catalog) (models.ChatResponse, string) {
	// Explicit cancel abandons every in-progress workflow, whatever else the
	// message mentions.
	if IsCancellation(text) {
		return models.ChatResponse{
			Reply: "No problem, I've cancelled that. Let me know if you'd like anything else.",
		}, "cancel"
	}

	// A live reservation in its later steps gets first claim on the message.
	if pending := req.PendingReservation; pending != nil {
		switch pending.Step {
		case models.StepPayment:
			if models.MatchPaymentMethod(text) != "" {
				resp := e.reservations.CompletePayment(ctx, text, pending, req.UserProfile)
				resp.LastSuggestion = req.LastSuggestion
				return *resp, "reservation_payment"
			}
		case models.StepAwaitingConfirmation:
			if IsAffirmative(text) {
				resp := e.reservations.Confirm(ctx, pending)
				resp.LastSuggestion = req.LastSuggestion
				return *resp, "reservation_confirm"
			}
			if IsNegative(text) {
				return models.ChatResponse{
					Reply:          "Alright, I won't book that. Just say the word if you change your mind.",
					LastSuggestion: req.LastSuggestion,
				}, "reservation_declined"
			}
		}
	}

	// Alternate-slot scan for a reservation that found no table.
	if req.PendingReservationRequest != nil && (req.SuggestTime || WantsTimeSuggestions(text)) {
		resp := e.reservations.SuggestTimes(ctx, req.PendingReservationRequest)
		resp.PendingOrder = req.PendingOrder
		resp.LastSuggestion = req.LastSuggestion
		return *resp, "suggest_time"
	}

	// Reservation vocabulary starts (or keeps feeding) the reservation flow.
	// Starting a reservation clears any stale order state: the two workflows
	// are mutually exclusive within a turn. Past collecting_info the same
	// vocabulary is a status question, not a restart: the current step is
	// restated and never moves backward.
	if HasReservationKeywords(text) {
		if pending := req.PendingReservation; pending != nil && pending.Step != models.StepCollectingInfo {
			resp := e.reservations.Resume(pending)
			resp.LastSuggestion = req.LastSuggestion
			return *resp, "reservation_resume"
		}
		resp := e.reservations.Collect(text, req.PendingReservation, cat)
		resp.LastSuggestion = req.LastSuggestion
		return *resp, "reservation_collect"
	}
	if pending := req.PendingReservation; pending != nil && pending.Step == models.StepCollectingInfo && hasReservationSlots(text, e.now()) {
		resp := e.reservations.Collect(text, pending, cat)
		resp.PendingOrder = req.PendingOrder
		resp.LastSuggestion = req.LastSuggestion
		return *resp, "reservation_collect"
	}

	// An open order completes when payment details arrive.
	if req.PendingOrder != nil && models.MatchPaymentMethod(text) != "" {
		resp := e.orderFlow.Complete(ctx, text, req.PendingOrder, cat, req.UserProfile)
		resp.PendingReservation = req.PendingReservation
		resp.PendingReservationRequest = req.PendingReservationRequest
		return *resp, "order_payment"
	}

	// A bare confirmation promotes the last suggested dish into an order.
	if req.LastSuggestion != nil && IsAffirmative(text) {
		resp := e.orderFlow.PromoteSuggestion(req.LastSuggestion, cat)
		resp.PendingReservation = req.PendingReservation
		resp.PendingReservationRequest = req.PendingReservationRequest
		return *resp, "suggestion_promote"
	}

	if intent, ok := FirstIntent(text); ok {
		if resp, handled := e.handleStatic(intent, req, text, cat); handled {
			return resp, string(intent)
		}
	}

	return e.handleFallback(ctx, req, cat), "fallback"
}

// handleStatic serves listings and canned replies. These never touch workflow
// state: whatever pending state the caller sent is echoed back untouched.
func (e *Engine) handleStatic(intent Intent, req models.ChatRequest, text string, cat models.Catalog) (models.ChatResponse, bool) {
	resp := models.ChatResponse{
		PendingOrder:              req.PendingOrder,
		PendingReservation:        req.PendingReservation,
		PendingReservationRequest: req.PendingReservationRequest,
		LastSuggestion:            req.LastSuggestion,
	}

	switch intent {
	case IntentPopular:
		resp.Reply = popularReply(cat)
	case IntentSpecial:
		resp.Reply = specialReply(cat)
	case IntentMostOrdered:
		resp.Reply = mostOrderedReply(cat)
	case IntentCategoryBrowse:
		query, _ := CategoryBrowseQuery(text)
		resp.Reply, resp.Action = categoryBrowseReply(cat, query)
	case IntentMenu:
		resp.Reply = menuReply(cat)
	case IntentCategories:
		resp.Reply = categoriesReply(cat)
	case IntentTracking:
		resp.Reply = trackingReply()
	case IntentHelp:
		resp.Reply = helpReply()
	case IntentGreeting:
		resp.Reply = greetingReply(req.UserProfile)
	case IntentRecommendation:
		reply, suggestion := recommendReply(cat)
		resp.Reply = reply
		if suggestion != nil {
			resp.LastSuggestion = suggestion
		}
	case IntentOrder:
		started := e.orderFlow.Start(text, cat)
		started.PendingReservation = req.PendingReservation
		started.PendingReservationRequest = req.PendingReservationRequest
		return *started, true
	default:
		return models.ChatResponse{}, false
	}
	return resp, true
}

func (e *Engine) handleFallback(ctx context.Context, req models.ChatRequest, cat models.Catalog) models.ChatResponse {
	q := intelligence.Query{
		Message: req.Message,
		Catalog: cat,
		Now:     e.now(),
		Profile: req.UserProfile,
	}
	if req.UserProfile != nil {
		q.UserID = req.UserProfile.ID
		if q.UserID == "" {
			q.UserID = req.UserProfile.Email
		}
	}
	reply := e.fallback.Respond(ctx, q)

	return models.ChatResponse{
		Reply:                     reply.Text,
		Source:                    reply.Source,
		Confidence:                reply.Confidence,
		PendingOrder:              req.PendingOrder,
		PendingReservation:        req.PendingReservation,
		PendingReservationRequest: req.PendingReservationRequest,
		LastSuggestion:            req.LastSuggestion,
	}
}

// hasReservationSlots reports whether a message carries anything an ongoing
// collection turn could merge (a date, time, or party size).
func hasReservationSlots(text string, now time.Time) bool {
	if _, ok := ExtractPartySize(text); ok {
		return true
	}
	if _, ok := ExtractTime(text); ok {
		return true
	}
	if _, ok := ExtractDate(text, now); ok {
		return true
	}
	return false
}
