// File: services/dialogue/order.go
package dialogue

import (
	"context"
	"fmt"
	"strings"

	"dinebot/models"
	"dinebot/services/orders"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderFlow drives the single-shot menu ordering workflow: once a
// PendingOrder exists, one message carrying a payment method and transaction
// reference completes it.
type OrderFlow struct {
	orders orders.OrderService
	logger *zap.Logger
}

func NewOrderFlow(orderSvc orders.OrderService, logger *zap.Logger) *OrderFlow {
	return &OrderFlow{orders: orderSvc, logger: logger}
}

// Start resolves the named item and opens a PendingOrder. A resolution miss
// reports the known item names so the user can correct themselves.
func (f *OrderFlow) Start(text string, cat models.Catalog) *models.ChatResponse {
	item := ResolveItem(cat.Items, text)
	if item == nil {
		return &models.ChatResponse{Reply: unknownItemReply(cat)}
	}

	var restaurant models.Restaurant
	for _, r := range cat.Restaurants {
		if r.ID == item.RestaurantID {
			restaurant = r
			break
		}
	}

	pending := &models.PendingOrder{
		Item:         item.Name,
		Category:     item.CategoryName,
		Restaurant:   restaurant.Name,
		RestaurantID: restaurant.ID,
	}
	return &models.ChatResponse{
		Reply:        fmt.Sprintf("One %s coming up! %s", item.Name, paymentInstructions(item.Price)),
		PendingOrder: pending,
	}
}

// Complete re-resolves the item against the fresh catalog (the pending name
// may have gone stale) and submits the order. On adapter failure the pending
// order is preserved for a retry.
func (f *OrderFlow) Complete(ctx context.Context, text string, pending *models.PendingOrder, cat models.Catalog, profile *models.UserProfile) *models.ChatResponse {
	method, txn, ok := PaymentDetails(text)
	if !ok {
		return &models.ChatResponse{Reply: paymentInstructionsForPending(pending, cat), PendingOrder: pending}
	}

	item := ResolveItem(cat.Items, pending.Item)
	if item == nil {
		return &models.ChatResponse{
			Reply:        fmt.Sprintf("I'm sorry, %s is no longer on the menu. Would you like something else?", pending.Item),
			PendingOrder: pending,
		}
	}

	payload := models.OrderPayload{
		ClientRef:     uuid.New().String(),
		ItemID:        item.ID,
		ItemName:      item.Name,
		Price:         item.Price,
		Quantity:      1,
		RestaurantID:  pending.RestaurantID,
		Restaurant:    pending.Restaurant,
		PaymentMethod: method,
		TransactionID: txn,
	}
	if profile != nil {
		payload.UserEmail = profile.Email
	}

	id, err := f.orders.SubmitOrder(ctx, payload)
	if err != nil {
		return &models.ChatResponse{Reply: adapterApology, PendingOrder: pending}
	}

	f.logger.Info("order persisted",
		zap.String("orderId", id),
		zap.String("item", item.Name))

	return &models.ChatResponse{
		Reply: fmt.Sprintf("Your %s is on its way! Order reference %s. Enjoy!", item.Name, id),
		Action: &models.ChatAction{
			Type:          "order",
			ID:            id,
			Item:          item.Name,
			Restaurant:    pending.Restaurant,
			RestaurantID:  pending.RestaurantID,
			Total:         item.Price,
			PaymentMethod: method,
		},
	}
}

// PromoteSuggestion turns the assistant's last suggested item into a
// PendingOrder on a bare confirmation, so the user need not repeat its name.
// This is state recovery, not a new intent.
func (f *OrderFlow) PromoteSuggestion(suggestion *models.Suggestion, cat models.Catalog) *models.ChatResponse {
	item := ResolveItem(cat.Items, suggestion.Item)
	if item == nil {
		return &models.ChatResponse{
			Reply: fmt.Sprintf("I'm sorry, %s is no longer available. Can I suggest something else?", suggestion.Item),
		}
	}

	pending := &models.PendingOrder{
		Item:         item.Name,
		Category:     suggestion.Category,
		Restaurant:   suggestion.Restaurant,
		RestaurantID: item.RestaurantID,
	}
	return &models.ChatResponse{
		Reply:        fmt.Sprintf("Great choice! One %s it is. %s", item.Name, paymentInstructions(item.Price)),
		PendingOrder: pending,
	}
}

func paymentInstructionsForPending(pending *models.PendingOrder, cat models.Catalog) string {
	if item := ResolveItem(cat.Items, pending.Item); item != nil {
		return paymentInstructions(item.Price)
	}
	return paymentInstructions(0)
}

func unknownItemReply(cat models.Catalog) string {
	if len(cat.Items) == 0 {
		return "I couldn't load the menu right now. Please try again in a moment."
	}
	names := make([]string, len(cat.Items))
	for i, it := range cat.Items {
		names[i] = it.Name
	}
	return "I couldn't match that to anything on the menu. We have: " + strings.Join(names, ", ") + "."
}
