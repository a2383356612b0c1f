// File: services/orders/client.go
package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"dinebot/models"
	"dinebot/utils"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// OrderService submits finalized orders and reservations to the external
// persistence service. The engine consumes but does not own that storage.
type OrderService interface {
	SubmitOrder(ctx context.Context, payload models.OrderPayload) (string, error)
	SubmitReservation(ctx context.Context, payload models.ReservationPayload) (string, error)
}

// HTTPOrderService posts payloads to the order/payment adapter behind a
// circuit breaker.
type HTTPOrderService struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

func NewHTTPOrderService(baseURL string, logger *zap.Logger) *HTTPOrderService {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "order-payment",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
	return &HTTPOrderService{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 8 * time.Second},
		breaker: cb,
		logger:  logger,
	}
}

func (s *HTTPOrderService) SubmitOrder(ctx context.Context, payload models.OrderPayload) (string, error) {
	id, err := s.post(ctx, "/orders", payload)
	if err != nil {
		utils.AdapterFailures.WithLabelValues("orders").Inc()
		s.logger.Error("order submission failed", zap.String("item", payload.ItemName), zap.Error(err))
		return "", err
	}
	return id, nil
}

func (s *HTTPOrderService) SubmitReservation(ctx context.Context, payload models.ReservationPayload) (string, error) {
	id, err := s.post(ctx, "/reservations", payload)
	if err != nil {
		utils.AdapterFailures.WithLabelValues("reservations").Inc()
		s.logger.Error("reservation submission failed", zap.String("restaurant", payload.Restaurant), zap.Error(err))
		return "", err
	}
	return id, nil
}

// post submits the payload and returns the persisted id from the response.
func (s *HTTPOrderService) post(ctx context.Context, path string, payload interface{}) (string, error) {
	result, err := s.breaker.Execute(func() (interface{}, error) {
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal payload: %w", err)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewBuffer(body))
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("order service request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("order service returned status %d", resp.StatusCode)
		}
		var out struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, fmt.Errorf("decode order service response: %w", err)
		}
		return out.ID, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}
