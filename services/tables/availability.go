// File: services/tables/availability.go
package tables

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dinebot/utils"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Query identifies a requested seating.
type Query struct {
	RestaurantID string
	Date         string // YYYY-MM-DD
	Time         string // HH:MM, 24h
	PartySize    int
}

// Offer is the availability service's answer. When Available is true the
// referenced table is the smallest one whose capacity fits the party.
type Offer struct {
	Available   bool   `json:"available"`
	TableID     string `json:"tableId,omitempty"`
	TableNumber int    `json:"tableNumber,omitempty"`
	TableSize   int    `json:"tableSize,omitempty"`
}

// AvailabilityService checks table availability with the external service.
type AvailabilityService interface {
	Check(ctx context.Context, q Query) (*Offer, error)
}

// HTTPAvailabilityService calls the external availability endpoint behind a
// circuit breaker so a flapping upstream degrades to an apology, not a hang.
type HTTPAvailabilityService struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

func NewHTTPAvailabilityService(baseURL string, logger *zap.Logger) *HTTPAvailabilityService {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "tables-availability",
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
	return &HTTPAvailabilityService{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
		breaker: cb,
		logger:  logger,
	}
}

func (s *HTTPAvailabilityService) Check(ctx context.Context, q Query) (*Offer, error) {
	result, err := s.breaker.Execute(func() (interface{}, error) {
		params := url.Values{}
		params.Set("restaurantId", q.RestaurantID)
		params.Set("date", q.Date)
		params.Set("time", q.Time)
		params.Set("partySize", strconv.Itoa(q.PartySize))

		endpoint := s.baseURL + "/tables/availability?" + params.Encode()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		resp, err := s.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("availability request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("availability service returned status %d", resp.StatusCode)
		}
		var offer Offer
		if err := json.NewDecoder(resp.Body).Decode(&offer); err != nil {
			return nil, fmt.Errorf("decode availability response: %w", err)
		}
		return &offer, nil
	})
	if err != nil {
		utils.AdapterFailures.WithLabelValues("availability").Inc()
		s.logger.Error("availability check failed", zap.String("restaurant", q.RestaurantID), zap.Error(err))
		return nil, err
	}
	return result.(*Offer), nil
}
