package tables

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckPassesQueryAndDecodesOffer(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tables/availability", r.URL.Path)
		gotQuery = map[string]string{
			"restaurantId": r.URL.Query().Get("restaurantId"),
			"date":         r.URL.Query().Get("date"),
			"time":         r.URL.Query().Get("time"),
			"partySize":    r.URL.Query().Get("partySize"),
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"available":true,"tableId":"T3","tableNumber":3,"tableSize":4}`)
	}))
	defer srv.Close()

	svc := NewHTTPAvailabilityService(srv.URL, zap.NewNop())
	offer, err := svc.Check(context.Background(), Query{
		RestaurantID: "r1", Date: "2025-12-23", Time: "19:00", PartySize: 4,
	})

	require.NoError(t, err)
	assert.True(t, offer.Available)
	assert.Equal(t, "T3", offer.TableID)
	assert.Equal(t, 3, offer.TableNumber)
	assert.Equal(t, 4, offer.TableSize)

	assert.Equal(t, map[string]string{
		"restaurantId": "r1",
		"date":         "2025-12-23",
		"time":         "19:00",
		"partySize":    "4",
	}, gotQuery)
}

func TestCheckNonOKStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	svc := NewHTTPAvailabilityService(srv.URL, zap.NewNop())
	_, err := svc.Check(context.Background(), Query{RestaurantID: "r1"})

	assert.Error(t, err)
}

func TestCheckBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewHTTPAvailabilityService(srv.URL, zap.NewNop())
	for i := 0; i < 5; i++ {
		_, err := svc.Check(context.Background(), Query{RestaurantID: "r1"})
		require.Error(t, err)
	}

	// The breaker is now open: the upstream is no longer called.
	_, err := svc.Check(context.Background(), Query{RestaurantID: "r1"})
	assert.Error(t, err)
}
