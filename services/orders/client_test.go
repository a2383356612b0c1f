package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"dinebot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSubmitOrderPostsPayloadAndReturnsID(t *testing.T) {
	var got models.OrderPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		fmt.Fprint(w, `{"id":"ord-7"}`)
	}))
	defer srv.Close()

	svc := NewHTTPOrderService(srv.URL, zap.NewNop())
	id, err := svc.SubmitOrder(context.Background(), models.OrderPayload{
		ItemID: "i2", ItemName: "Zinger Burger", Price: 350, Quantity: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, "ord-7", id)
	assert.Equal(t, "i2", got.ItemID)
	assert.Equal(t, 1, got.Quantity)
}

func TestSubmitReservationPostsPayloadAndReturnsID(t *testing.T) {
	var got models.ReservationPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/reservations", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		fmt.Fprint(w, `{"id":"rsv-42"}`)
	}))
	defer srv.Close()

	svc := NewHTTPOrderService(srv.URL, zap.NewNop())
	id, err := svc.SubmitReservation(context.Background(), models.ReservationPayload{
		Restaurant: "Spice Route", Date: "2025-12-23", Time: "19:00", PartySize: 4,
	})

	require.NoError(t, err)
	assert.Equal(t, "rsv-42", id)
	assert.Equal(t, "Spice Route", got.Restaurant)
	assert.Equal(t, 4, got.PartySize)
}

func TestSubmitOrderNon2xxIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewHTTPOrderService(srv.URL, zap.NewNop())
	_, err := svc.SubmitOrder(context.Background(), models.OrderPayload{})

	assert.Error(t, err)
}
