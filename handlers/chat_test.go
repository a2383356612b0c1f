package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dinebot/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDialogue struct {
	last models.ChatRequest
	resp models.ChatResponse
}

func (s *stubDialogue) ProcessTurn(ctx context.Context, req models.ChatRequest) models.ChatResponse {
	s.last = req
	return s.resp
}

func newChatRouter(svc *stubDialogue) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/chat", NewChatHandler(svc).HandleChat)
	return r
}

func postChat(t *testing.T, r *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, "/api/chat", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleChatMissingMessage(t *testing.T) {
	r := newChatRouter(&stubDialogue{})

	w := postChat(t, r, map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid chat request")
}

func TestHandleChatMalformedBody(t *testing.T) {
	r := newChatRouter(&stubDialogue{})

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleChatRoundTripsState(t *testing.T) {
	svc := &stubDialogue{
		resp: models.ChatResponse{
			Reply: "To confirm: a table for 4. Shall I go ahead?",
			PendingReservation: &models.PendingReservation{
				Step: models.StepAwaitingConfirmation,
				Data: models.ReservationData{PartySize: 4, Date: "2025-12-23", Time: "19:00"},
			},
			Source: "rules",
		},
	}
	r := newChatRouter(svc)

	w := postChat(t, r, models.ChatRequest{
		Message:      "book a table for 4 tomorrow at 7pm",
		PendingOrder: &models.PendingOrder{Item: "Zinger Burger"},
	})

	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "book a table for 4 tomorrow at 7pm", svc.last.Message)
	require.NotNil(t, svc.last.PendingOrder)
	assert.Equal(t, "Zinger Burger", svc.last.PendingOrder.Item)

	var got models.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, svc.resp.Reply, got.Reply)
	require.NotNil(t, got.PendingReservation)
	assert.Equal(t, models.StepAwaitingConfirmation, got.PendingReservation.Step)
	assert.Equal(t, 4, got.PendingReservation.Data.PartySize)
	assert.Equal(t, "rules", got.Source)
}

func TestHandleChatAlwaysRepliesOnSuccess(t *testing.T) {
	svc := &stubDialogue{resp: models.ChatResponse{Reply: "Hello!"}}
	r := newChatRouter(svc)

	w := postChat(t, r, models.ChatRequest{Message: "hi"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hello!")
}
