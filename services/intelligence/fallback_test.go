package intelligence

import (
	"context"
	"errors"
	"testing"
	"time"

	"dinebot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGenerator struct {
	withHistoryText string
	withHistoryErr  error
	onceText        string
	onceErr         error
	historySeen     []Exchange
}

func (g *stubGenerator) GenerateWithHistory(ctx context.Context, history []Exchange, prompt string) (string, error) {
	g.historySeen = history
	if g.withHistoryErr != nil {
		return "", g.withHistoryErr
	}
	return g.withHistoryText, nil
}

func (g *stubGenerator) GenerateOnce(ctx context.Context, prompt string) (string, error) {
	if g.onceErr != nil {
		return "", g.onceErr
	}
	return g.onceText, nil
}

type memStore struct {
	data map[string][]Exchange
}

func newMemStore() *memStore { return &memStore{data: map[string][]Exchange{}} }

func (s *memStore) History(ctx context.Context, userID string) ([]Exchange, error) {
	return s.data[userID], nil
}

func (s *memStore) Append(ctx context.Context, userID string, ex Exchange) error {
	s.data[userID] = append(s.data[userID], ex)
	return nil
}

func (s *memStore) Clear(ctx context.Context, userID string) error {
	delete(s.data, userID)
	return nil
}

func testQuery(message string) Query {
	return Query{
		Message: message,
		UserID:  "u1",
		Catalog: models.Catalog{
			Items: []models.Item{{Name: "Chicken Biryani", Price: 450}},
		},
		Now: time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC),
	}
}

func TestCascadePrimarySucceeds(t *testing.T) {
	gen := &stubGenerator{withHistoryText: "Our biryani is Rs. 450."}
	store := newMemStore()
	cascade := NewCascade(gen, store, zap.NewNop())

	reply := cascade.Respond(context.Background(), testQuery("how much is the biryani"))

	assert.Equal(t, SourcePrimary, reply.Source)
	assert.Equal(t, "Our biryani is Rs. 450.", reply.Text)
	assert.Equal(t, 0.9, reply.Confidence, "a reply with concrete numbers scores high")
	require.Len(t, store.data["u1"], 1)
	assert.Equal(t, "how much is the biryani", store.data["u1"][0].User)
}

func TestCascadePrimaryReceivesHistory(t *testing.T) {
	gen := &stubGenerator{withHistoryText: "Sure."}
	store := newMemStore()
	store.data["u1"] = []Exchange{{User: "hi", Assistant: "hello"}}
	cascade := NewCascade(gen, store, zap.NewNop())

	cascade.Respond(context.Background(), testQuery("and dessert?"))

	require.Len(t, gen.historySeen, 1)
	assert.Equal(t, "hi", gen.historySeen[0].User)
}

func TestCascadeFallsToSecondary(t *testing.T) {
	gen := &stubGenerator{
		withHistoryErr: errors.New("quota exceeded"),
		onceText:       "We close at 22:00.",
	}
	cascade := NewCascade(gen, newMemStore(), zap.NewNop())

	reply := cascade.Respond(context.Background(), testQuery("when do you close"))

	assert.Equal(t, SourceSecondary, reply.Source)
	assert.Equal(t, "We close at 22:00.", reply.Text)
}

func TestCascadeFallsToRules(t *testing.T) {
	gen := &stubGenerator{
		withHistoryErr: errors.New("down"),
		onceErr:        errors.New("down"),
	}
	cascade := NewCascade(gen, newMemStore(), zap.NewNop())

	reply := cascade.Respond(context.Background(), testQuery("what time do you open"))

	assert.Equal(t, SourceRules, reply.Source)
	assert.Contains(t, reply.Text, "11:00")
	assert.Equal(t, 0.9, reply.Confidence)
}

func TestCascadeFallsToStatic(t *testing.T) {
	gen := &stubGenerator{
		withHistoryErr: errors.New("down"),
		onceErr:        errors.New("down"),
	}
	cascade := NewCascade(gen, newMemStore(), zap.NewNop())

	reply := cascade.Respond(context.Background(), testQuery("xyzzy qwerty"))

	assert.Equal(t, SourceStatic, reply.Source)
	assert.Contains(t, reply.Text, "technical difficulties")
	assert.Equal(t, 0.2, reply.Confidence)
}

func TestCascadeWithoutGeneratorOrStore(t *testing.T) {
	cascade := NewCascade(nil, nil, zap.NewNop())

	reply := cascade.Respond(context.Background(), testQuery("do you have a menu"))

	assert.Equal(t, SourceRules, reply.Source)
	assert.Contains(t, reply.Text, "menu")
}

func TestTopicReply(t *testing.T) {
	tests := []struct {
		message string
		wantOK  bool
	}{
		{"can i book somewhere", true},
		{"what food do you have", true},
		{"are you open on sunday", true},
		{"hello", true},
		{"xyzzy qwerty", false},
	}
	for _, tc := range tests {
		_, ok := topicReply(tc.message)
		assert.Equal(t, tc.wantOK, ok, "message %q", tc.message)
	}
}

func TestScoreConfidence(t *testing.T) {
	assert.Equal(t, 0.2, scoreConfidence("We are having technical difficulties."))
	assert.Equal(t, 0.9, scoreConfidence("It costs Rs. 450."))
	assert.Equal(t, 0.5, scoreConfidence("Of course, happy to help."))
}
