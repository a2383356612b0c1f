// File: services/intelligence/fallback.go
package intelligence

import (
	"context"
	"errors"
	"strings"

	"dinebot/utils"

	"go.uber.org/zap"
)

// Cascade stage tags, in attempt order.
const (
	SourcePrimary   = "gemini-pro"
	SourceSecondary = "gemini-flash"
	SourceRules     = "rules"
	SourceStatic    = "static"
)

const emergencyReply = "I'm having technical difficulties right now, but we'd still love to serve you. " +
	"Please call the restaurant directly to order or book a table, or try again in a few minutes."

// Reply is the cascade's result, tagged with the stage that produced it and a
// heuristic confidence score.
type Reply struct {
	Text       string
	Source     string
	Confidence float64
}

// Cascade is the ordered strategy list behind every message no static
// handler resolves. Each stage is attempted only when the previous one
// failed; the last stage cannot fail, so Respond never returns an error.
type Cascade struct {
	generator Generator
	store     ContextStore
	logger    *zap.Logger
}

var errNoGenerator = errors.New("no generative client configured")

// NewCascade builds the cascade. generator and store may be nil (e.g. no API
// key configured); the deterministic stages then carry the conversation.
func NewCascade(generator Generator, store ContextStore, logger *zap.Logger) *Cascade {
	return &Cascade{generator: generator, store: store, logger: logger}
}

// Respond works through the stages in strict order: primary generative call
// with chat context, secondary without, deterministic topic responder, then
// the static emergency message.
func (c *Cascade) Respond(ctx context.Context, q Query) Reply {
	prompt := buildPrompt(q)

	if text, err := c.tryPrimary(ctx, q, prompt); err == nil {
		return c.finish(ctx, q, Reply{Text: text, Source: SourcePrimary, Confidence: scoreConfidence(text)})
	} else {
		c.logger.Warn("primary generative stage failed", zap.Error(err))
	}

	if text, err := c.trySecondary(ctx, prompt); err == nil {
		return c.finish(ctx, q, Reply{Text: text, Source: SourceSecondary, Confidence: scoreConfidence(text)})
	} else {
		c.logger.Warn("secondary generative stage failed", zap.Error(err))
	}

	if text, ok := topicReply(q.Message); ok {
		return c.finish(ctx, q, Reply{Text: text, Source: SourceRules, Confidence: scoreConfidence(text)})
	}

	return c.finish(ctx, q, Reply{Text: emergencyReply, Source: SourceStatic, Confidence: scoreConfidence(emergencyReply)})
}

func (c *Cascade) tryPrimary(ctx context.Context, q Query, prompt string) (string, error) {
	if c.generator == nil {
		return "", errNoGenerator
	}
	var history []Exchange
	if c.store != nil && q.UserID != "" {
		h, err := c.store.History(ctx, q.UserID)
		if err != nil {
			c.logger.Warn("conversation history unavailable", zap.Error(err))
		} else {
			history = h
		}
	}
	return c.generator.GenerateWithHistory(ctx, history, prompt)
}

func (c *Cascade) trySecondary(ctx context.Context, prompt string) (string, error) {
	if c.generator == nil {
		return "", errNoGenerator
	}
	return c.generator.GenerateOnce(ctx, prompt)
}

// finish records the exchange for future prompts and counts the stage.
func (c *Cascade) finish(ctx context.Context, q Query, r Reply) Reply {
	utils.CascadeStage.WithLabelValues(r.Source).Inc()
	if c.store != nil && q.UserID != "" {
		ex := Exchange{User: q.Message, Assistant: r.Text, At: q.Now}
		if err := c.store.Append(ctx, q.UserID, ex); err != nil {
			c.logger.Warn("failed to record conversation exchange", zap.Error(err))
		}
	}
	return r
}

// topicReply is the deterministic stage: keyword heuristics for the few
// topics worth a canned but on-subject answer.
func topicReply(message string) (string, bool) {
	text := strings.ToLower(message)
	switch {
	case strings.Contains(text, "reserv") || strings.Contains(text, "book") || strings.Contains(text, "table"):
		return "I can book a table for you. Tell me the date, time, and how many people, for example: \"book a table for 4 tomorrow at 7pm\".", true
	case strings.Contains(text, "menu") || strings.Contains(text, "food") || strings.Contains(text, "eat") || strings.Contains(text, "dish"):
		return "Ask me to \"show the menu\" or \"show popular dishes\" and I'll list everything we serve.", true
	case strings.Contains(text, "hour") || strings.Contains(text, "open") || strings.Contains(text, "close") || strings.Contains(text, "timing"):
		return "We're open from 11:00 to 22:00 every day. Can I book you a table?", true
	case strings.Contains(text, "hi") || strings.Contains(text, "hello") || strings.Contains(text, "hey"):
		return "Hello! I can show you the menu, take an order, or book a table. What would you like?", true
	}
	return "", false
}

// scoreConfidence is a cheap heuristic: a reply still apologising about
// technical difficulties scores low, one carrying concrete details (prices,
// times, counts) scores high.
func scoreConfidence(text string) float64 {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "technical difficulties") {
		return 0.2
	}
	if strings.ContainsAny(text, "0123456789") {
		return 0.9
	}
	return 0.5
}
