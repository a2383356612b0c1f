// File: services/dialogue/interface.go
package dialogue

import (
	"context"

	"dinebot/models"
	"dinebot/services/intelligence"
)

// Service handles one chat turn. Implementations must be stateless: all
// durable dialogue state rides in the request and response payloads.
type Service interface {
	ProcessTurn(ctx context.Context, req models.ChatRequest) models.ChatResponse
}

// Responder is the generative fallback behind every message no static
// handler or workflow resolves.
type Responder interface {
	Respond(ctx context.Context, q intelligence.Query) intelligence.Reply
}
