// File: utils/metrics.go
package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ChatTurns counts handled chat turns by the route that produced the reply.
	ChatTurns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dinebot_chat_turns_total",
		Help: "Chat turns handled, labelled by dispatch route.",
	}, []string{"route"})

	// CascadeStage counts which fallback stage produced a generative reply.
	CascadeStage = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dinebot_fallback_stage_total",
		Help: "Fallback cascade replies, labelled by producing stage.",
	}, []string{"stage"})

	// AdapterFailures counts failed calls to external collaborators.
	AdapterFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dinebot_adapter_failures_total",
		Help: "Failed external adapter calls, labelled by adapter.",
	}, []string{"adapter"})
)
