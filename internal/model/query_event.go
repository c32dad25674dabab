package model

import "time"

// Resolution paths reported in query analytics events.
const (
	PathSmalltalk  = "smalltalk"
	PathStructured = "structured"
	PathSemantic   = "semantic"
	PathDegraded   = "degraded"
)

// QueryEvent describes one resolved query. Events are published to Kafka
// fire-and-forget for offline analytics.
type QueryEvent struct {
	SessionID string        `json:"sessionId,omitempty"`
	Query     string        `json:"query"`
	Path      string        `json:"path"`
	District  string        `json:"district,omitempty"`
	Year      string        `json:"year,omitempty"`
	Latency   time.Duration `json:"latencyNs"`
	Timestamp time.Time     `json:"timestamp"`
}
