package entities

import (
	"encoding/json"
	"time"
)

// ProcessorEvent is the verified webhook envelope handed to the event
// processor. Data keeps the provider object raw; handlers parse only the
// fields they need.

type ProcessorEvent struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Account string          `json:"account,omitempty"` // connected account for Connect events
	Data    json.RawMessage `json:"data"`
}

// WebhookEvent is the dedup record for processed processor events.
//
// Storage model (DynamoDB):
//   - PK: stripe_event_id
//
// A row is written (conditional on absence) only after every handler side
// effect succeeded; its existence is the idempotency fence that lets handlers
// assume at-most-once delivery.

type WebhookEvent struct {
	StripeEventID string    `json:"stripe_event_id"`
	EventType     string    `json:"event_type"`
	Processed     bool      `json:"processed"`
	ProcessedAt   time.Time `json:"processed_at"`
}
