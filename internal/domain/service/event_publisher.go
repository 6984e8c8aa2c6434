package service

import (
	"context"
)

// Ledger event severities surfaced to the notification sink.
const (
	SeveritySuccess = "success"
	SeverityError   = "error"
)

// Ledger event types.
const (
	EventCollectionRecorded  = "collection.recorded"
	EventRedemptionRequested = "redemption.requested"
	EventRedemptionCompleted = "redemption.completed"
	EventRedemptionFailed    = "redemption.failed"
)

// LedgerEvent is the message published to the notification sink after a
// ledger operation. Purely observational: nothing downstream feeds back into
// ledger state.
type LedgerEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	EventID     string `json:"event_id"`
	Type        string `json:"type"`
	AccountID   string `json:"account_id"`
	Points      int    `json:"points"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// EventPublisher defines the interface for publishing ledger events to a message queue
type EventPublisher interface {
	// PublishLedgerEvent publishes a ledger event for async notification delivery
	PublishLedgerEvent(ctx context.Context, event *LedgerEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
