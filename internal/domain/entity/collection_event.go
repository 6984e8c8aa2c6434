package entity

import (
	"time"

	"github.com/google/uuid"
)

// CollectionEvent records points credited to a participant for returning
// material, processed by a collector. Exactly one of MaterialTypeID and
// WeightKg is set: a scan event references the catalog entry, a weight event
// carries the measured weight instead. The log is append-only.
type CollectionEvent struct {
	ID             uuid.UUID  // The Global Unique Identifier (GUID) for the event.
	MaterialTypeID *uuid.UUID // The scanned material type; nil for weight-mode events.
	WeightKg       *float64   // The measured weight in kilograms; nil for scan-mode events.
	AccountID      uuid.UUID  // The participant credited with the points.
	CollectorID    uuid.UUID  // The collector who processed the return.
	PointsEarned   int        // Derived point credit. Invariant: >= 0.
	OccurredAt     time.Time  // When the return was processed.
}

// Mode reports the derivation mode of the event.
func (e *CollectionEvent) Mode() CollectionMode {
	if e.MaterialTypeID != nil {
		return CollectionModeScan
	}

	return CollectionModeWeight
}

// CollectionMode distinguishes how an event's point credit was derived.
type CollectionMode string

const (
	// CollectionModeScan derives points from the material type's point value.
	CollectionModeScan CollectionMode = "scan"
	// CollectionModeWeight derives points from weight times a per-kg rate.
	CollectionModeWeight CollectionMode = "weight"
)
