package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaterialType is a recyclable category with a fixed point value, defined by
// an admin. Definitions are immutable once created: collectors scan the code
// printed on collection-point labels and the point value must stay stable for
// every event that referenced it.
type MaterialType struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the material type.
	Name        string    // Human-readable name, e.g. "PET Bottle". Never empty.
	Description string    // Free-form description shown on the admin dashboard.
	PointValue  int       // Points granted per returned unit. Invariant: > 0.
	Code        string    // Catalog-wide unique identifier code, e.g. "QR_PET_BOTTLE_1718031600000".
	CreatedBy   uuid.UUID // The admin account that defined this type.
	CreatedAt   time.Time // Timestamp of when this type was defined.
}
