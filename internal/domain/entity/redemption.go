package entity

import (
	"time"

	"github.com/google/uuid"
)

// RedemptionMethod is the payout channel chosen by the participant.
type RedemptionMethod string

const (
	// RedemptionMethodBank pays out by bank transfer.
	RedemptionMethodBank RedemptionMethod = "bank"
	// RedemptionMethodWallet pays out to a crypto wallet.
	RedemptionMethodWallet RedemptionMethod = "wallet"
)

// String returns the string representation of the method.
func (m RedemptionMethod) String() string {
	return string(m)
}

// IsValid checks if the RedemptionMethod is a valid value.
func (m RedemptionMethod) IsValid() bool {
	switch m {
	case RedemptionMethodBank, RedemptionMethodWallet:
		return true
	default:
		return false
	}
}

// RedemptionStatus tracks a redemption through the payout collaborator.
type RedemptionStatus string

const (
	// RedemptionStatusPending means the points are debited and reserved.
	RedemptionStatusPending RedemptionStatus = "pending"
	// RedemptionStatusCompleted means the payout was executed.
	RedemptionStatusCompleted RedemptionStatus = "completed"
	// RedemptionStatusFailed means the payout failed and the points were restored.
	RedemptionStatusFailed RedemptionStatus = "failed"
)

// String returns the string representation of the status.
func (s RedemptionStatus) String() string {
	return string(s)
}

// Redemption is a request to convert accumulated points into an external
// payout. Points are debited at creation time so a pending redemption can
// never be double-spent; a failed payout credits them back.
type Redemption struct {
	ID          uuid.UUID        // The Global Unique Identifier (GUID) for the redemption.
	AccountID   uuid.UUID        // The participant redeeming points.
	Points      int              // Points debited. Invariant: >= minimum threshold and <= balance at creation.
	Method      RedemptionMethod // Payout channel: bank or wallet.
	Destination string           // Composed payout destination, e.g. "First Bank - 0123456789" or a wallet address.
	Amount      float64          // Derived payout amount: Points / PointsPerUnit, in USD or USDC.
	Status      RedemptionStatus // pending until the payout collaborator reports an outcome.
	CreatedAt   time.Time        // Timestamp of when the request was accepted.
	UpdatedAt   time.Time        // Timestamp of the last status transition.
}
