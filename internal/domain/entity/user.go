// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity: a participant, collector or admin.
// Points only ever change through a CollectionEvent credit or a Redemption
// debit; the balance is never written directly by a handler.
type User struct {
	ID            uuid.UUID    // The Global Unique Identifier (GUID) for the account.
	Email         string       // The account's primary contact email, used as the login identifier.
	Name          string       // The account's display name.
	Role          Role         // The single, immutable role assigned at registration.
	Points        int          // Current point balance. Invariant: never negative.
	WalletAddress string       // Optional crypto wallet for payout; empty when unset.
	BankDetails   *BankDetails // Optional bank payout destination; nil when unset.
	CreatedAt     time.Time    // Timestamp of when this account was created.
	UpdatedAt     time.Time    // Timestamp of the last modification to this account.
}

// BankDetails is the bank payout destination a participant configures
// before requesting a bank redemption.
type BankDetails struct {
	AccountNumber string
	BankName      string
	AccountName   string
}

// Complete reports whether the details are sufficient for a bank payout.
func (b *BankDetails) Complete() bool {
	return b != nil && b.BankName != "" && b.AccountNumber != ""
}
