package account

import (
	"time"

	"github.com/shopspring/decimal"
)

// Amount is an exact decimal monetary value.
type Amount = decimal.Decimal

// Kind tells whether an entry increases or decreases the balance.
type Kind string

const (
	KindCredit Kind = "credit"
	KindDebit  Kind = "debit"
)

// Entry is one line of an account statement. Amount is a magnitude; the sign is carried by Kind.
type Entry struct {
	Description string    `json:"description,omitempty"`
	Amount      Amount    `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
	Kind        Kind      `json:"type"`
}

// Signed returns the amount with the sign implied by the entry kind.
func (e Entry) Signed() Amount {
	if e.Kind == KindCredit {
		return e.Amount
	}
	return e.Amount.Neg()
}
