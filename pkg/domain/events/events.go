package events

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/google/uuid"
)

// Event is implemented by every domain event published on the bus.
type Event interface {
	Type() string
}

// AccountEvent carries the fields shared by all account events.
type AccountEvent struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	TaxID      string
	OccurredAt time.Time
}

// NewAccountEvent stamps a fresh event ID for the given account.
func NewAccountEvent(acc *account.Account, at time.Time) AccountEvent {
	return AccountEvent{
		ID:         uuid.New(),
		AccountID:  acc.ID,
		TaxID:      acc.TaxID,
		OccurredAt: at,
	}
}

// AccountOpenedEvent is emitted after an account is stored.
type AccountOpenedEvent struct {
	AccountEvent
	Name string
}

func (e AccountOpenedEvent) Type() string { return EventTypeAccountOpened.String() }

// AccountRenamedEvent is emitted after the customer name changes.
type AccountRenamedEvent struct {
	AccountEvent
	OldName string
	NewName string
}

func (e AccountRenamedEvent) Type() string { return EventTypeAccountRenamed.String() }

// AccountClosedEvent is emitted after an account is removed from the store.
type AccountClosedEvent struct {
	AccountEvent
	FinalBalance account.Amount
}

func (e AccountClosedEvent) Type() string { return EventTypeAccountClosed.String() }

// StatementCreditedEvent is emitted when a deposit is recorded.
type StatementCreditedEvent struct {
	AccountEvent
	Entry   account.Entry
	Balance account.Amount
}

func (e StatementCreditedEvent) Type() string { return EventTypeStatementCredited.String() }

// StatementDebitedEvent is emitted when a withdrawal is recorded.
type StatementDebitedEvent struct {
	AccountEvent
	Entry   account.Entry
	Balance account.Amount
}

func (e StatementDebitedEvent) Type() string { return EventTypeStatementDebited.String() }

// WithdrawalRejectedEvent is emitted when a withdrawal fails the balance check.
type WithdrawalRejectedEvent struct {
	AccountEvent
	Requested account.Amount
	Balance   account.Amount
}

func (e WithdrawalRejectedEvent) Type() string { return EventTypeWithdrawalRejected.String() }
