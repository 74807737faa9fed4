package events

// EventType represents the type of an event in the system.
type EventType string

// Event type constants
const (
	// Account lifecycle events
	EventTypeAccountOpened  EventType = "Account.Opened"
	EventTypeAccountRenamed EventType = "Account.Renamed"
	EventTypeAccountClosed  EventType = "Account.Closed"

	// Statement events
	EventTypeStatementCredited  EventType = "Statement.Credited"
	EventTypeStatementDebited   EventType = "Statement.Debited"
	EventTypeWithdrawalRejected EventType = "Withdrawal.Rejected"
)

func (t EventType) String() string { return string(t) }
