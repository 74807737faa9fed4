package account

import (
	"time"

	"github.com/google/uuid"
)

// Account is a customer record keyed by its CPF (national tax ID).
//
// Invariants:
//   - TaxID is never empty and is unique within a store.
//   - Statement is append-only; entries are never edited once recorded.
type Account struct {
	ID        uuid.UUID `json:"id"`
	TaxID     string    `json:"cpf"`
	Name      string    `json:"name"`
	Statement []Entry   `json:"statement"`
	CreatedAt time.Time `json:"created_at"`
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	id        uuid.UUID
	taxID     string
	name      string
	statement []Entry
	createdAt time.Time
}

// New creates a Builder with a fresh UUID and the current time.
func New() *Builder {
	return &Builder{
		id:        uuid.New(),
		createdAt: time.Now(),
	}
}

// WithID sets the account ID. Used when hydrating fixtures.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithTaxID sets the CPF. This is a mandatory field.
func (b *Builder) WithTaxID(cpf string) *Builder {
	b.taxID = cpf
	return b
}

// WithName sets the customer name.
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithStatement seeds the statement, mainly for tests.
func (b *Builder) WithStatement(entries ...Entry) *Builder {
	b.statement = append(b.statement, entries...)
	return b
}

// WithCreatedAt sets the creation timestamp.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// Build validates the builder state and returns the Account.
func (b *Builder) Build() (*Account, error) {
	if b.taxID == "" {
		return nil, ErrInvalidTaxID
	}
	for _, e := range b.statement {
		if e.Amount.IsNegative() {
			return nil, ErrInvalidAmount
		}
	}
	statement := make([]Entry, len(b.statement))
	copy(statement, b.statement)
	return &Account{
		ID:        b.id,
		TaxID:     b.taxID,
		Name:      b.name,
		Statement: statement,
		CreatedAt: b.createdAt,
	}, nil
}

// Clone returns a copy that shares no mutable state with a.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	cp := *a
	cp.Statement = make([]Entry, len(a.Statement))
	copy(cp.Statement, a.Statement)
	return &cp
}

// Balance returns the net sum of the account statement.
func (a *Account) Balance() Amount {
	return Balance(a.Statement)
}

// Credit appends a credit entry recorded at the given time.
func (a *Account) Credit(amount Amount, description string, at time.Time) (Entry, error) {
	if amount.IsNegative() {
		return Entry{}, ErrInvalidAmount
	}
	e := Entry{
		Description: description,
		Amount:      amount,
		CreatedAt:   at,
		Kind:        KindCredit,
	}
	a.Statement = append(a.Statement, e)
	return e, nil
}

// Debit appends a debit entry after checking the current balance covers it.
// A rejected debit leaves the statement untouched.
func (a *Account) Debit(amount Amount, description string, at time.Time) (Entry, error) {
	if amount.IsNegative() {
		return Entry{}, ErrInvalidAmount
	}
	if a.Balance().LessThan(amount) {
		return Entry{}, ErrInsufficientFunds
	}
	e := Entry{
		Description: description,
		Amount:      amount,
		CreatedAt:   at,
		Kind:        KindDebit,
	}
	a.Statement = append(a.Statement, e)
	return e, nil
}
