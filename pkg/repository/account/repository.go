package account

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/account"
)

// MutateFunc changes an account in place. Returning an error discards the change.
type MutateFunc func(acc *account.Account) error

// Repository defines the account store contract. Accounts are keyed by CPF.
// Every read returns a snapshot the caller may keep or modify freely.
type Repository interface {
	// Create inserts a new account. Returns account.ErrCustomerAlreadyExists if the CPF is taken.
	Create(ctx context.Context, acc *account.Account) error

	// FindByTaxID returns the account registered under cpf or account.ErrCustomerNotFound.
	FindByTaxID(ctx context.Context, cpf string) (*account.Account, error)

	// Update runs fn against the stored account while holding that account's write lock,
	// so a read-check-append sequence inside fn is atomic with respect to other writers.
	Update(ctx context.Context, cpf string, fn MutateFunc) (*account.Account, error)

	// Delete removes the account registered under cpf.
	Delete(ctx context.Context, cpf string) error

	// List returns every account in creation order.
	List(ctx context.Context) ([]*account.Account, error)

	// Count returns the number of stored accounts.
	Count(ctx context.Context) (int, error)
}
