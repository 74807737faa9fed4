package account

import "errors"

var (
	// ErrCustomerNotFound is returned when no account matches the supplied CPF.
	ErrCustomerNotFound = errors.New("Customer not found") //nolint:staticcheck

	// ErrCustomerAlreadyExists is returned when an account is opened with a CPF already in use.
	ErrCustomerAlreadyExists = errors.New("Customer already exists!") //nolint:staticcheck

	// ErrInsufficientFunds is returned when a withdrawal exceeds the computed balance.
	ErrInsufficientFunds = errors.New("Insufficient funds!") //nolint:staticcheck

	// ErrInvalidAmount is returned when an entry amount is negative.
	ErrInvalidAmount = errors.New("amount must not be negative")

	// ErrInvalidTaxID is returned when an account is built without a CPF.
	ErrInvalidTaxID = errors.New("cpf is required")
)
