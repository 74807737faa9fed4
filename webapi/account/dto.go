package account

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
)

//revive:disable

// CreateAccountRequest represents the request body for opening an account.
type CreateAccountRequest struct {
	CPF  string `json:"cpf" validate:"required,max=64" example:"111"`
	Name string `json:"name" validate:"required,max=255" example:"Ana"`
}

// UpdateAccountRequest represents the request body for renaming an account.
type UpdateAccountRequest struct {
	Name string `json:"name" validate:"required,max=255" example:"Ana Maria"`
}

// DepositRequest represents the request body for depositing funds.
type DepositRequest struct {
	Description string  `json:"description" validate:"max=255" example:"salary"`
	Amount      float64 `json:"amount" xml:"amount" form:"amount" validate:"required,gt=0" example:"100"`
}

// WithdrawRequest represents the request body for withdrawing funds.
type WithdrawRequest struct {
	Amount float64 `json:"amount" xml:"amount" form:"amount" validate:"required,gt=0" example:"40"`
}

// EntryDTO is the API response representation of a statement entry.
type EntryDTO struct {
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
	Type        string    `json:"type" example:"credit"`
}

// AccountDTO is the API response representation of an account.
type AccountDTO struct {
	CPF       string     `json:"cpf"`
	Name      string     `json:"name"`
	ID        string     `json:"id"`
	Statement []EntryDTO `json:"statement"`
	CreatedAt time.Time  `json:"created_at"`
}

//revive:enable

// ToEntryDTO maps a domain entry to its response shape.
func ToEntryDTO(e account.Entry) EntryDTO {
	return EntryDTO{
		Description: e.Description,
		Amount:      e.Amount.InexactFloat64(),
		CreatedAt:   e.CreatedAt,
		Type:        string(e.Kind),
	}
}

// ToStatementDTO maps a statement. The result is never nil so it encodes as [].
func ToStatementDTO(entries []account.Entry) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToEntryDTO(e))
	}
	return out
}

// ToAccountDTO maps a domain account to its response shape.
func ToAccountDTO(acc *account.Account) AccountDTO {
	return AccountDTO{
		CPF:       acc.TaxID,
		Name:      acc.Name,
		ID:        acc.ID.String(),
		Statement: ToStatementDTO(acc.Statement),
		CreatedAt: acc.CreatedAt,
	}
}
