package account

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/account"
)

// Statement returns every entry of the account in recording order.
func (s *Service) Statement(ctx context.Context, cpf string) ([]account.Entry, error) {
	acc, err := s.Get(ctx, cpf)
	if err != nil {
		return nil, err
	}
	return acc.Statement, nil
}

// StatementByDate returns the entries recorded on the given calendar date.
// An unparseable date yields an empty statement rather than an error.
func (s *Service) StatementByDate(ctx context.Context, cpf, date string) ([]account.Entry, error) {
	acc, err := s.Get(ctx, cpf)
	if err != nil {
		return nil, err
	}
	day, ok := account.ParseStatementDate(date, s.location)
	if !ok {
		s.logger.Debug("unparseable statement date", "cpf", cpf, "date", date)
	}
	return account.FilterByDate(acc.Statement, day, s.location), nil
}

// Balance returns the net sum of the account statement.
func (s *Service) Balance(ctx context.Context, cpf string) (account.Amount, error) {
	acc, err := s.Get(ctx, cpf)
	if err != nil {
		return account.Amount{}, err
	}
	return acc.Balance(), nil
}
