package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/events"
)

// Deposit appends a credit entry stamped with the server time.
func (s *Service) Deposit(
	ctx context.Context,
	cpf string,
	amount account.Amount,
	description string,
) (entry account.Entry, err error) {
	logger := s.logger.With("cpf", cpf, "amount", amount.String())
	defer func() {
		if err != nil {
			logger.Error("Deposit failed", "error", err)
		} else {
			logger.Info("Deposit successful")
		}
	}()

	acc, err := s.repo.Update(ctx, cpf, func(a *account.Account) error {
		var err error
		entry, err = a.Credit(amount, description, s.now())
		return err
	})
	if err != nil {
		return account.Entry{}, fmt.Errorf("deposit: %w", err)
	}
	s.emit(ctx, events.StatementCreditedEvent{
		AccountEvent: events.NewAccountEvent(acc, entry.CreatedAt),
		Entry:        entry,
		Balance:      acc.Balance(),
	})
	return entry, nil
}

// Withdraw appends a debit entry when the current balance covers amount.
// The check and the append run under the account's write lock, so concurrent
// withdrawals cannot both spend the same balance.
func (s *Service) Withdraw(
	ctx context.Context,
	cpf string,
	amount account.Amount,
) (entry account.Entry, err error) {
	logger := s.logger.With("cpf", cpf, "amount", amount.String())
	defer func() {
		if err != nil {
			logger.Error("Withdraw failed", "error", err)
		} else {
			logger.Info("Withdraw successful")
		}
	}()

	var rejected *account.Account
	acc, err := s.repo.Update(ctx, cpf, func(a *account.Account) error {
		var err error
		entry, err = a.Debit(amount, "", s.now())
		if errors.Is(err, account.ErrInsufficientFunds) {
			rejected = a.Clone()
		}
		return err
	})
	if err != nil {
		if rejected != nil {
			s.emit(ctx, events.WithdrawalRejectedEvent{
				AccountEvent: events.NewAccountEvent(rejected, s.now()),
				Requested:    amount,
				Balance:      rejected.Balance(),
			})
		}
		return account.Entry{}, fmt.Errorf("withdraw: %w", err)
	}
	s.emit(ctx, events.StatementDebitedEvent{
		AccountEvent: events.NewAccountEvent(acc, entry.CreatedAt),
		Entry:        entry,
		Balance:      acc.Balance(),
	})
	return entry, nil
}
