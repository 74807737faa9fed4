// Package account provides the business operations of the ledger: opening and closing
// customer accounts, recording deposits and withdrawals, and reading statements and balances.
//
// Accounts are addressed by CPF. Mutations go through the repository's Update so the
// withdrawal balance check and the debit append happen under the same per-account lock.
package account

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
	repo "github.com/amirasaad/ledger/pkg/repository/account"
)

// Service provides business logic for account operations.
type Service struct {
	repo     repo.Repository
	eventBus eventbus.Bus
	logger   *slog.Logger
	now      func() time.Time
	location *time.Location
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock used to timestamp statement entries.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the time zone used to compare statement dates.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

// New creates a new account Service. bus may be nil, in which case no events are published.
func New(r repo.Repository, bus eventbus.Bus, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		repo:     r,
		eventBus: bus,
		logger:   logger.With("service", "account"),
		now:      time.Now,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location returns the time zone used for statement date comparisons.
func (s *Service) Location() *time.Location {
	return s.location
}

// Open creates a new account with an empty statement.
func (s *Service) Open(ctx context.Context, cpf, name string) (acc *account.Account, err error) {
	logger := s.logger.With("cpf", cpf)
	defer func() {
		if err != nil {
			logger.Error("Open failed", "error", err)
		} else {
			logger.Info("Open successful", "account_id", acc.ID)
		}
	}()

	acc, err = account.New().
		WithTaxID(cpf).
		WithName(name).
		WithCreatedAt(s.now()).
		Build()
	if err != nil {
		return nil, err
	}
	if err = s.repo.Create(ctx, acc); err != nil {
		return nil, fmt.Errorf("open account: %w", err)
	}
	s.emit(ctx, events.AccountOpenedEvent{
		AccountEvent: events.NewAccountEvent(acc, s.now()),
		Name:         acc.Name,
	})
	return acc, nil
}

// Get returns a snapshot of the account registered under cpf.
func (s *Service) Get(ctx context.Context, cpf string) (*account.Account, error) {
	acc, err := s.repo.FindByTaxID(ctx, cpf)
	if err != nil {
		s.logger.Debug("Get failed", "cpf", cpf, "error", err)
		return nil, fmt.Errorf("get account: %w", err)
	}
	return acc, nil
}

// Rename replaces the customer name.
func (s *Service) Rename(ctx context.Context, cpf, name string) (err error) {
	logger := s.logger.With("cpf", cpf)
	defer func() {
		if err != nil {
			logger.Error("Rename failed", "error", err)
		} else {
			logger.Info("Rename successful")
		}
	}()

	var oldName string
	acc, err := s.repo.Update(ctx, cpf, func(a *account.Account) error {
		oldName = a.Name
		a.Name = name
		return nil
	})
	if err != nil {
		return fmt.Errorf("rename account: %w", err)
	}
	s.emit(ctx, events.AccountRenamedEvent{
		AccountEvent: events.NewAccountEvent(acc, s.now()),
		OldName:      oldName,
		NewName:      name,
	})
	return nil
}

// Close removes the account registered under cpf. Other accounts are untouched.
func (s *Service) Close(ctx context.Context, cpf string) (err error) {
	logger := s.logger.With("cpf", cpf)
	defer func() {
		if err != nil {
			logger.Error("Close failed", "error", err)
		} else {
			logger.Info("Close successful")
		}
	}()

	acc, err := s.repo.FindByTaxID(ctx, cpf)
	if err != nil {
		return fmt.Errorf("close account: %w", err)
	}
	if err = s.repo.Delete(ctx, cpf); err != nil {
		return fmt.Errorf("close account: %w", err)
	}
	s.emit(ctx, events.AccountClosedEvent{
		AccountEvent: events.NewAccountEvent(acc, s.now()),
		FinalBalance: acc.Balance(),
	})
	return nil
}

// List returns every open account in the order it was opened.
func (s *Service) List(ctx context.Context) ([]*account.Account, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// Count returns the number of open accounts.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// emit publishes an event. Publishing problems are logged and never fail the operation.
func (s *Service) emit(ctx context.Context, event events.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Emit(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", "event_type", event.Type(), "error", err)
	}
}
