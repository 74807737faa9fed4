// Package audit holds the event handler that writes every ledger event to the audit log.
package audit

import (
	"context"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
)

// Handle returns a bus handler that logs the event with its account attributes.
func Handle(logger *slog.Logger) eventbus.HandlerFunc {
	logger = logger.With("handler", "audit")
	return func(ctx context.Context, e events.Event) error {
		attrs := []any{"event_type", e.Type()}
		switch ev := e.(type) {
		case events.AccountOpenedEvent:
			attrs = append(attrs, base(ev.AccountEvent)...)
			attrs = append(attrs, "name", ev.Name)
		case events.AccountRenamedEvent:
			attrs = append(attrs, base(ev.AccountEvent)...)
			attrs = append(attrs, "old_name", ev.OldName, "new_name", ev.NewName)
		case events.AccountClosedEvent:
			attrs = append(attrs, base(ev.AccountEvent)...)
			attrs = append(attrs, "final_balance", ev.FinalBalance.String())
		case events.StatementCreditedEvent:
			attrs = append(attrs, base(ev.AccountEvent)...)
			attrs = append(attrs, "amount", ev.Entry.Amount.String(), "balance", ev.Balance.String())
		case events.StatementDebitedEvent:
			attrs = append(attrs, base(ev.AccountEvent)...)
			attrs = append(attrs, "amount", ev.Entry.Amount.String(), "balance", ev.Balance.String())
		case events.WithdrawalRejectedEvent:
			attrs = append(attrs, base(ev.AccountEvent)...)
			attrs = append(attrs, "amount", ev.Requested.String(), "balance", ev.Balance.String())
			logger.WarnContext(ctx, "audit", attrs...)
			return nil
		default:
			logger.WarnContext(ctx, "audit: unexpected event", attrs...)
			return nil
		}
		logger.InfoContext(ctx, "audit", attrs...)
		return nil
	}
}

func base(e events.AccountEvent) []any {
	return []any{
		"event_id", e.ID.String(),
		"account_id", e.AccountID.String(),
		"cpf", e.TaxID,
		"occurred_at", e.OccurredAt,
	}
}
