package app

import (
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/handler/audit"
)

// auditedEvents lists every event the audit handler subscribes to.
var auditedEvents = []events.EventType{
	events.EventTypeAccountOpened,
	events.EventTypeAccountRenamed,
	events.EventTypeAccountClosed,
	events.EventTypeStatementCredited,
	events.EventTypeStatementDebited,
	events.EventTypeWithdrawalRejected,
}

func (a *App) setupEventBus() {
	bus := a.Deps.EventBus
	if bus == nil {
		return
	}
	handler := audit.Handle(a.Deps.Logger)
	for _, eventType := range auditedEvents {
		bus.Register(eventType, handler)
	}
}
