package initializer

import (
	"fmt"

	infraeventbus "github.com/amirasaad/ledger/infra/eventbus"
	infraaccount "github.com/amirasaad/ledger/infra/repository/account"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
)

// InitializeDependencies builds the logger, the account store and the event bus.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	logger := setupLogger(cfg.Log)

	location, err := cfg.Ledger.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ledger timezone: %w", err)
	}

	deps := &app.Deps{
		AccountRepository: infraaccount.NewMemory(),
		EventBus:          infraeventbus.NewWithMemory(logger, infraeventbus.WithPublishedLimit(0)),
		Location:          location,
		Logger:            logger,
	}
	logger.Info("Dependencies initialized",
		"store", "memory",
		"event_bus", "memory",
		"timezone", location.String(),
	)
	return deps, nil
}
