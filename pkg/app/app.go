// Package app wires the ledger services on top of their dependencies.
package app

import (
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/eventbus"
	repo "github.com/amirasaad/ledger/pkg/repository/account"
	"github.com/amirasaad/ledger/pkg/service/account"
)

// Deps contains all the dependencies needed to build the App
type Deps struct {
	AccountRepository repo.Repository
	EventBus          eventbus.Bus
	Location          *time.Location
	Logger            *slog.Logger
}

type App struct {
	Deps           *Deps
	Config         *config.App
	AccountService *account.Service
}

func New(deps *Deps, cfg *config.App, opts ...account.Option) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.setupEventBus()

	opts = append([]account.Option{account.WithLocation(deps.Location)}, opts...)
	app.AccountService = account.New(deps.AccountRepository, deps.EventBus, deps.Logger, opts...)
	return app
}
