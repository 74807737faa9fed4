package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	infraeventbus "github.com/amirasaad/ledger/infra/eventbus"
	infraaccount "github.com/amirasaad/ledger/infra/repository/account"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWiresServiceAndAudit(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := infraeventbus.NewWithMemory(logger)
	loc := time.FixedZone("UTC-3", -3*60*60)

	a := New(&Deps{
		AccountRepository: infraaccount.NewMemory(),
		EventBus:          bus,
		Location:          loc,
		Logger:            logger,
	}, &config.App{})
	require.NotNil(t, a.AccountService)
	assert.Equal(t, loc, a.AccountService.Location())

	ctx := context.Background()
	_, err := a.AccountService.Open(ctx, "111", "Ana")
	require.NoError(t, err)
	_, err = a.AccountService.Deposit(ctx, "111", decimal.NewFromInt(10), "pix")
	require.NoError(t, err)

	published := bus.Published()
	require.Len(t, published, 2)
	assert.Equal(t, events.EventTypeAccountOpened.String(), published[0].Type())
	assert.Equal(t, events.EventTypeStatementCredited.String(), published[1].Type())
}

func TestNewWithoutBus(t *testing.T) {
	a := New(&Deps{AccountRepository: infraaccount.NewMemory()}, &config.App{})
	_, err := a.AccountService.Open(context.Background(), "111", "Ana")
	assert.NoError(t, err)
}
