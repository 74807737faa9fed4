// Package testutils builds isolated ledger apps for HTTP tests.
package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	infraeventbus "github.com/amirasaad/ledger/infra/eventbus"
	infraaccount "github.com/amirasaad/ledger/infra/repository/account"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/middleware"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	"github.com/amirasaad/ledger/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// TestApp is a ledger app backed by its own store and event bus.
type TestApp struct {
	App      *fiber.App
	Ledger   *app.App
	Store    *infraaccount.MemoryRepository
	EventBus *infraeventbus.MemoryEventBus
}

type options struct {
	cfg      *config.App
	location *time.Location
	svcOpts  []accountsvc.Option
}

// Option customizes NewTestApp.
type Option func(*options)

// WithRateLimit overrides the limiter settings.
func WithRateLimit(maxRequests int, window time.Duration) Option {
	return func(o *options) {
		o.cfg.RateLimit = &config.RateLimit{MaxRequests: maxRequests, Window: window}
	}
}

// WithEnv sets APP_ENV for the app.
func WithEnv(env string) Option {
	return func(o *options) {
		o.cfg.Env = env
	}
}

// WithClock fixes the time stamped on new statement entries.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.svcOpts = append(o.svcOpts, accountsvc.WithClock(now))
	}
}

// WithLocation sets the time zone of the statement date filter.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		o.location = loc
	}
}

// NewTestApp wires a fresh store, bus and service behind webapi.SetupApp.
func NewTestApp(t testing.TB, opts ...Option) *TestApp {
	t.Helper()
	o := &options{
		cfg: &config.App{
			Env:       "test",
			RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
			Ledger:    &config.Ledger{Timezone: "UTC"},
		},
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(o)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := infraaccount.NewMemory()
	bus := infraeventbus.NewWithMemory(logger)
	ledger := app.New(&app.Deps{
		AccountRepository: store,
		EventBus:          bus,
		Location:          o.location,
		Logger:            logger,
	}, o.cfg, o.svcOpts...)

	return &TestApp{
		App:      webapi.SetupApp(ledger),
		Ledger:   ledger,
		Store:    store,
		EventBus: bus,
	}
}

// MakeRequest sends a request through the app in process. body is sent as
// JSON when not empty, and cpf goes in the customer header when not empty.
func MakeRequest(t testing.TB, app *fiber.App, method, path, body, cpf string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cpf != "" {
		req.Header.Set(middleware.TaxIDHeader, cpf)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// ReadBody returns the full response body.
func ReadBody(t testing.TB, resp *http.Response) []byte {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return b
}

// DecodeJSON unmarshals the response body into a value of type T.
func DecodeJSON[T any](t testing.TB, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(ReadBody(t, resp), &v))
	return v
}
