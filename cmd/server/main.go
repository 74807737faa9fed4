package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/amirasaad/ledger/cmd/server/swagger"
	"github.com/amirasaad/ledger/infra/initializer"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/webapi"
	log "github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
)

// @title Ledger API
// @version 1.0.0
// @description In-memory customer ledger keyed by CPF
// @contact.name API Support
// @license.name MIT
// @host localhost:3333
// @BasePath /
//
// @securityDefinitions.apikey CustomerCPF
// @in header
// @name cpf
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger

	// Setup Fiber app with all routes and middleware
	fiberApp := webapi.SetupApp(app.New(deps, cfg))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", ln.Addr().String(),
		"scheme", cfg.Server.Scheme,
	)
	return serve(ctx, fiberApp, ln, cfg.Server.ShutdownTimeout, logger)
}

// serve runs fiberApp on ln until ctx is done, then drains in-flight requests
// for at most timeout.
func serve(ctx context.Context, fiberApp *fiber.App, ln net.Listener, timeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- fiberApp.Listener(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server", "timeout", timeout)
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if err := fiberApp.ShutdownWithTimeout(timeout); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	logger.Info("Server stopped")
	return nil
}
