// Package webapi assembles the Fiber application of the ledger.
// Handlers live in sub-packages:
// - account: account, statement and balance endpoints
// - common: response and validation helpers
package webapi

import (
	"strings"
	"time"

	"github.com/amirasaad/ledger/pkg/app"
	accountweb "github.com/amirasaad/ledger/webapi/account"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
)

const (
	defaultMaxRequests = 100
	defaultWindow      = time.Minute
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Accounts int    `json:"accounts" example:"3"`
}

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	accountSvc := a.AccountService

	fiberApp := fiber.New(fiber.Config{
		AppName: "ledger",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ErrorJSON(c, err)
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled: true,
	}))

	maxRequests, window := defaultMaxRequests, defaultWindow
	if a.Config != nil && a.Config.RateLimit != nil {
		if a.Config.RateLimit.MaxRequests > 0 {
			maxRequests = a.Config.RateLimit.MaxRequests
		}
		if a.Config.RateLimit.Window > 0 {
			window = a.Config.RateLimit.Window
		}
	}

	// Uses X-Forwarded-For when behind a proxy, then X-Real-IP, then the peer address.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        maxRequests,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get(fiber.HeaderXForwardedFor); forwardedFor != "" {
				first, _, _ := strings.Cut(forwardedFor, ",")
				return strings.TrimSpace(first)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests")
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(requestid.New())
	fiberApp.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Ledger API is running! 🚀")
	})
	fiberApp.Get("/health", Health(a))

	// Debug endpoint to list all routes
	fiberApp.Get("/debug/routes", func(c *fiber.Ctx) error {
		routeList := make([]map[string]string, 0)
		for _, route := range fiberApp.GetRoutes(true) {
			if route.Path != "" {
				routeList = append(routeList, map[string]string{
					"method": route.Method,
					"path":   route.Path,
				})
			}
		}
		return c.JSON(routeList)
	})

	if a.Config == nil || a.Config.Env != "production" {
		fiberApp.Get("/debug/accounts", DebugAccounts(a))
	}

	accountweb.Routes(fiberApp, accountSvc)
	return fiberApp
}

// AccountSummary is one row of GET /debug/accounts.
type AccountSummary struct {
	CPF     string  `json:"cpf"`
	Name    string  `json:"name"`
	Entries int     `json:"entries"`
	Balance float64 `json:"balance"`
}

// DebugAccounts returns a Fiber handler listing every account with its balance.
// It is not registered when APP_ENV is production.
func DebugAccounts(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts, err := a.AccountService.List(c.UserContext())
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		out := make([]AccountSummary, 0, len(accounts))
		for _, acc := range accounts {
			out = append(out, AccountSummary{
				CPF:     acc.TaxID,
				Name:    acc.Name,
				Entries: len(acc.Statement),
				Balance: acc.Balance().InexactFloat64(),
			})
		}
		return c.JSON(out)
	}
}

// Health returns a Fiber handler reporting liveness and the number of open accounts.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func Health(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := a.AccountService.Count(c.UserContext())
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(HealthResponse{Status: "ok", Accounts: n})
	}
}
