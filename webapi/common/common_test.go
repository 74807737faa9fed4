package common

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", account.ErrCustomerNotFound, fiber.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("get account: %w", account.ErrCustomerNotFound), fiber.StatusBadRequest},
		{"duplicate", account.ErrCustomerAlreadyExists, fiber.StatusBadRequest},
		{"insufficient", fmt.Errorf("withdraw: %w", account.ErrInsufficientFunds), fiber.StatusBadRequest},
		{"invalid amount", account.ErrInvalidAmount, fiber.StatusBadRequest},
		{"fiber error", fiber.ErrNotFound, fiber.StatusNotFound},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ErrorToStatusCode(tc.err))
		})
	}
}

func TestErrorMessageUnwrapsDomainErrors(t *testing.T) {
	err := fmt.Errorf("withdraw: %w", account.ErrInsufficientFunds)
	assert.Equal(t, "Insufficient funds!", ErrorMessage(err))
	assert.Equal(t, "boom", ErrorMessage(errors.New("boom")))
}

type sampleRequest struct {
	Name   string  `json:"name" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

func bindApp() *fiber.App {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		input, err := BindAndValidate[sampleRequest](c)
		if input == nil {
			return err
		}
		return c.SendString(input.Name)
	})
	return app
}

func post(t *testing.T, app *fiber.App, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestBindAndValidate(t *testing.T) {
	app := bindApp()

	status, body := post(t, app, `{"name":"Ana","amount":10}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Ana", body)

	status, body = post(t, app, `{"amount":10}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"name is required"}`, body)

	status, body = post(t, app, `{"name":"Ana","amount":-1}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"amount must be greater than 0"}`, body)

	status, body = post(t, app, `{"name":`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, body)
}
