package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFinder struct {
	mock.Mock
}

func (m *MockFinder) Get(ctx context.Context, cpf string) (*account.Account, error) {
	args := m.Called(ctx, cpf)
	if acc, ok := args.Get(0).(*account.Account); ok {
		return acc, args.Error(1)
	}
	return nil, args.Error(1)
}

func newAccount(t *testing.T, cpf string) *account.Account {
	t.Helper()
	acc, err := account.New().WithTaxID(cpf).WithName("Ana").Build()
	require.NoError(t, err)
	return acc
}

func newResolverApp(finder Finder, reached *bool) *fiber.App {
	app := fiber.New()
	app.Get("/me", CustomerResolver(finder), func(c *fiber.Ctx) error {
		*reached = true
		return c.SendString(Customer(c).TaxID)
	})
	return app
}

func get(t *testing.T, app *fiber.App, cpf string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if cpf != "" {
		req.Header.Set(TaxIDHeader, cpf)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload["error"]
}

func TestCustomerResolverKnown(t *testing.T) {
	finder := new(MockFinder)
	finder.On("Get", mock.Anything, "111").Return(newAccount(t, "111"), nil).Once()
	reached := false
	app := newResolverApp(finder, &reached)

	resp := get(t, app, "111")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, reached)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "111", string(body))
	finder.AssertExpectations(t)
}

func TestCustomerResolverRejectsUnknown(t *testing.T) {
	for _, cpf := range []string{"999", "11", "1 11", "111x"} {
		t.Run(cpf, func(t *testing.T) {
			finder := new(MockFinder)
			finder.On("Get", mock.Anything, cpf).Return(nil, account.ErrCustomerNotFound).Once()
			reached := false
			app := newResolverApp(finder, &reached)

			resp := get(t, app, cpf)

			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "Customer not found", decodeError(t, resp))
			assert.False(t, reached)
			finder.AssertExpectations(t)
		})
	}
}

func TestCustomerResolverMissingHeader(t *testing.T) {
	finder := new(MockFinder)
	reached := false
	app := newResolverApp(finder, &reached)

	resp := get(t, app, "")

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Customer not found", decodeError(t, resp))
	assert.False(t, reached)
	finder.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestCustomerResolverPropagatesUnexpectedErrors(t *testing.T) {
	finder := new(MockFinder)
	finder.On("Get", mock.Anything, "111").Return(nil, errors.New("store unavailable")).Once()
	reached := false
	app := newResolverApp(finder, &reached)

	resp := get(t, app, "111")

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.False(t, reached)
	finder.AssertExpectations(t)
}

func TestResolvePassesHeaderVerbatim(t *testing.T) {
	finder := new(MockFinder)
	finder.On("Get", mock.Anything, "111 ").Return(nil, account.ErrCustomerNotFound).Once()

	app := fiber.New()
	var resolveErr error
	app.Get("/", func(c *fiber.Ctx) error {
		// Set on the fasthttp request so no HTTP parsing trims the value.
		c.Request().Header.Set(TaxIDHeader, "111 ")
		_, resolveErr = Resolve(c, finder)
		return nil
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	resp.Body.Close() //nolint:errcheck

	assert.ErrorIs(t, resolveErr, account.ErrCustomerNotFound)
	finder.AssertExpectations(t)
}

func TestCustomerWithoutResolver(t *testing.T) {
	app := fiber.New()
	var got *account.Account
	app.Get("/", func(c *fiber.Ctx) error {
		got = Customer(c)
		return nil
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	resp.Body.Close() //nolint:errcheck
	assert.Nil(t, got)
}
