// Package middleware holds Fiber middleware shared by the HTTP routes.
package middleware

import (
	"context"
	"errors"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/gofiber/fiber/v2"
)

// TaxIDHeader is the request header that identifies the customer.
const TaxIDHeader = "cpf"

// CustomerKey is the c.Locals key under which the resolved account is stored.
const CustomerKey = "customer"

// Finder looks an account up by CPF.
type Finder interface {
	Get(ctx context.Context, cpf string) (*account.Account, error)
}

// Resolve looks up the account named by the cpf header.
// The match is exact and case-sensitive; a missing header never matches.
func Resolve(c *fiber.Ctx, finder Finder) (*account.Account, error) {
	cpf := c.Get(TaxIDHeader)
	if cpf == "" {
		return nil, account.ErrCustomerNotFound
	}
	return finder.Get(c.UserContext(), cpf)
}

// CustomerResolver stores the account named by the cpf header in c.Locals and
// continues. Unknown customers get 400 {"error":"Customer not found"} and the
// next handler is not called.
func CustomerResolver(finder Finder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		acc, err := Resolve(c, finder)
		if err != nil {
			if errors.Is(err, account.ErrCustomerNotFound) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": account.ErrCustomerNotFound.Error(),
				})
			}
			return err
		}
		c.Locals(CustomerKey, acc)
		return c.Next()
	}
}

// Customer returns the account stored by CustomerResolver, or nil.
func Customer(c *fiber.Ctx) *account.Account {
	acc, _ := c.Locals(CustomerKey).(*account.Account)
	return acc
}
