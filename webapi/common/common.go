// Package common holds the response and request helpers shared by the HTTP handlers.
package common

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"Customer not found"`
}

// domainErrors are reported to clients with their own message and a 400 status.
var domainErrors = []error{
	account.ErrCustomerNotFound,
	account.ErrCustomerAlreadyExists,
	account.ErrInsufficientFunds,
	account.ErrInvalidAmount,
	account.ErrInvalidTaxID,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ErrorResponseJSON writes {"error": msg} with the given status.
func ErrorResponseJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorResponse{Error: msg})
}

// ErrorToStatusCode maps domain errors to 400 and anything else to 500.
func ErrorToStatusCode(err error) int {
	if domainError(err) != nil {
		return fiber.StatusBadRequest
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// ErrorMessage returns the client-facing message for err. Domain errors are
// reported by their own text, without the wrapping added by the services.
func ErrorMessage(err error) string {
	if de := domainError(err); de != nil {
		return de.Error()
	}
	return err.Error()
}

// ErrorJSON renders err with the status and message derived from it.
func ErrorJSON(c *fiber.Ctx, err error) error {
	return ErrorResponseJSON(c, ErrorToStatusCode(err), ErrorMessage(err))
}

func domainError(err error) error {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return target
		}
	}
	return nil
}

// BindAndValidate parses the request body and validates it using go-playground/validator.
// On failure it writes a 400 response and returns nil together with the error.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, ValidationMessage(err))
	}
	return &input, nil
}

// ValidationMessage turns validator errors into a short sentence such as
// "name is required".
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return strings.Join(msgs, "; ")
}
