package account

import (
	"github.com/amirasaad/ledger/pkg/middleware"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// DeletedMessage is the body returned after an account is removed.
const DeletedMessage = "Account was deleted"

// Routes registers the ledger endpoints. Every route but POST /account runs
// behind the customer resolver, which reads the cpf header.
//
// Routes:
//   - POST   /account          : Open an account.
//   - GET    /account          : Read the account record.
//   - PUT    /account          : Rename the customer.
//   - DELETE /account          : Remove the account.
//   - GET    /statement        : List every statement entry.
//   - GET    /statement/date   : List the entries of one calendar date.
//   - POST   /deposit          : Record a credit.
//   - POST   /withdraw         : Record a debit when funds suffice.
//   - GET    /balance          : Read the balance.
func Routes(app fiber.Router, accountSvc *accountsvc.Service) {
	resolve := middleware.CustomerResolver(accountSvc)

	app.Post("/account", CreateAccount(accountSvc))
	app.Get("/account", resolve, GetAccount())
	app.Put("/account", resolve, UpdateAccount(accountSvc))
	app.Delete("/account", resolve, DeleteAccount(accountSvc))
	app.Get("/statement", resolve, GetStatement(accountSvc))
	app.Get("/statement/date", resolve, GetStatementByDate(accountSvc))
	app.Post("/deposit", resolve, Deposit(accountSvc))
	app.Post("/withdraw", resolve, Withdraw(accountSvc))
	app.Get("/balance", resolve, GetBalance(accountSvc))
}

// CreateAccount returns a Fiber handler that opens an account with an empty statement.
// @Summary Open an account
// @Description Registers a customer by CPF. The CPF must not be registered yet.
// @Tags accounts
// @Accept json
// @Param request body CreateAccountRequest true "Customer"
// @Success 201 "Account created"
// @Failure 400 {object} common.ErrorResponse "Customer already exists!"
// @Failure 429 {object} common.ErrorResponse "Too many requests"
// @Router /account [post]
func CreateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		if _, err := accountSvc.Open(c.UserContext(), input.CPF, input.Name); err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).Send(nil)
	}
}

// GetAccount returns a Fiber handler that renders the resolved account.
// @Summary Read the account
// @Tags accounts
// @Produce json
// @Param cpf header string true "Customer CPF"
// @Success 200 {object} AccountDTO
// @Failure 400 {object} common.ErrorResponse "Customer not found"
// @Router /account [get]
func GetAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(ToAccountDTO(middleware.Customer(c)))
	}
}

// UpdateAccount returns a Fiber handler that replaces the customer name.
// @Summary Rename the customer
// @Tags accounts
// @Accept json
// @Param cpf header string true "Customer CPF"
// @Param request body UpdateAccountRequest true "New name"
// @Success 201 "Account updated"
// @Failure 400 {object} common.ErrorResponse "Customer not found"
// @Router /account [put]
func UpdateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customer := middleware.Customer(c)
		input, err := common.BindAndValidate[UpdateAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		if err := accountSvc.Rename(c.UserContext(), customer.TaxID, input.Name); err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).Send(nil)
	}
}

// DeleteAccount returns a Fiber handler that removes the resolved account.
// @Summary Delete the account
// @Tags accounts
// @Produce json
// @Param cpf header string true "Customer CPF"
// @Success 200 {string} string "Account was deleted"
// @Failure 400 {object} common.ErrorResponse "Customer not found"
// @Router /account [delete]
func DeleteAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customer := middleware.Customer(c)
		if err := accountSvc.Close(c.UserContext(), customer.TaxID); err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(DeletedMessage)
	}
}

// GetStatement returns a Fiber handler that lists every statement entry.
// @Summary List the statement
// @Tags statement
// @Produce json
// @Param cpf header string true "Customer CPF"
// @Success 200 {array} EntryDTO
// @Failure 400 {object} common.ErrorResponse "Customer not found"
// @Router /statement [get]
func GetStatement(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customer := middleware.Customer(c)
		entries, err := accountSvc.Statement(c.UserContext(), customer.TaxID)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(ToStatementDTO(entries))
	}
}

// GetStatementByDate returns a Fiber handler that lists the entries of one date.
// A malformed date matches nothing.
// @Summary List the statement of a date
// @Tags statement
// @Produce json
// @Param cpf header string true "Customer CPF"
// @Param date query string true "Calendar date" example(2024-05-01)
// @Success 200 {array} EntryDTO
// @Failure 400 {object} common.ErrorResponse "Customer not found"
// @Router /statement/date [get]
func GetStatementByDate(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customer := middleware.Customer(c)
		entries, err := accountSvc.StatementByDate(c.UserContext(), customer.TaxID, c.Query("date"))
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(ToStatementDTO(entries))
	}
}

// Deposit returns a Fiber handler that records a credit at the server time.
// @Summary Deposit funds
// @Tags operations
// @Accept json
// @Param cpf header string true "Customer CPF"
// @Param request body DepositRequest true "Deposit details"
// @Success 201 "Deposit recorded"
// @Failure 400 {object} common.ErrorResponse "Customer not found"
// @Router /deposit [post]
func Deposit(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customer := middleware.Customer(c)
		input, err := common.BindAndValidate[DepositRequest](c)
		if input == nil {
			return err // error response already written
		}
		amount := decimal.NewFromFloat(input.Amount)
		if _, err := accountSvc.Deposit(c.UserContext(), customer.TaxID, amount, input.Description); err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).Send(nil)
	}
}

// Withdraw returns a Fiber handler that records a debit when the balance covers it.
// @Summary Withdraw funds
// @Tags operations
// @Accept json
// @Param cpf header string true "Customer CPF"
// @Param request body WithdrawRequest true "Withdrawal details"
// @Success 201 "Withdrawal recorded"
// @Failure 400 {object} common.ErrorResponse "Insufficient funds!"
// @Router /withdraw [post]
func Withdraw(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customer := middleware.Customer(c)
		input, err := common.BindAndValidate[WithdrawRequest](c)
		if input == nil {
			return err // error response already written
		}
		amount := decimal.NewFromFloat(input.Amount)
		if _, err := accountSvc.Withdraw(c.UserContext(), customer.TaxID, amount); err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).Send(nil)
	}
}

// GetBalance returns a Fiber handler that renders the balance as a JSON number.
// @Summary Read the balance
// @Tags operations
// @Produce json
// @Param cpf header string true "Customer CPF"
// @Success 200 {number} number "Balance"
// @Failure 400 {object} common.ErrorResponse "Customer not found"
// @Router /balance [get]
func GetBalance(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customer := middleware.Customer(c)
		balance, err := accountSvc.Balance(c.UserContext(), customer.TaxID)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return c.JSON(balance.InexactFloat64())
	}
}
