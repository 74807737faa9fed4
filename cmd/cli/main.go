package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/fatih/color"
	"golang.org/x/term"
)

const usage = `Usage: ledger-cli [-addr URL] [-cpf CPF] [-timeout D] <command> [arguments]
Commands:
  create <name>                    open an account for -cpf
  account                          show the account
  rename <name>                    change the customer name
  delete                           delete the account
  deposit <amount> [description]   record a credit
  withdraw <amount>                record a debit
  statement [date]                 list entries, optionally of one date (YYYY-MM-DD)
  balance                          show the balance
`

func main() {
	pretty := term.IsTerminal(int(os.Stdout.Fd()))
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, pretty))
}

func run(args []string, stdout, stderr io.Writer, pretty bool) int {
	fs := flag.NewFlagSet("ledger-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	addr := fs.String("addr", config.GetEnv("LEDGER_ADDR", "http://localhost:3333"), "ledger API base URL")
	cpf := fs.String("cpf", config.GetEnv("LEDGER_CPF", ""), "customer CPF")
	timeout := fs.Duration("timeout", config.GetEnvAsDuration("LEDGER_TIMEOUT", 5*time.Second), "request timeout")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return 2
	}

	out := newPrinter(stdout, pretty)
	c := newClient(*addr, *cpf, *timeout)
	if err := dispatch(c, out, rest[0], rest[1:]); err != nil {
		errColor := color.New(color.FgRed, color.Bold)
		if !pretty {
			errColor.DisableColor()
		}
		errColor.Fprintf(stderr, "error: %v\n", err) //nolint:errcheck
		return 1
	}
	return 0
}

func dispatch(c *client, out *printer, cmd string, args []string) error {
	switch cmd {
	case "create":
		if len(args) < 1 {
			return usageError("create <name>")
		}
		name := strings.Join(args, " ")
		if _, err := c.do("POST", "/account", "", map[string]string{"cpf": c.cpf, "name": name}); err != nil {
			return err
		}
		out.success("Account created for %s", c.cpf)
	case "account":
		body, err := c.do("GET", "/account", "", nil)
		if err != nil {
			return err
		}
		return out.account(body)
	case "rename":
		if len(args) < 1 {
			return usageError("rename <name>")
		}
		name := strings.Join(args, " ")
		if _, err := c.do("PUT", "/account", "", map[string]string{"name": name}); err != nil {
			return err
		}
		out.success("Account renamed to %s", name)
	case "delete":
		body, err := c.do("DELETE", "/account", "", nil)
		if err != nil {
			return err
		}
		var msg string
		if err := json.Unmarshal(body, &msg); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		out.success("%s", msg)
	case "deposit":
		if len(args) < 1 {
			return usageError("deposit <amount> [description]")
		}
		amount, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[0])
		}
		payload := map[string]any{"amount": amount}
		if len(args) > 1 {
			payload["description"] = strings.Join(args[1:], " ")
		}
		if _, err := c.do("POST", "/deposit", "", payload); err != nil {
			return err
		}
		out.success("Deposited %s", args[0])
	case "withdraw":
		if len(args) < 1 {
			return usageError("withdraw <amount>")
		}
		amount, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q", args[0])
		}
		if _, err := c.do("POST", "/withdraw", "", map[string]any{"amount": amount}); err != nil {
			return err
		}
		out.success("Withdrew %s", args[0])
	case "statement":
		path, query := "/statement", ""
		if len(args) > 0 {
			path, query = "/statement/date", url.Values{"date": {args[0]}}.Encode()
		}
		body, err := c.do("GET", path, query, nil)
		if err != nil {
			return err
		}
		return out.statement(body)
	case "balance":
		body, err := c.do("GET", "/balance", "", nil)
		if err != nil {
			return err
		}
		return out.balance(body)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func usageError(form string) error {
	return fmt.Errorf("usage: ledger-cli %s", form)
}
