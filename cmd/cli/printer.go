package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
)

type entry struct {
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
	Type        string    `json:"type"`
}

type accountView struct {
	CPF       string    `json:"cpf"`
	Name      string    `json:"name"`
	ID        string    `json:"id"`
	Statement []entry   `json:"statement"`
	CreatedAt time.Time `json:"created_at"`
}

// printer renders responses. Without a terminal it writes the raw JSON body
// so the output can be piped.
type printer struct {
	w      io.Writer
	pretty bool

	ok, label, credit, debit, total *color.Color
}

func newPrinter(w io.Writer, pretty bool) *printer {
	p := &printer{
		w:      w,
		pretty: pretty,
		ok:     color.New(color.FgGreen, color.Bold),
		label:  color.New(color.FgCyan),
		credit: color.New(color.FgGreen),
		debit:  color.New(color.FgRed),
		total:  color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.ok, p.label, p.credit, p.debit, p.total} {
		if pretty {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer) raw(body []byte) {
	fmt.Fprintln(p.w, string(body)) //nolint:errcheck
}

func (p *printer) success(format string, args ...any) {
	p.ok.Fprintf(p.w, "✔ "+format+"\n", args...) //nolint:errcheck
}

func (p *printer) account(body []byte) error {
	if !p.pretty {
		p.raw(body)
		return nil
	}
	var acc accountView
	if err := json.Unmarshal(body, &acc); err != nil {
		return fmt.Errorf("decode account: %w", err)
	}
	rows := [][2]string{
		{"CPF", acc.CPF},
		{"Name", acc.Name},
		{"ID", acc.ID},
		{"Opened", acc.CreatedAt.Local().Format(time.DateTime)},
		{"Entries", strconv.Itoa(len(acc.Statement))},
	}
	for _, row := range rows {
		p.label.Fprintf(p.w, "%-8s ", row[0]+":") //nolint:errcheck
		fmt.Fprintln(p.w, row[1])                 //nolint:errcheck
	}
	return nil
}

func (p *printer) statement(body []byte) error {
	if !p.pretty {
		p.raw(body)
		return nil
	}
	var entries []entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return fmt.Errorf("decode statement: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(p.w, "No entries") //nolint:errcheck
		return nil
	}
	var net float64
	for _, e := range entries {
		c, sign := p.credit, "+"
		if e.Type == "debit" {
			c, sign = p.debit, "-"
			net -= e.Amount
		} else {
			net += e.Amount
		}
		fmt.Fprintf(p.w, "%s  ", e.CreatedAt.Local().Format(time.DateTime)) //nolint:errcheck
		c.Fprintf(p.w, "%s%10.2f", sign, e.Amount)                          //nolint:errcheck
		fmt.Fprintf(p.w, "  %s\n", e.Description)                           //nolint:errcheck
	}
	p.total.Fprintf(p.w, "Net: %.2f\n", net) //nolint:errcheck
	return nil
}

func (p *printer) balance(body []byte) error {
	if !p.pretty {
		p.raw(body)
		return nil
	}
	var balance float64
	if err := json.Unmarshal(body, &balance); err != nil {
		return fmt.Errorf("decode balance: %w", err)
	}
	p.total.Fprintf(p.w, "Balance: %.2f\n", balance) //nolint:errcheck
	return nil
}
