package account

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// statementDateLayouts are the accepted forms of a statement date query.
var statementDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-1-2",
}

// Balance folds a statement into its net value: credits add, debits subtract.
// Every entry that is not a credit counts as a debit.
func Balance(statement []Entry) Amount {
	total := decimal.Zero
	for _, e := range statement {
		total = total.Add(e.Signed())
	}
	return total
}

// ParseStatementDate reads a calendar date and returns midnight of that day in loc.
// ok is false when the value is not a recognised date.
func ParseStatementDate(value string, loc *time.Location) (day time.Time, ok bool) {
	if loc == nil {
		loc = time.Local
	}
	value = strings.TrimSpace(value)
	for _, layout := range statementDateLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FilterByDate returns the entries recorded on the same calendar day as day,
// both sides truncated to dates in loc. Order is preserved and the result is never nil.
// A zero day matches nothing.
func FilterByDate(statement []Entry, day time.Time, loc *time.Location) []Entry {
	out := make([]Entry, 0)
	if day.IsZero() {
		return out
	}
	if loc == nil {
		loc = time.Local
	}
	y, m, d := day.In(loc).Date()
	for _, e := range statement {
		ey, em, ed := e.CreatedAt.In(loc).Date()
		if ey == y && em == m && ed == d {
			out = append(out, e)
		}
	}
	return out
}
