package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementRow is one line of a client statement, derived 1:1 from a
// movement. Account fields are the owning account's values at query
// time, not as of the movement's date.
type StatementRow struct {
	Date           time.Time       `json:"date"`
	Client         string          `json:"client"`
	AccountNumber  string          `json:"account_number"`
	AccountType    AccountType     `json:"account_type"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Active         bool            `json:"active"`
	Amount         decimal.Decimal `json:"amount"`
	Balance        decimal.Decimal `json:"balance"`
}

// Statement is the movement report for a client over a date range.
type Statement struct {
	Client       string          `json:"client"`
	Rows         []StatementRow  `json:"movements"`
	TotalCredits decimal.Decimal `json:"total_credits"`
	TotalDebits  decimal.Decimal `json:"total_debits"`
}
