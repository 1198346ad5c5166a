package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType enumerates the supported account types.
type AccountType string

// Supported account types.
const (
	AccountTypeSavings  AccountType = "Savings"
	AccountTypeChecking AccountType = "Checking"
)

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	return t == AccountTypeSavings || t == AccountTypeChecking
}

// Account holds bank account data for a client.
//
// OpeningBalance is immutable after creation and serves as the balance
// baseline when the account has no movements.
type Account struct {
	ID             int32           `json:"id"`
	Number         string          `json:"number"`
	Type           AccountType     `json:"type"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Active         bool            `json:"active"`
	ClientID       int32           `json:"client_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at,omitempty"`
}

// AccountWithBalance is an account together with its derived current balance.
type AccountWithBalance struct {
	Account
	Balance decimal.Decimal `json:"balance"`
}

// CreateAccountParams is the input data to open an account.
type CreateAccountParams struct {
	Number         string          `json:"number"`
	Type           AccountType     `json:"type"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClientID       int32           `json:"client_id"`
}

// UpdateAccountParams is the input data to update an account.
// The opening balance and account number are not updatable.
type UpdateAccountParams struct {
	ID     int32       `json:"id"`
	Type   AccountType `json:"type"`
	Active bool        `json:"active"`
}
