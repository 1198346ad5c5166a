package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind enumerates the supported movement kinds.
type MovementKind string

// Supported movement kinds.
const (
	MovementDeposit    MovementKind = "Deposit"
	MovementWithdrawal MovementKind = "Withdrawal"
)

// IsValid reports whether k is a known movement kind.
func (k MovementKind) IsValid() bool {
	return k == MovementDeposit || k == MovementWithdrawal
}

// Movement is one ledger entry of an account.
//
// Amount is signed: deposits are positive, withdrawals negative.
// Balance is the account balance immediately after this movement and
// is never negative.
type Movement struct {
	ID        int64           `json:"id"`
	AccountID int32           `json:"account_id"`
	Kind      MovementKind    `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreateMovementParams is the input data to post a movement.
type CreateMovementParams struct {
	AccountID int32           `json:"account_id"`
	Kind      MovementKind    `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
}

// ClientMovement is a movement joined with its owning account and client,
// as returned by the per-client range query backing statements.
type ClientMovement struct {
	Movement
	AccountNumber  string          `json:"account_number"`
	AccountType    AccountType     `json:"account_type"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	AccountActive  bool            `json:"account_active"`
	ClientName     string          `json:"client_name"`
}
