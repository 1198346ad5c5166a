package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Stable machine-readable error codes carried by every business error so
// that clients can branch on code rather than parse prose.
const (
	CodeNotFound          = "ENTIDAD_NO_ENCONTRADA"
	CodeDuplicate         = "ENTIDAD_DUPLICADA"
	CodeInvalidOperation  = "OPERACION_INVALIDA"
	CodeInsufficientFunds = "SALDO_INSUFICIENTE"
	CodeDailyLimit        = "CUPO_DIARIO_EXCEDIDO"
)

// ErrNoMovements indicates that an account has no movements yet.
// It is internal to the ledger read path, never surfaced to callers.
var ErrNoMovements = errors.New("account has no movements")

type coder interface {
	Code() string
}

// ErrorCode returns the stable code of a business error, or the empty
// string for infrastructure errors.
func ErrorCode(err error) string {
	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}

	return ""
}

// NotFoundError indicates that a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %v not found", e.Entity, e.ID)
}

// Code returns the stable error code.
func (e NotFoundError) Code() string { return CodeNotFound }

// DuplicateError indicates a uniqueness violation.
type DuplicateError struct {
	Entity string
	Field  string
	Value  string
}

func (e DuplicateError) Error() string {
	return fmt.Sprintf("%s with %s %q already exists", e.Entity, e.Field, e.Value)
}

// Code returns the stable error code.
func (e DuplicateError) Code() string { return CodeDuplicate }

// InvalidOperationError indicates a business operation that is not
// allowed in the current state, such as posting to an inactive account
// or deleting a non-latest movement.
type InvalidOperationError struct {
	Reason string
}

func (e InvalidOperationError) Error() string { return e.Reason }

// Code returns the stable error code.
func (e InvalidOperationError) Code() string { return CodeInvalidOperation }

// InsufficientFundsError indicates a withdrawal exceeding the available
// balance. Current and Requested are omitted when the balance is
// exactly zero.
type InsufficientFundsError struct {
	Current   decimal.Decimal
	Requested decimal.Decimal
	HasDetail bool
}

func (e InsufficientFundsError) Error() string {
	if !e.HasDetail {
		return "insufficient funds"
	}

	return fmt.Sprintf("insufficient funds: current balance %s, requested %s",
		e.Current.StringFixed(2), e.Requested.StringFixed(2))
}

// Code returns the stable error code.
func (e InsufficientFundsError) Code() string { return CodeInsufficientFunds }

// DailyLimitError indicates a withdrawal that would exceed the daily
// withdrawal cap.
type DailyLimitError struct {
	WithdrawnToday decimal.Decimal
	Limit          decimal.Decimal
}

func (e DailyLimitError) Error() string {
	return fmt.Sprintf("daily withdrawal limit exceeded: withdrawn today %s, limit %s",
		e.WithdrawnToday.StringFixed(2), e.Limit.StringFixed(2))
}

// Code returns the stable error code.
func (e DailyLimitError) Code() string { return CodeDailyLimit }
