// Package movementrepo manages the append-only movement ledger of accounts.
package movementrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-banco/banco-api/internal/domain"
	"github.com/go-banco/banco-api/pkg/dbpkg"
	"github.com/go-banco/banco-api/pkg/errorspkg"
)

// RepoPGS facilitates movement repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns movement RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    movements (account_id, kind, amount, balance)
VALUES
    ($1, $2, $3, $4)
RETURNING id, account_id, kind, amount, balance, created_at
`

// Create appends a movement to the account's ledger and returns it with
// its server-assigned id and timestamp.
func (r *RepoPGS) Create(ctx context.Context, accountID int32, kind domain.MovementKind, amount, balance decimal.Decimal) (domain.Movement, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, accountID, kind, amount, balance)

	var m domain.Movement

	err := scanMovement(row, &m)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "movements_account_id_fkey":
				return m, domain.NotFoundError{Entity: "account", ID: accountID}
			case "movements_balance_check":
				return m, domain.InsufficientFundsError{}
			}
		}

		return m, errorspkg.ErrInternal
	}

	return m, nil
}

const getQuery = `
SELECT id, account_id, kind, amount, balance, created_at FROM movements
WHERE id = $1
`

// Get returns the movement with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Movement, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var m domain.Movement

	err := scanMovement(row, &m)
	if err != nil {
		if err == sql.ErrNoRows {
			return m, domain.NotFoundError{Entity: "movement", ID: id}
		}

		l.Error().Err(err).Send()

		return m, errorspkg.ErrInternal
	}

	return m, nil
}

const lastForAccountQuery = `
SELECT id, account_id, kind, amount, balance, created_at FROM movements
WHERE account_id = $1
ORDER BY created_at DESC, id DESC
LIMIT 1
`

// LastForAccount returns the most recent movement of the account,
// ordered by timestamp then id. It returns domain.ErrNoMovements when
// the account's ledger is empty.
func (r *RepoPGS) LastForAccount(ctx context.Context, accountID int32) (domain.Movement, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, lastForAccountQuery, accountID)

	var m domain.Movement

	err := scanMovement(row, &m)
	if err != nil {
		if err == sql.ErrNoRows {
			return m, domain.ErrNoMovements
		}

		l.Error().Err(err).Send()

		return m, errorspkg.ErrInternal
	}

	return m, nil
}

const sumWithdrawnInDayQuery = `
SELECT COALESCE(SUM(ABS(amount)), 0) FROM movements
WHERE account_id = $1
  AND amount < 0
  AND created_at >= $2
  AND created_at < $3
`

// SumWithdrawnInDay returns the absolute sum of the account's
// withdrawals committed within the calendar day containing asOf.
func (r *RepoPGS) SumWithdrawnInDay(ctx context.Context, accountID int32, asOf time.Time) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	dayStart := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	row := r.db.QueryRowContext(ctx, sumWithdrawnInDayQuery, accountID, dayStart, dayEnd)

	var total decimal.Decimal

	if err := row.Scan(&total); err != nil {
		l.Error().Err(err).Send()
		return decimal.Zero, errorspkg.ErrInternal
	}

	return total, nil
}

const listForAccountQuery = `
SELECT id, account_id, kind, amount, balance, created_at FROM movements
WHERE account_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3
`

// ListForAccount returns the account's movements, most recent first.
func (r *RepoPGS) ListForAccount(ctx context.Context, accountID, limit, offset int32) ([]domain.Movement, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listForAccountQuery, accountID, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Movement{}

	for rows.Next() {
		var m domain.Movement
		if err := scanMovement(rows, &m); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const listForClientInRangeQuery = `
SELECT
    m.id, m.account_id, m.kind, m.amount, m.balance, m.created_at,
    a.number, a.type, a.opening_balance, a.active,
    c.name
FROM movements m
JOIN accounts a ON a.id = m.account_id
JOIN clients c ON c.id = a.client_id
WHERE a.client_id = $1
  AND m.created_at >= $2
  AND m.created_at <= $3
ORDER BY m.created_at, m.id
`

// ListForClientInRange returns the movements of all the client's
// accounts within [from, to], joined with account and client data and
// ordered by timestamp ascending.
func (r *RepoPGS) ListForClientInRange(ctx context.Context, clientID int32, from, to time.Time) ([]domain.ClientMovement, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listForClientInRangeQuery, clientID, from, to)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.ClientMovement{}

	for rows.Next() {
		var cm domain.ClientMovement
		if err := rows.Scan(
			&cm.ID,
			&cm.AccountID,
			&cm.Kind,
			&cm.Amount,
			&cm.Balance,
			&cm.CreatedAt,
			&cm.AccountNumber,
			&cm.AccountType,
			&cm.OpeningBalance,
			&cm.AccountActive,
			&cm.ClientName,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, cm)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const deleteQuery = `
DELETE FROM movements
WHERE id = $1
`

// Delete removes the movement with the given id.
func (r *RepoPGS) Delete(ctx context.Context, id int64) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if n == 0 {
		return domain.NotFoundError{Entity: "movement", ID: id}
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMovement(s scanner, m *domain.Movement) error {
	return s.Scan(
		&m.ID,
		&m.AccountID,
		&m.Kind,
		&m.Amount,
		&m.Balance,
		&m.CreatedAt,
	)
}
