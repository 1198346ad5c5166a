// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-banco/banco-api/internal/domain"
	"github.com/go-banco/banco-api/pkg/dbpkg"
	"github.com/go-banco/banco-api/pkg/errorspkg"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    accounts (number, type, opening_balance, client_id)
VALUES
    ($1, $2, $3, $4)
RETURNING id, number, type, opening_balance, active, client_id, created_at, updated_at
`

// Create creates the account and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, arg.Number, arg.Type, arg.OpeningBalance, arg.ClientID)

	var a domain.Account

	err := scanAccount(row, &a)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "accounts_number_key":
				return a, domain.DuplicateError{Entity: "account", Field: "number", Value: arg.Number}
			case "accounts_client_id_fkey":
				return a, domain.NotFoundError{Entity: "client", ID: arg.ClientID}
			case "accounts_opening_balance_check":
				return a, domain.InvalidOperationError{Reason: "opening balance must not be negative"}
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getQuery = `
SELECT
    id, number, type, opening_balance, active, client_id, created_at, updated_at
FROM accounts
WHERE id = $1
`

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int32) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var a domain.Account

	err := scanAccount(row, &a)
	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.NotFoundError{Entity: "account", ID: id}
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getByNumberQuery = `
SELECT
    id, number, type, opening_balance, active, client_id, created_at, updated_at
FROM accounts
WHERE number = $1
`

// GetByNumber returns the account with the given account number.
func (r *RepoPGS) GetByNumber(ctx context.Context, number string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getByNumberQuery, number)

	var a domain.Account

	err := scanAccount(row, &a)
	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.NotFoundError{Entity: "account", ID: number}
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const listForClientQuery = `
SELECT
    id, number, type, opening_balance, active, client_id, created_at, updated_at
FROM accounts
WHERE client_id = $1
ORDER BY id
LIMIT $2 OFFSET $3
`

// ListForClient returns the specified number of accounts for the given client.
func (r *RepoPGS) ListForClient(ctx context.Context, clientID, limit, offset int32) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listForClientQuery, clientID, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		var a domain.Account
		if err := scanAccount(rows, &a); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, a)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const updateQuery = `
UPDATE accounts
SET type = $2, active = $3, updated_at = now()
WHERE id = $1
RETURNING id, number, type, opening_balance, active, client_id, created_at, updated_at
`

// Update updates the account's type and active flag. The account number
// and opening balance are immutable.
func (r *RepoPGS) Update(ctx context.Context, arg domain.UpdateAccountParams) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery, arg.ID, arg.Type, arg.Active)

	var a domain.Account

	err := scanAccount(row, &a)
	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.NotFoundError{Entity: "account", ID: arg.ID}
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const deleteQuery = `
DELETE FROM accounts
WHERE id = $1
`

// Delete removes the account with the given id. Accounts that already
// have movements are protected by the movements foreign key.
func (r *RepoPGS) Delete(ctx context.Context, id int32) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "movements_account_id_fkey" {
				return domain.InvalidOperationError{Reason: "account has movements and cannot be deleted"}
			}
		}

		return errorspkg.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if n == 0 {
		return domain.NotFoundError{Entity: "account", ID: id}
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner, a *domain.Account) error {
	var updatedAt sql.NullTime

	err := s.Scan(
		&a.ID,
		&a.Number,
		&a.Type,
		&a.OpeningBalance,
		&a.Active,
		&a.ClientID,
		&a.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return err
	}

	a.UpdatedAt = updatedAt.Time

	return nil
}
