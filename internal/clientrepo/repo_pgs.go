// Package clientrepo manages repository layer of clients.
package clientrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-banco/banco-api/internal/domain"
	"github.com/go-banco/banco-api/pkg/dbpkg"
	"github.com/go-banco/banco-api/pkg/errorspkg"
)

// RepoPGS facilitates client repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns client RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    clients (name, gender, age, identification, address, phone, hashed_password, active)
VALUES
    ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, name, gender, age, identification, address, phone, hashed_password, active, created_at
`

// Create creates the client and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateClientParams) (domain.Client, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.Name,
		arg.Gender,
		arg.Age,
		arg.Identification,
		arg.Address,
		arg.Phone,
		arg.HashedPassword,
		arg.Active,
	)

	var c domain.Client

	err := scanClient(row, &c)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "clients_identification_key" {
				return c, domain.DuplicateError{
					Entity: "client",
					Field:  "identification",
					Value:  arg.Identification,
				}
			}
		}

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const getQuery = `
SELECT
    id, name, gender, age, identification, address, phone, hashed_password, active, created_at
FROM clients
WHERE id = $1
`

// Get returns the client with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int32) (domain.Client, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var c domain.Client

	err := scanClient(row, &c)
	if err != nil {
		if err == sql.ErrNoRows {
			return c, domain.NotFoundError{Entity: "client", ID: id}
		}

		l.Error().Err(err).Send()

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const listQuery = `
SELECT
    id, name, gender, age, identification, address, phone, hashed_password, active, created_at
FROM clients
ORDER BY id
LIMIT $1 OFFSET $2
`

// List returns the specified number of clients ordered by id.
func (r *RepoPGS) List(ctx context.Context, limit, offset int32) ([]domain.Client, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Client{}

	for rows.Next() {
		var c domain.Client
		if err := scanClient(rows, &c); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, c)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const updateQuery = `
UPDATE clients
SET name = $2, gender = $3, age = $4, identification = $5, address = $6, phone = $7, active = $8
WHERE id = $1
RETURNING id, name, gender, age, identification, address, phone, hashed_password, active, created_at
`

// Update updates the client's personal data and active flag.
func (r *RepoPGS) Update(ctx context.Context, arg domain.UpdateClientParams) (domain.Client, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery,
		arg.ID,
		arg.Name,
		arg.Gender,
		arg.Age,
		arg.Identification,
		arg.Address,
		arg.Phone,
		arg.Active,
	)

	var c domain.Client

	err := scanClient(row, &c)
	if err != nil {
		if err == sql.ErrNoRows {
			return c, domain.NotFoundError{Entity: "client", ID: arg.ID}
		}

		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "clients_identification_key" {
				return c, domain.DuplicateError{
					Entity: "client",
					Field:  "identification",
					Value:  arg.Identification,
				}
			}
		}

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const deleteQuery = `
DELETE FROM clients
WHERE id = $1
`

// Delete removes the client with the given id.
func (r *RepoPGS) Delete(ctx context.Context, id int32) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "accounts_client_id_fkey" {
				return domain.InvalidOperationError{Reason: "client still has accounts"}
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
		return domain.NotFoundError{Entity: "client", ID: id}
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanClient(s scanner, c *domain.Client) error {
	return s.Scan(
		&c.ID,
		&c.Name,
		&c.Gender,
		&c.Age,
		&c.Identification,
		&c.Address,
		&c.Phone,
		&c.HashedPassword,
		&c.Active,
		&c.CreatedAt,
	)
}
