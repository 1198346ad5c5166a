// Package clientservice manages business logic layer of clients.
package clientservice

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-banco/banco-api/internal/domain"
	"github.com/go-banco/banco-api/pkg/errorspkg"
	"github.com/go-banco/banco-api/pkg/passpkg"
)

// Repo provides data access layer interface needed by client service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package clientservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateClientParams) (domain.Client, error)
	Get(ctx context.Context, id int32) (domain.Client, error)
	List(ctx context.Context, limit, offset int32) ([]domain.Client, error)
	Update(ctx context.Context, arg domain.UpdateClientParams) (domain.Client, error)
	Delete(ctx context.Context, id int32) error
}

// Service facilitates client service layer logic.
type Service struct {
	repo Repo
}

// New returns client service struct to manage client business logic.
func New(repo Repo) *Service {
	return &Service{repo: repo}
}

// Create registers a client with the given personal data and password.
func (s *Service) Create(ctx context.Context, person domain.Person, password string) (domain.Client, error) {
	l := zerolog.Ctx(ctx)

	hashed, err := passpkg.Hash(password)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Client{}, errorspkg.ErrInternal
	}

	arg := domain.CreateClientParams{
		Person:         person,
		HashedPassword: hashed,
		Active:         true,
	}

	return s.repo.Create(ctx, arg)
}

// Get returns the client with the given id.
func (s *Service) Get(ctx context.Context, id int32) (domain.Client, error) {
	return s.repo.Get(ctx, id)
}

// List returns the requested page of clients.
func (s *Service) List(ctx context.Context, pageSize, pageID int32) ([]domain.Client, error) {
	limit := pageSize
	offset := (pageID - 1) * pageSize

	return s.repo.List(ctx, limit, offset)
}

// Update updates the client's personal data and active flag.
func (s *Service) Update(ctx context.Context, arg domain.UpdateClientParams) (domain.Client, error) {
	return s.repo.Update(ctx, arg)
}

// Delete removes the client with the given id.
func (s *Service) Delete(ctx context.Context, id int32) error {
	return s.repo.Delete(ctx, id)
}
