// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/go-banco/banco-api/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error)
	Get(ctx context.Context, id int32) (domain.Account, error)
	GetByNumber(ctx context.Context, number string) (domain.Account, error)
	ListForClient(ctx context.Context, clientID, limit, offset int32) ([]domain.Account, error)
	Update(ctx context.Context, arg domain.UpdateAccountParams) (domain.Account, error)
	Delete(ctx context.Context, id int32) error
}

// Balancer derives the current balance of an account from its ledger.
type Balancer interface {
	CurrentBalance(ctx context.Context, accountID int32) (decimal.Decimal, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo     Repo
	balances Balancer
}

// New returns account service struct to manage account business logic.
func New(repo Repo, balances Balancer) *Service {
	return &Service{repo: repo, balances: balances}
}

// Create opens an account with the given number, type and opening balance.
func (s *Service) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	if !arg.Type.IsValid() {
		return domain.Account{}, domain.InvalidOperationError{Reason: "unrecognized account type"}
	}

	if arg.OpeningBalance.IsNegative() {
		return domain.Account{}, domain.InvalidOperationError{Reason: "opening balance must not be negative"}
	}

	return s.repo.Create(ctx, arg)
}

// Get returns the account with the given id together with its current balance.
func (s *Service) Get(ctx context.Context, id int32) (domain.AccountWithBalance, error) {
	account, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.AccountWithBalance{}, err
	}

	balance, err := s.balances.CurrentBalance(ctx, account.ID)
	if err != nil {
		return domain.AccountWithBalance{}, err
	}

	return domain.AccountWithBalance{Account: account, Balance: balance}, nil
}

// ListForClient returns the client's accounts with their current balances.
func (s *Service) ListForClient(ctx context.Context, clientID, pageSize, pageID int32) ([]domain.AccountWithBalance, error) {
	limit := pageSize
	offset := (pageID - 1) * pageSize

	accounts, err := s.repo.ListForClient(ctx, clientID, limit, offset)
	if err != nil {
		return nil, err
	}

	items := make([]domain.AccountWithBalance, 0, len(accounts))

	for _, account := range accounts {
		balance, err := s.balances.CurrentBalance(ctx, account.ID)
		if err != nil {
			return nil, err
		}

		items = append(items, domain.AccountWithBalance{Account: account, Balance: balance})
	}

	return items, nil
}

// Update updates the account's type and active flag.
func (s *Service) Update(ctx context.Context, arg domain.UpdateAccountParams) (domain.Account, error) {
	if !arg.Type.IsValid() {
		return domain.Account{}, domain.InvalidOperationError{Reason: "unrecognized account type"}
	}

	return s.repo.Update(ctx, arg)
}

// Delete removes an account that has no movements.
func (s *Service) Delete(ctx context.Context, id int32) error {
	return s.repo.Delete(ctx, id)
}
