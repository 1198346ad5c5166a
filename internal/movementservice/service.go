// Package movementservice manages business logic layer of movements.
//
// It is the sole writer of the movement ledger: every append and every
// deletion passes through it, and it enforces the non-negative balance
// and daily withdrawal cap invariants under concurrent access.
package movementservice

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-banco/banco-api/internal/domain"
)

// DailyWithdrawalLimit is the maximum total amount an account may
// withdraw per calendar day.
var DailyWithdrawalLimit = decimal.NewFromInt(1000)

// Repo provides data access layer interface needed by movement service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package movementservice
type Repo interface {
	Create(ctx context.Context, accountID int32, kind domain.MovementKind, amount, balance decimal.Decimal) (domain.Movement, error)
	Get(ctx context.Context, id int64) (domain.Movement, error)
	LastForAccount(ctx context.Context, accountID int32) (domain.Movement, error)
	SumWithdrawnInDay(ctx context.Context, accountID int32, asOf time.Time) (decimal.Decimal, error)
	ListForAccount(ctx context.Context, accountID, limit, offset int32) ([]domain.Movement, error)
	Delete(ctx context.Context, id int64) error
}

// AccountGetter provides the account lookup needed to validate posts
// and resolve the opening-balance baseline.
type AccountGetter interface {
	Get(ctx context.Context, id int32) (domain.Account, error)
}

// Service facilitates movement service layer logic.
type Service struct {
	repo     Repo
	accounts AccountGetter
	locks    *accountLocks
	now      func() time.Time
}

// New returns movement service struct to manage movement business logic.
func New(repo Repo, accounts AccountGetter) *Service {
	return &Service{
		repo:     repo,
		accounts: accounts,
		locks:    newAccountLocks(),
		now:      time.Now,
	}
}

// Create validates and appends a movement to the account's ledger.
//
// Validation fails fast in a fixed order: account existence, account
// active flag, sign convention (withdrawals negative, deposits
// positive), available funds, daily withdrawal cap. The balance read
// through the append run under the account's mutex so that two
// concurrent posts cannot both validate against the same balance.
func (s *Service) Create(ctx context.Context, arg domain.CreateMovementParams) (domain.Movement, error) {
	l := zerolog.Ctx(ctx)

	account, err := s.accounts.Get(ctx, arg.AccountID)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Movement{}, err
	}

	if !account.Active {
		return domain.Movement{}, domain.InvalidOperationError{Reason: "account is not active"}
	}

	switch arg.Kind {
	case domain.MovementWithdrawal:
		if arg.Amount.GreaterThanOrEqual(decimal.Zero) {
			return domain.Movement{}, domain.InvalidOperationError{Reason: "withdrawal amount must be negative"}
		}
	case domain.MovementDeposit:
		if arg.Amount.LessThanOrEqual(decimal.Zero) {
			return domain.Movement{}, domain.InvalidOperationError{Reason: "deposit amount must be positive"}
		}
	default:
		return domain.Movement{}, domain.InvalidOperationError{Reason: "unrecognized movement kind"}
	}

	unlock := s.locks.Lock(arg.AccountID)
	defer unlock()

	current, err := s.balanceOf(ctx, account)
	if err != nil {
		return domain.Movement{}, err
	}

	if arg.Kind == domain.MovementWithdrawal {
		if current.IsZero() {
			return domain.Movement{}, domain.InsufficientFundsError{}
		}

		requested := arg.Amount.Abs()

		if requested.GreaterThan(current) {
			return domain.Movement{}, domain.InsufficientFundsError{
				Current:   current,
				Requested: requested,
				HasDetail: true,
			}
		}

		today, err := s.repo.SumWithdrawnInDay(ctx, arg.AccountID, s.now())
		if err != nil {
			return domain.Movement{}, err
		}

		if today.Add(requested).GreaterThan(DailyWithdrawalLimit) {
			return domain.Movement{}, domain.DailyLimitError{
				WithdrawnToday: today,
				Limit:          DailyWithdrawalLimit,
			}
		}
	}

	newBalance := current.Add(arg.Amount)

	movement, err := s.repo.Create(ctx, arg.AccountID, arg.Kind, arg.Amount, newBalance)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Movement{}, err
	}

	return movement, nil
}

// Delete removes a movement. Only the most recent movement of its
// account may be removed; the account's balance reverts to the
// previous movement's balance by definition.
func (s *Service) Delete(ctx context.Context, id int64) error {
	l := zerolog.Ctx(ctx)

	movement, err := s.repo.Get(ctx, id)
	if err != nil {
		l.Info().Err(err).Send()
		return err
	}

	unlock := s.locks.Lock(movement.AccountID)
	defer unlock()

	last, err := s.repo.LastForAccount(ctx, movement.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrNoMovements) {
			return domain.NotFoundError{Entity: "movement", ID: id}
		}

		return err
	}

	if last.ID != movement.ID {
		return domain.InvalidOperationError{Reason: "only the last movement of the account may be removed"}
	}

	return s.repo.Delete(ctx, id)
}

// Get returns the movement with the given id.
func (s *Service) Get(ctx context.Context, id int64) (domain.Movement, error) {
	return s.repo.Get(ctx, id)
}

// ListForAccount returns the account's movements, most recent first.
func (s *Service) ListForAccount(ctx context.Context, accountID, pageSize, pageID int32) ([]domain.Movement, error) {
	if _, err := s.accounts.Get(ctx, accountID); err != nil {
		return nil, err
	}

	limit := pageSize
	offset := (pageID - 1) * pageSize

	return s.repo.ListForAccount(ctx, accountID, limit, offset)
}

// CurrentBalance returns the resulting balance of the account's most
// recent movement, or the opening balance if no movements exist.
func (s *Service) CurrentBalance(ctx context.Context, accountID int32) (decimal.Decimal, error) {
	account, err := s.accounts.Get(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	return s.balanceOf(ctx, account)
}

func (s *Service) balanceOf(ctx context.Context, account domain.Account) (decimal.Decimal, error) {
	last, err := s.repo.LastForAccount(ctx, account.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNoMovements) {
			return account.OpeningBalance, nil
		}

		return decimal.Zero, err
	}

	return last.Balance, nil
}
