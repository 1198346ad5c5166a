// Package statementservice builds client movement reports from the ledger.
package statementservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-banco/banco-api/internal/domain"
)

// Repo provides the ledger read needed to build statements.
//
//go:generate mockgen -source service.go -destination service_mock.go -package statementservice
type Repo interface {
	ListForClientInRange(ctx context.Context, clientID int32, from, to time.Time) ([]domain.ClientMovement, error)
}

// ClientGetter provides the client lookup needed to build statements.
type ClientGetter interface {
	Get(ctx context.Context, id int32) (domain.Client, error)
}

// Service facilitates statement service layer logic.
type Service struct {
	repo    Repo
	clients ClientGetter
}

// New returns statement service struct to build client statements.
func New(repo Repo, clients ClientGetter) *Service {
	return &Service{repo: repo, clients: clients}
}

// Statement replays the client's committed movements within [from, to]
// into statement rows ordered by timestamp ascending, together with
// credit and debit totals. An empty range yields zero totals and an
// empty row list.
func (s *Service) Statement(ctx context.Context, clientID int32, from, to time.Time) (domain.Statement, error) {
	l := zerolog.Ctx(ctx)

	client, err := s.clients.Get(ctx, clientID)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Statement{}, err
	}

	movements, err := s.repo.ListForClientInRange(ctx, clientID, from, to)
	if err != nil {
		return domain.Statement{}, err
	}

	rows := make([]domain.StatementRow, 0, len(movements))
	totalCredits := decimal.Zero
	totalDebits := decimal.Zero

	for _, m := range movements {
		rows = append(rows, domain.StatementRow{
			Date:           m.CreatedAt,
			Client:         m.ClientName,
			AccountNumber:  m.AccountNumber,
			AccountType:    m.AccountType,
			OpeningBalance: m.OpeningBalance,
			Active:         m.AccountActive,
			Amount:         m.Amount,
			Balance:        m.Balance,
		})

		if m.Amount.IsPositive() {
			totalCredits = totalCredits.Add(m.Amount)
		} else {
			totalDebits = totalDebits.Add(m.Amount.Abs())
		}
	}

	return domain.Statement{
		Client:       client.Name,
		Rows:         rows,
		TotalCredits: totalCredits,
		TotalDebits:  totalDebits,
	}, nil
}
