// Package helpers provides seeding helpers used in integration tests.
package helpers

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/go-banco/banco-api/internal/accountrepo"
	"github.com/go-banco/banco-api/internal/clientrepo"
	"github.com/go-banco/banco-api/internal/domain"
	"github.com/go-banco/banco-api/internal/movementrepo"
	"github.com/go-banco/banco-api/pkg/dbpkg"
	"github.com/go-banco/banco-api/pkg/passpkg"
	"github.com/go-banco/banco-api/pkg/randompkg"
)

// SeedClient creates a random active client.
func SeedClient(t *testing.T, tx dbpkg.SQLInterface) domain.Client {
	t.Helper()

	hashedPassword, err := passpkg.Hash(randompkg.String(32))
	if err != nil {
		t.Fatalf("passpkg.Hash(randompkg.String(32)) returned error: %v", err)
	}

	arg := domain.CreateClientParams{
		Person: domain.Person{
			Name:           randompkg.Name(),
			Gender:         "Female",
			Age:            randompkg.IntBetween(18, 90),
			Identification: randompkg.Identification(),
			Address:        randompkg.String(20),
			Phone:          randompkg.Phone(),
		},
		HashedPassword: hashedPassword,
		Active:         true,
	}

	clientRepo := clientrepo.NewRepoPGS(tx)

	client, err := clientRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("clientRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return client
}

// SeedAccount creates an account with the given opening balance.
func SeedAccount(t *testing.T, tx dbpkg.SQLInterface, clientID int32, openingBalance string) domain.Account {
	t.Helper()

	arg := domain.CreateAccountParams{
		Number:         randompkg.AccountNumber(),
		Type:           randompkg.AccountType(),
		OpeningBalance: decimal.RequireFromString(openingBalance),
		ClientID:       clientID,
	}

	accountRepo := accountrepo.NewRepoPGS(tx)

	account, err := accountRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("accountRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return account
}

// SeedMovement appends a movement with the given amount and resulting balance.
func SeedMovement(t *testing.T, tx dbpkg.SQLInterface, accountID int32, amount, balance string) domain.Movement {
	t.Helper()

	kind := domain.MovementDeposit

	amountDec := decimal.RequireFromString(amount)
	if amountDec.IsNegative() {
		kind = domain.MovementWithdrawal
	}

	movementRepo := movementrepo.NewRepoPGS(tx)

	movement, err := movementRepo.Create(context.Background(), accountID, kind, amountDec,
		decimal.RequireFromString(balance))
	if err != nil {
		t.Fatalf("movementRepo.Create(context.Background(), %v, %v, %v, %v) returned error: %v",
			accountID, kind, amount, balance, err)
	}

	return movement
}
