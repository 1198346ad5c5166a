package statementservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-banco/banco-api/internal/domain"
	"github.com/go-banco/banco-api/pkg/errorspkg"
	"github.com/go-banco/banco-api/pkg/randompkg"
)

func TestStatement(t *testing.T) {
	dec := decimal.RequireFromString

	testClient := domain.Client{
		ID: 1,
		Person: domain.Person{
			Name:           randompkg.Name(),
			Identification: randompkg.Identification(),
		},
		Active: true,
	}

	from := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 2, 28, 23, 59, 59, 0, time.UTC)

	accountNumber := randompkg.AccountNumber()

	testMovements := []domain.ClientMovement{
		{
			Movement: domain.Movement{
				ID:        1,
				AccountID: 1,
				Kind:      domain.MovementDeposit,
				Amount:    dec("600"),
				Balance:   dec("1100"),
				CreatedAt: from.Add(24 * time.Hour),
			},
			AccountNumber:  accountNumber,
			AccountType:    domain.AccountTypeSavings,
			OpeningBalance: dec("500"),
			AccountActive:  true,
			ClientName:     testClient.Name,
		},
		{
			Movement: domain.Movement{
				ID:        2,
				AccountID: 1,
				Kind:      domain.MovementWithdrawal,
				Amount:    dec("-150"),
				Balance:   dec("950"),
				CreatedAt: from.Add(48 * time.Hour),
			},
			AccountNumber:  accountNumber,
			AccountType:    domain.AccountTypeSavings,
			OpeningBalance: dec("500"),
			AccountActive:  true,
			ClientName:     testClient.Name,
		},
		{
			Movement: domain.Movement{
				ID:        3,
				AccountID: 2,
				Kind:      domain.MovementWithdrawal,
				Amount:    dec("-50.25"),
				Balance:   dec("49.75"),
				CreatedAt: from.Add(72 * time.Hour),
			},
			AccountNumber:  randompkg.AccountNumber(),
			AccountType:    domain.AccountTypeChecking,
			OpeningBalance: dec("100"),
			AccountActive:  false,
			ClientName:     testClient.Name,
		},
	}

	testCases := []struct {
		name          string
		buildStubs    func(repo *MockRepo, clients *MockClientGetter)
		checkResponse func(res domain.Statement, err error)
	}{
		{
			name: "ClientNotFound",
			buildStubs: func(repo *MockRepo, clients *MockClientGetter) {
				clients.EXPECT().Get(gomock.Any(), gomock.Eq(testClient.ID)).
					Times(1).
					Return(domain.Client{}, domain.NotFoundError{Entity: "client", ID: testClient.ID})
				repo.EXPECT().ListForClientInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(res domain.Statement, err error) {
				require.Empty(t, res)
				require.Equal(t, domain.CodeNotFound, domain.ErrorCode(err))
			},
		},
		{
			name: "RepoError",
			buildStubs: func(repo *MockRepo, clients *MockClientGetter) {
				clients.EXPECT().Get(gomock.Any(), gomock.Eq(testClient.ID)).
					Times(1).
					Return(testClient, nil)
				repo.EXPECT().ListForClientInRange(gomock.Any(), gomock.Eq(testClient.ID), gomock.Eq(from), gomock.Eq(to)).
					Times(1).
					Return(nil, errorspkg.ErrInternal)
			},
			checkResponse: func(res domain.Statement, err error) {
				require.Empty(t, res)
				require.EqualError(t, err, errorspkg.ErrInternal.Error())
			},
		},
		{
			name: "EmptyRange",
			buildStubs: func(repo *MockRepo, clients *MockClientGetter) {
				clients.EXPECT().Get(gomock.Any(), gomock.Eq(testClient.ID)).
					Times(1).
					Return(testClient, nil)
				repo.EXPECT().ListForClientInRange(gomock.Any(), gomock.Eq(testClient.ID), gomock.Eq(from), gomock.Eq(to)).
					Times(1).
					Return([]domain.ClientMovement{}, nil)
			},
			checkResponse: func(res domain.Statement, err error) {
				require.NoError(t, err)
				require.Equal(t, testClient.Name, res.Client)
				require.Empty(t, res.Rows)
				require.True(t, res.TotalCredits.IsZero())
				require.True(t, res.TotalDebits.IsZero())
			},
		},
		{
			name: "OK",
			buildStubs: func(repo *MockRepo, clients *MockClientGetter) {
				clients.EXPECT().Get(gomock.Any(), gomock.Eq(testClient.ID)).
					Times(1).
					Return(testClient, nil)
				repo.EXPECT().ListForClientInRange(gomock.Any(), gomock.Eq(testClient.ID), gomock.Eq(from), gomock.Eq(to)).
					Times(1).
					Return(testMovements, nil)
			},
			checkResponse: func(res domain.Statement, err error) {
				require.NoError(t, err)
				require.Equal(t, testClient.Name, res.Client)
				require.Len(t, res.Rows, len(testMovements))

				for i, m := range testMovements {
					row := res.Rows[i]
					require.Equal(t, m.CreatedAt, row.Date)
					require.Equal(t, m.ClientName, row.Client)
					require.Equal(t, m.AccountNumber, row.AccountNumber)
					require.Equal(t, m.AccountType, row.AccountType)
					require.Equal(t, m.AccountActive, row.Active)
					require.True(t, m.OpeningBalance.Equal(row.OpeningBalance))
					require.True(t, m.Amount.Equal(row.Amount))
					require.True(t, m.Balance.Equal(row.Balance))
				}

				require.True(t, res.TotalCredits.Equal(dec("600")))
				require.True(t, res.TotalDebits.Equal(dec("200.25")))
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			clients := NewMockClientGetter(ctrl)
			service := New(repo, clients)

			tc.buildStubs(repo, clients)

			tc.checkResponse(service.Statement(context.Background(), testClient.ID, from, to))
		})
	}
}
