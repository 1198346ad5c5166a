package accountdelivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"

	"github.com/go-banco/banco-api/internal/domain"
	"github.com/go-banco/banco-api/pkg/randompkg"
	"github.com/go-banco/banco-api/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("accounttype", ValidAccountType); err != nil {
			fmt.Println("cannot register accounttype validation:", err)
			os.Exit(1)
		}
	}

	os.Exit(m.Run())
}

func randomAccount(id, clientID int32) domain.Account {
	return domain.Account{
		ID:             id,
		Number:         randompkg.AccountNumber(),
		Type:           randompkg.AccountType(),
		OpeningBalance: randompkg.MoneyBetween(100, 10_000),
		Active:         true,
		ClientID:       clientID,
		CreatedAt:      time.Now().Truncate(time.Second).UTC(),
	}
}

type accountData struct {
	Account domain.Account `json:"account"`
}

type testResponse struct {
	Data  *accountData   `json:"data"`
	Error *web.ErrorBody `json:"error"`
}

func TestCreateAPI(t *testing.T) {
	account := randomAccount(1, 1)

	type requestBody struct {
		Number         string `json:"number"`
		Type           string `json:"type"`
		OpeningBalance string `json:"opening_balance"`
		ClientID       int32  `json:"client_id"`
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
		checkData      func(data *accountData)
	}{
		{
			name: "OK",
			requestBody: requestBody{
				Number:         account.Number,
				Type:           string(account.Type),
				OpeningBalance: account.OpeningBalance.String(),
				ClientID:       account.ClientID,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(domain.CreateAccountParams{
						Number:         account.Number,
						Type:           account.Type,
						OpeningBalance: account.OpeningBalance,
						ClientID:       account.ClientID,
					})).
					Times(1).
					Return(account, nil)
			},
			wantStatusCode: http.StatusOK,
			checkData: func(data *accountData) {
				compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
				compareDecimals := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

				if diff := cmp.Diff(account, data.Account, compareCreatedAt, compareDecimals); diff != "" {
					t.Errorf("res.Data mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "InvalidType",
			requestBody: requestBody{
				Number:         account.Number,
				Type:           "Bond",
				OpeningBalance: "100",
				ClientID:       account.ClientID,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Type must be Savings or Checking",
		},
		{
			name: "NonNumericNumber",
			requestBody: requestBody{
				Number:         "AB123",
				Type:           string(account.Type),
				OpeningBalance: "100",
				ClientID:       account.ClientID,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "Number must contain only digits",
		},
		{
			name: "MalformedOpeningBalance",
			requestBody: requestBody{
				Number:         account.Number,
				Type:           string(account.Type),
				OpeningBalance: "lots",
				ClientID:       account.ClientID,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "opening_balance must be a decimal number",
		},
		{
			name: "DuplicateNumber",
			requestBody: requestBody{
				Number:         account.Number,
				Type:           string(account.Type),
				OpeningBalance: account.OpeningBalance.String(),
				ClientID:       account.ClientID,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Account{}, domain.DuplicateError{
						Entity: "account", Field: "number", Value: account.Number,
					})
			},
			wantStatusCode: http.StatusConflict,
			wantError:      fmt.Sprintf("account with number %q already exists", account.Number),
		},
		{
			name: "ClientNotFound",
			requestBody: requestBody{
				Number:         account.Number,
				Type:           string(account.Type),
				OpeningBalance: account.OpeningBalance.String(),
				ClientID:       999,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Account{}, domain.NotFoundError{Entity: "client", ID: int32(999)})
			},
			wantStatusCode: http.StatusNotFound,
			wantError:      "client with id 999 not found",
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			handler := NewHandler(service)

			server := gin.New()
			server.POST("/accounts", handler.Create)

			tc.buildStubs(service)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			var res testResponse
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if tc.wantStatusCode != http.StatusOK {
				if res.Error == nil {
					t.Fatalf("res.Error is nil, want %q", tc.wantError)
				}

				if res.Error.Message != tc.wantError {
					t.Errorf("res.Error.Message=%q, want %q", res.Error.Message, tc.wantError)
				}
			} else {
				tc.checkData(res.Data)
			}
		})
	}
}

func TestGetAPI(t *testing.T) {
	account := randomAccount(1, 1)
	withBalance := domain.AccountWithBalance{
		Account: account,
		Balance: randompkg.MoneyBetween(0, 10_000),
	}

	testCases := []struct {
		name           string
		url            string
		buildStubs     func(service *MockService)
		wantStatusCode int
	}{
		{
			name: "OK",
			url:  "/accounts/1",
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Eq(int32(1))).
					Times(1).
					Return(withBalance, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "NotFound",
			url:  "/accounts/999",
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Eq(int32(999))).
					Times(1).
					Return(domain.AccountWithBalance{}, domain.NotFoundError{Entity: "account", ID: int32(999)})
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "InvalidID",
			url:  "/accounts/0",
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			handler := NewHandler(service)

			server := gin.New()
			server.GET("/accounts/:id", handler.Get)

			tc.buildStubs(service)

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			if tc.wantStatusCode == http.StatusOK {
				res := web.Response{
					Data: &struct {
						Account domain.AccountWithBalance `json:"account"`
					}{},
				}

				if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
					t.Errorf("Decoding response body error: %v", err)
				}

				got, ok := res.Data.(*struct {
					Account domain.AccountWithBalance `json:"account"`
				})
				if !ok {
					t.Fatalf("res.Data=%v, failed type conversion", res.Data)
				}

				if !got.Account.Balance.Equal(withBalance.Balance) {
					t.Errorf("Balance=%s, want %s", got.Account.Balance, withBalance.Balance)
				}
			}
		})
	}
}

func TestListAPI(t *testing.T) {
	accounts := []domain.AccountWithBalance{
		{Account: randomAccount(1, 1), Balance: randompkg.MoneyBetween(0, 1000)},
		{Account: randomAccount(2, 1), Balance: randompkg.MoneyBetween(0, 1000)},
	}

	testCases := []struct {
		name           string
		url            string
		buildStubs     func(service *MockService)
		wantStatusCode int
	}{
		{
			name: "OK",
			url:  "/accounts?client_id=1&page_id=1&page_size=5",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					ListForClient(gomock.Any(), gomock.Eq(int32(1)), gomock.Eq(int32(5)), gomock.Eq(int32(1))).
					Times(1).
					Return(accounts, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "MissingClientID",
			url:  "/accounts?page_id=1&page_size=5",
			buildStubs: func(service *MockService) {
				service.EXPECT().ListForClient(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			handler := NewHandler(service)

			server := gin.New()
			server.GET("/accounts", handler.List)

			tc.buildStubs(service)

			req, err := http.NewRequest(http.MethodGet, tc.url, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}
		})
	}
}

func TestUpdateAPI(t *testing.T) {
	account := randomAccount(1, 1)
	account.Active = false
	account.UpdatedAt = time.Now().Truncate(time.Second).UTC()

	type requestBody struct {
		Type   string `json:"type"`
		Active *bool  `json:"active"`
	}

	active := false

	testCases := []struct {
		name           string
		url            string
		requestBody    requestBody
		buildStubs     func(service *MockService)
		wantStatusCode int
	}{
		{
			name: "OK",
			url:  "/accounts/1",
			requestBody: requestBody{
				Type:   string(account.Type),
				Active: &active,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Update(gomock.Any(), gomock.Eq(domain.UpdateAccountParams{
						ID:     account.ID,
						Type:   account.Type,
						Active: false,
					})).
					Times(1).
					Return(account, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "MissingActive",
			url:  "/accounts/1",
			requestBody: requestBody{
				Type: string(account.Type),
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "NotFound",
			url:  "/accounts/999",
			requestBody: requestBody{
				Type:   string(account.Type),
				Active: &active,
			},
			buildStubs: func(service *MockService) {
				service.EXPECT().Update(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Account{}, domain.NotFoundError{Entity: "account", ID: int32(999)})
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			handler := NewHandler(service)

			server := gin.New()
			server.PUT("/accounts/:id", handler.Update)

			tc.buildStubs(service)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPut, tc.url, bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}
		})
	}
}

func TestDeleteAPI(t *testing.T) {
	testCases := []struct {
		name           string
		url            string
		buildStubs     func(service *MockService)
		wantStatusCode int
	}{
		{
			name: "OK",
			url:  "/accounts/1",
			buildStubs: func(service *MockService) {
				service.EXPECT().Delete(gomock.Any(), gomock.Eq(int32(1))).
					Times(1).
					Return(nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "HasMovements",
			url:  "/accounts/1",
			buildStubs: func(service *MockService) {
				service.EXPECT().Delete(gomock.Any(), gomock.Eq(int32(1))).
					Times(1).
					Return(domain.InvalidOperationError{Reason: "account has movements and cannot be deleted"})
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "NotFound",
			url:  "/accounts/999",
			buildStubs: func(service *MockService) {
				service.EXPECT().Delete(gomock.Any(), gomock.Eq(int32(999))).
					Times(1).
					Return(domain.NotFoundError{Entity: "account", ID: int32(999)})
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			handler := NewHandler(service)

			server := gin.New()
			server.DELETE("/accounts/:id", handler.Delete)

			tc.buildStubs(service)

			req, err := http.NewRequest(http.MethodDelete, tc.url, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}
		})
	}
}
