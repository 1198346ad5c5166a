package statementdelivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/go-banco/banco-api/internal/domain"
	"github.com/go-banco/banco-api/pkg/randompkg"
	"github.com/go-banco/banco-api/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestGetAPI(t *testing.T) {
	dec := decimal.RequireFromString

	clientName := randompkg.Name()

	from := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
	// The to date is inclusive, so the handler extends it to end of day.
	to := time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1).Add(-time.Nanosecond)

	statement := domain.Statement{
		Client: clientName,
		Rows: []domain.StatementRow{
			{
				Date:           from.Add(24 * time.Hour),
				Client:         clientName,
				AccountNumber:  randompkg.AccountNumber(),
				AccountType:    domain.AccountTypeSavings,
				OpeningBalance: dec("500"),
				Active:         true,
				Amount:         dec("600"),
				Balance:        dec("1100"),
			},
		},
		TotalCredits: dec("600"),
		TotalDebits:  decimal.Zero,
	}

	testCases := []struct {
		name           string
		url            string
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name: "OK",
			url:  "/clients/1/report?from=2023-02-01&to=2023-02-28",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Statement(gomock.Any(), gomock.Eq(int32(1)), gomock.Eq(from), gomock.Eq(to)).
					Times(1).
					Return(statement, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "MissingFrom",
			url:  "/clients/1/report?to=2023-02-28",
			buildStubs: func(service *MockService) {
				service.EXPECT().Statement(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "From is required",
		},
		{
			name: "ToBeforeFrom",
			url:  "/clients/1/report?from=2023-02-28&to=2023-02-01",
			buildStubs: func(service *MockService) {
				service.EXPECT().Statement(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "to must not be before from",
		},
		{
			name: "ClientNotFound",
			url:  "/clients/999/report?from=2023-02-01&to=2023-02-28",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Statement(gomock.Any(), gomock.Eq(int32(999)), gomock.Eq(from), gomock.Eq(to)).
					Times(1).
					Return(domain.Statement{}, domain.NotFoundError{Entity: "client", ID: int32(999)})
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
			server.GET("/clients/:id/report", handler.Get)

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

			if tc.wantStatusCode != http.StatusOK {
				var res struct {
					Error *web.ErrorBody `json:"error"`
				}

				if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
					t.Errorf("Decoding response body error: %v", err)
				}

				if res.Error == nil {
					t.Fatalf("res.Error is nil, want %q", tc.wantError)
				}

				if res.Error.Message != tc.wantError {
					t.Errorf("res.Error.Message=%q, want %q", res.Error.Message, tc.wantError)
				}

				return
			}

			var res struct {
				Data *struct {
					Statement domain.Statement `json:"statement"`
				} `json:"data"`
			}

			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Errorf("Decoding response body error: %v", err)
			}

			if res.Data == nil {
				t.Fatal("res.Data is nil")
			}

			got := res.Data.Statement
			if got.Client != statement.Client {
				t.Errorf("Client=%q, want %q", got.Client, statement.Client)
			}

			if len(got.Rows) != len(statement.Rows) {
				t.Errorf("len(Rows)=%d, want %d", len(got.Rows), len(statement.Rows))
			}

			if !got.TotalCredits.Equal(statement.TotalCredits) {
				t.Errorf("TotalCredits=%s, want %s", got.TotalCredits, statement.TotalCredits)
			}

			if !got.TotalDebits.Equal(statement.TotalDebits) {
				t.Errorf("TotalDebits=%s, want %s", got.TotalDebits, statement.TotalDebits)
			}
		})
	}
}
