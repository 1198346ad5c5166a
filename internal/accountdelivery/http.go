// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-banco/banco-api/internal/domain"
	"github.com/go-banco/banco-api/pkg/errorspkg"
	"github.com/go-banco/banco-api/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error)
	Get(ctx context.Context, id int32) (domain.AccountWithBalance, error)
	ListForClient(ctx context.Context, clientID, pageSize, pageID int32) ([]domain.AccountWithBalance, error)
	Update(ctx context.Context, arg domain.UpdateAccountParams) (domain.Account, error)
	Delete(ctx context.Context, id int32) error
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) Handler {
	return Handler{service: as}
}

type data struct {
	Account domain.Account `json:"account"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

type createRequest struct {
	Number         string `json:"number" binding:"required,numeric,max=20"`
	Type           string `json:"type" binding:"required,accounttype"`
	OpeningBalance string `json:"opening_balance" binding:"required"`
	ClientID       int32  `json:"client_id" binding:"required,min=1"`
}

// Create handles http request to open an account.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindingError(gctx, l, err)
		return
	}

	openingBalance, err := decimal.NewFromString(req.OpeningBalance)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationError(errors.New("opening_balance must be a decimal number")))

		return
	}

	arg := domain.CreateAccountParams{
		Number:         req.Number,
		Type:           domain.AccountType(req.Type),
		OpeningBalance: openingBalance,
		ClientID:       req.ClientID,
	}

	account, err := h.service.Create(ctx, arg)
	if err != nil {
		l.Info().Err(err).Send()
		errorResponse(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{account}})
}

type getRequest struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

type dataWithBalance struct {
	Account domain.AccountWithBalance `json:"account"`
}

type responseWithBalance struct {
	Data dataWithBalance `json:"data,omitempty"`
}

// Get handles http request to get an account with its current balance.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindingError(gctx, l, err)
		return
	}

	account, err := h.service.Get(ctx, req.ID)
	if err != nil {
		errorResponse(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseWithBalance{Data: dataWithBalance{account}})
}

type listRequest struct {
	ClientID int32 `form:"client_id" binding:"required,min=1"`
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=1,max=100"`
}

type dataAccounts struct {
	Accounts []domain.AccountWithBalance `json:"accounts"`
}

type responseAccounts struct {
	Data dataAccounts `json:"data,omitempty"`
}

// List handles http request to list a client's accounts.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		bindingError(gctx, l, err)
		return
	}

	accounts, err := h.service.ListForClient(ctx, req.ClientID, req.PageSize, req.PageID)
	if err != nil {
		errorResponse(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseAccounts{Data: dataAccounts{accounts}})
}

type updateRequest struct {
	Type   string `json:"type" binding:"required,accounttype"`
	Active *bool  `json:"active" binding:"required"`
}

// Update handles http request to update an account's type and active flag.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri getRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindingError(gctx, l, err)
		return
	}

	var req updateRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindingError(gctx, l, err)
		return
	}

	arg := domain.UpdateAccountParams{
		ID:     uri.ID,
		Type:   domain.AccountType(req.Type),
		Active: *req.Active,
	}

	account, err := h.service.Update(ctx, arg)
	if err != nil {
		l.Info().Err(err).Send()
		errorResponse(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{account}})
}

// Delete handles http request to remove an account without movements.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindingError(gctx, l, err)
		return
	}

	if err := h.service.Delete(ctx, req.ID); err != nil {
		l.Info().Err(err).Send()
		errorResponse(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, web.Response{})
}

func bindingError(gctx *gin.Context, l *zerolog.Logger, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		err = errors.New(field.Field() + web.GetErrorMsg(field))
	}

	l.Info().Err(err).Send()
	gctx.JSON(http.StatusBadRequest, web.ValidationError(err))
}

func errorResponse(gctx *gin.Context, err error) {
	code := domain.ErrorCode(err)

	switch code {
	case domain.CodeNotFound:
		gctx.JSON(http.StatusNotFound, web.Error(code, err))
	case domain.CodeDuplicate:
		gctx.JSON(http.StatusConflict, web.Error(code, err))
	case domain.CodeInvalidOperation, domain.CodeInsufficientFunds, domain.CodeDailyLimit:
		gctx.JSON(http.StatusBadRequest, web.Error(code, err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error("", errorspkg.ErrInternal))
	}
}
