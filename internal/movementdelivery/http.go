// Package movementdelivery manages delivery layer of movements.
package movementdelivery

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

// Service provides service layer interface needed by movement delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package movementdelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateMovementParams) (domain.Movement, error)
	Get(ctx context.Context, id int64) (domain.Movement, error)
	ListForAccount(ctx context.Context, accountID, pageSize, pageID int32) ([]domain.Movement, error)
	Delete(ctx context.Context, id int64) error
}

// Handler facilitates movement delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns movement handler.
func NewHandler(ms Service) Handler {
	return Handler{service: ms}
}

type data struct {
	Movement domain.Movement `json:"movement"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

type createRequest struct {
	AccountID int32  `json:"account_id" binding:"required,min=1"`
	Kind      string `json:"kind" binding:"required,movementkind"`
	Amount    string `json:"amount" binding:"required"`
}

// Create handles http request to post a movement.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindingError(gctx, l, err)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationError(errors.New("amount must be a decimal number")))

		return
	}

	arg := domain.CreateMovementParams{
		AccountID: req.AccountID,
		Kind:      domain.MovementKind(req.Kind),
		Amount:    amount,
	}

	movement, err := h.service.Create(ctx, arg)
	if err != nil {
		l.Info().Err(err).Send()
		errorResponse(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{movement}})
}

type getRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get a movement.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindingError(gctx, l, err)
		return
	}

	movement, err := h.service.Get(ctx, req.ID)
	if err != nil {
		errorResponse(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{movement}})
}

type listRequest struct {
	AccountID int32 `form:"account_id" binding:"required,min=1"`
	PageID    int32 `form:"page_id" binding:"required,min=1"`
	PageSize  int32 `form:"page_size" binding:"required,min=1,max=100"`
}

type dataMovements struct {
	Movements []domain.Movement `json:"movements"`
}

type responseMovements struct {
	Data dataMovements `json:"data,omitempty"`
}

// List handles http request to list an account's movements.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		bindingError(gctx, l, err)
		return
	}

	movements, err := h.service.ListForAccount(ctx, req.AccountID, req.PageSize, req.PageID)
	if err != nil {
		errorResponse(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseMovements{Data: dataMovements{movements}})
}

type deleteRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Delete handles http request to remove an account's last movement.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req deleteRequest
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
