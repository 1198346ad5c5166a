// Package statementdelivery manages delivery layer of client statements.
package statementdelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-banco/banco-api/internal/domain"
	"github.com/go-banco/banco-api/pkg/errorspkg"
	"github.com/go-banco/banco-api/pkg/web"
)

// Service provides service layer interface needed by statement delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package statementdelivery
type Service interface {
	Statement(ctx context.Context, clientID int32, from, to time.Time) (domain.Statement, error)
}

// Handler facilitates statement delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns statement handler.
func NewHandler(ss Service) Handler {
	return Handler{service: ss}
}

type uriRequest struct {
	ClientID int32 `uri:"id" binding:"required,min=1"`
}

type rangeRequest struct {
	From time.Time `form:"from" binding:"required" time_format:"2006-01-02"`
	To   time.Time `form:"to" binding:"required" time_format:"2006-01-02"`
}

type data struct {
	Statement domain.Statement `json:"statement"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

// Get handles http request to build a client statement for a date range.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		bindingError(gctx, l, err)
		return
	}

	var req rangeRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		bindingError(gctx, l, err)
		return
	}

	if req.To.Before(req.From) {
		err := errors.New("to must not be before from")
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.ValidationError(err))

		return
	}

	// The to date is inclusive: extend it to the end of its day.
	to := req.To.AddDate(0, 0, 1).Add(-time.Nanosecond)

	statement, err := h.service.Statement(ctx, uri.ClientID, req.From, to)
	if err != nil {
		l.Info().Err(err).Send()
		errorResponse(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{statement}})
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
	case domain.CodeInvalidOperation:
		gctx.JSON(http.StatusBadRequest, web.Error(code, err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error("", errorspkg.ErrInternal))
	}
}
