// Package clientdelivery manages delivery layer of clients.
package clientdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-banco/banco-api/internal/domain"
	"github.com/go-banco/banco-api/pkg/errorspkg"
	"github.com/go-banco/banco-api/pkg/web"
)

// Service provides service layer interface needed by client delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package clientdelivery
type Service interface {
	Create(ctx context.Context, person domain.Person, password string) (domain.Client, error)
	Get(ctx context.Context, id int32) (domain.Client, error)
	List(ctx context.Context, pageSize, pageID int32) ([]domain.Client, error)
	Update(ctx context.Context, arg domain.UpdateClientParams) (domain.Client, error)
	Delete(ctx context.Context, id int32) error
}

// Handler facilitates client delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns client handler.
func NewHandler(cs Service) Handler {
	return Handler{service: cs}
}

type data struct {
	Client domain.Client `json:"client"`
}

type response struct {
	Data data `json:"data,omitempty"`
}

type createRequest struct {
	Name           string `json:"name" binding:"required,min=3,max=100"`
	Gender         string `json:"gender" binding:"required,min=3,max=10"`
	Age            int32  `json:"age" binding:"required,min=18,max=120"`
	Identification string `json:"identification" binding:"required,numeric,max=20"`
	Address        string `json:"address" binding:"required,max=200"`
	Phone          string `json:"phone" binding:"required,numeric,min=7,max=15"`
	Password       string `json:"password" binding:"required,min=6"`
}

// Create handles http request to register a client.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		bindingError(gctx, l, err)
		return
	}

	person := domain.Person{
		Name:           req.Name,
		Gender:         req.Gender,
		Age:            req.Age,
		Identification: req.Identification,
		Address:        req.Address,
		Phone:          req.Phone,
	}

	client, err := h.service.Create(ctx, person, req.Password)
	if err != nil {
		l.Info().Err(err).Send()
		errorResponse(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{client}})
}

type getRequest struct {
	ID int32 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get a client.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		bindingError(gctx, l, err)
		return
	}

	client, err := h.service.Get(ctx, req.ID)
	if err != nil {
		errorResponse(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{client}})
}

type listRequest struct {
	PageID   int32 `form:"page_id" binding:"required,min=1"`
	PageSize int32 `form:"page_size" binding:"required,min=1,max=100"`
}

type dataClients struct {
	Clients []domain.Client `json:"clients"`
}

type responseClients struct {
	Data dataClients `json:"data,omitempty"`
}

// List handles http request to list clients.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		bindingError(gctx, l, err)
		return
	}

	clients, err := h.service.List(ctx, req.PageSize, req.PageID)
	if err != nil {
		errorResponse(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseClients{Data: dataClients{clients}})
}

type updateRequest struct {
	Name           string `json:"name" binding:"required,min=3,max=100"`
	Gender         string `json:"gender" binding:"required,min=3,max=10"`
	Age            int32  `json:"age" binding:"required,min=18,max=120"`
	Identification string `json:"identification" binding:"required,numeric,max=20"`
	Address        string `json:"address" binding:"required,max=200"`
	Phone          string `json:"phone" binding:"required,numeric,min=7,max=15"`
	Active         *bool  `json:"active" binding:"required"`
}

// Update handles http request to update a client.
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

	arg := domain.UpdateClientParams{
		ID: uri.ID,
		Person: domain.Person{
			Name:           req.Name,
			Gender:         req.Gender,
			Age:            req.Age,
			Identification: req.Identification,
			Address:        req.Address,
			Phone:          req.Phone,
		},
		Active: *req.Active,
	}

	client, err := h.service.Update(ctx, arg)
	if err != nil {
		l.Info().Err(err).Send()
		errorResponse(gctx, err)

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{client}})
}

// Delete handles http request to remove a client without accounts.
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
