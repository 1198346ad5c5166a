// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-banco/banco-api/internal/accountdelivery"
	"github.com/go-banco/banco-api/internal/accountrepo"
	"github.com/go-banco/banco-api/internal/accountservice"
	"github.com/go-banco/banco-api/internal/clientdelivery"
	"github.com/go-banco/banco-api/internal/clientrepo"
	"github.com/go-banco/banco-api/internal/clientservice"
	"github.com/go-banco/banco-api/internal/middleware"
	"github.com/go-banco/banco-api/internal/movementdelivery"
	"github.com/go-banco/banco-api/internal/movementrepo"
	"github.com/go-banco/banco-api/internal/movementservice"
	"github.com/go-banco/banco-api/internal/statementdelivery"
	"github.com/go-banco/banco-api/internal/statementservice"
	"github.com/go-banco/banco-api/pkg/configpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	clientRepo := clientrepo.NewRepoPGS(conn)
	accountRepo := accountrepo.NewRepoPGS(conn)
	movementRepo := movementrepo.NewRepoPGS(conn)

	clientService := clientservice.New(clientRepo)
	movementService := movementservice.New(movementRepo, accountRepo)
	accountService := accountservice.New(accountRepo, movementService)
	statementService := statementservice.New(movementRepo, clientRepo)

	clientHandler := clientdelivery.NewHandler(clientService)
	accountHandler := accountdelivery.NewHandler(accountService)
	movementHandler := movementdelivery.NewHandler(movementService)
	statementHandler := statementdelivery.NewHandler(statementService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/clients", clientHandler.Create)
	engine.GET("/clients/:id", clientHandler.Get)
	engine.GET("/clients", clientHandler.List)
	engine.PUT("/clients/:id", clientHandler.Update)
	engine.DELETE("/clients/:id", clientHandler.Delete)

	engine.POST("/accounts", accountHandler.Create)
	engine.GET("/accounts/:id", accountHandler.Get)
	engine.GET("/accounts", accountHandler.List)
	engine.PUT("/accounts/:id", accountHandler.Update)
	engine.DELETE("/accounts/:id", accountHandler.Delete)

	engine.POST("/movements", movementHandler.Create)
	engine.GET("/movements/:id", movementHandler.Get)
	engine.GET("/movements", movementHandler.List)
	engine.DELETE("/movements/:id", movementHandler.Delete)

	engine.GET("/clients/:id/report", statementHandler.Get)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("accounttype", accountdelivery.ValidAccountType); err != nil {
			return nil, errors.New("cannot register account type validator")
		}

		if err := v.RegisterValidation("movementkind", movementdelivery.ValidMovementKind); err != nil {
			return nil, errors.New("cannot register movement kind validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
