package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"issuetracker/internal/application/ticket/usecases"
	"issuetracker/internal/infrastructure/config"
	"issuetracker/internal/infrastructure/repository"
	tickethandlers "issuetracker/internal/interfaces/http/handlers/ticket"
	"issuetracker/internal/interfaces/http/middleware"
	"issuetracker/internal/interfaces/http/routes"
	"issuetracker/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine        *gin.Engine
	cfg           *config.Config
	ticketHandler *tickethandlers.TicketHandler
	logger        logger.Interface
}

// NewRouter wires the repository, use cases, and handlers onto a Gin engine.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	ticketRepo := repository.NewTicketRepository(db)

	ticketHandler := tickethandlers.NewTicketHandler(
		usecases.NewCreateTicketUseCase(ticketRepo, log),
		usecases.NewUpdateTicketUseCase(ticketRepo, log),
		usecases.NewChangeStatusUseCase(ticketRepo, log),
		usecases.NewDeleteTicketUseCase(ticketRepo, log),
		usecases.NewGetTicketUseCase(ticketRepo, log),
		usecases.NewListTicketsUseCase(ticketRepo, log),
		usecases.NewGetTicketStatsUseCase(ticketRepo, log),
	)

	return &Router{
		engine:        gin.New(),
		cfg:           cfg,
		ticketHandler: ticketHandler,
		logger:        log,
	}
}

// SetupRoutes registers middleware and routes on the engine
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestLogger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler: r.ticketHandler,
	})
}

// GetEngine returns the underlying Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
