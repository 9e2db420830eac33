package ui

import (
	"github.com/gin-gonic/gin"

	"roasdash/app"
	"roasdash/internal"
	"roasdash/internal/config"
)

// Server is the JSON API consumed by the dashboard display layer
type Server struct {
	router  *gin.Engine
	service *app.DashboardService
	logger  *internal.Logger
}

// NewServer creates the API server and registers its routes
func NewServer(cfg *config.Config, service *app.DashboardService, logger *internal.Logger) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:  gin.Default(),
		service: service,
		logger:  logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.POST("/session", s.handleCreateSession)
		api.POST("/upload/:kind", s.handleUpload)

		api.GET("/performance", s.handlePerformance)
		api.GET("/detailed", s.handleDetailed)
		api.GET("/incremental", s.handleIncremental)
		api.GET("/insights", s.handleInsights)
		api.GET("/groupings/:key", s.handleGroupings)

		api.GET("/templates/:kind", s.handleTemplate)
		api.GET("/sample/:kind", s.handleSampleCSV)
	}
}

// Run starts the HTTP listener
func (s *Server) Run(port string) error {
	s.logger.Info("API server listening on :%s", port)
	return s.router.Run(":" + port)
}

// Router exposes the gin engine for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}
