package api

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"

	"github.com/blueelliott/singular-controls/pkg/api/handlers"
	"github.com/blueelliott/singular-controls/pkg/config"
	"github.com/blueelliott/singular-controls/pkg/relay"
	"github.com/blueelliott/singular-controls/pkg/singular"
)

// Router holds the Gin engine and dependencies
type Router struct {
	engine     *gin.Engine
	cfg        *config.Manager
	registry   *singular.Registry
	dispatcher *singular.Dispatcher
	fetcher    singular.ModelFetcher
	events     *singular.EventLog
	relay      *relay.Service
}

// NewRouter creates a new API router
func NewRouter(cfg *config.Manager, registry *singular.Registry, dispatcher *singular.Dispatcher, fetcher singular.ModelFetcher, events *singular.EventLog, relaySvc *relay.Service) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine:     engine,
		cfg:        cfg,
		registry:   registry,
		dispatcher: dispatcher,
		fetcher:    fetcher,
		events:     events,
		relay:      relaySvc,
	}

	router.setupRoutes()

	return router
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Swagger UI
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/swagger/index.html")
	})

	healthHandler := handlers.NewHealthHandler(r.cfg)
	r.engine.GET("/health", healthHandler.Health)

	// Registry discovery and maintenance
	registryHandler := handlers.NewRegistryHandler(r.registry, r.fetcher)
	registry := r.engine.Group("/registry")
	{
		registry.POST("/refresh", registryHandler.Refresh)
		registry.GET("/refresh", registryHandler.Refresh)
		registry.GET("/list", registryHandler.List)
		registry.GET("/commands", registryHandler.Commands)
	}
	r.engine.GET("/singular/ping", registryHandler.Ping)

	// Runtime configuration
	configHandler := handlers.NewConfigHandler(r.cfg, r.registry)
	r.engine.GET("/config", configHandler.Get)
	cfg := r.engine.Group("/config")
	{
		cfg.POST("/singular", configHandler.SetToken)
		cfg.POST("/stream", configHandler.SetStream)
		cfg.POST("/tfl", configHandler.SetTfL)
		cfg.POST("/modules/tfl", configHandler.ToggleTfL)
		cfg.POST("/modules/tfl/auto-refresh", configHandler.ToggleTfLAutoRefresh)
	}
	r.engine.POST("/settings", configHandler.SaveSettings)

	// Command event log
	eventsHandler := handlers.NewEventsHandler(r.events)
	r.engine.GET("/events", eventsHandler.Recent)

	// TfL line status relay
	relayHandler := handlers.NewRelayHandler(r.relay)
	r.engine.GET("/status", relayHandler.Status)
	r.engine.POST("/update", relayHandler.Update)
	r.engine.GET("/update", relayHandler.Update)
	r.engine.POST("/test", relayHandler.Test)
	r.engine.GET("/test", relayHandler.Test)
	r.engine.POST("/blank", relayHandler.Blank)
	r.engine.GET("/blank", relayHandler.Blank)
	r.engine.POST("/manual", relayHandler.Manual)
	r.engine.GET("/tfl/lines", relayHandler.Lines)

	// Asset control. Static routes above win over :key, so a composition
	// slugged "config" or "status" must be addressed by id instead.
	controlHandler := handlers.NewControlHandler(r.dispatcher)
	asset := r.engine.Group("/:key")
	{
		asset.GET("/in", controlHandler.In)
		asset.POST("/in", controlHandler.In)
		asset.GET("/out", controlHandler.Out)
		asset.POST("/out", controlHandler.Out)
		asset.GET("/set", controlHandler.Set)
		asset.POST("/set", controlHandler.Set)
		asset.GET("/timecontrol", controlHandler.TimeControl)
		asset.POST("/timecontrol", controlHandler.TimeControl)
		asset.GET("/help", registryHandler.Help)
	}
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}

// Engine exposes the underlying Gin engine for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
