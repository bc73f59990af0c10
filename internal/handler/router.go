package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"entry-registry/internal/handler/api"
	"entry-registry/internal/handler/middleware"
	"entry-registry/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Title   *api.TitleHandler
	Entry   *api.EntryHandler
	Summary *api.SummaryHandler
}

func NewHandlers(title *api.TitleHandler, entry *api.EntryHandler, summary *api.SummaryHandler) Handlers {
	return Handlers{Title: title, Entry: entry, Summary: summary}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Paths are fixed by existing clients and are not grouped under a prefix.
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/slugToTitle", Handler: h.Title.SlugToTitle},
		{Method: http.MethodPost, Path: "/projectEntry", Handler: h.Entry.Register, Mw: []gin.HandlerFunc{middleware.RequireJSONBody()}},
		{Method: http.MethodGet, Path: "/summary", Handler: h.Summary.Summary},
	})

	entries := engine.Group("/entries")
	{
		addRoutes(entries, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Entry.List},
			{Method: http.MethodGet, Path: "/:name", Handler: h.Entry.Get},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
