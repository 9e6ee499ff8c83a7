// Package api assembles the HTTP surface: REST endpoints, the WebSocket
// recalculation bridge, Prometheus metrics, and the static front end.
package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/labsnomad/pv-storage-optimizer/internal/api/handlers"
	"github.com/labsnomad/pv-storage-optimizer/internal/api/middleware"
	"github.com/labsnomad/pv-storage-optimizer/internal/calc"
	"github.com/labsnomad/pv-storage-optimizer/internal/logger"
	"github.com/labsnomad/pv-storage-optimizer/internal/ws"
)

// Options configures router assembly.
type Options struct {
	// StaticDir is served at / when it exists.
	StaticDir string
}

// NewRouter builds the gin router around a calculator.
func NewRouter(calculator *calc.Calculator, opts Options) *gin.Engine {
	log := logger.New("api")

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	evaluateHandler := handlers.NewEvaluateHandler(calculator)
	modulesHandler := handlers.NewModulesHandler(calculator.Catalog())

	v1 := router.Group("/api/v1")
	{
		v1.POST("/evaluate", evaluateHandler.Evaluate)
		v1.GET("/evaluations/:id", evaluateHandler.GetEvaluation)
		v1.GET("/modules", modulesHandler.List)
	}

	hub := ws.NewHub()
	wsHandler := ws.NewHandler(hub, calculator)
	router.GET("/ws", gin.WrapH(wsHandler))

	if opts.StaticDir != "" {
		if _, err := os.Stat(opts.StaticDir); err == nil {
			log.Info().Str("dir", opts.StaticDir).Msg("serving static front end")
			router.NoRoute(gin.WrapH(http.FileServer(http.Dir(opts.StaticDir))))
		}
	}

	return router
}
