// Package server is the web front end: a two-tab page for single and batch
// predictions backed by a small JSON/CSV API.
package server

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/crimson-sun/stanza/internal/engine"
)

// Server wraps the gin router and the shared classification engine. The
// engine is loaded once at construction and shared read-only across all
// requests; it is never mutated after load, so no locking is involved.
type Server struct {
	addr   string
	router *gin.Engine
}

// New builds a Server serving the UI and API on addr.
func New(addr string, eng *engine.Engine) *Server {
	h := &handler{eng: eng}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), cors.Default())

	r.GET("/", h.index)
	r.GET("/health", h.health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/predict", h.predictOne)
		v1.POST("/predict/batch", h.predictBatch)
	}

	return &Server{addr: addr, router: r}
}

// Router exposes the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts serving and blocks until the listener fails.
func (s *Server) Run() error {
	slog.Info("starting review classifier server", "addr", s.addr)
	return s.router.Run(s.addr)
}

// requestLogger logs one line per request through the default slog logger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
