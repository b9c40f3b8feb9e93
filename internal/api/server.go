package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/lymphiz/internal/drainage"
	"github.com/abhisek/lymphiz/internal/metrics"
	"github.com/abhisek/lymphiz/internal/session"
)

// Options configures the HTTP server.
type Options struct {
	Addr        string
	CORSOrigins []string

	// RateLimit is requests per second per client; zero disables limiting.
	RateLimit float64
	RateBurst int

	// SweepInterval is how often idle sessions are expired.
	SweepInterval time.Duration
}

// Server exposes the quiz engine over JSON HTTP.
type Server struct {
	opts     Options
	dataset  *drainage.Dataset
	sessions *session.Manager
	metrics  *metrics.Collector
	log      *zap.Logger
	router   *gin.Engine
}

// New builds the server and its routes.
func New(opts Options, ds *drainage.Dataset, sessions *session.Manager, m *metrics.Collector, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		opts:     opts,
		dataset:  ds,
		sessions: sessions,
		metrics:  m,
		log:      log,
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log))
	if s.metrics != nil {
		r.Use(s.metrics.Middleware())
	}
	if len(s.opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  s.opts.CORSOrigins,
			AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Content-Type", "Accept", "Origin"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		}))
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": s.sessions.Len()})
	})
	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	api := r.Group("/api")
	if s.opts.RateLimit > 0 {
		api.Use(rateLimiter(s.opts.RateLimit, s.opts.RateBurst))
	}

	organs := api.Group("/organs")
	{
		organs.GET("", s.listOrgans)
		organs.GET("/:key", s.getOrgan)
	}

	sessions := api.Group("/sessions")
	{
		sessions.POST("", s.createSession)
		sessions.GET("/:id", s.getSession)
		sessions.DELETE("/:id", s.deleteSession)
		sessions.POST("/:id/questions", s.newQuestion)
		sessions.POST("/:id/answer", s.answer)
		sessions.POST("/:id/sequence", s.newSequence)
		sessions.POST("/:id/sequence/answer", s.answerSequence)
		sessions.POST("/:id/reset", s.reset)
	}

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	if s.opts.SweepInterval > 0 {
		go s.sweep(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", s.opts.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func (s *Server) sweep(ctx context.Context) {
	ticker := time.NewTicker(s.opts.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sessions.Sweep()
		}
	}
}
