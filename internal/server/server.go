package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/linea/internal/api/middleware"
	"github.com/GriffinCanCode/linea/internal/config"
	handlers "github.com/GriffinCanCode/linea/internal/http"
	"github.com/GriffinCanCode/linea/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/linea/internal/logging"
	"github.com/GriffinCanCode/linea/internal/providers"
	"github.com/GriffinCanCode/linea/internal/providers/math"
	"github.com/GriffinCanCode/linea/internal/service"
	"github.com/GriffinCanCode/linea/internal/utils"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	http     *http.Server
	registry *service.Registry
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
}

// Option configures a Server
type Option func(*options)

type options struct {
	logger   *logging.Logger
	registry *prometheus.Registry
}

// WithLogger replaces the logger derived from the config
func WithLogger(l *logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithPrometheusRegistry registers metrics on reg instead of a fresh registry
func WithPrometheusRegistry(reg *prometheus.Registry) Option {
	return func(o *options) { o.registry = reg }
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, opts ...Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	// Initialize logger
	logger := o.logger
	if logger == nil {
		var err error
		logger, err = logging.New(logging.Config{
			Level:       cfg.Logging.Level,
			Development: cfg.Logging.Development,
			OutputPaths: []string{"stdout"},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
	}
	logger.Info("Initializing linea server",
		zap.String("addr", cfg.Addr()),
		zap.Float64("tolerance", cfg.Vector.Tolerance),
		zap.Int("max_dimension", cfg.Vector.MaxDimension),
	)

	// Initialize metrics first (needed by other components)
	reg := o.registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	metrics := monitoring.NewMetrics(reg)

	serviceRegistry := service.NewRegistry(
		service.WithMetrics(metrics),
		service.WithLogger(logger.With(zap.String("component", "registry"))),
	)

	// Register service providers
	vectorProvider := providers.NewVector(math.Config{
		Tolerance:    cfg.Vector.Tolerance,
		MaxDimension: cfg.Vector.MaxDimension,
	})
	if err := serviceRegistry.Register(vectorProvider); err != nil {
		return nil, fmt.Errorf("failed to register vector provider: %w", err)
	}

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	router.Use(limitBody(utils.MaxRequestSize))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
			zap.Bool("global", cfg.RateLimit.Global),
		)
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		if cfg.RateLimit.Global {
			router.Use(middleware.GlobalRateLimit(rl))
		} else {
			router.Use(middleware.RateLimit(rl))
		}
	}

	h := handlers.NewHandlers(serviceRegistry, metrics, logger)

	// Register routes
	router.GET("/", h.Root)
	router.GET("/health", h.Health)

	// Service management
	router.GET("/services", h.ListServices)
	router.POST("/services/discover", h.DiscoverServices)
	router.POST("/services/execute", h.ExecuteService)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		registry: serviceRegistry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Registry returns the service registry
func (s *Server) Registry() *service.Registry {
	return s.registry
}

// Run starts the HTTP server and blocks until it stops. A clean Shutdown
// returns nil.
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server, waiting for in-flight requests
// until ctx expires
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	err := s.http.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Graceful shutdown failed", zap.Error(err))
	}

	// Sync logger before exit
	_ = s.logger.Sync()
	return err
}

func limitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}
