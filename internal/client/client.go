package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/GriffinCanCode/linea/internal/api/middleware"
	"github.com/GriffinCanCode/linea/internal/infrastructure/resilience"
	"github.com/GriffinCanCode/linea/internal/logging"
	"github.com/GriffinCanCode/linea/internal/shared/id"
	"github.com/GriffinCanCode/linea/internal/types"
)

// DefaultServerURL is used when no base URL is configured
const DefaultServerURL = "http://localhost:8000"

// Client talks to a linea server with rate limiting, retries and a
// circuit breaker
type Client struct {
	Resty   *resty.Client
	Limiter *rate.Limiter
	Breaker *resilience.Breaker
	Mu      sync.RWMutex
}

// Config defines client behavior
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	// RateLimit is requests per second; zero means unlimited
	RateLimit float64
	Logger    *logging.Logger
}

// DefaultConfig returns client defaults for a local server
func DefaultConfig() Config {
	return Config{
		BaseURL:      DefaultServerURL,
		Timeout:      30 * time.Second,
		RetryMax:     3,
		RetryWaitMin: 100 * time.Millisecond,
		RetryWaitMax: 5 * time.Second,
	}
}

// APIError is a non-2xx response from the server
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("linea: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// ErrUnavailable is returned while the circuit breaker rejects calls
var ErrUnavailable = errors.New("linea server unavailable: circuit breaker open")

// HealthStatus is the body of GET /health
type HealthStatus struct {
	Status          string                 `json:"status"`
	Version         string                 `json:"version"`
	ServiceRegistry map[string]interface{} `json:"service_registry"`
	Metrics         map[string]interface{} `json:"metrics,omitempty"`
}

type servicesResponse struct {
	Services []types.Service `json:"services"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// New creates a client for cfg.BaseURL
func New(cfg Config) *Client {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.RetryWaitMin <= 0 {
		cfg.RetryWaitMin = def.RetryWaitMin
	}
	if cfg.RetryWaitMax <= 0 {
		cfg.RetryWaitMax = def.RetryWaitMax
	}

	// Retries happen in the transport so every resty request gets them
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryMax
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil
	if cfg.Logger != nil {
		retryClient.Logger = leveledLogger{cfg.Logger.Sugar()}
	}

	restyClient := resty.NewWithClient(retryClient.StandardClient())
	restyClient.
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", "linea-client/1.0").
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)

	breaker := resilience.New("linea-server", resilience.Settings{
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     15 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// Only transport errors and 5xx responses mean the server is unhealthy
		IsSuccessful: func(err error) bool {
			var apiErr *APIError
			if errors.As(err, &apiErr) {
				return apiErr.StatusCode < http.StatusInternalServerError
			}
			return err == nil
		},
	})

	c := &Client{
		Resty:   restyClient,
		Limiter: rate.NewLimiter(rate.Inf, 0),
		Breaker: breaker,
	}
	c.SetRateLimit(cfg.RateLimit)
	return c
}

// SetRateLimit configures rate limiting (requests per second)
func (c *Client) SetRateLimit(rps float64) {
	c.Mu.Lock()
	defer c.Mu.Unlock()
	if rps <= 0 {
		c.Limiter = rate.NewLimiter(rate.Inf, 0)
	} else {
		c.Limiter = rate.NewLimiter(rate.Limit(rps), max(1, int(rps)))
	}
}

// Execute runs a tool on the server. Tool-level failures come back as a
// Result with Success false and a nil error.
func (c *Client) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	if params == nil {
		params = map[string]interface{}{}
	}
	var result types.Result
	err := c.do(ctx, http.MethodPost, "/services/execute", types.ExecuteRequest{
		ToolID: toolID,
		Params: params,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Services lists the services the server exposes
func (c *Client) Services(ctx context.Context) ([]types.Service, error) {
	var out servicesResponse
	if err := c.do(ctx, http.MethodGet, "/services", nil, &out); err != nil {
		return nil, err
	}
	return out.Services, nil
}

// Discover asks the server for services relevant to query
func (c *Client) Discover(ctx context.Context, query string, limit int) ([]types.Service, error) {
	var out servicesResponse
	err := c.do(ctx, http.MethodPost, "/services/discover", types.DiscoverRequest{
		Query: query,
		Limit: limit,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.Services, nil
}

// Health fetches the server health report
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BreakerState returns the current circuit breaker state
func (c *Client) BreakerState() resilience.State {
	return c.Breaker.State()
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	c.Mu.RLock()
	limiter := c.Limiter
	c.Mu.RUnlock()

	if err := c.Breaker.Allow(); err != nil {
		return ErrUnavailable
	}
	if err := limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit error: %w", err)
	}

	_, err := resilience.Execute(ctx, c.Breaker, func(ctx context.Context) (*resty.Response, error) {
		req := c.Resty.R().
			SetContext(ctx).
			SetHeader(middleware.RequestIDHeader, id.NewRequestID().String()).
			SetResult(out).
			SetError(&errorResponse{})
		if body != nil {
			req.SetBody(body)
		}

		resp, err := req.Execute(method, path)
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			msg := strings.TrimSpace(resp.String())
			if e, ok := resp.Error().(*errorResponse); ok && e.Error != "" {
				msg = e.Error
			}
			return resp, &APIError{StatusCode: resp.StatusCode(), Message: msg}
		}
		return resp, nil
	})
	if errors.Is(err, resilience.ErrCircuitOpen) || errors.Is(err, resilience.ErrTooManyRequests) {
		return ErrUnavailable
	}
	return err
}

// leveledLogger adapts the zap logger to retryablehttp.LeveledLogger
type leveledLogger struct {
	s *zap.SugaredLogger
}

func (l leveledLogger) Error(msg string, kv ...interface{}) { l.s.Errorw(msg, kv...) }
func (l leveledLogger) Warn(msg string, kv ...interface{})  { l.s.Warnw(msg, kv...) }
func (l leveledLogger) Info(msg string, kv ...interface{})  { l.s.Debugw(msg, kv...) }
func (l leveledLogger) Debug(msg string, kv ...interface{}) { l.s.Debugw(msg, kv...) }
