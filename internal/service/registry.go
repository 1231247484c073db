package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/linea/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/linea/internal/logging"
	"github.com/GriffinCanCode/linea/internal/types"
)

var (
	// ErrInvalidToolID is returned for tool IDs without a service prefix.
	ErrInvalidToolID = errors.New("invalid tool ID format")
	// ErrServiceNotFound is returned when no provider owns the tool prefix.
	ErrServiceNotFound = errors.New("service not found")
	// ErrEmptyServiceID is returned when registering a provider without an ID.
	ErrEmptyServiceID = errors.New("service ID cannot be empty")
)

// Registry manages service discovery and execution
type Registry struct {
	services sync.Map
	count    int
	mu       sync.Mutex

	metrics *monitoring.Metrics
	logger  *logging.Logger
}

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// Option configures a Registry
type Option func(*Registry)

// WithMetrics records tool calls on m
func WithMetrics(m *monitoring.Metrics) Option {
	return func(r *Registry) { r.metrics = m }
}

// WithLogger logs tool calls on l
func WithLogger(l *logging.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// NewRegistry creates a new service registry
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a service provider, replacing any provider with the same ID
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return ErrEmptyServiceID
	}

	r.mu.Lock()
	if _, loaded := r.services.Swap(def.ID, provider); !loaded {
		r.count++
	}
	count := r.count
	r.mu.Unlock()

	if r.metrics != nil {
		r.metrics.SetRegisteredServices(count)
	}
	r.logger.Info("service registered",
		zap.String("service", def.ID),
		zap.Int("tools", len(def.Tools)))
	return nil
}

// Unregister removes a service provider
func (r *Registry) Unregister(serviceID string) {
	r.mu.Lock()
	if _, loaded := r.services.LoadAndDelete(serviceID); loaded {
		r.count--
	}
	count := r.count
	r.mu.Unlock()

	if r.metrics != nil {
		r.metrics.SetRegisteredServices(count)
	}
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	val, ok := r.services.Load(serviceID)
	if !ok {
		return nil, false
	}
	return val.(Provider), true
}

// List returns all registered services ordered by ID
func (r *Registry) List(category *types.Category) []types.Service {
	services := []types.Service{}
	r.services.Range(func(_, value interface{}) bool {
		provider := value.(Provider)
		def := provider.Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
		return true
	})
	sort.Slice(services, func(i, j int) bool {
		return services[i].ID < services[j].ID
	})
	return services
}

// Discover finds relevant services for a given intent
func (r *Registry) Discover(intent string, limit int) []types.Service {
	type scoredService struct {
		service types.Service
		score   float64
	}

	intentLower := strings.ToLower(intent)
	var results []scoredService

	r.services.Range(func(_, value interface{}) bool {
		provider := value.(Provider)
		def := provider.Definition()
		score := r.calculateRelevance(intentLower, def)
		if score > 0 {
			results = append(results, scoredService{
				service: def,
				score:   score,
			})
		}
		return true
	})

	// Sort by score descending, then ID for stable output
	sort.Slice(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].service.ID < results[j].service.ID
	})

	if limit <= 0 {
		limit = len(results)
	}

	// Return top N
	output := make([]types.Service, 0, limit)
	for i := 0; i < len(results) && i < limit; i++ {
		output = append(output, results[i].service)
	}

	return output
}

// Execute runs a service tool
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	parts := strings.SplitN(toolID, ".", 2)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return &types.Result{
			Success: false,
			Error:   stringPtr("invalid tool ID format"),
		}, fmt.Errorf("%w: %s", ErrInvalidToolID, toolID)
	}

	serviceID := parts[0]
	provider, ok := r.Get(serviceID)
	if !ok {
		return &types.Result{
			Success: false,
			Error:   stringPtr(fmt.Sprintf("service not found: %s", serviceID)),
		}, fmt.Errorf("%w: %s", ErrServiceNotFound, serviceID)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timer := monitoring.NewTimer(r.metrics, serviceID, toolID)
	result, err := provider.Execute(ctx, toolID, params, appCtx)

	status := "success"
	switch {
	case err != nil:
		status = "error"
	case result == nil || !result.Success:
		status = "failure"
	}
	duration := timer.Stop(status)

	fields := []zap.Field{
		zap.String("tool", toolID),
		zap.String("status", status),
		zap.Duration("duration", duration),
	}
	if appCtx != nil && appCtx.RequestID != nil {
		fields = append(fields, zap.String("request_id", *appCtx.RequestID))
	}

	switch status {
	case "error":
		r.recordError(serviceID, toolID, "internal")
		r.logger.Error("tool execution failed", append(fields, zap.Error(err))...)
	case "failure":
		kind := errorKind(result)
		r.recordError(serviceID, toolID, kind)
		r.logger.Debug("tool returned failure", append(fields, zap.String("error_kind", kind))...)
	default:
		r.logger.Debug("tool executed", fields...)
	}

	return result, err
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	var total, totalTools int
	categories := make(map[string]int)

	r.services.Range(func(_, value interface{}) bool {
		provider := value.(Provider)
		def := provider.Definition()
		total++
		totalTools += len(def.Tools)
		categories[string(def.Category)]++
		return true
	})

	return map[string]interface{}{
		"total_services": total,
		"total_tools":    totalTools,
		"categories":     categories,
	}
}

func (r *Registry) recordError(serviceID, toolID, kind string) {
	if r.metrics != nil {
		r.metrics.RecordServiceError(serviceID, toolID, kind)
	}
}

func (r *Registry) calculateRelevance(intent string, service types.Service) float64 {
	score := 0.0

	// Check service name and ID
	if strings.Contains(intent, service.ID) || strings.Contains(intent, strings.ToLower(service.Name)) {
		score += 10.0
	}

	// Check description words
	descWords := strings.Fields(strings.ToLower(service.Description))
	for _, word := range descWords {
		word = strings.Trim(word, "(),.")
		if len(word) > 2 && strings.Contains(intent, word) {
			score += 5.0
		}
	}

	// Check capabilities
	for _, cap := range service.Capabilities {
		capClean := strings.ReplaceAll(strings.ToLower(cap), "_", " ")
		if strings.Contains(intent, capClean) {
			score += 3.0
		}
	}

	// Check tool names
	for _, tool := range service.Tools {
		if strings.Contains(intent, strings.ToLower(tool.Name)) {
			score += 1.0
		}
	}

	// Check category
	if strings.Contains(intent, string(service.Category)) {
		score += 2.0
	}

	return score
}

func errorKind(result *types.Result) string {
	if result == nil || result.Data == nil {
		return "unknown"
	}
	if kind, ok := result.Data["error_kind"].(string); ok {
		return kind
	}
	return "unknown"
}

func stringPtr(s string) *string {
	return &s
}
