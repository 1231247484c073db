package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/GriffinCanCode/linea/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/linea/internal/logging"
	"github.com/GriffinCanCode/linea/internal/providers"
	"github.com/GriffinCanCode/linea/internal/providers/math"
	"github.com/GriffinCanCode/linea/internal/testutil"
	"github.com/GriffinCanCode/linea/internal/types"
)

type mockProvider struct {
	id string
}

func (m *mockProvider) Definition() types.Service {
	return types.Service{
		ID:           m.id,
		Name:         "Mock Service",
		Description:  "A mock service for testing",
		Category:     types.CategoryMath,
		Capabilities: []string{"read", "write"},
		Tools: []types.Tool{
			{
				ID:          m.id + ".test",
				Name:        "Test Tool",
				Description: "A test tool",
				Returns:     "string",
			},
		},
	}
}

func (m *mockProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return &types.Result{
		Success: true,
		Data:    map[string]interface{}{"result": "success"},
	}, nil
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	p := &mockProvider{id: "test"}

	require.NoError(t, r.Register(p))

	_, ok := r.Get("test")
	assert.True(t, ok, "Service should be registered")

	assert.ErrorIs(t, r.Register(&mockProvider{}), ErrEmptyServiceID)
}

func TestUnregister(t *testing.T) {
	metrics := monitoring.NewMetrics(prometheus.NewRegistry())
	r := NewRegistry(WithMetrics(metrics))

	require.NoError(t, r.Register(&mockProvider{id: "test1"}))
	require.NoError(t, r.Register(&mockProvider{id: "test2"}))
	// Re-registering replaces without growing the count
	require.NoError(t, r.Register(&mockProvider{id: "test2"}))
	assert.Equal(t, 2.0, promtest.ToFloat64(metrics.RegisteredServices))

	r.Unregister("test1")
	r.Unregister("missing")

	_, ok := r.Get("test1")
	assert.False(t, ok)
	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.RegisteredServices))
}

func TestList(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test2"})
	r.Register(&mockProvider{id: "test1"})

	services := r.List(nil)
	require.Len(t, services, 2)
	assert.Equal(t, "test1", services[0].ID)

	cat := types.CategoryMath
	assert.Len(t, r.List(&cat), 2)

	other := types.CategoryVector
	assert.Empty(t, r.List(&other))
}

func TestDiscover(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "storage"})
	r.Register(providers.NewVector(math.DefaultConfig()))

	results := r.Discover("storage read write", 5)
	require.NotEmpty(t, results)
	assert.Equal(t, "storage", results[0].ID)

	results = r.Discover("angle between two vectors", 5)
	require.NotEmpty(t, results)
	assert.Equal(t, "vector", results[0].ID)

	assert.Empty(t, r.Discover("zzz", 5))
	assert.Len(t, r.Discover("mock vector", 1), 1)
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test"})

	ctx := context.Background()
	result, err := r.Execute(ctx, "test.test", map[string]interface{}{}, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestExecuteErrors(t *testing.T) {
	r := NewRegistry()
	ctx := context.Background()

	result, err := r.Execute(ctx, "noprefix", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidToolID)
	testutil.AssertError(t, result)

	result, err = r.Execute(ctx, "missing.tool", nil, nil)
	assert.ErrorIs(t, err, ErrServiceNotFound)
	testutil.AssertError(t, result)

	r.Register(&mockProvider{id: "test"})
	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = r.Execute(cancelled, "test.test", nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExecuteRecordsMetricsAndLogs(t *testing.T) {
	metrics := monitoring.NewMetrics(prometheus.NewRegistry())
	core, logs := observer.New(zapcore.DebugLevel)
	r := NewRegistry(WithMetrics(metrics), WithLogger(&logging.Logger{Logger: zap.New(core)}))
	require.NoError(t, r.Register(providers.NewVector(math.DefaultConfig())))

	ctx := context.Background()
	requestID := "req_test"
	appCtx := &types.Context{RequestID: &requestID}

	result, err := r.Execute(ctx, "vector.dot", map[string]interface{}{
		"v": []interface{}{1.0, 2.0},
		"w": []interface{}{3.0, 4.0},
	}, appCtx)
	require.NoError(t, err)
	testutil.AssertDataField(t, result, "result", 11.0)

	result, err = r.Execute(ctx, "vector.unit", map[string]interface{}{
		"v": []interface{}{0.0, 0.0},
	}, appCtx)
	require.NoError(t, err)
	testutil.AssertErrorKind(t, result, "zero_vector")

	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.ServiceCalls.WithLabelValues("vector", "vector.dot", "success")))
	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.ServiceCalls.WithLabelValues("vector", "vector.unit", "failure")))
	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.ServiceErrors.WithLabelValues("vector", "vector.unit", "zero_vector")))

	executed := logs.FilterMessage("tool executed").All()
	require.Len(t, executed, 1)
	assert.Equal(t, "req_test", executed[0].ContextMap()["request_id"])
	assert.Equal(t, 1, logs.FilterMessage("tool returned failure").Len())
}

func TestExecuteProviderError(t *testing.T) {
	metrics := monitoring.NewMetrics(prometheus.NewRegistry())
	r := NewRegistry(WithMetrics(metrics))

	provider := testutil.NewMockServiceProvider(t, "broken")
	provider.On("Execute", mock.Anything, "broken.test", mock.Anything, mock.Anything).
		Return(nil, errors.New("boom"))
	require.NoError(t, r.Register(provider))

	result, err := r.Execute(context.Background(), "broken.test", nil, nil)
	assert.Nil(t, result)
	assert.EqualError(t, err, "boom")
	assert.Equal(t, 1.0, promtest.ToFloat64(metrics.ServiceErrors.WithLabelValues("broken", "broken.test", "internal")))
	provider.AssertExpectations(t)
}

func TestStats(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test1"})
	r.Register(&mockProvider{id: "test2"})

	stats := r.Stats()
	assert.Equal(t, 2, stats["total_services"].(int))
	assert.Equal(t, 2, stats["total_tools"].(int))
	assert.Equal(t, 2, stats["categories"].(map[string]int)["math"])
}
