package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/linea/internal/config"
	"github.com/GriffinCanCode/linea/internal/logging"
	"github.com/GriffinCanCode/linea/internal/server"
)

func newTestServer(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	cfg.Logging.Development = true
	cfg.RateLimit.Enabled = false
	srv, err := server.NewServer(cfg,
		server.WithLogger(logging.NewNop()),
		server.WithPrometheusRegistry(prometheus.NewRegistry()),
	)
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts.URL
}

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"v=[1,2,3]", "degrees=true", "tolerance=0.01", "name=plain"})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{float64(1), float64(2), float64(3)}, params["v"])
	assert.Equal(t, true, params["degrees"])
	assert.Equal(t, 0.01, params["tolerance"])
	assert.Equal(t, "plain", params["name"])

	_, err = parseParams([]string{"novalue"})
	assert.Error(t, err)
	_, err = parseParams([]string{"=1"})
	assert.Error(t, err)
}

func TestToolID(t *testing.T) {
	assert.Equal(t, "vector.dot", toolID("dot"))
	assert.Equal(t, "vector.dot", toolID("vector.dot"))
}

func TestRun(t *testing.T) {
	url := newTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		args     []string
		code     int
		contains string
	}{
		{"dot", []string{"-server", url, "dot", "v=[1,2,3]", "w=[4,5,6]"}, exitOK, `"result": 32`},
		{"cross", []string{"-server", url, "vector.cross", "v=[1,0,0]", "w=[0,1,0]"}, exitOK, `"display": "[0; 0; 1]"`},
		{"tool failure", []string{"-server", url, "unit", "v=[0,0]"}, exitFailure, `"zero_vector"`},
		{"services", []string{"-server", url, "services"}, exitOK, `"vector.area_triangle"`},
		{"health", []string{"-server", url, "health"}, exitOK, `"healthy"`},
		{"no command", []string{"-server", url}, exitUsage, ""},
		{"bad pair", []string{"-server", url, "dot", "v"}, exitUsage, ""},
		{"bad flag", []string{"-nope"}, exitUsage, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(ctx, tt.args, &stdout, &stderr)
			assert.Equal(t, tt.code, code, stderr.String())
			if tt.contains != "" {
				assert.Contains(t, stdout.String(), tt.contains)
			}
		})
	}
}

func TestRunUnreachableServer(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-server", "http://127.0.0.1:1", "-timeout", "200ms", "health"}, &stdout, &stderr)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr.String(), "error:")
}
