/*
Package monitoring provides metrics collection for the linea server.

# Overview

This package implements Prometheus-based metrics collection, tracking HTTP
requests and vector tool calls.

# Features

- HTTP request metrics (latency, throughput, size)
- Service call metrics (duration, errors by error kind)
- Registry size and uptime

# Usage

	// Create metrics collector on a private registry
	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg)

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Time operations
	timer := monitoring.NewTimer(metrics, "vector", "vector.dot")
	// ... perform operation ...
	timer.Stop("success")

# Metrics Endpoint

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
*/
package monitoring
