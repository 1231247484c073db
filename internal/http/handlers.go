package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/linea/internal/api/middleware"
	"github.com/GriffinCanCode/linea/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/linea/internal/logging"
	"github.com/GriffinCanCode/linea/internal/service"
	"github.com/GriffinCanCode/linea/internal/types"
	"github.com/GriffinCanCode/linea/internal/utils"
)

// Version is reported by the status endpoints
const Version = "0.1.0"

const defaultDiscoverLimit = 5

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandlers creates a new handler set. metrics may be nil.
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handlers{
		registry: registry,
		metrics:  metrics,
		logger:   logger,
	}
}

// Root handles the status check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "linea vector service",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	body := gin.H{
		"status":           "healthy",
		"version":          Version,
		"service_registry": h.registry.Stats(),
	}
	if h.metrics != nil {
		body["metrics"] = h.metrics.Snapshot()
	}
	c.JSON(http.StatusOK, body)
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		if !cat.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + categoryStr})
			return
		}
		category = &cat
	}

	services := h.registry.List(category)
	stats := h.registry.Stats()

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    stats,
	})
}

// DiscoverServices discovers relevant services for a query
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateQuery(req.Query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	services := h.registry.Discover(req.Query, utils.ClampLimit(req.Limit, defaultDiscoverLimit))

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Query,
		"services": services,
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateToolID(req.ToolID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateJSONDepth(req.Params, utils.MaxParamsDepth); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Params == nil {
		req.Params = map[string]interface{}{}
	}

	requestID := middleware.GetRequestID(c)
	clientIP := c.ClientIP()
	ctx := &types.Context{ClientIP: &clientIP}
	if requestID != "" {
		ctx.RequestID = &requestID
	}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, ctx)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, service.ErrServiceNotFound):
			status = http.StatusNotFound
		case errors.Is(err, service.ErrInvalidToolID):
			status = http.StatusBadRequest
		default:
			h.logger.Error("tool execution error",
				zap.String("tool_id", req.ToolID),
				zap.String("request_id", requestID),
				zap.Error(err))
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
