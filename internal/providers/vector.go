package providers

import (
	"github.com/GriffinCanCode/linea/internal/providers/math"
)

// NewVector creates the vector algebra provider
func NewVector(cfg math.Config) *math.Provider {
	return math.NewProvider(cfg)
}
