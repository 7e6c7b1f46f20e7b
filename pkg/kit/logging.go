package kit

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewLogger builds the production logger for a service. Every line
// carries the service name and a per-process instance id so output from
// scaled-out replicas stays distinguishable.
func NewLogger(service string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.InitialFields = map[string]any{
		"service":  service,
		"instance": uuid.NewString(),
	}
	l, _ := cfg.Build()
	return l
}
