package services

import (
	"context"
	"time"

	"github.com/Zharokiecoder/GITEX2/logger"
	"github.com/Zharokiecoder/GITEX2/store"
	"github.com/Zharokiecoder/GITEX2/types"
	"go.uber.org/zap"
)

// HealthService reports storage connectivity and current record counts.
type HealthService struct {
	store   store.Store
	version string
	log     *zap.SugaredLogger
}

func NewHealthService(s store.Store, version string) *HealthService {
	return &HealthService{
		store:   s,
		version: version,
		log:     logger.GetLogger(),
	}
}

func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := make(map[string]types.HealthComponent)
	overallStatus := types.HealthStatusUp

	storageStatus := h.checkStorage(ctx)
	components["storage"] = storageStatus
	if storageStatus.Status == types.HealthStatusDown {
		overallStatus = types.HealthStatusDegraded
	}

	check := types.HealthCheck{
		Status:     overallStatus,
		Components: components,
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}

	// Counts degrade to zero alongside the storage component going down
	if n, err := h.store.Registrations().Count(ctx); err == nil {
		check.Registrations = n
	}
	if n, err := h.store.Feedbacks().Count(ctx); err == nil {
		check.Feedbacks = n
	}

	return check
}

func (h *HealthService) checkStorage(ctx context.Context) types.HealthComponent {
	if err := h.store.Ping(ctx); err != nil {
		h.log.Errorw("Storage health check failed", "backend", h.store.Backend(), "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Storage connection failed",
		}
	}

	return types.HealthComponent{
		Status:  types.HealthStatusUp,
		Details: h.store.Backend(),
	}
}
