package controllers

import (
	"context"
	"net/http"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// Pinger is satisfied by the Mongo and Redis health checks wired in main.
type Pinger func(ctx context.Context) error

type HealthController struct {
	Log     *zap.Logger
	Version string
	Checks  map[string]Pinger
}

func NewHealthController(logger *zap.Logger, version string, checks map[string]Pinger) *HealthController {
	return &HealthController{Log: logger, Version: version, Checks: checks}
}

type healthResponse struct {
	Version    string            `json:"version"`
	Components map[string]string `json:"components"`
}

func (ctrl *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	response := healthResponse{Version: ctrl.Version, Components: make(map[string]string, len(ctrl.Checks))}
	healthy := true
	for name, check := range ctrl.Checks {
		if err := check(ctx); err != nil {
			ctrl.Log.Warn("HealthController.Health component unhealthy",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String("component", name),
				zap.Error(err),
			)
			response.Components[name] = constvars.ResponseError
			healthy = false
			continue
		}
		response.Components[name] = constvars.ResponseSuccess
	}

	if !healthy {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServiceUnavailable())
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseHealthy, response)
}
