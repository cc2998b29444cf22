package handler

import (
	"context"
	"net/http"

	"github.com/Temutjin2k/driver-twin/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/driver-twin/internal/domain/models"
	"github.com/Temutjin2k/driver-twin/internal/domain/types"
	"github.com/Temutjin2k/driver-twin/pkg/logger"
	wrap "github.com/Temutjin2k/driver-twin/pkg/logger/wrapper"
)

type TwinService interface {
	Profile(ctx context.Context, workerID string) (*models.BehavioralProfile, error)
	Optimize(ctx context.Context, workerID string) (*models.OptimizationResult, error)
}

type Twin struct {
	service TwinService
	log     logger.Logger
}

func NewTwin(service TwinService, log logger.Logger) *Twin {
	return &Twin{
		service: service,
		log:     log,
	}
}

// GetProfile godoc
// @Summary      Behavioral profile
// @Description  Learns and returns the worker's behavioral profile from their activity history
// @Tags         Twin
// @Produce      json
// @Param        worker_id  path  string  true  "Worker ID"
// @Security     BearerAuth
// @Success      200  {object}  dto.ProfileResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /workers/{worker_id}/profile [get]
func (h *Twin) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionLearnProfile)

	workerID := r.PathValue("worker_id")

	profile, err := h.service.Profile(ctx, workerID)
	if err != nil {
		h.log.Error(wrap.ErrorCtx(ctx, err), "failed to learn profile", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"profile": dto.FromProfile(profile)}, nil); err != nil {
		h.log.Error(ctx, "failed to write response", err)
		internalErrorResponse(w, "the server encountered a problem")
	}
}

// GetOptimization godoc
// @Summary      Schedule optimization
// @Description  Runs the full digital twin pipeline and returns ranked schedule scenarios
// @Tags         Twin
// @Produce      json
// @Param        worker_id  path  string  true  "Worker ID"
// @Security     BearerAuth
// @Success      200  {object}  dto.OptimizationResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /workers/{worker_id}/optimization [get]
func (h *Twin) GetOptimization(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionOptimizeSchedule)

	workerID := r.PathValue("worker_id")

	result, err := h.service.Optimize(ctx, workerID)
	if err != nil {
		h.log.Error(wrap.ErrorCtx(ctx, err), "failed to optimize schedule", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"optimization": dto.FromOptimization(result)}, nil); err != nil {
		h.log.Error(ctx, "failed to write response", err)
		internalErrorResponse(w, "the server encountered a problem")
	}
}
