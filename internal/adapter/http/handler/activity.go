package handler

import (
	"context"
	"net/http"

	"github.com/Temutjin2k/driver-twin/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/driver-twin/internal/domain/models"
	"github.com/Temutjin2k/driver-twin/internal/domain/types"
	"github.com/Temutjin2k/driver-twin/pkg/logger"
	wrap "github.com/Temutjin2k/driver-twin/pkg/logger/wrapper"
	"github.com/Temutjin2k/driver-twin/pkg/validator"
)

type ActivityService interface {
	Ingest(ctx context.Context, msg models.TripCompletedMessage) error
}

type Activity struct {
	service ActivityService
	log     logger.Logger
}

func NewActivity(service ActivityService, log logger.Logger) *Activity {
	return &Activity{
		service: service,
		log:     log,
	}
}

// RecordActivity godoc
// @Summary      Record completed trip
// @Description  Stores one completed trip in the worker's activity history
// @Tags         Activity
// @Accept       json
// @Produce      json
// @Param        worker_id  path  string  true  "Worker ID"
// @Param        request  body  dto.RecordActivityRequest  true  "Completed trip"
// @Security     BearerAuth
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /workers/{worker_id}/activity [post]
func (h *Activity) RecordActivity(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionIngestActivity)

	workerID := r.PathValue("worker_id")

	var req dto.RecordActivityRequest
	if err := readJSON(w, r, &req); err != nil {
		h.log.Error(wrap.ErrorCtx(ctx, err), "failed to read request JSON data", err)
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	v := validator.New()
	req.Validate(v)
	if !v.Valid() {
		h.log.Warn(ctx, "invalid request data")
		failedValidationResponse(w, v.Errors)
		return
	}

	if err := h.service.Ingest(ctx, req.ToMessage(workerID)); err != nil {
		h.log.Error(wrap.ErrorCtx(ctx, err), "failed to record activity", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusCreated, envelope{"status": "recorded"}, nil); err != nil {
		h.log.Error(ctx, "failed to write response", err)
		internalErrorResponse(w, "the server encountered a problem")
	}
}
