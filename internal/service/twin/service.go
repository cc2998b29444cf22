package twin

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Temutjin2k/driver-twin/internal/domain/models"
	"github.com/Temutjin2k/driver-twin/internal/domain/types"
	"github.com/Temutjin2k/driver-twin/pkg/hasher"
	"github.com/Temutjin2k/driver-twin/pkg/logger"
	wrap "github.com/Temutjin2k/driver-twin/pkg/logger/wrapper"
	"github.com/Temutjin2k/driver-twin/pkg/metrics"
)

const serviceName = "twin-service"

// Service is the behavioral digital twin. It is stateless per invocation:
// every call loads a fresh history snapshot, learns a profile from it and
// discards everything afterwards.
type Service struct {
	history   HistoryProvider
	publisher ResultPublisher // optional, nil disables event publishing
	params    Params
	log       logger.Logger
}

func New(history HistoryProvider, publisher ResultPublisher, params Params, log logger.Logger) *Service {
	return &Service{
		history:   history,
		publisher: publisher,
		params:    params,
		log:       log,
	}
}

// Profile loads a worker's history and learns their behavioral profile.
func (s *Service) Profile(ctx context.Context, workerID string) (*models.BehavioralProfile, error) {
	ctx = wrap.WithAction(ctx, types.ActionLearnProfile)
	ctx = wrap.WithWorkerID(ctx, workerID)

	if err := validateWorkerID(workerID); err != nil {
		return nil, err
	}

	history, err := s.history.History(ctx, workerID)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	profile := Learn(history, s.params)

	metrics.ProfilesLearnedTotal.WithLabelValues(serviceName).Inc()
	if profile.LowConfidence {
		metrics.LowConfidenceProfilesTotal.WithLabelValues(serviceName).Inc()
	}

	s.log.Debug(ctx, "profile learned",
		"preferred_hours", profile.PreferredHours,
		"fatigue_threshold", profile.FatigueThresholdHours,
		"low_confidence", profile.LowConfidence,
	)

	return profile, nil
}

// Optimize runs the full pipeline for one worker: learn the profile, evaluate
// every archetype concurrently, rank the scenarios and pick a recommendation.
// The result is a pure function of the history snapshot; SnapshotHash lets
// callers prove it.
func (s *Service) Optimize(ctx context.Context, workerID string) (*models.OptimizationResult, error) {
	ctx = wrap.WithAction(ctx, types.ActionOptimizeSchedule)
	ctx = wrap.WithWorkerID(ctx, workerID)

	start := time.Now()

	result, err := s.optimize(ctx, workerID)

	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.OptimizationsTotal.WithLabelValues(serviceName, status).Inc()
	metrics.OptimizationDuration.WithLabelValues(serviceName).Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "optimization finished",
		"recommended", result.Recommended,
		"scenarios", len(result.Scenarios),
		"duration", time.Since(start).String(),
	)

	s.publishResult(ctx, result)
	return result, nil
}

func (s *Service) optimize(ctx context.Context, workerID string) (*models.OptimizationResult, error) {
	if err := validateWorkerID(workerID); err != nil {
		return nil, err
	}

	history, err := s.history.History(ctx, workerID)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	profile := Learn(history, s.params)
	metrics.ProfilesLearnedTotal.WithLabelValues(serviceName).Inc()
	if profile.LowConfidence {
		metrics.LowConfidenceProfilesTotal.WithLabelValues(serviceName).Inc()
	}

	curve := buildSurgeCurve(history.SurgeTable)
	baseline := baselinePerformance(history)

	// Archetypes are independent given the immutable profile and curve, so
	// they fan out; each goroutine writes only its own slot.
	archetypes := types.Archetypes()
	scenarios := make([]models.OptimizationScenario, len(archetypes))

	g, gctx := errgroup.WithContext(ctx)
	for i, a := range archetypes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			schedule, desc := generateSchedule(a, profile, curve, s.params)
			projected := projectEarnings(schedule, profile, curve, s.params)
			scenarios[i] = models.OptimizationScenario{
				Archetype:         a,
				Label:             a.Label(),
				Schedule:          schedule,
				ProjectedEarnings: projected,
				ImprovementPct:    improvementPct(projected, baseline.WeeklyEarnings),
				Feasibility:       scoreFeasibility(schedule, profile, s.params),
				Description:       desc,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, wrap.Error(ctx, err)
	}

	result := &models.OptimizationResult{
		WorkerID:      workerID,
		Current:       baseline,
		Scenarios:     scenarios,
		LowConfidence: profile.LowConfidence,
		SnapshotHash:  snapshotHash(history),
	}

	rankScenarios(result, s.params)
	result.Insights = buildInsights(result, profile)

	return result, nil
}

// publishResult is best effort: a broker hiccup must not fail a computed
// optimization that the caller already has.
func (s *Service) publishResult(ctx context.Context, result *models.OptimizationResult) {
	if s.publisher == nil {
		return
	}

	rec := result.RecommendedScenario()
	if rec == nil {
		return
	}

	msg := models.OptimizationCompletedMessage{
		WorkerID:          result.WorkerID,
		Recommended:       result.Recommended.String(),
		ProjectedEarnings: rec.ProjectedEarnings,
		ImprovementPct:    rec.ImprovementPct,
		Feasibility:       rec.Feasibility,
		LowConfidence:     result.LowConfidence,
		SnapshotHash:      result.SnapshotHash,
	}
	if err := s.publisher.PublishOptimizationCompleted(ctx, msg); err != nil {
		s.log.Error(ctx, "failed to publish optimization completed event", err)
	}
}

// snapshotHash fingerprints the history snapshot. The snapshot is assembled
// in deterministic order by the provider, so identical data always yields
// the identical hash.
func snapshotHash(history *models.ActivityHistory) string {
	data, err := json.Marshal(history)
	if err != nil {
		return ""
	}
	return hasher.SumBytes(data)
}

func validateWorkerID(workerID string) error {
	trimmed := strings.TrimSpace(workerID)
	if trimmed == "" || trimmed != workerID || len(workerID) > 64 {
		return fmt.Errorf("%w: %q", types.ErrInvalidWorkerID, workerID)
	}
	return nil
}
