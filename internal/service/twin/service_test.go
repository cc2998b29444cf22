package twin

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Temutjin2k/driver-twin/internal/domain/models"
	"github.com/Temutjin2k/driver-twin/internal/domain/types"
	"github.com/Temutjin2k/driver-twin/pkg/logger"
)

type stubHistory struct {
	history *models.ActivityHistory
	err     error
}

func (s *stubHistory) History(_ context.Context, workerID string) (*models.ActivityHistory, error) {
	if s.err != nil {
		return nil, s.err
	}
	h := *s.history
	h.WorkerID = workerID
	return &h, nil
}

type capturingPublisher struct {
	messages []models.OptimizationCompletedMessage
}

func (p *capturingPublisher) PublishOptimizationCompleted(_ context.Context, msg models.OptimizationCompletedMessage) error {
	p.messages = append(p.messages, msg)
	return nil
}

func newTestService(t *testing.T, provider HistoryProvider, publisher ResultPublisher) *Service {
	t.Helper()
	return New(provider, publisher, DefaultParams(), logger.InitLogger("twin-service-test", logger.LevelError))
}

func TestProfileUnknownWorker(t *testing.T) {
	svc := newTestService(t, &stubHistory{err: types.ErrWorkerNotFound}, nil)

	_, err := svc.Profile(context.Background(), "ghost")
	if !errors.Is(err, types.ErrWorkerNotFound) {
		t.Fatalf("err = %v, want ErrWorkerNotFound", err)
	}
}

func TestProfileInvalidWorkerID(t *testing.T) {
	svc := newTestService(t, &stubHistory{history: &models.ActivityHistory{}}, nil)

	for _, id := range []string{"", "  ", " padded "} {
		if _, err := svc.Profile(context.Background(), id); !errors.Is(err, types.ErrInvalidWorkerID) {
			t.Fatalf("id %q: err = %v, want ErrInvalidWorkerID", id, err)
		}
	}
}

func TestProfileEveningDriver(t *testing.T) {
	svc := newTestService(t, &stubHistory{history: eveningDriverHistory(t)}, nil)

	profile, err := svc.Profile(context.Background(), "w1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.LowConfidence {
		t.Fatal("ten active days must not flag low confidence")
	}
	if !almostEqual(profile.AvgRatePerHour, 23) {
		t.Fatalf("avg rate = %v, want 23", profile.AvgRatePerHour)
	}
	if !reflect.DeepEqual(profile.PreferredHours, []int{17, 18, 19}) {
		t.Fatalf("preferred hours = %v, want [17 18 19]", profile.PreferredHours)
	}
}

func TestOptimizeEveningDriver(t *testing.T) {
	publisher := &capturingPublisher{}
	svc := newTestService(t, &stubHistory{history: eveningDriverHistory(t)}, publisher)

	result, err := svc.Optimize(context.Background(), "w1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Scenarios) != len(types.Archetypes()) {
		t.Fatalf("scenarios = %d, want %d", len(result.Scenarios), len(types.Archetypes()))
	}

	// Best-first ordering.
	for i := 1; i < len(result.Scenarios); i++ {
		if result.Scenarios[i].ProjectedEarnings > result.Scenarios[i-1].ProjectedEarnings {
			t.Fatalf("scenarios not sorted: %v before %v",
				result.Scenarios[i-1].ProjectedEarnings, result.Scenarios[i].ProjectedEarnings)
		}
	}

	// Baseline straight from history: 33 one-hour trips at 23 across ten
	// days averages 3.3h and 75.9 per day.
	if !almostEqual(result.Current.WeeklyHours, 23.1) {
		t.Fatalf("weekly hours = %v, want 23.1", result.Current.WeeklyHours)
	}
	if !almostEqual(result.Current.WeeklyEarnings, 531.3) {
		t.Fatalf("weekly earnings = %v, want 531.3", result.Current.WeeklyEarnings)
	}

	var surge *models.OptimizationScenario
	for i := range result.Scenarios {
		if result.Scenarios[i].Archetype == types.ArchetypeSurgeFocus {
			surge = &result.Scenarios[i]
		}
	}
	if surge == nil {
		t.Fatal("surge focus scenario missing")
	}
	if surge.ProjectedEarnings <= 500 {
		t.Fatalf("surge focus projection = %v, want > 500", surge.ProjectedEarnings)
	}
	if surge.Feasibility < 0.5 || surge.Feasibility > 0.8 {
		t.Fatalf("surge focus feasibility = %v, want within [0.5, 0.8]", surge.Feasibility)
	}

	rec := result.RecommendedScenario()
	if rec == nil {
		t.Fatal("recommended scenario missing from the scenario list")
	}
	if !result.NoFeasibleImprovement && rec.Feasibility < DefaultParams().MinFeasibility {
		t.Fatalf("recommended feasibility = %v, below the bar", rec.Feasibility)
	}

	if result.SnapshotHash == "" {
		t.Fatal("snapshot hash must be set")
	}
	if len(result.Insights) == 0 {
		t.Fatal("insights must not be empty")
	}

	if len(publisher.messages) != 1 {
		t.Fatalf("published messages = %d, want 1", len(publisher.messages))
	}
	msg := publisher.messages[0]
	if msg.WorkerID != "w1" || msg.Recommended != result.Recommended.String() || msg.SnapshotHash != result.SnapshotHash {
		t.Fatalf("published message %+v does not match result", msg)
	}
}

func TestOptimizeDeterministic(t *testing.T) {
	svc := newTestService(t, &stubHistory{history: eveningDriverHistory(t)}, nil)

	first, err := svc.Optimize(context.Background(), "w1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Optimize(context.Background(), "w1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical snapshots must produce identical results")
	}
	if first.SnapshotHash != second.SnapshotHash {
		t.Fatalf("snapshot hashes differ: %s != %s", first.SnapshotHash, second.SnapshotHash)
	}
}

func TestOptimizeEmptyHistoryStillProducesResult(t *testing.T) {
	svc := newTestService(t, &stubHistory{history: &models.ActivityHistory{}}, nil)

	result, err := svc.Optimize(context.Background(), "w1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.LowConfidence {
		t.Fatal("empty history must flag low confidence")
	}
	if len(result.Scenarios) != len(types.Archetypes()) {
		t.Fatalf("scenarios = %d, want %d", len(result.Scenarios), len(types.Archetypes()))
	}
	for _, s := range result.Scenarios {
		if s.Feasibility > DefaultParams().LowConfidenceCap {
			t.Fatalf("%s feasibility = %v, exceeds low confidence cap", s.Archetype, s.Feasibility)
		}
		if s.ProjectedEarnings != 0 {
			t.Fatalf("%s projection = %v, want 0 with no earning history", s.Archetype, s.ProjectedEarnings)
		}
	}
}

func TestOptimizeUnknownWorker(t *testing.T) {
	svc := newTestService(t, &stubHistory{err: types.ErrWorkerNotFound}, nil)

	_, err := svc.Optimize(context.Background(), "ghost")
	if !errors.Is(err, types.ErrWorkerNotFound) {
		t.Fatalf("err = %v, want ErrWorkerNotFound", err)
	}
}
