package plannerservice

import (
	"context"
	"github.com/burenotti/go_fitness_backend/internal/app/delay"
	"github.com/burenotti/go_fitness_backend/internal/domain/workout"
	"github.com/burenotti/go_fitness_backend/internal/observability"
	"log/slog"
	"time"
)

type Request struct {
	BodyType    string
	Level       string
	DaysPerWeek string
}

type Service struct {
	logger  *slog.Logger
	catalog workout.Catalog
	delay   time.Duration
}

// New takes ownership of catalog; it must not be modified afterwards.
func New(logger *slog.Logger, catalog workout.Catalog, delay time.Duration) *Service {
	return &Service{
		logger:  logger,
		catalog: catalog,
		delay:   delay,
	}
}

// Generate never fails on unknown input: an unknown pair gives an empty plan.
// The error is non-nil only when ctx is done first.
func (s *Service) Generate(ctx context.Context, req Request) ([]workout.WorkoutDay, error) {
	days := workout.ParseDaysPerWeek(req.DaysPerWeek)

	if err := delay.Wait(ctx, s.delay); err != nil {
		return nil, err
	}

	plan := workout.SelectPlan(
		s.catalog,
		workout.BodyType(req.BodyType),
		workout.ExperienceLevel(req.Level),
		days,
	)

	observability.RecordPlan(bodyTypeLabel(req.BodyType), levelLabel(req.Level), len(plan))
	s.logger.Debug("workout plan selected",
		"body_type", req.BodyType,
		"level", req.Level,
		"requested_days", days,
		"days", len(plan),
	)
	return plan, nil
}

const unknownLabel = "unknown"

func bodyTypeLabel(s string) string {
	bt, err := workout.ParseBodyType(s)
	if err != nil {
		return unknownLabel
	}
	return string(bt)
}

func levelLabel(s string) string {
	lvl, err := workout.ParseLevel(s)
	if err != nil {
		return unknownLabel
	}
	return string(lvl)
}

func (s *Service) Combinations() []workout.Combination {
	return s.catalog.Combinations()
}

func (s *Service) Exercises() []string {
	return s.catalog.Exercises()
}
