package calculatorservice

import (
	"context"
	"github.com/burenotti/go_fitness_backend/internal/app/delay"
	"github.com/burenotti/go_fitness_backend/internal/domain/nutrition"
	"github.com/burenotti/go_fitness_backend/internal/observability"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"time"
)

type Options struct {
	// Delay before a result is produced, mirroring the form's loading state.
	Delay time.Duration
	// ValidateConverted applies height and weight bounds after unit conversion.
	ValidateConverted bool
}

type Service struct {
	logger    *slog.Logger
	validator *validator.Validate
	opts      Options
}

func New(logger *slog.Logger, opts Options) *Service {
	return &Service{
		logger:    logger,
		validator: newValidator(),
		opts:      opts,
	}
}

func (s *Service) ValidateForm(f Form) FieldErrors {
	_, errs := validate(s.validator, f, s.opts.ValidateConverted)
	if errs == nil {
		return FieldErrors{}
	}
	return errs
}

// Calculate returns field errors instead of a result when the form is invalid.
// The error is non-nil only when ctx is done before the result is ready.
func (s *Service) Calculate(ctx context.Context, f Form) (nutrition.CalculationResult, FieldErrors, error) {
	p, errs := validate(s.validator, f, s.opts.ValidateConverted)
	if len(errs) != 0 {
		for field := range errs {
			observability.RecordValidationError(field)
		}
		s.logger.Debug("calculator form rejected", "fields", len(errs))
		return nutrition.CalculationResult{}, errs, nil
	}

	if err := delay.Wait(ctx, s.opts.Delay); err != nil {
		return nutrition.CalculationResult{}, nil, err
	}

	res := nutrition.Estimate(p.metrics, p.activity, p.goal, p.pace)
	observability.RecordEstimate(string(p.goal))
	s.logger.Debug("estimate computed",
		"goal", p.goal,
		"activity", p.activity,
		"bmr", res.BMR,
		"tdee", res.TDEE,
		"target", res.TargetCalories,
	)
	return res, nil, nil
}
