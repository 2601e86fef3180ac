package calculatorservice

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/burenotti/go_fitness_backend/internal/domain/nutrition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(opts Options) *Service {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), opts)
}

func validForm() Form {
	return Form{
		Sex:      "male",
		Units:    "metric",
		Age:      "25",
		Height:   "180",
		Weight:   "80",
		Activity: "1.55",
		Goal:     "maintain",
	}
}

func TestValidateForm_AgeBounds(t *testing.T) {
	s := newTestService(Options{})

	for _, age := range []string{"14", "101", "", "abc", "-20"} {
		f := validForm()
		f.Age = age
		errs := s.ValidateForm(f)
		assert.Contains(t, errs, FieldAge, "age %q", age)
		assert.Len(t, errs, 1, "age %q", age)
	}

	for _, age := range []string{"15", "100", "42 years", "30.9"} {
		f := validForm()
		f.Age = age
		assert.Empty(t, s.ValidateForm(f), "age %q", age)
	}
}

func TestValidateForm_HeightAndWeightBounds(t *testing.T) {
	s := newTestService(Options{})

	cases := []struct {
		height, weight string
		bad            []string
	}{
		{"100", "30", nil},
		{"250", "300", nil},
		{"99.9", "80", []string{FieldHeight}},
		{"250.1", "80", []string{FieldHeight}},
		{"180", "29.99", []string{FieldWeight}},
		{"180", "300.5", []string{FieldWeight}},
		{"", "", []string{FieldHeight, FieldWeight}},
		{"tall", "heavy", []string{FieldHeight, FieldWeight}},
		{"180cm", "80kg", nil},
	}
	for _, tc := range cases {
		f := validForm()
		f.Height, f.Weight = tc.height, tc.weight
		errs := s.ValidateForm(f)
		assert.Len(t, errs, len(tc.bad), "%s/%s: %v", tc.height, tc.weight, errs)
		for _, field := range tc.bad {
			assert.Contains(t, errs, field)
		}
	}
}

func TestValidateForm_Selections(t *testing.T) {
	s := newTestService(Options{})

	f := validForm()
	f.Activity, f.Goal = "", ""
	errs := s.ValidateForm(f)
	assert.Equal(t, messages[FieldActivity], errs[FieldActivity])
	assert.Equal(t, messages[FieldGoal], errs[FieldGoal])

	f = validForm()
	f.Activity, f.Goal, f.Sex, f.Units, f.Pace = "couch", "bulk", "x", "stone", "fast"
	errs = s.ValidateForm(f)
	assert.Len(t, errs, 5)
}

func TestValidateForm_ImperialRawBounds(t *testing.T) {
	f := validForm()
	f.Units = "imperial"
	f.Height = "69"
	f.Weight = "176"

	raw := newTestService(Options{})
	assert.Contains(t, raw.ValidateForm(f), FieldHeight)

	converted := newTestService(Options{ValidateConverted: true})
	assert.Empty(t, converted.ValidateForm(f))

	// 660 lb is 299.37 kg: fine once converted, out of range as typed.
	f.Height = "70"
	f.Weight = "660"
	assert.Empty(t, converted.ValidateForm(f))
	assert.Contains(t, raw.ValidateForm(f), FieldWeight)
}

func TestValidateForm_ImperialConvertedPartial(t *testing.T) {
	s := newTestService(Options{ValidateConverted: true})

	f := validForm()
	f.Units = "imperial"
	f.Height = "abc"

	// 40 lb is 18.1 kg.
	f.Weight = "40"
	assert.Equal(t, FieldErrors{
		FieldHeight: messages[FieldHeight],
		FieldWeight: messages[FieldWeight],
	}, s.ValidateForm(f))

	// 660 lb is 299.4 kg.
	f.Weight = "660"
	assert.Equal(t, FieldErrors{FieldHeight: messages[FieldHeight]}, s.ValidateForm(f))

	f.Height = ""
	f.Weight = "70"
	assert.Equal(t, FieldErrors{FieldHeight: messages[FieldHeight]}, s.ValidateForm(f))
}

func TestCalculate(t *testing.T) {
	s := newTestService(Options{})

	res, errs, err := s.Calculate(context.Background(), validForm())
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, 1805, res.BMR)
	assert.Equal(t, 2798, res.TDEE)
	assert.Equal(t, 2798, res.TargetCalories)

	f := Form{
		Sex:      "female",
		Age:      "30",
		Height:   "165",
		Weight:   "60",
		Activity: "sedentary",
		Goal:     "lose",
		Pace:     "aggressive",
	}
	res, errs, err = s.Calculate(context.Background(), f)
	require.NoError(t, err)
	require.Empty(t, errs)
	assert.Equal(t, 1320, res.BMR)
	assert.Equal(t, 1584, res.TDEE)
	assert.Equal(t, 1109, res.TargetCalories)
}

func TestCalculate_ImperialConverted(t *testing.T) {
	s := newTestService(Options{ValidateConverted: true})

	f := validForm()
	f.Units = "imperial"
	f.Height = "70"
	f.Weight = "176"

	res, errs, err := s.Calculate(context.Background(), f)
	require.NoError(t, err)
	require.Empty(t, errs)

	want := nutrition.Estimate(nutrition.BodyMetrics{
		Sex:      nutrition.Male,
		AgeYears: 25,
		HeightCm: 70 * 2.54,
		WeightKg: 176 * 0.453592,
	}, nutrition.Moderate, nutrition.Maintain, nutrition.PaceModerate)
	assert.Equal(t, want, res)
}

func TestCalculate_InvalidReturnsFieldErrors(t *testing.T) {
	s := newTestService(Options{Delay: time.Hour})

	f := validForm()
	f.Age = "101"
	res, errs, err := s.Calculate(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, nutrition.CalculationResult{}, res)
	assert.Equal(t, FieldErrors{FieldAge: messages[FieldAge]}, errs)
}

func TestCalculate_DelayCancelled(t *testing.T) {
	s := newTestService(Options{Delay: time.Hour})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, _, err := s.Calculate(ctx, validForm())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
