package nutrition

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSex      = errors.New("unknown sex")
	ErrUnknownUnits    = errors.New("unknown units")
	ErrUnknownActivity = errors.New("unknown activity level")
	ErrUnknownGoal     = errors.New("unknown goal")
	ErrUnknownPace     = errors.New("unknown pace")
)

type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

func ParseSex(s string) (Sex, error) {
	switch Sex(s) {
	case Male, Female:
		return Sex(s), nil
	case "":
		return Male, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSex, s)
}

type Units string

const (
	Metric   Units = "metric"
	Imperial Units = "imperial"
)

func ParseUnits(s string) (Units, error) {
	switch Units(s) {
	case Metric, Imperial:
		return Units(s), nil
	case "":
		return Metric, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnits, s)
}

type ActivityLevel string

const (
	Sedentary ActivityLevel = "sedentary"
	Light     ActivityLevel = "light"
	Moderate  ActivityLevel = "moderate"
	High      ActivityLevel = "high"
	Extreme   ActivityLevel = "extreme"
)

var activityMultipliers = map[ActivityLevel]float64{
	Sedentary: 1.2,
	Light:     1.375,
	Moderate:  1.55,
	High:      1.725,
	Extreme:   1.9,
}

// The calculator form submits the multiplier itself as the option value.
var activityByMultiplier = map[string]ActivityLevel{
	"1.2":   Sedentary,
	"1.375": Light,
	"1.55":  Moderate,
	"1.725": High,
	"1.9":   Extreme,
}

// ParseActivityLevel accepts either a level name or its multiplier string.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	if _, ok := activityMultipliers[ActivityLevel(s)]; ok {
		return ActivityLevel(s), nil
	}
	if a, ok := activityByMultiplier[s]; ok {
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownActivity, s)
}

func (a ActivityLevel) Multiplier() float64 {
	return activityMultipliers[a]
}

type Goal string

const (
	Lose     Goal = "lose"
	Maintain Goal = "maintain"
	Gain     Goal = "gain"
)

var goalModifiers = map[Goal]float64{
	Lose:     -0.2,
	Maintain: 0,
	Gain:     0.15,
}

func ParseGoal(s string) (Goal, error) {
	if _, ok := goalModifiers[Goal(s)]; ok {
		return Goal(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGoal, s)
}

func (g Goal) Modifier() float64 {
	return goalModifiers[g]
}

type Pace string

const (
	PaceModerate   Pace = "moderate"
	PaceAggressive Pace = "aggressive"
)

var paceMultipliers = map[Pace]float64{
	PaceModerate:   1,
	PaceAggressive: 1.5,
}

func ParsePace(s string) (Pace, error) {
	if s == "" {
		return PaceModerate, nil
	}
	if _, ok := paceMultipliers[Pace(s)]; ok {
		return Pace(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPace, s)
}

// Multiplier falls back to 1 for an unset pace.
func (p Pace) Multiplier() float64 {
	if m, ok := paceMultipliers[p]; ok {
		return m
	}
	return 1
}

// BodyMetrics are always metric.
type BodyMetrics struct {
	Sex      Sex
	AgeYears int
	HeightCm float64
	WeightKg float64
}

type CalculationResult struct {
	BMR            int
	TDEE           int
	TargetCalories int
	ProteinGrams   int
	FatGrams       int
	CarbGrams      int
}

// MacroRatios are fractions of target calories.
type MacroRatios struct {
	Protein float64
	Fat     float64
	Carb    float64
}

func RatiosFor(g Goal) MacroRatios {
	switch g {
	case Lose:
		return MacroRatios{Protein: 0.40, Fat: 0.30, Carb: 0.30}
	case Gain:
		return MacroRatios{Protein: 0.30, Fat: 0.25, Carb: 0.45}
	default:
		return MacroRatios{Protein: 0.30, Fat: 0.30, Carb: 0.40}
	}
}
