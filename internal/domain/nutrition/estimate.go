package nutrition

import "math"

const (
	cmPerInch = 2.54
	kgPerLb   = 0.453592

	kcalPerGramProtein = 4
	kcalPerGramCarb    = 4
	kcalPerGramFat     = 9
)

// ToMetric converts height and weight given in u to centimeters and kilograms.
func ToMetric(u Units, height, weight float64) (heightCm, weightKg float64) {
	return HeightCm(u, height), WeightKg(u, weight)
}

func HeightCm(u Units, height float64) float64 {
	if u == Imperial {
		return height * cmPerInch
	}
	return height
}

func WeightKg(u Units, weight float64) float64 {
	if u == Imperial {
		return weight * kgPerLb
	}
	return weight
}

// BMR is the Mifflin-St Jeor basal metabolic rate in kcal/day.
func BMR(m BodyMetrics) float64 {
	bmr := 10*m.WeightKg + 6.25*m.HeightCm - 5*float64(m.AgeYears)
	if m.Sex == Male {
		return bmr + 5
	}
	return bmr - 161
}

// Estimate assumes validated input and never fails.
func Estimate(m BodyMetrics, a ActivityLevel, g Goal, p Pace) CalculationResult {
	bmr := BMR(m)
	tdee := bmr * a.Multiplier()

	// Pace is applied for maintain as well; the modifier is zero there anyway.
	modifier := g.Modifier() * p.Multiplier()
	target := math.Round(tdee * (1 + modifier))

	r := RatiosFor(g)
	return CalculationResult{
		BMR:            int(math.Round(bmr)),
		TDEE:           int(math.Round(tdee)),
		TargetCalories: int(target),
		ProteinGrams:   int(math.Round(target * r.Protein / kcalPerGramProtein)),
		FatGrams:       int(math.Round(target * r.Fat / kcalPerGramFat)),
		CarbGrams:      int(math.Round(target * r.Carb / kcalPerGramCarb)),
	}
}

// MacroCalories sums the energy of the macro split.
func (r CalculationResult) MacroCalories() int {
	return r.ProteinGrams*kcalPerGramProtein + r.FatGrams*kcalPerGramFat + r.CarbGrams*kcalPerGramCarb
}
