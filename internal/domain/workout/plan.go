package workout

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/samber/lo"
)

const DefaultDaysPerWeek = 4

var leadingInt = regexp.MustCompile(`^\s*[+-]?\d+`)

// ParseDaysPerWeek reads the leading integer of s. Missing, non-numeric and
// zero values fall back to DefaultDaysPerWeek. Out of range values saturate.
func ParseDaysPerWeek(s string) int {
	n, err := strconv.Atoi(leadingInt.FindString(s))
	if errors.Is(err, strconv.ErrRange) {
		return n
	}
	if err != nil || n == 0 {
		return DefaultDaysPerWeek
	}
	return n
}

// SelectPlan returns the first days entries authored for the pair, in order.
// An absent pair yields an empty plan.
func SelectPlan(c Catalog, bt BodyType, lvl ExperienceLevel, days int) []WorkoutDay {
	authored := c[bt][lvl]
	n := min(max(days, 0), len(authored))

	plan := make([]WorkoutDay, 0, n)
	for _, d := range authored[:n] {
		d.Exercises = append([]Exercise(nil), d.Exercises...)
		plan = append(plan, d)
	}
	return plan
}

// Combinations lists every authored pair in canonical order.
func (c Catalog) Combinations() []Combination {
	var out []Combination
	for _, bt := range BodyTypes {
		for _, lvl := range Levels {
			days, ok := c[bt][lvl]
			if !ok {
				continue
			}
			out = append(out, Combination{BodyType: bt, Level: lvl, Days: len(days)})
		}
	}
	return out
}

// Exercises returns the distinct exercise names used anywhere in the catalog.
func (c Catalog) Exercises() []string {
	var names []string
	for _, combo := range c.Combinations() {
		for _, d := range c[combo.BodyType][combo.Level] {
			names = append(names, lo.Map(d.Exercises, func(e Exercise, _ int) string {
				return e.Name
			})...)
		}
	}
	return lo.Uniq(names)
}
