package calculatorservice

import (
	"errors"
	"github.com/burenotti/go_fitness_backend/internal/domain/nutrition"
	"github.com/go-playground/validator/v10"
	"reflect"
	"regexp"
	"strconv"
)

const (
	FieldSex      = "sex"
	FieldUnits    = "units"
	FieldAge      = "age"
	FieldHeight   = "height"
	FieldWeight   = "weight"
	FieldActivity = "activity"
	FieldGoal     = "goal"
	FieldPace     = "pace"
)

var messages = map[string]string{
	FieldSex:      "sex must be male or female",
	FieldUnits:    "units must be metric or imperial",
	FieldAge:      "age must be between 15 and 100",
	FieldHeight:   "height must be between 100 and 250 cm",
	FieldWeight:   "weight must be between 30 and 300 kg",
	FieldActivity: "select an activity level",
	FieldGoal:     "select a goal",
	FieldPace:     "pace must be moderate or aggressive",
}

// Form is the calculator input exactly as typed by the user.
type Form struct {
	Sex      string
	Units    string
	Age      string
	Height   string
	Weight   string
	Activity string
	Goal     string
	Pace     string
}

// FieldErrors maps a field name to a message. A missing key means the field is valid.
type FieldErrors map[string]string

func (e FieldErrors) add(field string) {
	if _, ok := e[field]; !ok {
		e[field] = messages[field]
	}
}

type measurements struct {
	Age      *int     `form:"age" validate:"required,min=15,max=100"`
	Height   *float64 `form:"height" validate:"required,min=100,max=250"`
	Weight   *float64 `form:"weight" validate:"required,min=30,max=300"`
	Activity string   `form:"activity" validate:"required"`
	Goal     string   `form:"goal" validate:"required"`
}

type parsedForm struct {
	sex      nutrition.Sex
	units    nutrition.Units
	activity nutrition.ActivityLevel
	goal     nutrition.Goal
	pace     nutrition.Pace
	metrics  nutrition.BodyMetrics
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	return v
}

var (
	leadingInt   = regexp.MustCompile(`^\s*[+-]?\d+`)
	leadingFloat = regexp.MustCompile(`^\s*[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// parseInt reads the leading integer of s, ignoring trailing text ("25 years" is 25).
func parseInt(s string) *int {
	n, err := strconv.Atoi(leadingInt.FindString(s))
	if err != nil {
		return nil
	}
	return &n
}

// parseFloat reads the leading decimal of s, ignoring trailing text.
func parseFloat(s string) *float64 {
	f, err := strconv.ParseFloat(leadingFloat.FindString(s), 64)
	if err != nil {
		return nil
	}
	return &f
}

// validate checks every field and returns the canonical metric input when
// the form is valid. Height and weight bounds are metric; with converted set
// they are applied after imperial values are converted, otherwise to the raw
// numbers as typed.
func validate(v *validator.Validate, f Form, converted bool) (parsedForm, FieldErrors) {
	errs := make(FieldErrors)
	var p parsedForm
	var err error

	if p.sex, err = nutrition.ParseSex(f.Sex); err != nil {
		errs.add(FieldSex)
	}
	if p.units, err = nutrition.ParseUnits(f.Units); err != nil {
		errs.add(FieldUnits)
	}
	if p.pace, err = nutrition.ParsePace(f.Pace); err != nil {
		errs.add(FieldPace)
	}

	m := measurements{
		Age:      parseInt(f.Age),
		Height:   parseFloat(f.Height),
		Weight:   parseFloat(f.Weight),
		Activity: f.Activity,
		Goal:     f.Goal,
	}

	if converted {
		if m.Height != nil {
			h := nutrition.HeightCm(p.units, *m.Height)
			m.Height = &h
		}
		if m.Weight != nil {
			w := nutrition.WeightKg(p.units, *m.Weight)
			m.Weight = &w
		}
	}

	var fieldErrs validator.ValidationErrors
	if err := v.Struct(m); errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			errs.add(fe.Field())
		}
	}

	if f.Activity != "" {
		if p.activity, err = nutrition.ParseActivityLevel(f.Activity); err != nil {
			errs.add(FieldActivity)
		}
	}
	if f.Goal != "" {
		if p.goal, err = nutrition.ParseGoal(f.Goal); err != nil {
			errs.add(FieldGoal)
		}
	}

	if len(errs) != 0 {
		return parsedForm{}, errs
	}

	h, w := *m.Height, *m.Weight
	if !converted {
		h, w = nutrition.ToMetric(p.units, h, w)
	}
	p.metrics = nutrition.BodyMetrics{
		Sex:      p.sex,
		AgeYears: *m.Age,
		HeightCm: h,
		WeightKg: w,
	}
	return p, nil
}
