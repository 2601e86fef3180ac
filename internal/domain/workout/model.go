package workout

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownBodyType = errors.New("unknown body type")
	ErrUnknownLevel    = errors.New("unknown experience level")
)

type BodyType string

const (
	Ectomorph BodyType = "ectomorph"
	Mesomorph BodyType = "mesomorph"
	Endomorph BodyType = "endomorph"
)

var BodyTypes = []BodyType{Ectomorph, Mesomorph, Endomorph}

func ParseBodyType(s string) (BodyType, error) {
	for _, bt := range BodyTypes {
		if string(bt) == s {
			return bt, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBodyType, s)
}

type ExperienceLevel string

const (
	Beginner     ExperienceLevel = "beginner"
	Intermediate ExperienceLevel = "intermediate"
	Advanced     ExperienceLevel = "advanced"
)

var Levels = []ExperienceLevel{Beginner, Intermediate, Advanced}

func ParseLevel(s string) (ExperienceLevel, error) {
	for _, l := range Levels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// Exercise reps may be a range ("8-10"), a count ("12"), a duration ("60s")
// or a token like "failure".
type Exercise struct {
	Name         string `yaml:"name" diff:"name"`
	TargetMuscle string `yaml:"target_muscle" diff:"target_muscle"`
	Sets         int    `yaml:"sets" diff:"sets"`
	Reps         string `yaml:"reps" diff:"reps"`
	RestSeconds  string `yaml:"rest_seconds" diff:"rest_seconds"`
}

type WorkoutDay struct {
	Day             string     `yaml:"day" diff:"day"`
	Title           string     `yaml:"title" diff:"title"`
	DurationMinutes int        `yaml:"duration_minutes" diff:"duration_minutes"`
	Exercises       []Exercise `yaml:"exercises" diff:"exercises"`
}

// Catalog is read-only once loaded.
type Catalog map[BodyType]map[ExperienceLevel][]WorkoutDay

type Combination struct {
	BodyType BodyType
	Level    ExperienceLevel
	Days     int
}
