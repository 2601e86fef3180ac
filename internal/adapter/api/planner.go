package api

import (
	plannerservice "github.com/burenotti/go_fitness_backend/internal/app/planner"
	"github.com/burenotti/go_fitness_backend/internal/domain/workout"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"net/http"
)

func (s *Server) MountPlanner() {
	s.handler.POST("/plan", s.GeneratePlan)
	s.handler.GET("/catalog", s.ListCatalog)
}

type GeneratePlanRequest struct {
	BodyType    string    `json:"body_type" validate:"required"`
	Level       string    `json:"level" validate:"required"`
	DaysPerWeek FormValue `json:"days_per_week"`
}

type Exercise struct {
	Name         string `json:"name"`
	TargetMuscle string `json:"target_muscle"`
	Sets         int    `json:"sets"`
	Reps         string `json:"reps"`
	RestSeconds  string `json:"rest_seconds"`
}

type WorkoutDay struct {
	Day             string     `json:"day"`
	Title           string     `json:"title"`
	DurationMinutes int        `json:"duration_minutes"`
	Exercises       []Exercise `json:"exercises"`
}

type GeneratePlanResponse struct {
	BodyType string       `json:"body_type"`
	Level    string       `json:"level"`
	Days     []WorkoutDay `json:"days"`
}

func (s *Server) GeneratePlan(c echo.Context) error {
	var req GeneratePlanRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	plan, err := s.plannerService.Generate(c.Request().Context(), plannerservice.Request{
		BodyType:    req.BodyType,
		Level:       req.Level,
		DaysPerWeek: string(req.DaysPerWeek),
	})
	if err != nil {
		return computeError(c, err)
	}

	return c.JSON(http.StatusOK, GeneratePlanResponse{
		BodyType: req.BodyType,
		Level:    req.Level,
		Days: lo.Map(plan, func(d workout.WorkoutDay, _ int) WorkoutDay {
			return WorkoutDay{
				Day:             d.Day,
				Title:           d.Title,
				DurationMinutes: d.DurationMinutes,
				Exercises: lo.Map(d.Exercises, func(e workout.Exercise, _ int) Exercise {
					return Exercise(e)
				}),
			}
		}),
	})
}

type Combination struct {
	BodyType string `json:"body_type"`
	Level    string `json:"level"`
	Days     int    `json:"days"`
}

type ListCatalogResponse struct {
	Combinations []Combination `json:"combinations"`
	Exercises    []string      `json:"exercises"`
}

func (s *Server) ListCatalog(c echo.Context) error {
	return c.JSON(http.StatusOK, ListCatalogResponse{
		Combinations: lo.Map(s.plannerService.Combinations(), func(cb workout.Combination, _ int) Combination {
			return Combination{
				BodyType: string(cb.BodyType),
				Level:    string(cb.Level),
				Days:     cb.Days,
			}
		}),
		Exercises: s.plannerService.Exercises(),
	})
}
