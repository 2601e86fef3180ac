package api

import (
	calculatorservice "github.com/burenotti/go_fitness_backend/internal/app/calculator"
	"github.com/labstack/echo/v4"
	"net/http"
)

func (s *Server) MountCalculator() {
	s.handler.POST("/estimate", s.Estimate)
}

type EstimateRequest struct {
	Sex      string    `json:"sex"`
	Units    string    `json:"units"`
	Age      FormValue `json:"age"`
	Height   FormValue `json:"height"`
	Weight   FormValue `json:"weight"`
	Activity FormValue `json:"activity"`
	Goal     string    `json:"goal"`
	Pace     string    `json:"pace"`
}

type EstimateResponse struct {
	BMR            int `json:"bmr"`
	TDEE           int `json:"tdee"`
	TargetCalories int `json:"target_calories"`
	ProteinGrams   int `json:"protein_grams"`
	FatGrams       int `json:"fat_grams"`
	CarbGrams      int `json:"carb_grams"`
}

func (s *Server) Estimate(c echo.Context) error {
	var req EstimateRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	res, fieldErrs, err := s.calculatorService.Calculate(c.Request().Context(), calculatorservice.Form{
		Sex:      req.Sex,
		Units:    req.Units,
		Age:      string(req.Age),
		Height:   string(req.Height),
		Weight:   string(req.Weight),
		Activity: string(req.Activity),
		Goal:     req.Goal,
		Pace:     req.Pace,
	})
	if err != nil {
		return computeError(c, err)
	}
	if len(fieldErrs) != 0 {
		return JsonFieldErrors(c, http.StatusUnprocessableEntity, fieldErrs)
	}

	return c.JSON(http.StatusOK, EstimateResponse{
		BMR:            res.BMR,
		TDEE:           res.TDEE,
		TargetCalories: res.TargetCalories,
		ProteinGrams:   res.ProteinGrams,
		FatGrams:       res.FatGrams,
		CarbGrams:      res.CarbGrams,
	})
}
