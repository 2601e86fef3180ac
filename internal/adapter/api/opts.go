package api

import (
	calculatorservice "github.com/burenotti/go_fitness_backend/internal/app/calculator"
	plannerservice "github.com/burenotti/go_fitness_backend/internal/app/planner"
	"log/slog"
	"net"
	"strconv"
)

type Option func(*Server)

func Addr(host string, port int) Option {
	return func(s *Server) {
		s.addr = net.JoinHostPort(host, strconv.Itoa(port))
	}
}

func Logger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

func CalculatorService(service *calculatorservice.Service) Option {
	return func(s *Server) {
		s.calculatorService = service
	}
}

func PlannerService(service *plannerservice.Service) Option {
	return func(s *Server) {
		s.plannerService = service
	}
}
