package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	estimatesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness",
		Subsystem: "calculator",
		Name:      "estimates_total",
		Help:      "Calorie estimates produced, by goal.",
	}, []string{"goal"})

	validationErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness",
		Subsystem: "calculator",
		Name:      "validation_errors_total",
		Help:      "Rejected calculator fields, by field name.",
	}, []string{"field"})

	plansTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fitness",
		Subsystem: "planner",
		Name:      "plans_total",
		Help:      "Workout plans generated, by body type and level.",
	}, []string{"body_type", "level"})

	planDays = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fitness",
		Subsystem: "planner",
		Name:      "plan_days",
		Help:      "Number of training days in generated plans.",
		Buckets:   prometheus.LinearBuckets(0, 1, 8),
	})
)

func init() {
	prometheus.MustRegister(estimatesTotal, validationErrorsTotal, plansTotal, planDays)
}

func RecordEstimate(goal string) {
	estimatesTotal.WithLabelValues(goal).Inc()
}

func RecordValidationError(field string) {
	validationErrorsTotal.WithLabelValues(field).Inc()
}

// RecordPlan is called for empty plans too; unknown pairs show up with zero days.
// Labels must come from a closed set.
func RecordPlan(bodyType, level string, days int) {
	plansTotal.WithLabelValues(bodyType, level).Inc()
	planDays.Observe(float64(days))
}
