package plannerservice

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/burenotti/go_fitness_backend/internal/adapter/storage/catalog"
	"github.com/burenotti/go_fitness_backend/internal/domain/workout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, d time.Duration) *Service {
	t.Helper()
	c, err := catalog.Embedded()
	require.NoError(t, err)
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), c, d)
}

func TestGenerate(t *testing.T) {
	s := newTestService(t, 0)

	cases := []struct {
		req  Request
		want int
	}{
		{Request{BodyType: "ectomorph", Level: "beginner", DaysPerWeek: "5"}, 3},
		{Request{BodyType: "mesomorph", Level: "advanced", DaysPerWeek: "2"}, 2},
		{Request{BodyType: "endomorph", Level: "advanced", DaysPerWeek: "6"}, 6},
		{Request{BodyType: "endomorph", Level: "advanced", DaysPerWeek: ""}, 4},
		{Request{BodyType: "endomorph", Level: "intermediate", DaysPerWeek: "many"}, 4},
		{Request{BodyType: "ectomorph", Level: "intermediate", DaysPerWeek: "0"}, 4},
		{Request{BodyType: "", Level: "beginner", DaysPerWeek: "3"}, 0},
		{Request{BodyType: "mesomorph", Level: "pro", DaysPerWeek: "3"}, 0},
	}
	for _, tc := range cases {
		plan, err := s.Generate(context.Background(), tc.req)
		require.NoError(t, err)
		assert.Len(t, plan, tc.want, "%+v", tc.req)
	}
}

func TestGenerate_Order(t *testing.T) {
	s := newTestService(t, 0)

	plan, err := s.Generate(context.Background(), Request{BodyType: "mesomorph", Level: "intermediate", DaysPerWeek: "4"})
	require.NoError(t, err)

	titles := make([]string, 0, len(plan))
	for _, d := range plan {
		titles = append(titles, d.Title)
	}
	assert.Equal(t, []string{"chest_shoulders", "back_arms", "legs", "full_body"}, titles)
}

func TestGenerate_DelayCancelled(t *testing.T) {
	s := newTestService(t, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Generate(ctx, Request{BodyType: "mesomorph", Level: "advanced", DaysPerWeek: "2"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCombinations(t *testing.T) {
	s := newTestService(t, 0)

	combos := s.Combinations()
	require.Len(t, combos, 9)
	assert.Equal(t, workout.Combination{BodyType: workout.Mesomorph, Level: workout.Advanced, Days: 5}, combos[5])
	assert.NotEmpty(t, s.Exercises())
}

func TestMetricLabels(t *testing.T) {
	assert.Equal(t, "mesomorph", bodyTypeLabel("mesomorph"))
	assert.Equal(t, "unknown", bodyTypeLabel("junk"))
	assert.Equal(t, "advanced", levelLabel("advanced"))
	assert.Equal(t, "unknown", levelLabel("Advanced"))
	assert.Equal(t, "unknown", levelLabel(""))
}
