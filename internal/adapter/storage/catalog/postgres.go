package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"github.com/burenotti/go_fitness_backend/internal/adapter/storage"
	"github.com/burenotti/go_fitness_backend/internal/adapter/storage/pgutil"
	"github.com/burenotti/go_fitness_backend/internal/domain/workout"
	"github.com/leporo/sqlf"
)

//go:embed schema.sql
var schema string

type dayKey struct {
	BodyType workout.BodyType
	Level    workout.ExperienceLevel
	Position int
}

type dayRow struct {
	dayKey
	workout.WorkoutDay
}

type exerciseRow struct {
	dayKey
	workout.Exercise
}

type PostgresStorage struct {
	db storage.DBContext
}

func NewPostgresStorage(db storage.DBContext) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (s *PostgresStorage) EnsureSchema(ctx context.Context) error {
	for _, stmt := range pgutil.SplitStatements(schema) {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return storage.InternalError(err)
		}
	}
	return nil
}

// Load assembles the catalog from the workout tables. Rows are ordered by
// position, so the authored order survives the round trip.
func (s *PostgresStorage) Load(ctx context.Context) (workout.Catalog, error) {
	days, err := s.loadDays(ctx)
	if err != nil {
		return nil, err
	}
	exercises, err := s.loadExercises(ctx)
	if err != nil {
		return nil, err
	}

	c := make(workout.Catalog)
	slots := make(map[dayKey]int, len(days))
	for _, row := range days {
		if c[row.BodyType] == nil {
			c[row.BodyType] = make(map[workout.ExperienceLevel][]workout.WorkoutDay)
		}
		slots[row.dayKey] = len(c[row.BodyType][row.Level])
		c[row.BodyType][row.Level] = append(c[row.BodyType][row.Level], row.WorkoutDay)
	}
	for _, row := range exercises {
		i, ok := slots[row.dayKey]
		if !ok {
			return nil, errors.Join(errors.New("exercise references missing day"), ErrInvalidCatalog)
		}
		d := &c[row.BodyType][row.Level][i]
		d.Exercises = append(d.Exercises, row.Exercise)
	}

	if err := Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *PostgresStorage) loadDays(ctx context.Context) ([]dayRow, error) {
	var tmp dayRow

	q := sqlf.From("workout_days d").
		Select("d.body_type").To(&tmp.BodyType).
		Select("d.level").To(&tmp.Level).
		Select("d.position").To(&tmp.Position).
		Select("d.day_label").To(&tmp.Day).
		Select("d.title").To(&tmp.Title).
		Select("d.duration_minutes").To(&tmp.DurationMinutes).
		OrderBy("d.body_type", "d.level", "d.position")

	var rows []dayRow
	err := q.QueryAndClose(ctx, s.db, func(*sql.Rows) {
		rows = append(rows, tmp)
	})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, mapLoadError(err)
	}
	return rows, nil
}

func (s *PostgresStorage) loadExercises(ctx context.Context) ([]exerciseRow, error) {
	var tmp exerciseRow

	q := sqlf.From("workout_exercises e").
		Select("e.body_type").To(&tmp.BodyType).
		Select("e.level").To(&tmp.Level).
		Select("e.day_position").To(&tmp.Position).
		Select("e.name").To(&tmp.Name).
		Select("e.target_muscle").To(&tmp.TargetMuscle).
		Select("e.sets").To(&tmp.Sets).
		Select("e.reps").To(&tmp.Reps).
		Select("e.rest_seconds").To(&tmp.RestSeconds).
		OrderBy("e.body_type", "e.level", "e.day_position", "e.position")

	var rows []exerciseRow
	err := q.QueryAndClose(ctx, s.db, func(*sql.Rows) {
		rows = append(rows, tmp)
	})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, mapLoadError(err)
	}
	return rows, nil
}

// Replace overwrites the stored catalog. Callers wrap it in a transaction.
func (s *PostgresStorage) Replace(ctx context.Context, c workout.Catalog) error {
	if err := Validate(c); err != nil {
		return err
	}

	if _, err := sqlf.DeleteFrom("workout_days").ExecAndClose(ctx, s.db); err != nil {
		return mapLoadError(err)
	}

	for _, combo := range c.Combinations() {
		for pos, d := range c[combo.BodyType][combo.Level] {
			key := dayKey{BodyType: combo.BodyType, Level: combo.Level, Position: pos}
			if err := s.insertDay(ctx, key, d); err != nil {
				return err
			}
			for i, e := range d.Exercises {
				if err := s.insertExercise(ctx, key, i, e); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *PostgresStorage) insertDay(ctx context.Context, key dayKey, d workout.WorkoutDay) error {
	q := sqlf.InsertInto("workout_days").
		Set("body_type", string(key.BodyType)).
		Set("level", string(key.Level)).
		Set("position", key.Position).
		Set("day_label", d.Day).
		Set("title", d.Title).
		Set("duration_minutes", d.DurationMinutes)

	if _, err := q.ExecAndClose(ctx, s.db); err != nil {
		if pgutil.ViolatesConstraint(err, "workout_days_pkey") {
			return ErrDuplicateEntry
		}
		return storage.InternalError(err)
	}
	return nil
}

func (s *PostgresStorage) insertExercise(ctx context.Context, key dayKey, pos int, e workout.Exercise) error {
	q := sqlf.InsertInto("workout_exercises").
		Set("body_type", string(key.BodyType)).
		Set("level", string(key.Level)).
		Set("day_position", key.Position).
		Set("position", pos).
		Set("name", e.Name).
		Set("target_muscle", e.TargetMuscle).
		Set("sets", e.Sets).
		Set("reps", e.Reps).
		Set("rest_seconds", e.RestSeconds)

	if _, err := q.ExecAndClose(ctx, s.db); err != nil {
		if pgutil.ViolatesConstraint(err, "workout_exercises_pkey") {
			return ErrDuplicateEntry
		}
		return storage.InternalError(err)
	}
	return nil
}

func mapLoadError(err error) error {
	if pgutil.IsUndefinedTable(err) {
		return errors.Join(err, ErrCatalogNotInstalled)
	}
	return storage.InternalError(err)
}
