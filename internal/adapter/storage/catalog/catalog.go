package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"github.com/burenotti/go_fitness_backend/internal/domain/workout"
	"github.com/r3labs/diff"
	"gopkg.in/yaml.v3"
	"os"
)

var (
	ErrInvalidCatalog      = errors.New("invalid workout catalog")
	ErrCatalogNotInstalled = errors.New("workout catalog tables are not installed")
	ErrDuplicateEntry      = errors.New("duplicate catalog entry")
)

const maxDaysPerWeek = 7

//go:embed catalog.yaml
var embeddedCatalog []byte

// Embedded returns a freshly parsed copy of the built-in catalog.
func Embedded() (workout.Catalog, error) {
	return Parse(embeddedCatalog)
}

func LoadFile(path string) (workout.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (workout.Catalog, error) {
	var c workout.Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Join(fmt.Errorf("parse catalog: %w", err), ErrInvalidCatalog)
	}
	if err := Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate requires every body type and level pair to be authored.
func Validate(c workout.Catalog) error {
	var errs []error
	for bt, levels := range c {
		if _, err := workout.ParseBodyType(string(bt)); err != nil {
			errs = append(errs, err)
		}
		for lvl := range levels {
			if _, err := workout.ParseLevel(string(lvl)); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", bt, err))
			}
		}
	}

	for _, bt := range workout.BodyTypes {
		for _, lvl := range workout.Levels {
			days, ok := c[bt][lvl]
			if !ok {
				errs = append(errs, fmt.Errorf("%s/%s: missing", bt, lvl))
				continue
			}
			if len(days) == 0 || len(days) > maxDaysPerWeek {
				errs = append(errs, fmt.Errorf("%s/%s: %d days authored", bt, lvl, len(days)))
			}
			for i, d := range days {
				if d.Day == "" || d.Title == "" || d.DurationMinutes <= 0 {
					errs = append(errs, fmt.Errorf("%s/%s day %d: incomplete header", bt, lvl, i))
				}
				if len(d.Exercises) == 0 {
					errs = append(errs, fmt.Errorf("%s/%s day %d: no exercises", bt, lvl, i))
				}
				for j, e := range d.Exercises {
					if e.Name == "" || e.Sets <= 0 {
						errs = append(errs, fmt.Errorf("%s/%s day %d exercise %d: name and sets required", bt, lvl, i, j))
					}
				}
			}
		}
	}

	if len(errs) != 0 {
		return errors.Join(append(errs, ErrInvalidCatalog)...)
	}
	return nil
}

// Compare lists the changes needed to turn from into to.
func Compare(from, to workout.Catalog) (diff.Changelog, error) {
	changes, err := diff.Diff(from, to)
	if err != nil {
		return nil, fmt.Errorf("compare catalogs: %w", err)
	}
	return changes, nil
}
