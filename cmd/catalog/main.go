// Command catalog manages the Postgres copy of the workout catalog.
//
//	catalog [-config path] seed      write the built-in catalog to Postgres
//	catalog [-config path] diff      compare Postgres with the built-in catalog
//	catalog validate FILE            check a YAML catalog file
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/burenotti/go_fitness_backend/internal/adapter/storage"
	"github.com/burenotti/go_fitness_backend/internal/adapter/storage/catalog"
	"github.com/burenotti/go_fitness_backend/internal/config"
	"github.com/burenotti/go_fitness_backend/internal/domain/workout"
	"github.com/leporo/sqlf"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config/config.yaml", "path to config file")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: catalog [-config path] seed|diff|validate FILE")
		flag.PrintDefaults()
	}
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code, err := run(ctx, configPath, flag.Args(), os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "catalog:", err)
	}
	os.Exit(code)
}

func run(ctx context.Context, configPath string, args []string, out io.Writer) (int, error) {
	if len(args) == 0 {
		flag.Usage()
		return 2, nil
	}

	switch args[0] {
	case "validate":
		if len(args) != 2 {
			return 2, fmt.Errorf("validate needs a file")
		}
		c, err := catalog.LoadFile(args[1])
		if err != nil {
			return 1, err
		}
		fmt.Fprintf(out, "ok: %d combinations, %d exercises\n", len(c.Combinations()), len(c.Exercises()))
		return 0, nil
	case "seed", "diff":
	default:
		return 2, fmt.Errorf("unknown command %q", args[0])
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return 1, err
	}
	if cfg.DB.DSN == "" {
		return 1, fmt.Errorf("db.dsn is not configured")
	}

	sqlf.SetDialect(sqlf.PostgreSQL)
	db, err := storage.Open(ctx, cfg.DB.DSN)
	if err != nil {
		return 1, err
	}
	defer db.Close()

	builtin, err := catalog.Embedded()
	if err != nil {
		return 1, err
	}

	if args[0] == "seed" {
		return seed(ctx, db, builtin, out)
	}

	stored, err := catalog.NewPostgresStorage(db).Load(ctx)
	if err != nil {
		return 1, err
	}
	changes, err := catalog.Compare(stored, builtin)
	if err != nil {
		return 1, err
	}
	for _, ch := range changes {
		fmt.Fprintf(out, "%s %s: %v -> %v\n", ch.Type, strings.Join(ch.Path, "."), ch.From, ch.To)
	}
	if len(changes) != 0 {
		return 1, nil
	}
	fmt.Fprintln(out, "catalog is up to date")
	return 0, nil
}

func seed(ctx context.Context, db *storage.DB, builtin workout.Catalog, out io.Writer) (int, error) {
	err := storage.Atomic(ctx, db, func(tx storage.DBContext) error {
		s := catalog.NewPostgresStorage(tx)
		if err := s.EnsureSchema(ctx); err != nil {
			return err
		}
		return s.Replace(ctx, builtin)
	})
	if err != nil {
		return 1, err
	}

	fmt.Fprintf(out, "seeded %d combinations\n", len(builtin.Combinations()))
	return 0, nil
}
