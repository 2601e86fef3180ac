package config

import (
	"errors"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"time"
)

var (
	ErrConfigNotLoaded = errors.New("config not loaded")
)

type Environment string

const (
	Production  Environment = "prod"
	Development Environment = "dev"
)

func (e *Environment) SetValue(s string) error {
	*e = Environment(s)
	if *e != Production && *e != Development {
		return configNotLoadedErr(`only "prod" and "dev" environments are allowed`)
	}
	return nil
}

type CatalogSource string

const (
	CatalogEmbedded CatalogSource = "embedded"
	CatalogFile     CatalogSource = "file"
	CatalogPostgres CatalogSource = "postgres"
)

func (s *CatalogSource) SetValue(v string) error {
	*s = CatalogSource(v)
	switch *s {
	case CatalogEmbedded, CatalogFile, CatalogPostgres:
		return nil
	}
	return configNotLoadedErr(`catalog source must be one of "embedded", "file", "postgres"`)
}

type Config struct {
	App struct {
		Env Environment `yaml:"env" env:"ENV" env-required:""`
	} `yaml:"app" env-prefix:"APP_" env-required:""`

	Server struct {
		Host string `yaml:"host" env:"HOST" env-default:"localhost"`
		Port int    `yaml:"port" env:"PORT" env-default:"8080"`
	} `yaml:"server" env-prefix:"SERVER_"`

	Catalog struct {
		Source CatalogSource `yaml:"source" env:"SOURCE" env-default:"embedded"`
		Path   string        `yaml:"path" env:"PATH"`
	} `yaml:"catalog" env-prefix:"CATALOG_"`

	DB struct {
		DSN string `yaml:"dsn" env:"DSN"`
	} `yaml:"db" env-prefix:"DB_"`

	// Delays emulate the loading state of the web form. Zero disables them.
	Calculator struct {
		Delay             time.Duration `yaml:"delay" env:"DELAY" env-default:"0s"`
		ValidateConverted bool          `yaml:"validate_converted" env:"VALIDATE_CONVERTED" env-default:"false"`
	} `yaml:"calculator" env-prefix:"CALCULATOR_"`

	Planner struct {
		Delay time.Duration `yaml:"delay" env:"DELAY" env-default:"0s"`
	} `yaml:"planner" env-prefix:"PLANNER_"`
}

func Load(filePath string) (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadConfig(filePath, cfg); err != nil {
		return nil, configNotLoadedErr("config not loaded: %w", err)
	}

	if err := cfg.check(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func MustLoad(filePath string) *Config {
	cfg, err := Load(filePath)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) check() error {
	if err := c.Catalog.Source.SetValue(string(c.Catalog.Source)); err != nil {
		return err
	}
	if err := c.App.Env.SetValue(string(c.App.Env)); err != nil {
		return err
	}

	switch {
	case c.Catalog.Source == CatalogFile && c.Catalog.Path == "":
		return configNotLoadedErr("catalog.path is required for the file source")
	case c.Catalog.Source == CatalogPostgres && c.DB.DSN == "":
		return configNotLoadedErr("db.dsn is required for the postgres source")
	case c.Calculator.Delay < 0 || c.Planner.Delay < 0:
		return configNotLoadedErr("delays must not be negative")
	}
	return nil
}

func configNotLoadedErr(format string, args ...any) error {
	return errors.Join(fmt.Errorf(format, args...), ErrConfigNotLoaded)
}
