// Package config loads lplab settings from a TOML file.
//
//	field = "rational"
//	epsilon = 1e-9
//	max_iterations = 48
//
//	[rationalize]
//	epsilon = 1e-8
//	max_iterations = 22
//	max_denominator = 1000000
//
//	[limits]
//	max_variables = 16
//	max_constraints = 16
//
//	[graphical]
//	padding = 0.1
//
//	[server]
//	addr = ":8080"
//
// Keys missing from the file keep their Default values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/graphical"
	"github.com/katalvlaran/lplab/simplex"
)

// ErrInvalid indicates a configuration value out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full settings tree.
type Config struct {
	Field         string      `toml:"field"`
	Epsilon       float64     `toml:"epsilon"`
	MaxIterations int         `toml:"max_iterations"`
	Rationalize   Rationalize `toml:"rationalize"`
	Limits        Limits      `toml:"limits"`
	Graphical     Graphical   `toml:"graphical"`
	Server        Server      `toml:"server"`
}

// Rationalize configures the continued-fraction approximation.
type Rationalize struct {
	Epsilon        float64 `toml:"epsilon"`
	MaxIterations  int     `toml:"max_iterations"`
	MaxDenominator int64   `toml:"max_denominator"`
}

// Limits caps the problem size accepted by the CLI and the server.
type Limits struct {
	MaxVariables   int `toml:"max_variables"`
	MaxConstraints int `toml:"max_constraints"`
}

// Graphical configures the 2-D solver.
type Graphical struct {
	Padding float64 `toml:"padding"`
}

// Server configures the HTTP surface.
type Server struct {
	Addr string `toml:"addr"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Field:         field.KindRational.String(),
		Epsilon:       field.DefaultEpsilon,
		MaxIterations: simplex.DefaultMaxIterations,
		Rationalize: Rationalize{
			Epsilon:        field.DefaultRationalizeEpsilon,
			MaxIterations:  field.DefaultRationalizeIterations,
			MaxDenominator: field.DefaultMaxDenominator,
		},
		Limits:    Limits{MaxVariables: 16, MaxConstraints: 16},
		Graphical: Graphical{Padding: graphical.DefaultPadding},
		Server:    Server{Addr: "127.0.0.1:8080"},
	}
}

// Load reads path over Default and validates the result. An empty path or a
// missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	md, err := toml.Decode(string(b), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("%w: %s: unknown key %q", ErrInvalid, path, undec[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every value.
func (c Config) Validate() error {
	if _, err := field.ParseKind(c.Field); err != nil {
		return fmt.Errorf("%w: field: %w", ErrInvalid, err)
	}
	checks := []struct {
		ok   bool
		name string
	}{
		{c.Epsilon >= 0 && !math.IsInf(c.Epsilon, 0), "epsilon"},
		{c.MaxIterations >= 1, "max_iterations"},
		{c.Rationalize.Epsilon >= 0 && !math.IsInf(c.Rationalize.Epsilon, 0), "rationalize.epsilon"},
		{c.Rationalize.MaxIterations >= 0, "rationalize.max_iterations"},
		{c.Rationalize.MaxDenominator >= 1, "rationalize.max_denominator"},
		{c.Limits.MaxVariables >= 1, "limits.max_variables"},
		{c.Limits.MaxConstraints >= 1, "limits.max_constraints"},
		{c.Graphical.Padding >= 0 && !math.IsInf(c.Graphical.Padding, 0), "graphical.padding"},
		{c.Server.Addr != "", "server.addr"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, chk.name)
		}
	}

	return nil
}

// Kind returns the configured field kind.
func (c Config) Kind() field.Kind {
	k, err := field.ParseKind(c.Field)
	if err != nil {
		return field.KindRational
	}

	return k
}

// Real returns the float field with the configured tolerance.
func (c Config) Real() field.Real { return field.Real{Eps: c.Epsilon} }

// Rationalizer returns the configured approximation settings.
func (c Config) Rationalizer() field.Rationalizer {
	return field.Rationalizer{
		Eps:            c.Rationalize.Epsilon,
		MaxIterations:  c.Rationalize.MaxIterations,
		MaxDenominator: c.Rationalize.MaxDenominator,
	}
}

// CheckSize reports whether an n-variable, m-row program is within Limits.
func (c Config) CheckSize(n, m int) error {
	if n > c.Limits.MaxVariables {
		return fmt.Errorf("%w: %d variables exceed limits.max_variables=%d", ErrInvalid, n, c.Limits.MaxVariables)
	}
	if m > c.Limits.MaxConstraints {
		return fmt.Errorf("%w: %d constraints exceed limits.max_constraints=%d", ErrInvalid, m, c.Limits.MaxConstraints)
	}

	return nil
}
