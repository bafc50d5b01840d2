package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/internal/config"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lplab.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)

	cfg, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.Equal(t, field.KindRational, cfg.Kind())
	require.Equal(t, 48, cfg.MaxIterations)
	require.Equal(t, 16, cfg.Limits.MaxVariables)
}

func TestLoad_Merge(t *testing.T) {
	path := write(t, `
field = "real"
max_iterations = 10

[rationalize]
max_denominator = 1000

[server]
addr = ":9090"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, field.KindReal, cfg.Kind())
	require.Equal(t, 10, cfg.MaxIterations)
	require.Equal(t, int64(1000), cfg.Rationalize.MaxDenominator)
	require.Equal(t, field.DefaultRationalizeIterations, cfg.Rationalize.MaxIterations)
	require.Equal(t, ":9090", cfg.Server.Addr)
	require.Equal(t, field.DefaultEpsilon, cfg.Real().Eps)

	r := cfg.Rationalizer()
	q, err := r.Approximate(0.3333333333)
	require.NoError(t, err)
	require.Equal(t, "1/3", q.RatString())
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"syntax":      "field = ",
		"unknown key": "colour = \"red\"",
		"field":       "field = \"complex\"",
		"iterations":  "max_iterations = 0",
		"padding":     "[graphical]\npadding = -1.0",
		"denominator": "[rationalize]\nmax_denominator = 0",
		"limits":      "[limits]\nmax_variables = 0",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(write(t, body))
			require.Error(t, err)
		})
	}

	_, err := config.Load(write(t, "max_iterations = -3"))
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestCheckSize(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.CheckSize(16, 16))
	require.ErrorIs(t, cfg.CheckSize(17, 1), config.ErrInvalid)
	require.ErrorIs(t, cfg.CheckSize(1, 17), config.ErrInvalid)
}
