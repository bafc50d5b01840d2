package converters_test

import (
	"bytes"
	"math/big"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lplab/converters"
	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/lp"
)

var textbookDoc = converters.Document{
	Goal:      "minimize",
	Form:      "canonical",
	Field:     "rational",
	Objective: []string{"-10", "5", "7", "-3"},
	Constraints: [][]string{
		{"-1", "-2", "3", "3"},
		{"1", "1", "7", "2"},
		{"2", "2", "8", "1"},
	},
	RHS: []string{"3/2", "7/2", "4"},
}

func TestReadFile_Testdata(t *testing.T) {
	for _, name := range []string{"textbook.json", "textbook.toml"} {
		t.Run(name, func(t *testing.T) {
			doc, err := converters.ReadFile(filepath.Join("testdata", name))
			require.NoError(t, err)
			if diff := cmp.Diff(textbookDoc, doc); diff != "" {
				t.Fatalf("document mismatch (-want +got):\n%s", diff)
			}
		})
	}

	doc, err := converters.ReadFile(filepath.Join("testdata", "factory.yaml"))
	require.NoError(t, err)
	require.Equal(t, []string{"3", "5"}, doc.Objective)
	form, err := doc.ParseForm()
	require.NoError(t, err)
	require.Equal(t, converters.Inequality, form)
	goal, err := doc.ParseGoal()
	require.NoError(t, err)
	require.Equal(t, lp.Maximize, goal)
	kind, err := doc.Kind(field.KindReal)
	require.NoError(t, err)
	require.Equal(t, field.KindReal, kind)
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []converters.Format{converters.JSON, converters.YAML, converters.TOML} {
		t.Run(format.String(), func(t *testing.T) {
			b, err := converters.Marshal(format, textbookDoc)
			require.NoError(t, err)
			got, err := converters.Unmarshal(b, format)
			require.NoError(t, err)
			require.Empty(t, cmp.Diff(textbookDoc, got))
		})
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	for _, ext := range []string{".json", ".yml", ".toml"} {
		path := filepath.Join(dir, "p"+ext)
		require.NoError(t, converters.WriteFile(path, textbookDoc))
		got, err := converters.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, textbookDoc, got)
	}

	require.ErrorIs(t, converters.WriteFile(filepath.Join(dir, "p.txt"), textbookDoc), converters.ErrUnknownFormat)
	_, err := converters.ReadFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		format converters.Format
		input  string
	}{
		{"unknown json key", converters.JSON, `{"goal":"min","objective":[1],"constraints":[[1]],"rhs":[1],"extra":1}`},
		{"unknown yaml key", converters.YAML, "goal: min\nobjective: [1]\nconstraints: [[1]]\nrhs: [1]\nextra: 1\n"},
		{"unknown toml key", converters.TOML, "goal = \"min\"\nobjective = [1]\nconstraints = [[1]]\nrhs = [1]\nextra = 1\n"},
		{"bad goal", converters.JSON, `{"goal":"up","objective":[1],"constraints":[[1]],"rhs":[1]}`},
		{"bad form", converters.JSON, `{"form":"mixed","objective":[1],"constraints":[[1]],"rhs":[1]}`},
		{"bad field", converters.JSON, `{"field":"complex","objective":[1],"constraints":[[1]],"rhs":[1]}`},
		{"no objective", converters.JSON, `{"constraints":[[1]],"rhs":[1]}`},
		{"no rows", converters.JSON, `{"objective":[1],"constraints":[],"rhs":[]}`},
		{"rhs length", converters.YAML, "objective: [1, 2]\nconstraints: [[1, 2]]\nrhs: [1, 2]\n"},
		{"ragged row", converters.YAML, "objective: [1, 2]\nconstraints: [[1, 2], [1]]\nrhs: [1, 2]\n"},
		{"bool coefficient", converters.YAML, "objective: [true]\nconstraints: [[1]]\nrhs: [1]\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := converters.Decode(strings.NewReader(tc.input), tc.format)
			require.Error(t, err)
		})
	}

	_, err := converters.Decode(strings.NewReader(`{"objective":[1],"constraints":[[1]],"rhs":[1,2]}`), converters.JSON)
	require.ErrorIs(t, err, converters.ErrInvalidDocument)
	_, err = converters.Decode(strings.NewReader(""), converters.Format(9))
	require.ErrorIs(t, err, converters.ErrUnknownFormat)
	require.ErrorIs(t, converters.Encode(&bytes.Buffer{}, converters.Format(9), textbookDoc), converters.ErrUnknownFormat)
}

func TestToProblem(t *testing.T) {
	f := field.Rational{}
	p, err := converters.ToProblem[*big.Rat](f, textbookDoc)
	require.NoError(t, err)
	require.Equal(t, 4, p.Vars())
	require.Equal(t, 3, p.Constraints())
	require.Equal(t, "3/2", p.RHS()[0].RatString())

	reals, err := converters.ToProblem[float64](field.Real{}, textbookDoc)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 3.5, 4}, reals.RHS())

	bad := textbookDoc
	bad.RHS = []string{"3/2", "x", "4"}
	_, err = converters.ToProblem[*big.Rat](f, bad)
	require.ErrorIs(t, err, converters.ErrInvalidDocument)
	require.ErrorContains(t, err, "rhs[1]")
}

func TestFromProblem(t *testing.T) {
	f := field.Rational{}
	p, err := converters.ToProblem[*big.Rat](f, textbookDoc)
	require.NoError(t, err)

	doc := converters.FromProblem(p, lp.Minimize, converters.Canonical)
	require.Equal(t, textbookDoc, doc)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]converters.Format{
		"json": converters.JSON, ".yaml": converters.YAML, "YML": converters.YAML, ".toml": converters.TOML,
	} {
		got, err := converters.ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := converters.ParseFormat("xml")
	require.ErrorIs(t, err, converters.ErrUnknownFormat)

	_, err = converters.ParseForm("mixed")
	require.ErrorIs(t, err, converters.ErrUnknownForm)
	assert.Equal(t, "inequality", converters.Inequality.String())
}
