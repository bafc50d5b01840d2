package converters

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/lp"
)

// Form tells how the constraint rows are read.
type Form int

const (
	// Canonical rows are equalities A x = b.
	Canonical Form = iota
	// Inequality rows are A x ≤ b; the simplex path appends slacks.
	Inequality
)

func (f Form) String() string {
	switch f {
	case Canonical:
		return "canonical"
	case Inequality:
		return "inequality"
	default:
		return fmt.Sprintf("Form(%d)", int(f))
	}
}

// ParseForm accepts "canonical"/"equality" and "inequality"/"standard"; the
// empty string means Canonical.
func ParseForm(s string) (Form, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "canonical", "equality", "eq":
		return Canonical, nil
	case "inequality", "standard", "le":
		return Inequality, nil
	default:
		return Canonical, fmt.Errorf("%w: %q", ErrUnknownForm, s)
	}
}

// Document is the serialised shape of a linear program.
type Document struct {
	Goal        string     `json:"goal" yaml:"goal" toml:"goal"`
	Form        string     `json:"form,omitempty" yaml:"form,omitempty" toml:"form,omitempty"`
	Field       string     `json:"field,omitempty" yaml:"field,omitempty" toml:"field,omitempty"`
	Objective   []string   `json:"objective" yaml:"objective" toml:"objective"`
	Constraints [][]string `json:"constraints" yaml:"constraints" toml:"constraints"`
	RHS         []string   `json:"rhs" yaml:"rhs" toml:"rhs"`
}

// rawDocument is what the decoders fill; coefficients may arrive as numbers.
type rawDocument struct {
	Goal        string  `json:"goal" yaml:"goal" toml:"goal"`
	Form        string  `json:"form" yaml:"form" toml:"form"`
	Field       string  `json:"field" yaml:"field" toml:"field"`
	Objective   []any   `json:"objective" yaml:"objective" toml:"objective"`
	Constraints [][]any `json:"constraints" yaml:"constraints" toml:"constraints"`
	RHS         []any   `json:"rhs" yaml:"rhs" toml:"rhs"`
}

// ParseGoal parses the goal entry.
func (d Document) ParseGoal() (lp.Goal, error) { return lp.ParseGoal(d.Goal) }

// ParseForm parses the form entry.
func (d Document) ParseForm() (Form, error) { return ParseForm(d.Form) }

// Kind parses the field entry; an empty entry means fallback.
func (d Document) Kind(fallback field.Kind) (field.Kind, error) {
	if strings.TrimSpace(d.Field) == "" {
		return fallback, nil
	}

	return field.ParseKind(d.Field)
}

// Validate checks the enumerations and that the shapes agree.
func (d Document) Validate() error {
	if _, err := d.ParseGoal(); err != nil {
		return invalidField("goal", err.Error())
	}
	if _, err := d.ParseForm(); err != nil {
		return invalidField("form", err.Error())
	}
	if strings.TrimSpace(d.Field) != "" {
		if _, err := field.ParseKind(d.Field); err != nil {
			return invalidField("field", err.Error())
		}
	}
	if len(d.Objective) == 0 {
		return invalidField("objective", "at least one variable is required")
	}
	if len(d.Constraints) == 0 {
		return invalidField("constraints", "at least one row is required")
	}
	if len(d.RHS) != len(d.Constraints) {
		return invalidField("rhs", fmt.Sprintf("got %d entries for %d rows", len(d.RHS), len(d.Constraints)))
	}
	for i, row := range d.Constraints {
		if len(row) != len(d.Objective) {
			return invalidField(fmt.Sprintf("constraints[%d]", i),
				fmt.Sprintf("got %d entries for %d variables", len(row), len(d.Objective)))
		}
	}

	return nil
}

func mapRaw(rd rawDocument) (Document, error) {
	doc := Document{
		Goal:  rd.Goal,
		Form:  rd.Form,
		Field: rd.Field,
	}
	var err error
	if doc.Objective, err = scalars("objective", rd.Objective); err != nil {
		return Document{}, err
	}
	if doc.RHS, err = scalars("rhs", rd.RHS); err != nil {
		return Document{}, err
	}
	doc.Constraints = make([][]string, len(rd.Constraints))
	for i, row := range rd.Constraints {
		if doc.Constraints[i], err = scalars(fmt.Sprintf("constraints[%d]", i), row); err != nil {
			return Document{}, err
		}
	}

	return doc, doc.Validate()
}

func scalars(name string, xs []any) ([]string, error) {
	out := make([]string, len(xs))
	for i, x := range xs {
		s, err := scalar(x)
		if err != nil {
			return nil, invalidField(fmt.Sprintf("%s[%d]", name, i), err.Error())
		}
		out[i] = s
	}

	return out, nil
}

// scalar renders one decoded coefficient as text.
func scalar(x any) (string, error) {
	switch v := x.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported value %v (%T)", x, x)
	}
}
