package pipeline

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lplab/converters"
	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/internal/config"
	"github.com/katalvlaran/lplab/lp"
)

// Overrides replace document entries; empty strings keep the document's value.
type Overrides struct {
	Field string
	Goal  string
	Form  string
}

// Request is a validated document with its resolved reading.
type Request struct {
	Document converters.Document
	Kind     field.Kind
	Goal     lp.Goal
	Form     converters.Form
	// Verify cross-checks simplex results with the reference solver.
	Verify bool
}

// NewRequest resolves doc against ov and the configured default field. A
// field override that differs from the document's own converts its
// coefficients with Convert.
func NewRequest(cfg config.Config, doc converters.Document, ov Overrides) (Request, error) {
	orig := doc
	if s := strings.TrimSpace(ov.Field); s != "" {
		doc.Field = s
	}
	if s := strings.TrimSpace(ov.Goal); s != "" {
		doc.Goal = s
	}
	if s := strings.TrimSpace(ov.Form); s != "" {
		doc.Form = s
	}
	if err := doc.Validate(); err != nil {
		return Request{}, err
	}
	if err := cfg.CheckSize(len(doc.Objective), len(doc.Constraints)); err != nil {
		return Request{}, err
	}

	kind, err := doc.Kind(cfg.Kind())
	if err != nil {
		return Request{}, fmt.Errorf("pipeline: %w", err)
	}
	if doc.Field != orig.Field {
		src := doc
		src.Field = orig.Field
		if doc, err = Convert(cfg, src, kind); err != nil {
			return Request{}, err
		}
	}
	goal, err := doc.ParseGoal()
	if err != nil {
		return Request{}, fmt.Errorf("pipeline: %w", err)
	}
	form, err := doc.ParseForm()
	if err != nil {
		return Request{}, fmt.Errorf("pipeline: %w", err)
	}

	return Request{Document: doc, Kind: kind, Goal: goal, Form: form}, nil
}

// problem parses the document over f. With slacks set, an Inequality
// document is brought to canonical form.
func problem[T any](f field.Field[T], req Request, slacks bool) (*lp.ProblemData[T], error) {
	data, err := converters.ToProblem(f, req.Document)
	if err != nil {
		return nil, err
	}
	if slacks && req.Form == converters.Inequality {
		data = data.WithSlacks()
	}

	return data, nil
}
