package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lplab/converters"
	"github.com/katalvlaran/lplab/internal/pipeline"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// problemOpts are the flags shared by commands that read a problem file.
type problemOpts struct {
	field  string
	goal   string
	form   string
	format string
}

func (o *problemOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.field, "field", "", "number field: real or rational (default from config or file)")
	cmd.Flags().StringVar(&o.goal, "goal", "", "minimize or maximize (default from file)")
	cmd.Flags().StringVar(&o.form, "form", "", "canonical (A x = b) or inequality (A x <= b)")
	cmd.Flags().StringVarP(&o.format, "format", "f", formatText, "output format: text or json")
}

func (o *problemOpts) validate() error {
	if o.format != formatText && o.format != formatJSON {
		return fmt.Errorf("unknown output format %q (want text or json)", o.format)
	}
	return nil
}

// request reads path and resolves it against the flags.
func (o *problemOpts) request(cmd *cobra.Command, path string) (pipeline.Request, *pipeline.Runner, error) {
	if err := o.validate(); err != nil {
		return pipeline.Request{}, nil, err
	}
	ctx := cmd.Context()
	cfg := configFromContext(ctx)
	logger := loggerFromContext(ctx)

	doc, err := converters.ReadFile(path)
	if err != nil {
		return pipeline.Request{}, nil, err
	}
	req, err := pipeline.NewRequest(cfg, doc, pipeline.Overrides{Field: o.field, Goal: o.goal, Form: o.form})
	if err != nil {
		return pipeline.Request{}, nil, err
	}
	logger.Debug("problem loaded",
		"path", path,
		"vars", len(doc.Objective),
		"rows", len(doc.Constraints),
		"field", req.Kind,
		"goal", req.Goal,
		"form", req.Form,
	)

	return req, pipeline.NewRunner(cfg, logger), nil
}

// emit writes v as indented JSON or its text rendering.
func emit(w io.Writer, format string, v any, text string) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
