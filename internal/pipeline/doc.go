// Package pipeline is the document → problem → solver path shared by the
// CLI, the HTTP server and the TUI.
//
// A Request names a document plus the field, goal and form it is read with.
// The Runner applies the configured limits and options, runs the simplex or
// graphical solver over the requested field, and returns field-agnostic
// results: every number is formatted text, and a lipgloss rendering rides
// along for terminals.
//
//	runner := pipeline.NewRunner(cfg, logger)
//	req, err := pipeline.NewRequest(cfg, doc, pipeline.Overrides{Goal: "max"})
//	res, err := runner.Solve(ctx, req)
//
// Sessions wrap a simplex.Controller for step-by-step navigation.
package pipeline
