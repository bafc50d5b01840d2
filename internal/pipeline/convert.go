package pipeline

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lplab/converters"
	"github.com/katalvlaran/lplab/field"
	"github.com/katalvlaran/lplab/internal/config"
	"github.com/katalvlaran/lplab/lp"
)

// Convert re-expresses doc's coefficients in the field to. Decimals become
// fractions through cfg's continued-fraction settings, so "0.333333333"
// reads as 1/3; fractions become their nearest float64. A document already
// in to only has its field entry filled in.
func Convert(cfg config.Config, doc converters.Document, to field.Kind) (converters.Document, error) {
	from, err := doc.Kind(cfg.Kind())
	if err != nil {
		return converters.Document{}, fmt.Errorf("pipeline: %w", err)
	}
	if from == to {
		doc.Field = to.String()
		return doc, nil
	}
	goal, err := doc.ParseGoal()
	if err != nil {
		return converters.Document{}, fmt.Errorf("pipeline: %w", err)
	}
	form, err := doc.ParseForm()
	if err != nil {
		return converters.Document{}, fmt.Errorf("pipeline: %w", err)
	}

	if to == field.KindRational {
		src, err := converters.ToProblem[float64](cfg.Real(), doc)
		if err != nil {
			return converters.Document{}, err
		}
		dst, err := lp.ConvertProblem[float64, *big.Rat](src, field.Rational{}, field.RealToRational(cfg.Rationalizer()))
		if err != nil {
			return converters.Document{}, fmt.Errorf("pipeline: %w", err)
		}
		return converters.FromProblem(dst, goal, form), nil
	}

	src, err := converters.ToProblem[*big.Rat](field.Rational{}, doc)
	if err != nil {
		return converters.Document{}, err
	}
	dst, err := lp.ConvertProblem[*big.Rat, float64](src, cfg.Real(), field.RationalToReal())
	if err != nil {
		return converters.Document{}, fmt.Errorf("pipeline: %w", err)
	}

	return converters.FromProblem(dst, goal, form), nil
}
