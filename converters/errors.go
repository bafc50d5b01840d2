package converters

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat indicates a file extension or format name other than json, yaml or toml.
	ErrUnknownFormat = errors.New("converters: unknown document format")

	// ErrUnknownForm indicates a form other than canonical or inequality.
	ErrUnknownForm = errors.New("converters: unknown problem form")

	// ErrInvalidDocument indicates a document that cannot describe a linear program.
	ErrInvalidDocument = errors.New("converters: invalid document")
)

func invalidField(field, msg string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidDocument, field, msg)
}
