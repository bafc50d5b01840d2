package converters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format int

const (
	JSON Format = iota + 1
	YAML
	TOML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat accepts "json", "yaml"/"yml" and "toml", with or without a leading dot.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatOf picks the format from the extension of path.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Decode reads one document and validates it.
func Decode(r io.Reader, format Format) (Document, error) {
	var rd rawDocument
	switch format {
	case JSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		dec.DisallowUnknownFields()
		if err := dec.Decode(&rd); err != nil {
			return Document{}, fmt.Errorf("converters: decode json: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&rd); err != nil {
			return Document{}, fmt.Errorf("converters: decode yaml: %w", err)
		}
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&rd)
		if err != nil {
			return Document{}, fmt.Errorf("converters: decode toml: %w", err)
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return Document{}, invalidField(undec[0].String(), "unknown key")
		}
	default:
		return Document{}, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}

	return mapRaw(rd)
}

// Encode writes doc in the given format.
func Encode(w io.Writer, format Format, doc Document) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(doc)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
}

// Marshal is Encode into a byte slice.
func Marshal(format Format, doc Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, format, doc); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal is Decode from a byte slice.
func Unmarshal(b []byte, format Format) (Document, error) {
	return Decode(bytes.NewReader(b), format)
}

// ReadFile decodes the document at path; the format follows the extension.
func ReadFile(path string) (Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Document{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("converters: read %s: %w", path, err)
	}
	doc, err := Unmarshal(b, format)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// WriteFile encodes doc to path; the format follows the extension.
func WriteFile(path string, doc Document) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	b, err := Marshal(format, doc)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o644)
}
