package importer

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

	"github.com/dmitrymomot/growbuddy/pkg/validator"
)

// Format identifies a batch file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads the batch file at path.
func Load(path string) ([]validator.Record, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch: %w", err)
	}
	defer f.Close()
	return Decode(f, format)
}

// Decode reads a batch in the given format from r.
func Decode(r io.Reader, format Format) ([]validator.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read batch: %w", err)
	}

	var raw any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&raw)
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	case FormatTOML:
		var doc map[string]any
		_, err = toml.Decode(string(data), &doc)
		raw = doc
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBatch, err)
	}

	return records(raw)
}

func records(raw any) ([]validator.Record, error) {
	if doc, ok := raw.(map[string]any); ok {
		list, found := doc["plants"]
		if !found {
			return nil, fmt.Errorf("%w: missing \"plants\" list", ErrMalformedBatch)
		}
		raw = list
	}

	var items []any
	switch list := raw.(type) {
	case nil:
		return []validator.Record{}, nil
	case []any:
		items = list
	case []map[string]any:
		items = make([]any, len(list))
		for i, m := range list {
			items[i] = m
		}
	default:
		return nil, fmt.Errorf("%w: expected a list of records, got %T", ErrMalformedBatch, raw)
	}

	out := make([]validator.Record, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: record %d is %T, not an object", ErrMalformedBatch, i, item)
		}
		out = append(out, validator.Record(m))
	}
	return out, nil
}
