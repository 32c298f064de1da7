// Package output serializes site descriptors for the external build
// pipeline.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/foundation/normalization"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var formats = normalization.NewNormalizer(map[string]Format{
	"json": FormatJSON,
	"yaml": FormatYAML,
	"yml":  FormatYAML,
}, FormatJSON)

// ParseFormat resolves a format name; blank means JSON.
func ParseFormat(raw string) (Format, error) {
	f, ok := formats.Parse(raw)
	if !ok {
		return "", errors.ValidationFailure(fmt.Sprintf("unknown output format %q (want %s)", raw, formats.OneOf())).Build()
	}
	return f, nil
}

// FormatForPath picks the format from a file extension, falling back to
// fallback for unknown or missing extensions.
func FormatForPath(path string, fallback Format) Format {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if f, ok := formats.Parse(ext); ok && ext != "" {
		return f
	}
	return fallback
}

// Encode renders one descriptor. YAML keys follow the JSON field names.
func Encode(desc *site.SiteDescriptor, format Format) ([]byte, error) {
	return encode(desc, format)
}

// EncodeVariants renders the base descriptor under "site" and the variant
// descriptors under "variants", keyed by variant name.
func EncodeVariants(base *site.SiteDescriptor, results []site.VariantResult, format Format) ([]byte, error) {
	doc := make(map[string]site.Document, len(results))
	for _, r := range results {
		doc[r.Name] = r.Descriptor.Document()
	}
	return encode(map[string]any{"site": base.Document(), "variants": doc}, format)
}

func encode(v any, format Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(v)
	case FormatJSON, "":
		data, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	default:
		return nil, errors.ValidationFailure(fmt.Sprintf("unknown output format %q", format)).Build()
	}
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "encode descriptor").Build()
	}
	return data, nil
}

// Write writes data to path atomically, or to w when path is "" or "-".
func Write(path string, data []byte, w io.Writer) error {
	if path == "" || path == "-" {
		if _, err := w.Write(data); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "write output").Build()
		}
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "ensure output directory").
				WithContext("path", dir).Build()
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "write temp output").
			WithContext("path", tmp).Build()
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.WrapError(err, errors.CategoryFileSystem, "atomic rename output").
			WithContext("path", path).Build()
	}
	return nil
}
