// Package propel reads Propel schema files and returns the class-name stems of
// the tables they declare.
package propel

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

type Format string

const (
	FormatXML  Format = "xml"
	FormatYAML Format = "yml"
)

// DetectFormat infers the schema dialect from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "xml":
		return FormatXML, nil
	case "yml", "yaml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ReadTableNames returns the table names of the schema at path in document
// order. Duplicates are kept.
func ReadTableNames(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	var tables []table
	switch format {
	case FormatXML:
		tables, err = readXML(path)
	case FormatYAML:
		tables, err = readYAML(path)
	}
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(tables))
	for _, t := range tables {
		names = append(names, t.className())
	}
	return names, nil
}

type table struct {
	Name    string
	PHPName string
}

func (t table) className() string {
	if t.PHPName != "" {
		return t.PHPName
	}
	return ClassName(t.Name)
}
