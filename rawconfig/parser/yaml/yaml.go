package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrSectionNotFound is returned when the requested section is not present in the document.
var ErrSectionNotFound = errors.New("section not found")

// Parser implements rawconfig.Parser for YAML documents.
// It uses goccy/go-yaml PathString for section navigation.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes YAML data into an untyped mapping. The section parameter is
// a colon-separated path into the document; the empty section decodes the
// whole document. Scalar values keep whatever Go type the decoder gives them.
func (p *Parser) Parse(data []byte, section string) (map[string]any, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	raw := map[string]any{}

	if section == "" {
		err := yaml.Unmarshal(data, &raw)
		if err != nil {
			return nil, fmt.Errorf("unmarshal error: %w", err)
		}

		return raw, nil
	}

	pathObj, err := yaml.PathString(toYAMLPath(section))
	if err != nil {
		return nil, fmt.Errorf("invalid section %q: %w", section, err)
	}

	reader := bytes.NewReader(data)

	err = pathObj.Read(reader, &raw)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, section)
		}

		return nil, fmt.Errorf("reading section %q: %w", section, err)
	}

	return raw, nil
}

// toYAMLPath converts a colon-separated section to goccy/go-yaml PathString
// format.
// Examples:
//   - "drill" -> "$.drill"
//   - "tools:typedrill" -> "$.tools.typedrill"
func toYAMLPath(section string) string {
	parts := strings.Split(section, ":")

	return "$." + strings.Join(parts, ".")
}
