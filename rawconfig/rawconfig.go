package rawconfig

import "fmt"

// Parser decodes raw configuration bytes into an untyped mapping.
//
// The section parameter selects a sub-mapping of the document using colon (:)
// as the separator for nested keys; the empty section means the whole
// document. Parser implementations are responsible for section navigation.
type Parser interface {
	Parse(data []byte, section string) (map[string]any, error)
}

// Fetcher reads raw configuration data from some source.
type Fetcher interface {
	Fetch() ([]byte, error)
}

// Load fetches and parses a raw settings mapping. The mapping is untyped on
// purpose; typing and semantic checks are the validator's job, not the
// loader's.
func Load(parser Parser, fetcher Fetcher, section string) (map[string]any, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading data error: %w", err)
	}

	raw, err := parser.Parse(data, section)
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	return raw, nil
}
