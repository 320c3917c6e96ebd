package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path given to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements rawconfig.Fetcher for file-based settings.
// The file contents are read at construction time and cached.
type Fetcher struct {
	path string
	data []byte
}

// NewFetcher returns a constructor for a file-backed Fetcher. The constructor
// shape lets a DI container decide when the read actually happens.
// Construction reads and caches the file; it fails when the file cannot be
// read or the path is a directory.
func NewFetcher(path string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(path)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			path: cleanPath,
			data: data,
		}, nil
	}
}

// Fetch returns a copy of the cached settings data.
// A copy is returned so callers cannot mutate the cache.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}

// Path returns the cleaned path the fetcher was constructed with.
func (f *Fetcher) Path() string {
	return f.path
}
