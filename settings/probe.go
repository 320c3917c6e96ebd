package settings

import "os"

// ReadProbe reports whether the resource at path exists and is readable.
// It is the single point where validation touches the outside world.
type ReadProbe func(path string) bool

// FileProbe is the default ReadProbe, backed by the local filesystem.
// A path is readable when it can be opened and is not a directory.
func FileProbe(path string) bool {
	handle, err := os.Open(path) // #nosec G304 -- probing a user-supplied path is the point
	if err != nil {
		return false
	}

	defer func() {
		_ = handle.Close()
	}()

	stat, err := handle.Stat()
	if err != nil {
		return false
	}

	return !stat.IsDir()
}
