// Package file provides a file-based Fetcher implementation for the
// rawconfig package.
//
// The settings file is read once at construction time and cached, so every
// Fetch returns the same bytes the process started with; a settings file
// edited mid-run has no effect until restart. Construction fails when the
// file cannot be read or the path points to a directory, and the error keeps
// the offending path for easier debugging. Use
// errors.Is(err, file.ErrPathIsDirectory) to detect the directory case.
package file
