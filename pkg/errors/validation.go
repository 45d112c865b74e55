package errors

import (
	"unicode"
	"unicode/utf8"
)

const (
	maxNameLength = 256
	maxPathLength = 4096
)

// ValidateName validates a vampire name read from a file or the command line.
//
// Names are the identity of a vampire, so they must be non-empty, valid UTF-8,
// at most 256 bytes, and free of control characters (which would break the
// tree view and DOT output).
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "vampire name cannot be empty")
	}
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "vampire name too long (max %d characters)", maxNameLength)
	}
	if !utf8.ValidString(name) {
		return New(ErrCodeInvalidName, "vampire name is not valid UTF-8")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "vampire name contains invalid control characters")
		}
	}
	return nil
}

// ValidatePath validates a tree file path given on the command line.
// Absolute and relative paths are both accepted; empty paths, overly long
// paths, and paths containing control characters are not.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}
