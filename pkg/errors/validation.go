package errors

import (
	"strings"
	"unicode"
)

// ValidateReference validates an image reference string for safety.
// It rejects references that could be used for path traversal or injection
// when the reference is later resolved against a bundled asset directory.
//
// The validation rules are intentionally conservative:
//   - No empty references
//   - No control characters or null bytes
//   - Maximum length of 2048 characters
//
// Classification (remote vs asset vs symbol) is done separately by the
// imageref package; this only guards the raw string.
func ValidateReference(src string) error {
	if src == "" {
		return New(ErrCodeInvalidReference, "image reference cannot be empty")
	}

	if len(src) > 2048 {
		return New(ErrCodeInvalidReference, "image reference too long (max 2048 characters)")
	}

	for _, r := range src {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidReference, "image reference contains invalid control characters")
		}
	}

	return nil
}

// ValidatePath validates a relative file path for safety.
// It prevents path traversal attacks when serving bundled assets or fixture
// images from a directory.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Must not be absolute path
	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
