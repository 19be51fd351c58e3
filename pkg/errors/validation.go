package errors

import (
	"net"
	"strconv"
	"strings"
	"unicode"
)

// ValidateIndent validates an indentation unit for rendered output.
// The unit must be non-empty and made only of spaces, or be a single tab.
//
// Mixed units are rejected because a re-parse of the output would treat them
// inconsistently.
func ValidateIndent(indent string) error {
	if indent == "" {
		return New(ErrCodeInvalidConfig, "indent cannot be empty")
	}
	if indent == "\t" {
		return nil
	}
	const maxIndent = 16
	if len(indent) > maxIndent {
		return New(ErrCodeInvalidConfig, "indent too long (max %d characters)", maxIndent)
	}
	if strings.Trim(indent, " ") != "" {
		return New(ErrCodeInvalidConfig, "indent must be spaces or a single tab: %q", indent)
	}
	return nil
}

// ValidatePath validates an output file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
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

	return nil
}

// ValidateCacheBackend validates a cache backend name.
func ValidateCacheBackend(name string) error {
	switch name {
	case "file", "redis", "none":
		return nil
	}
	return New(ErrCodeInvalidConfig, "unknown cache backend %q (want file, redis or none)", name)
}

// ValidateAddr validates a host:port listen or dial address.
// The host may be empty ("":8080 listens on all interfaces).
func ValidateAddr(addr string) error {
	if addr == "" {
		return New(ErrCodeInvalidConfig, "address cannot be empty")
	}
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return Wrap(ErrCodeInvalidConfig, err, "invalid address %q", addr)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return New(ErrCodeInvalidConfig, "invalid port in address %q", addr)
	}
	return nil
}
