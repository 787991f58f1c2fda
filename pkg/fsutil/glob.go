package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Glob returns the paths in dir whose base name matches pattern, in lexical order.
// dir is matched literally. A missing dir yields no matches.
func Glob(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(EscapeGlob(dir), pattern))
	if err != nil {
		return nil, fmt.Errorf("failed to match %q in %s: %w", pattern, dir, err)
	}

	return matches, nil
}

// EscapeGlob escapes the filepath.Match metacharacters in s so it only matches itself.
func EscapeGlob(s string) string {
	var builder strings.Builder

	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			builder.WriteRune('\\')
		}

		builder.WriteRune(r)
	}

	return builder.String()
}

// RemoveFiles removes paths in order and returns the ones that were removed.
// It stops at the first failure and leaves the remaining paths untouched.
// onRemoved, when set, is called after each successful removal.
func RemoveFiles(paths []string, onRemoved func(path string)) ([]string, error) {
	removed := make([]string, 0, len(paths))

	for _, path := range paths {
		err := os.Remove(path)
		if err != nil {
			return removed, fmt.Errorf("failed to remove file %s: %w", path, err)
		}

		removed = append(removed, path)

		if onRemoved != nil {
			onRemoved(path)
		}
	}

	return removed, nil
}
