package utils

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// ExpandHome replaces a leading "~" with the current user's home directory.
// Paths without the prefix, and "~user" forms, are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

const maxFileNameLength = 200

// SanitizeFileName turns a name suggested by a remote service into a single
// safe path element: separators and control characters are replaced,
// surrounding dots and spaces trimmed, and overlong names shortened while
// keeping the extension. It returns "" when nothing usable remains.
func SanitizeFileName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' ||
			r == '"' || r == '<' || r == '>' || r == '|':
			return '_'
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, name)

	name = strings.Trim(name, " .")
	if name == "" || strings.Trim(name, "_") == "" {
		return ""
	}

	if len(name) > maxFileNameLength {
		ext := filepath.Ext(name)
		if len(ext) > 16 {
			ext = ""
		}
		name = truncateUTF8(strings.TrimSuffix(name, ext), maxFileNameLength-len(ext)) + ext
	}

	return name
}

func truncateUTF8(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !isRuneStart(s[max]) {
		max--
	}
	return s[:max]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
