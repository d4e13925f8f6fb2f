package http

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const maxFilenameBytes = 255

// unsafeFilenameChars break the quoted header value or act as separators.
var unsafeFilenameChars = map[rune]bool{
	'"':  true,
	'\\': true,
	'/':  true,
	':':  true,
}

// ContentDisposition builds an attachment header for a user-chosen name.
func ContentDisposition(name string) string {
	return fmt.Sprintf("attachment; filename=%q", sanitizeFilename(name))
}

func sanitizeFilename(name string) string {
	clean := strings.Map(func(r rune) rune {
		if r < 32 || r == 127 || unsafeFilenameChars[r] {
			return '_'
		}
		return r
	}, name)
	clean = strings.TrimSpace(clean)

	if strings.Trim(clean, "_.") == "" {
		return "assembly.mp4"
	}
	if len(clean) <= maxFilenameBytes {
		return clean
	}

	ext := filepath.Ext(clean)
	if ext == "" || len(ext) >= maxFilenameBytes {
		return truncateUTF8(clean, maxFilenameBytes)
	}
	return truncateUTF8(strings.TrimSuffix(clean, ext), maxFilenameBytes-len(ext)) + ext
}

// truncateUTF8 cuts s to at most n bytes on a rune boundary.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
