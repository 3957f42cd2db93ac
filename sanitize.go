package xhsimport

import (
	"strings"
	"unicode"
)

// MaxNameLength is the maximum length, in characters, of a sanitized name.
const MaxNameLength = 50

// UntitledName replaces names that are empty after sanitizing.
const UntitledName = "Untitled"

// SanitizeMediaName builds a file name fragment for downloaded media.
// Only ASCII letters and digits, CJK unified ideographs, whitespace, hyphens
// and underscores survive; whitespace runs become a single hyphen.
func SanitizeMediaName(title string) string {
	var sb strings.Builder
	for _, r := range title {
		if isMediaNameRune(r) {
			sb.WriteRune(r)
		}
	}

	var out strings.Builder
	inSpace := false
	for _, r := range strings.TrimSpace(sb.String()) {
		if unicode.IsSpace(r) {
			if !inSpace {
				out.WriteRune('-')
			}
			inSpace = true
			continue
		}
		inSpace = false
		out.WriteRune(r)
	}

	return truncateName(out.String())
}

func isMediaNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r >= 0x4E00 && r <= 0x9FFF:
		return true
	case r == '-' || r == '_':
		return true
	}
	return unicode.IsSpace(r)
}

// SanitizeNoteTitle builds a note file name from a title.
// Characters reserved by common filesystems are replaced with hyphens;
// everything else, emoji included, is preserved.
func SanitizeNoteTitle(title string) string {
	s := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`/\?%*:|"<>`, r) {
			return '-'
		}
		return r
	}, title)
	return truncateName(strings.TrimSpace(s))
}

func truncateName(s string) string {
	if s == "" {
		return UntitledName
	}
	runes := []rune(s)
	if len(runes) > MaxNameLength {
		return string(runes[:MaxNameLength])
	}
	return s
}
