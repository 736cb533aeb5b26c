package annotations

import "strings"

// IsIdentifier reports whether s is a letter-or-underscore followed by
// letters, digits or underscores (ASCII only)
func IsIdentifier(s string) bool {
	ident, rest := ScanIdentifier(s)
	return ident != "" && rest == ""
}

// ScanIdentifier splits the leading identifier off s.
// ident is empty when s does not start with one.
func ScanIdentifier(s string) (ident, rest string) {
	i := 0
	for i < len(s) {
		ch := s[i]
		isLetter := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
		isDigit := ch >= '0' && ch <= '9'
		if !isLetter && !(isDigit && i > 0) {
			break
		}
		i++
	}
	return s[:i], s[i:]
}

// cutWord splits s at the first run of whitespace
func cutWord(s string) (word, rest string) {
	if idx := strings.IndexAny(s, " \t"); idx != -1 {
		return s[:idx], strings.TrimSpace(s[idx:])
	}
	return s, ""
}
