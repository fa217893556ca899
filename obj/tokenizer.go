package obj

import "strings"

// nextToken returns the first non-empty token in line bounded by any rune in
// delims, and the remainder of line with leading delimiter runs trimmed. If
// line holds no non-empty token, it returns ("", "").
//
// Only the runes in delims are treated as separators — this package never
// extends that set to other whitespace (tabs are not supported: LoadFile
// passes a space-only delimiter set).
func nextToken(line, delims string) (token, rest string) {
	line = strings.TrimLeft(line, delims)
	if line == "" {
		return "", ""
	}
	i := strings.IndexAny(line, delims)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimLeft(line[i:], delims)
}

// skipToken discards the first token of line and returns the remainder.
func skipToken(line, delims string) string {
	_, rest := nextToken(line, delims)
	return rest
}

// countTokens counts the non-empty tokens remaining in line.
func countTokens(line, delims string) int {
	n := 0
	for {
		tok, rest := nextToken(line, delims)
		if tok == "" {
			break
		}
		n++
		line = rest
	}
	return n
}
