package propel

import "strings"

// ClassName derives the PascalCase class-name stem for a raw table name:
// underscores become word boundaries, the first letter of every word is
// upper-cased and spaces are dropped. The rest of each word is kept as is, so
// "blog_post" becomes "BlogPost" and "user_ID" becomes "UserID".
func ClassName(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	wordStart := true
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '_' {
			c = ' '
		}
		if isWordBreak(c) {
			wordStart = true
			if c != ' ' {
				b.WriteByte(c)
			}
			continue
		}
		if wordStart && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		wordStart = false
		b.WriteByte(c)
	}
	return b.String()
}

func isWordBreak(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	}
	return false
}
