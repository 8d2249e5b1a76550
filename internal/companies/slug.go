package companies

import "strings"

// Slugify normalizes an identifier to lowercase letters, digits and hyphens.
// Runs of separators (spaces, underscores, hyphens) collapse to a single
// hyphen; any other character is dropped. Leading and trailing separators do
// not produce hyphens.
func Slugify(s string) string {
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == '-' || r == ' ' || r == '_':
			pendingHyphen = true
		}
	}
	return b.String()
}
