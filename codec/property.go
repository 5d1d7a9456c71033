// Package codec converts style object keys and values into CSS text.
package codec

import "strings"

var vendorPrefixes = []string{"Webkit", "Moz", "ms", "O"}

// Property converts a camelCase property name into its CSS form.
// Vendor prefixes gain a leading dash (WebkitTransition -> -webkit-transition,
// msFlex -> -ms-flex). Custom properties (--x) and names that already contain
// a dash are returned unchanged.
func Property(name string) string {
	if name == "" || strings.HasPrefix(name, "--") || strings.Contains(name, "-") {
		return name
	}
	var b strings.Builder
	b.Grow(len(name) + 4)
	for _, p := range vendorPrefixes {
		if len(name) > len(p) && strings.HasPrefix(name, p) && isUpper(name[len(p)]) {
			b.WriteByte('-')
			b.WriteString(strings.ToLower(p))
			name = name[len(p):]
			break
		}
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isUpper(c) {
			b.WriteByte('-')
			b.WriteByte(c + ('a' - 'A'))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
