package textentity

import "strings"

// NormalizePhone strips grouping and formatting from a matched span,
// keeping a leading "+" country-code marker and any "ext N" suffix, and
// validates the total digit count falls in [7, 15] (spec §4.7).
func NormalizePhone(countryCode, raw, ext string) (string, bool) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) < 7 || len(d) > 15 {
		return "", false
	}
	var b strings.Builder
	if countryCode != "" {
		b.WriteString("+")
		b.WriteString(strings.TrimLeft(countryCode, "+ ()"))
		b.WriteString(" ")
	}
	b.WriteString(d)
	if ext != "" {
		b.WriteString(" ext ")
		b.WriteString(ext)
	}
	return b.String(), true
}
