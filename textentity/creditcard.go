// Package textentity implements the string-typed extractors shared across
// every language: email, URL, phone number, and credit-card number
// validation/normalization (spec §4.7). Regex anchoring and chart wiring
// live in the rules/* packages; this package holds the pure validators.
package textentity

import "strings"

// Luhn reports whether digits (a string of ASCII digits) passes the Luhn
// mod-10 checksum.
func Luhn(digits string) bool {
	sum := 0
	alt := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if d < 0 || d > 9 {
			return false
		}
		if alt {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		alt = !alt
	}
	return sum%10 == 0
}

// Issuer classifies a credit-card number by its IIN (prefix) range, per
// spec §4.7. Empty string means unclassified.
func Issuer(digits string) string {
	n := len(digits)
	switch {
	case n >= 1 && digits[0] == '4':
		return "visa"
	case n >= 2 && (hasPrefix(digits, "34") || hasPrefix(digits, "37")):
		return "amex"
	case n >= 4 && inRange(digits[:4], 2221, 2720):
		return "mastercard"
	case n >= 2 && inRange(digits[:2], 51, 55):
		return "mastercard"
	case n >= 4 && hasPrefix(digits, "6011"):
		return "discover"
	case n >= 2 && hasPrefix(digits, "65"):
		return "discover"
	case n >= 3 && inRange(digits[:3], 644, 649):
		return "discover"
	case n >= 3 && inRange(digits[:3], 300, 305):
		return "diners"
	case n >= 2 && (hasPrefix(digits, "36") || hasPrefix(digits, "38")):
		return "diners"
	case n >= 4 && inRange(digits[:4], 3528, 3589):
		return "jcb"
	}
	return ""
}

func hasPrefix(s, p string) bool { return strings.HasPrefix(s, p) }

func inRange(numStr string, lo, hi int) bool {
	n := 0
	for _, c := range numStr {
		if c < '0' || c > '9' {
			return false
		}
		n = n*10 + int(c-'0')
	}
	return n >= lo && n <= hi
}

// NormalizeDigits strips standard grouping separators (spaces, hyphens)
// from a matched credit-card span, rejecting non-standard groupings (spec
// §4.7's "rejects when the grouping is non-standard, e.g.
// 41111111-1111-1111") by requiring the separators to fall on 4-digit
// boundaries when any separator is present.
func NormalizeDigits(raw string) (string, bool) {
	var digits strings.Builder
	var groups []int
	cur := 0
	sawSeparator := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
			cur++
		case r == ' ' || r == '-':
			sawSeparator = true
			if cur == 0 {
				return "", false
			}
			groups = append(groups, cur)
			cur = 0
		default:
			return "", false
		}
	}
	if cur > 0 {
		groups = append(groups, cur)
	}
	d := digits.String()
	if len(d) < 13 || len(d) > 19 {
		return "", false
	}
	if sawSeparator && !standardGrouping(groups, len(d)) {
		return "", false
	}
	return d, true
}

// standardGrouping accepts the common 4-4-4-4(-...) or amex 4-6-5 shapes;
// any other separator placement is rejected as non-standard.
func standardGrouping(groups []int, total int) bool {
	if total == 15 && len(groups) == 3 && groups[0] == 4 && groups[1] == 6 && groups[2] == 5 {
		return true
	}
	for i, g := range groups {
		if i == len(groups)-1 {
			if g < 1 || g > 4 {
				return false
			}
			continue
		}
		if g != 4 {
			return false
		}
	}
	return true
}
