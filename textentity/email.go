package textentity

import "strings"

// NormalizeEmail canonicalizes a matched email span (either the "@" form
// or the "local at domain dot tld" spelling) into "local@domain" (spec
// §4.7). It rejects matches whose left side looks like a dimension
// artifact rather than a mailbox name ("class at 12.00" -> not an email):
// a local part that parses entirely as digits and punctuation is rejected.
func NormalizeEmail(local, domain string) (string, bool) {
	local = strings.TrimSpace(local)
	domain = strings.TrimSpace(strings.ToLower(domain))
	if local == "" || domain == "" || !strings.Contains(domain, ".") {
		return "", false
	}
	if looksNumeric(local) {
		return "", false
	}
	return local + "@" + domain, true
}

func looksNumeric(s string) bool {
	hasLetter := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			hasLetter = true
			break
		}
	}
	return !hasLetter
}

// SpelledToSymbolic rewrites " at " / " dot " spellings into the "@"/"."
// symbolic form ahead of NormalizeEmail.
func SpelledToSymbolic(s string) string {
	r := strings.NewReplacer(" at ", "@", " dot ", ".")
	return r.Replace(strings.ToLower(s))
}
