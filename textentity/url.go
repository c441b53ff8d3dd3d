package textentity

import "strings"

// singleLabelHosts are hosts recognized without a dot, per spec §4.7.
var singleLabelHosts = map[string]bool{
	"localhost": true,
}

// Domain computes the effective TLD+1 of a host, or the host itself when
// it is a recognized single-label host.
func Domain(host string) (string, bool) {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if host == "" {
		return "", false
	}
	if singleLabelHosts[host] {
		return host, true
	}
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return "", false
	}
	// A minimal effective-TLD+1: two labels, except for a short list of
	// known two-label public suffixes (co.uk, com.au, ...) where we take
	// three.
	twoLabelSuffixes := map[string]bool{
		"co.uk": true, "com.au": true, "co.jp": true, "com.br": true,
	}
	n := len(labels)
	last2 := strings.Join(labels[n-2:], ".")
	if twoLabelSuffixes[last2] && n >= 3 {
		return strings.Join(labels[n-3:], "."), true
	}
	return last2, true
}

// NormalizeURL builds the canonical value for a matched URL span.
func NormalizeURL(scheme, host, port, path, query, fragment string) (value, domain string, ok bool) {
	d, ok := Domain(host)
	if !ok {
		return "", "", false
	}
	var b strings.Builder
	if scheme != "" {
		b.WriteString(scheme)
		b.WriteString("://")
	}
	b.WriteString(host)
	if port != "" {
		b.WriteString(":")
		b.WriteString(port)
	}
	b.WriteString(path)
	if query != "" {
		b.WriteString("?")
		b.WriteString(query)
	}
	if fragment != "" {
		b.WriteString("#")
		b.WriteString(fragment)
	}
	return b.String(), d, true
}
