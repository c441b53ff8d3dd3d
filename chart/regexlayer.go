package chart

import (
	"fmt"
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// maxPatternComplexity bounds the size of a rule's compiled program,
// rejecting pathological patterns at registry construction rather than
// risking pathological match time at parse time (spec §4.1).
const maxPatternComplexity = 4096

// AnchoredRegex wraps a compiled, case-folding regular expression that is
// always matched anchored at a caller-supplied byte offset, reporting the
// earliest longest match whose start is that offset. This mirrors the
// teacher's timegrinder.processor idiom (one small struct around a
// compiled *regexp.Regexp per literal form) generalized to arbitrary
// anchored extraction rather than one-shot timestamp formats.
type AnchoredRegex struct {
	src string
	re  *regexp.Regexp
}

var foldCaser = cases.Fold()

// CompileAnchored compiles pattern as an anchored (prefixed with `\A`),
// case-insensitive, Unicode-aware regular expression. Pattern compile
// failure is fatal at registry construction time (spec §7).
func CompileAnchored(pattern string) (*AnchoredRegex, error) {
	re, err := regexp.Compile(`\A(?i:` + pattern + `)`)
	if err != nil {
		return nil, fmt.Errorf("chart: invalid rule pattern %q: %w", pattern, err)
	}
	re.Longest()
	if re.NumSubexp() > 64 || len(re.String()) > maxPatternComplexity {
		return nil, fmt.Errorf("chart: rule pattern %q exceeds complexity budget", pattern)
	}
	return &AnchoredRegex{src: pattern, re: re}, nil
}

// Normalize applies a locale-aware case fold and NFC normalization to s.
// Rule productions use it to key matched text into their word tables.
// MatchAt does not normalize: it matches the raw input text case-
// insensitively, so an accent written as a combining mark does not match a
// pattern that spells it pre-composed.
func Normalize(s string) string {
	return foldCaser.String(norm.NFC.String(s))
}

// MatchAt reports the match of r anchored at byte offset pos in text,
// returning the match text and its numbered capture groups (group 0 is the
// whole match). CompileAnchored puts the regexp in leftmost-longest mode, so
// among alternatives that match at pos the longest one wins, whatever their
// order in the pattern.
func (r *AnchoredRegex) MatchAt(text string, pos int) (groups []string, end int, ok bool) {
	if pos < 0 || pos > len(text) {
		return nil, 0, false
	}
	loc := r.re.FindStringSubmatchIndex(text[pos:])
	if loc == nil {
		return nil, 0, false
	}
	n := len(loc) / 2
	groups = make([]string, n)
	for i := 0; i < n; i++ {
		if loc[2*i] < 0 {
			continue
		}
		groups[i] = text[pos+loc[2*i] : pos+loc[2*i+1]]
	}
	return groups, pos + loc[1], true
}

// localeWhitespaceSkip returns the number of Unicode white-space bytes
// starting at pos, used by the pattern matcher to skip arbitrary
// whitespace between pattern items (spec §4.2). Locale is accepted for
// symmetry with the rest of the regex layer's locale-aware API even
// though Go's unicode.IsSpace classification is already locale-independent
// Unicode white space.
func localeWhitespaceSkip(text string, pos int, _ language.Tag) int {
	i := pos
	for i < len(text) {
		r, size := decodeRune(text[i:])
		if size == 0 || !isUnicodeSpace(r) {
			break
		}
		i += size
	}
	return i - pos
}
