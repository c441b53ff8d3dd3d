package chart

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
)

func decodeRune(s string) (rune, int) {
	return utf8.DecodeRuneInString(s)
}

func isUnicodeSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// PatternItemKind discriminates the three pattern-item shapes of spec §4.2.
type PatternItemKind int

const (
	ItemDim PatternItemKind = iota
	ItemPredicate
	ItemRegex
)

// Predicate tests whether a node's Token satisfies an arbitrary boolean
// condition, used by PatternItem kind ItemPredicate.
type Predicate func(Token) bool

// PatternItem is one element of a rule's pattern sequence.
type PatternItem struct {
	Kind PatternItemKind

	DimKind Kind // ItemDim

	Pred Predicate // ItemPredicate

	Regex *AnchoredRegex // ItemRegex
}

// Dim builds a pattern item that consumes any existing chart node whose
// token matches kind.
func Dim(kind Kind) PatternItem { return PatternItem{Kind: ItemDim, DimKind: kind} }

// Pred builds a pattern item that consumes a node whose token satisfies p.
func Pred(p Predicate) PatternItem { return PatternItem{Kind: ItemPredicate, Pred: p} }

// Rx builds a pattern item that consumes a fresh RegexMatch at the current
// offset. It panics on an invalid pattern — call during registry
// construction only (spec §7: pattern compile error is fatal at
// construction time).
func Rx(pattern string) PatternItem {
	re, err := CompileAnchored(pattern)
	if err != nil {
		panic(err)
	}
	return PatternItem{Kind: ItemRegex, Regex: re}
}

// node is an internal chart node: a [Start,End) byte span carrying a Token.
// RuleName is exported so callers outside the package (which receive nodes
// only through Run's returned slice, never by naming the type) can feed it
// to the classifier table by rule name.
type node struct {
	Start, End int
	Token      Token
	RuleName   string
}

// matchResult is what a successful pattern match yields: the consumed
// nodes (synthesizing fresh nodes for regex items) plus the overall span.
type matchResult struct {
	nodes      []node
	start, end int
}

// matchPattern attempts to match items against text/chart starting at pos.
// byStart indexes existing chart nodes by their Start offset. locale
// governs whitespace skipping between items (spec §4.2).
func matchPattern(items []PatternItem, text string, pos int, byStart map[int][]node, locale language.Tag) (matchResult, bool) {
	cur := pos
	consumed := make([]node, 0, len(items))
	for idx, item := range items {
		if idx > 0 {
			cur += localeWhitespaceSkip(text, cur, locale)
		}
		switch item.Kind {
		case ItemRegex:
			groups, end, ok := item.Regex.MatchAt(text, cur)
			if !ok {
				return matchResult{}, false
			}
			tok := Token{Kind: KindRegexMatch, Regex: &RegexMatch{Text: text[cur:end], Groups: groups}}
			consumed = append(consumed, node{Start: cur, End: end, Token: tok})
			cur = end
		case ItemDim:
			n, ok := pickNode(byStart[cur], func(n node) bool { return n.Token.Kind == item.DimKind })
			if !ok {
				return matchResult{}, false
			}
			consumed = append(consumed, n)
			cur = n.End
		case ItemPredicate:
			n, ok := pickNode(byStart[cur], func(n node) bool { return item.Pred(n.Token) })
			if !ok {
				return matchResult{}, false
			}
			consumed = append(consumed, n)
			cur = n.End
		}
	}
	return matchResult{nodes: consumed, start: pos, end: cur}, true
}

// pickNode returns the first node at an offset satisfying pred, preferring
// the longest span when more than one candidate matches (a composing rule
// should see the widest available interpretation first).
func pickNode(candidates []node, pred func(node) bool) (node, bool) {
	var best node
	found := false
	for _, n := range candidates {
		if !pred(n) {
			continue
		}
		if !found || (n.End-n.Start) > (best.End-best.Start) {
			best = n
			found = true
		}
	}
	return best, found
}
