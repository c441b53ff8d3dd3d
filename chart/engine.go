package chart

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
)

// Chart is the per-call, non-shared working set of candidate nodes (spec
// §5: "the chart itself is per-call and non-shared"). It is discarded when
// Parse returns.
type Chart struct {
	text    string
	byStart map[int][]node
	seen    map[string]bool
}

func newChart(text string) *Chart {
	return &Chart{text: text, byStart: make(map[int][]node), seen: make(map[string]bool)}
}

// insert adds n to the chart through the dedup gate, reporting whether it
// was new. Two nodes with equal span and equal token digest are the same
// node (spec §4.4).
func (c *Chart) insert(n node) bool {
	key := fmt.Sprintf("%d:%d:%s", n.Start, n.End, n.Token.digest())
	if c.seen[key] {
		return false
	}
	c.seen[key] = true
	c.byStart[n.Start] = append(c.byStart[n.Start], n)
	return true
}

// Nodes returns every node currently in the chart, in (start,end) order.
func (c *Chart) Nodes() []node {
	out := make([]node, 0, len(c.seen))
	for _, ns := range c.byStart {
		out = append(out, ns...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})
	return out
}

// Run executes the chart engine's fixpoint algorithm over text for the
// given rule set (spec §4.4): repeated seed passes over every rule at
// every offset until a full pass adds zero new nodes. Termination is
// guaranteed because span endpoints are bounded by len(text) and, for a
// finite rule set, the token digest space per span is finite.
func Run(text string, rules []Rule, locale language.Tag) []node {
	c := newChart(text)
	for {
		added := 0
		for i := 0; i <= len(text); i++ {
			for _, rule := range rules {
				res, ok := matchPattern(rule.Pattern, text, i, c.byStart, locale)
				if !ok {
					continue
				}
				tok, ok := rule.Produce(toMatched(res.nodes))
				if !ok {
					continue
				}
				if rule.Latent {
					tok.Latent = true
				}
				n := node{Start: res.start, End: res.end, Token: tok, RuleName: rule.Name}
				if c.insert(n) {
					added++
				}
			}
		}
		if added == 0 {
			break
		}
	}
	return c.Nodes()
}
