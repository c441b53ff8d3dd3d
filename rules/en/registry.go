package en

import "github.com/gravwell/entitygrinder/chart"

// Pack returns the complete English LanguagePack: every rule set this
// package defines, with no Inherits parent (English is the baseline
// corpus; see rules/es for an inheriting pack).
func Pack() chart.LanguagePack {
	var rules []chart.Rule
	rules = append(rules, NumeralRules()...)
	rules = append(rules, OrdinalRules()...)
	rules = append(rules, TimeGrainRules()...)
	rules = append(rules, DurationRules()...)
	rules = append(rules, TimeRules()...)
	rules = append(rules, TemperatureRules()...)
	rules = append(rules, MoneyRules()...)
	rules = append(rules, MeasurementRules()...)
	rules = append(rules, TextRules()...)
	return chart.LanguagePack{Rules: rules}
}
