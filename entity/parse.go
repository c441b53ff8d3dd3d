package entity

import (
	"fmt"
	"time"

	"github.com/gravwell/entitygrinder/chart"
	"github.com/gravwell/entitygrinder/rank"
	"github.com/gravwell/entitygrinder/temporal"
)

// Parse runs the full pipeline for one call: rule lookup, chart fixpoint,
// ranked selection, and per-dimension resolution to JSON-shaped values
// (spec §6's Parse API).
func (e *Engine) Parse(text string, dims []DimensionKind, ctx Context, opts Options) ([]Entity, error) {
	lang := baseLang(ctx.Locale)
	requested := dimsOrAll(dims)
	rules, err := e.registry.RulesFor(lang, chartKindsFor(requested))
	if err != nil {
		return nil, fmt.Errorf("entity: %w", err)
	}

	nodes := chart.Run(text, rules, ctx.Locale.Lang)

	candidates := make([]rank.Candidate, 0, len(nodes))
	for _, n := range nodes {
		if n.Token.Kind == chart.KindRegexMatch {
			continue
		}
		candidates = append(candidates, rank.Candidate{
			Start: n.Start, End: n.End, RuleName: n.RuleName, Latent: n.Token.Latent, Opaque: n.Token,
		})
	}
	selected := rank.Select(candidates, e.tables[lang], opts.WithLatent)

	defaultLoc := temporal.FixedLocation(temporal.ResolveOffsetMinutes("", ctx.TimezoneOffsetMinutes))
	defaultRef := ctx.ReferenceTime.In(defaultLoc)

	out := make([]Entity, 0, len(selected))
	for _, c := range selected {
		tok := c.Opaque.(chart.Token)
		ref := defaultRef
		if tok.Kind == chart.KindTime && tok.Time != nil && tok.Time.Data.Timezone != "" {
			loc := temporal.FixedLocation(temporal.ResolveOffsetMinutes(tok.Time.Data.Timezone, ctx.TimezoneOffsetMinutes))
			ref = ctx.ReferenceTime.In(loc)
		}
		ent, ok := buildEntity(tok, c.Start, c.End, text, ref, requested)
		if !ok {
			continue
		}
		out = append(out, ent)
	}
	return out, nil
}

// buildEntity resolves one selected chart.Token into its public Entity
// shape, or reports ok=false when the token's dimension was not requested
// or fails to resolve (e.g. an invalid calendar date, spec §4.5).
func buildEntity(tok chart.Token, start, end int, text string, ref time.Time, requested []DimensionKind) (Entity, bool) {
	body := text[start:end]
	base := Entity{Start: start, End: end, Body: body}

	switch tok.Kind {
	case chart.KindTime:
		if tok.Time == nil {
			return Entity{}, false
		}
		tv, ok := temporal.Resolve(tok.Time.Data, ref)
		if !ok {
			return Entity{}, false
		}
		if !dimAllowed(requested, DimTime) {
			return Entity{}, false
		}
		base.Dim = DimTime
		base.Value = buildTimeValueJSON(tv)

	case chart.KindTimeGrain:
		if tok.Grain == nil || !dimAllowed(requested, DimTimeGrain) {
			return Entity{}, false
		}
		base.Dim = DimTimeGrain
		base.Value = map[string]string{"grain": tok.Grain.Grain.String()}

	case chart.KindDuration:
		if tok.Duration == nil || !dimAllowed(requested, DimDuration) {
			return Entity{}, false
		}
		base.Dim = DimDuration
		base.Value = buildDurationValueJSON(tok.Duration)

	case chart.KindNumeral:
		if tok.Numeral == nil || !dimAllowed(requested, DimNumeral) {
			return Entity{}, false
		}
		base.Dim = DimNumeral
		base.Value = NumeralValueJSON{Value: tok.Numeral.Value}

	case chart.KindOrdinal:
		if tok.Ordinal == nil || !dimAllowed(requested, DimOrdinal) {
			return Entity{}, false
		}
		base.Dim = DimOrdinal
		base.Value = OrdinalValueJSON{Value: tok.Ordinal.Value}

	case chart.KindTemperature:
		if tok.Temperature == nil || !dimAllowed(requested, DimTemperature) {
			return Entity{}, false
		}
		v := tok.Temperature.Value
		base.Dim = DimTemperature
		base.Value = MeasurementValueJSON{Type: "value", Value: &v, Unit: tok.Temperature.Unit.String()}

	case chart.KindTemperatureInterval:
		if tok.TemperatureInterval == nil || !dimAllowed(requested, DimTemperature) {
			return Entity{}, false
		}
		iv := tok.TemperatureInterval
		base.Dim = DimTemperature
		base.Value = MeasurementValueJSON{Type: "interval", From: iv.From, To: iv.To, Unit: iv.Unit.String()}

	case chart.KindMeasurement:
		if tok.Measurement == nil {
			return Entity{}, false
		}
		dim := measurementDimension(string(tok.Measurement.Unit))
		if !dimAllowed(requested, dim) {
			return Entity{}, false
		}
		v := tok.Measurement.Value
		base.Dim = dim
		base.Value = MeasurementValueJSON{Type: "value", Value: &v, Unit: string(tok.Measurement.Unit)}

	case chart.KindMeasurementInterval:
		if tok.MeasurementInterval == nil {
			return Entity{}, false
		}
		iv := tok.MeasurementInterval
		dim := measurementDimension(string(iv.Unit))
		if !dimAllowed(requested, dim) {
			return Entity{}, false
		}
		base.Dim = dim
		base.Value = MeasurementValueJSON{Type: "interval", From: iv.From, To: iv.To, Unit: string(iv.Unit)}

	case chart.KindAmountOfMoney:
		if tok.Money == nil || !dimAllowed(requested, DimAmountOfMoney) {
			return Entity{}, false
		}
		base.Dim = DimAmountOfMoney
		base.Value = MoneyValueJSON{Value: tok.Money.Value, Unit: tok.Money.Currency, Precision: tok.Money.Precision.String()}

	case chart.KindAmountOfMoneyInterval:
		if tok.MoneyInterval == nil || !dimAllowed(requested, DimAmountOfMoney) {
			return Entity{}, false
		}
		iv := tok.MoneyInterval
		base.Dim = DimAmountOfMoney
		base.Value = MoneyIntervalValueJSON{Type: "interval", From: iv.From, To: iv.To, Unit: iv.Currency}

	case chart.KindEmail:
		if !dimAllowed(requested, DimEmail) {
			return Entity{}, false
		}
		base.Dim = DimEmail
		base.Value = tok.Email

	case chart.KindPhoneNumber:
		if !dimAllowed(requested, DimPhoneNumber) {
			return Entity{}, false
		}
		base.Dim = DimPhoneNumber
		base.Value = tok.PhoneRaw

	case chart.KindURL:
		if tok.URL == nil || !dimAllowed(requested, DimURL) {
			return Entity{}, false
		}
		base.Dim = DimURL
		base.Value = URLValueJSON{Value: tok.URL.Value, Domain: tok.URL.Domain}

	case chart.KindCreditCardNumber:
		if tok.CreditCard == nil || !dimAllowed(requested, DimCreditCardNumber) {
			return Entity{}, false
		}
		base.Dim = DimCreditCardNumber
		base.Value = CreditCardValueJSON{Value: tok.CreditCard.Value, Issuer: tok.CreditCard.Issuer}

	default:
		return Entity{}, false
	}

	return base, true
}
