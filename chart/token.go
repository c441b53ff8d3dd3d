// Package chart implements the language-agnostic, rule-driven chart parser:
// anchored regex matching, pattern composition over a dedup'd node chart,
// and fixpoint iteration to a complete candidate set.
package chart

import (
	"fmt"
	"sort"

	"github.com/gravwell/entitygrinder/temporal"
)

// Kind identifies the shape of value a Token carries. Rules are registered
// per (language, Kind) and pattern items select nodes by Kind.
type Kind int

const (
	KindRegexMatch Kind = iota
	KindNumeral
	KindOrdinal
	KindTimeGrain
	KindDuration
	KindTime
	KindTemperature
	KindMeasurement
	KindAmountOfMoney
	KindTemperatureInterval
	KindMeasurementInterval
	KindAmountOfMoneyInterval
	KindEmail
	KindPhoneNumber
	KindURL
	KindCreditCardNumber
)

func (k Kind) String() string {
	switch k {
	case KindRegexMatch:
		return "regex-match"
	case KindNumeral:
		return "numeral"
	case KindOrdinal:
		return "ordinal"
	case KindTimeGrain:
		return "time-grain"
	case KindDuration:
		return "duration"
	case KindTime:
		return "time"
	case KindTemperature:
		return "temperature"
	case KindMeasurement:
		return "measurement"
	case KindAmountOfMoney:
		return "amount-of-money"
	case KindTemperatureInterval:
		return "temperature-interval"
	case KindMeasurementInterval:
		return "measurement-interval"
	case KindAmountOfMoneyInterval:
		return "amount-of-money-interval"
	case KindEmail:
		return "email"
	case KindPhoneNumber:
		return "phone-number"
	case KindURL:
		return "url"
	case KindCreditCardNumber:
		return "credit-card-number"
	default:
		return "unknown"
	}
}

// RegexMatch is the token produced for every fresh regex pattern item: the
// full matched text plus its numbered capture groups (group 0 is the whole
// match, matching Go's regexp convention).
type RegexMatch struct {
	Text   string
	Groups []string
}

// Token is the tagged-union value carried by every chart node. Exactly one
// of the typed fields is meaningful, selected by Kind. Token is a plain
// value (no interfaces, no back-references) so it can be compared and
// digested for chart dedup.
type Token struct {
	Kind Kind

	Regex *RegexMatch

	Numeral  *Numeral
	Ordinal  *Ordinal
	Grain    *GrainToken
	Duration *DurationToken
	Time     *TimeToken

	Temperature *TemperatureToken
	Measurement *MeasurementToken
	Money       *MoneyToken

	TemperatureInterval *TemperatureIntervalToken
	MeasurementInterval *MeasurementIntervalToken
	MoneyInterval       *MoneyIntervalToken

	Email      string
	PhoneRaw   string
	URL        *URLToken
	CreditCard *CreditCardToken

	// Latent marks a token whose surface alone is ambiguous (spec §3); it
	// is suppressed from the final result unless Options.WithLatent is
	// set or a composing rule consumes it.
	Latent bool
}

// Numeral carries a floating-point value for a numeral literal or
// composite, plus the power-of-ten Magnitude used by additive/
// multiplicative composition rules (spec §4.6; see measure.NumeralComponent).
type Numeral struct {
	Value     float64
	Magnitude int
}

// Ordinal carries an integer value ("third" -> 3).
type Ordinal struct {
	Value int
}

// GrainToken wraps a bare temporal Grain literal ("day", "week", ...).
type GrainToken struct {
	Grain temporal.Grain
}

// DurationToken is an integer count at a Grain, with an optional residual
// sub-grain component for composite durations ("1 hour 30 minutes").
type DurationToken struct {
	Value    int
	Grain    temporal.Grain
	Residual *DurationToken
}

// TimeToken wraps a symbolic TimeData; it is resolved to an instant only at
// the public Parse boundary, never inside the chart.
type TimeToken struct {
	Data temporal.TimeData
}

type TemperatureUnit int

const (
	UnitDegree TemperatureUnit = iota
	UnitCelsius
	UnitFahrenheit
	UnitKelvin
)

func (u TemperatureUnit) String() string {
	switch u {
	case UnitCelsius:
		return "celsius"
	case UnitFahrenheit:
		return "fahrenheit"
	case UnitKelvin:
		return "kelvin"
	default:
		return "degree"
	}
}

type TemperatureToken struct {
	Value float64
	Unit  TemperatureUnit
}

type MeasurementUnit string

type MeasurementToken struct {
	Value float64
	Unit  MeasurementUnit
}

type Precision int

const (
	PrecisionExact Precision = iota
	PrecisionApproximate
)

func (p Precision) String() string {
	if p == PrecisionApproximate {
		return "approximate"
	}
	return "exact"
}

type MoneyToken struct {
	Value     float64
	Currency  string
	Precision Precision
}

type TemperatureIntervalToken struct {
	From, To  *float64
	Unit      TemperatureUnit
	Inclusive bool
}

type MeasurementIntervalToken struct {
	From, To  *float64
	Unit      MeasurementUnit
	Inclusive bool
}

type MoneyIntervalToken struct {
	From, To  *float64
	Currency  string
	Inclusive bool
}

type URLToken struct {
	Value  string
	Domain string
}

type CreditCardToken struct {
	Value  string
	Issuer string
}

// digest renders a stable, order-independent string used as the chart
// engine's dedup key component for a Token. Two nodes with equal span and
// equal digest are the same node.
func (t Token) digest() string {
	switch t.Kind {
	case KindRegexMatch:
		return fmt.Sprintf("rx:%q:%v", t.Regex.Text, t.Regex.Groups)
	case KindNumeral:
		return fmt.Sprintf("num:%v:%d", t.Numeral.Value, t.Numeral.Magnitude)
	case KindOrdinal:
		return fmt.Sprintf("ord:%d", t.Ordinal.Value)
	case KindTimeGrain:
		return fmt.Sprintf("grn:%d", t.Grain.Grain)
	case KindDuration:
		return fmt.Sprintf("dur:%s", durationDigest(t.Duration))
	case KindTime:
		return fmt.Sprintf("time:%s:%v:%v:%v", t.Time.Data.Digest(), t.Latent, t.Time.Data.Direction, t.Time.Data.EarlyLate)
	case KindTemperature:
		return fmt.Sprintf("temp:%v:%d", t.Temperature.Value, t.Temperature.Unit)
	case KindMeasurement:
		return fmt.Sprintf("meas:%v:%s", t.Measurement.Value, t.Measurement.Unit)
	case KindAmountOfMoney:
		return fmt.Sprintf("money:%v:%s:%d", t.Money.Value, t.Money.Currency, t.Money.Precision)
	case KindTemperatureInterval:
		return fmt.Sprintf("tempiv:%v:%v:%d:%v", floatPtr(t.TemperatureInterval.From), floatPtr(t.TemperatureInterval.To), t.TemperatureInterval.Unit, t.TemperatureInterval.Inclusive)
	case KindMeasurementInterval:
		return fmt.Sprintf("measiv:%v:%v:%s:%v", floatPtr(t.MeasurementInterval.From), floatPtr(t.MeasurementInterval.To), t.MeasurementInterval.Unit, t.MeasurementInterval.Inclusive)
	case KindAmountOfMoneyInterval:
		return fmt.Sprintf("moneyiv:%v:%v:%s:%v", floatPtr(t.MoneyInterval.From), floatPtr(t.MoneyInterval.To), t.MoneyInterval.Currency, t.MoneyInterval.Inclusive)
	case KindEmail:
		return "email:" + t.Email
	case KindPhoneNumber:
		return "phone:" + t.PhoneRaw
	case KindURL:
		return fmt.Sprintf("url:%s:%s", t.URL.Value, t.URL.Domain)
	case KindCreditCardNumber:
		return fmt.Sprintf("cc:%s:%s", t.CreditCard.Value, t.CreditCard.Issuer)
	default:
		return "?"
	}
}

func durationDigest(d *DurationToken) string {
	if d == nil {
		return "nil"
	}
	s := fmt.Sprintf("%d/%d", d.Value, d.Grain)
	if d.Residual != nil {
		s += "+" + durationDigest(d.Residual)
	}
	return s
}

func floatPtr(f *float64) string {
	if f == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", *f)
}

// sortedKinds returns the keys of m in ascending Kind order, a stable,
// deterministic order regardless of map iteration order.
func sortedKinds(m map[Kind]struct{}) []Kind {
	out := make([]Kind, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
