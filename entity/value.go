package entity

import (
	json "github.com/goccy/go-json"

	"github.com/gravwell/entitygrinder/chart"
	"github.com/gravwell/entitygrinder/temporal"
)

// TimeInstantJSON is one resolved instant in the serialized Time shape.
type TimeInstantJSON struct {
	Value string `json:"value"`
	Grain string `json:"grain"`
}

// TimeValueJSON is the full serialized Time DimensionValue (spec §6): a
// single resolved value plus its surrounding series, or an interval with
// both (possibly null) endpoints.
type TimeValueJSON struct {
	Type   string            `json:"type"`
	Value  string            `json:"value,omitempty"`
	Grain  string            `json:"grain,omitempty"`
	Values []TimeInstantJSON `json:"values,omitempty"`
	From   *TimeInstantJSON  `json:"from,omitempty"`
	To     *TimeInstantJSON  `json:"to,omitempty"`
}

func buildTimeValueJSON(tv temporal.TimeValue) TimeValueJSON {
	if tv.IsInterval {
		out := TimeValueJSON{Type: "interval"}
		if tv.From != nil {
			out.From = &TimeInstantJSON{Value: temporal.FormatISO8601(tv.From.Start), Grain: tv.From.Grain.String()}
		}
		if tv.To != nil {
			out.To = &TimeInstantJSON{Value: temporal.FormatISO8601(tv.To.Start), Grain: tv.To.Grain.String()}
		}
		return out
	}
	out := TimeValueJSON{
		Type:  "value",
		Value: temporal.FormatISO8601(tv.Single.Start),
		Grain: tv.Single.Grain.String(),
	}
	for _, v := range tv.Values {
		out.Values = append(out.Values, TimeInstantJSON{Value: temporal.FormatISO8601(v.Start), Grain: v.Grain.String()})
	}
	return out
}

// DurationValueJSON is the serialized Duration shape: value/unit are the
// count and grain of the outermost (coarsest) component, plus a per-grain
// breakdown of every component, e.g. "1 hour 30 minutes" serializes as
// {"value":1,"unit":"hour","hour":1,"minute":30}. No total in the finest
// grain is computed.
type DurationValueJSON struct {
	Value  int
	Unit   string
	Grains map[string]int
}

// MarshalJSON flattens Grains alongside value/unit as top-level keys.
func (d DurationValueJSON) MarshalJSON() ([]byte, error) {
	m := map[string]interface{}{"value": d.Value, "unit": d.Unit}
	for grain, n := range d.Grains {
		m[grain] = n
	}
	return json.Marshal(m)
}

// buildDurationValueJSON flattens a (possibly composite) DurationToken into
// its coarsest component's count and grain plus a per-grain breakdown.
func buildDurationValueJSON(d *chart.DurationToken) DurationValueJSON {
	grains := map[string]int{d.Grain.String(): d.Value}
	for r := d.Residual; r != nil; r = r.Residual {
		grains[r.Grain.String()] += r.Value
	}
	return DurationValueJSON{Value: d.Value, Unit: d.Grain.String(), Grains: grains}
}

// NumeralValueJSON/OrdinalValueJSON are the minimal {value} shapes (spec §6).
type NumeralValueJSON struct {
	Value float64 `json:"value"`
}

type OrdinalValueJSON struct {
	Value int `json:"value"`
}

// MeasurementValueJSON covers both Temperature and Distance/Volume/Quantity
// single/interval shapes, which share the same {type, value|from/to, unit}
// layout (spec §6).
type MeasurementValueJSON struct {
	Type string   `json:"type"`
	Value *float64 `json:"value,omitempty"`
	From  *float64 `json:"from,omitempty"`
	To    *float64 `json:"to,omitempty"`
	Unit  string   `json:"unit"`
}

// MoneyValueJSON is the serialized AmountOfMoney shape.
type MoneyValueJSON struct {
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Precision string  `json:"precision"`
}

// MoneyIntervalValueJSON is the serialized AmountOfMoneyInterval shape.
type MoneyIntervalValueJSON struct {
	Type string   `json:"type"`
	From *float64 `json:"from,omitempty"`
	To   *float64 `json:"to,omitempty"`
	Unit string   `json:"unit"`
}

// URLValueJSON/CreditCardValueJSON are the two composite string shapes;
// Email/PhoneNumber serialize as bare strings (held directly in Entity.Value).
type URLValueJSON struct {
	Value  string `json:"value"`
	Domain string `json:"domain"`
}

type CreditCardValueJSON struct {
	Value  string `json:"value"`
	Issuer string `json:"issuer"`
}
