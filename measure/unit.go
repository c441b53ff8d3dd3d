package measure

// UnitInfo describes a measurement unit's dimension and its size relative
// to other units of the same dimension, expressed as "how many base units
// does one of this unit span" — smaller Scale means a finer unit.
type UnitInfo struct {
	Dimension string
	Scale     float64
}

// Units is the fixed table of distance/volume/quantity units this repo
// recognizes. Temperature units are handled separately (they never
// compose — spec §4.6 only describes composite distance/volume
// measurements, e.g. "7 feet 10 inches").
var Units = map[string]UnitInfo{
	// distance, base unit = metre
	"millimetre": {"distance", 0.001},
	"centimetre": {"distance", 0.01},
	"metre":      {"distance", 1},
	"kilometre":  {"distance", 1000},
	"inch":       {"distance", 0.0254},
	"foot":       {"distance", 0.3048},
	"yard":       {"distance", 0.9144},
	"mile":       {"distance", 1609.344},

	// volume, base unit = litre
	"millilitre": {"volume", 0.001},
	"litre":      {"volume", 1},
	"teaspoon":   {"volume", 0.00492892},
	"tablespoon": {"volume", 0.0147868},
	"cup":        {"volume", 0.236588},
	"pint":       {"volume", 0.473176},
	"quart":      {"volume", 0.946353},
	"gallon":     {"volume", 3.78541},
	"fl-ounce":   {"volume", 0.0295735},

	// quantity, base unit = item (dozen is the only non-1 multiplier)
	"item":  {"quantity", 1},
	"dozen": {"quantity", 12},
}

// ComposeMeasurement implements spec §4.6's composite measurement rule:
// "convert both operands to the finer unit and sum", with the invariant
// that the right operand is already the finer of the two.
func ComposeMeasurement(leftValue float64, leftUnit string, rightValue float64, rightUnit string) (value float64, unit string, ok bool) {
	li, lok := Units[leftUnit]
	ri, rok := Units[rightUnit]
	if !lok || !rok || li.Dimension != ri.Dimension {
		return 0, "", false
	}
	if ri.Scale > li.Scale {
		return 0, "", false // right must be the finer (or equal) unit
	}
	converted := leftValue * (li.Scale / ri.Scale)
	return converted + rightValue, rightUnit, true
}
