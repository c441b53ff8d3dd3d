package entity

import (
	"github.com/gravwell/entitygrinder/chart"
	"github.com/gravwell/entitygrinder/measure"
)

// DimensionKind is the public, language-agnostic entity category requested
// by a Parse caller and reported on every Entity (spec §6).
type DimensionKind string

const (
	DimTime              DimensionKind = "Time"
	DimTimeGrain          DimensionKind = "TimeGrain"
	DimDuration           DimensionKind = "Duration"
	DimNumeral            DimensionKind = "Numeral"
	DimOrdinal            DimensionKind = "Ordinal"
	DimTemperature        DimensionKind = "Temperature"
	DimAmountOfMoney      DimensionKind = "AmountOfMoney"
	DimDistance           DimensionKind = "Distance"
	DimVolume             DimensionKind = "Volume"
	DimQuantity           DimensionKind = "Quantity"
	DimEmail              DimensionKind = "Email"
	DimURL                DimensionKind = "Url"
	DimPhoneNumber        DimensionKind = "PhoneNumber"
	DimCreditCardNumber   DimensionKind = "CreditCardNumber"
)

// AllDimensions is the full supported set; an empty dims argument to Parse
// requests this set (spec §6).
var AllDimensions = []DimensionKind{
	DimTime, DimTimeGrain, DimDuration, DimNumeral, DimOrdinal, DimTemperature,
	DimAmountOfMoney, DimDistance, DimVolume, DimQuantity,
	DimEmail, DimURL, DimPhoneNumber, DimCreditCardNumber,
}

// chartKindsFor expands the requested DimensionKind set into the chart.Kind
// set the registry must be queried for. Distance/Volume/Quantity all
// surface through chart.KindMeasurement/KindMeasurementInterval and are
// disambiguated after resolution by the matched unit's measure.UnitInfo.Dimension.
func chartKindsFor(dims []DimensionKind) []chart.Kind {
	seen := make(map[chart.Kind]bool)
	var out []chart.Kind
	add := func(k chart.Kind) {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	// Numeral/Ordinal/TimeGrain/Duration are building blocks every other
	// dimension's rules compose from (a money or time rule's Pattern
	// references chart.Dim(KindNumeral) directly) — always include them so
	// a caller requesting a narrow dims subset still gets a working parse.
	add(chart.KindNumeral)
	add(chart.KindOrdinal)
	add(chart.KindTimeGrain)
	add(chart.KindDuration)
	for _, d := range dims {
		switch d {
		case DimTime:
			add(chart.KindTime)
		case DimTimeGrain:
			add(chart.KindTimeGrain)
		case DimDuration:
			add(chart.KindDuration)
		case DimNumeral:
			add(chart.KindNumeral)
		case DimOrdinal:
			add(chart.KindOrdinal)
		case DimTemperature:
			add(chart.KindTemperature)
			add(chart.KindTemperatureInterval)
		case DimAmountOfMoney:
			add(chart.KindAmountOfMoney)
			add(chart.KindAmountOfMoneyInterval)
		case DimDistance, DimVolume, DimQuantity:
			add(chart.KindMeasurement)
			add(chart.KindMeasurementInterval)
		case DimEmail:
			add(chart.KindEmail)
		case DimURL:
			add(chart.KindURL)
		case DimPhoneNumber:
			add(chart.KindPhoneNumber)
		case DimCreditCardNumber:
			add(chart.KindCreditCardNumber)
		}
	}
	return out
}

// measurementDimension maps a matched unit back to its public DimensionKind.
func measurementDimension(unit string) DimensionKind {
	switch measure.Units[unit].Dimension {
	case "distance":
		return DimDistance
	case "volume":
		return DimVolume
	case "quantity":
		return DimQuantity
	default:
		return DimQuantity
	}
}

// dimAllowed reports whether a resolved dimension was actually requested;
// needed because Distance/Volume/Quantity share chart kinds and so a
// measurement entity must be re-filtered after resolution.
func dimAllowed(requested []DimensionKind, d DimensionKind) bool {
	if len(requested) == 0 {
		return true
	}
	for _, r := range requested {
		if r == d {
			return true
		}
	}
	return false
}
