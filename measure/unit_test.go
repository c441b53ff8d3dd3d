package measure

import "testing"

func TestComposeMeasurementFeetAndInches(t *testing.T) {
	value, unit, ok := ComposeMeasurement(7, "foot", 10, "inch")
	if !ok {
		t.Fatal("expected ok")
	}
	if unit != "inch" {
		t.Errorf("got unit %q, want inch", unit)
	}
	want := 7*0.3048/0.0254 + 10
	if diff := value - want; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("got %v, want %v", value, want)
	}
}

func TestComposeMeasurementRejectsCoarserRightOperand(t *testing.T) {
	_, _, ok := ComposeMeasurement(10, "inch", 7, "foot")
	if ok {
		t.Fatal("expected the coarser-right composition to be rejected")
	}
}

func TestComposeMeasurementRejectsMismatchedDimension(t *testing.T) {
	_, _, ok := ComposeMeasurement(7, "foot", 10, "litre")
	if ok {
		t.Fatal("expected mismatched dimensions to be rejected")
	}
}

func TestComposeMeasurementRejectsUnknownUnit(t *testing.T) {
	_, _, ok := ComposeMeasurement(7, "furlong", 10, "inch")
	if ok {
		t.Fatal("expected an unknown unit to be rejected")
	}
}
