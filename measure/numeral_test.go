package measure

import "testing"

func TestComposeAdditiveTwentyOne(t *testing.T) {
	out, ok := ComposeAdditive(
		NumeralComponent{Value: 20, Magnitude: 1},
		NumeralComponent{Value: 1, Magnitude: 0},
	)
	if !ok {
		t.Fatal("expected ok")
	}
	if out.Value != 21 {
		t.Errorf("got %v, want 21", out.Value)
	}
}

func TestComposeAdditiveRejectsOutOfOrderMagnitude(t *testing.T) {
	_, ok := ComposeAdditive(
		NumeralComponent{Value: 1, Magnitude: 0},
		NumeralComponent{Value: 20, Magnitude: 1},
	)
	if ok {
		t.Fatal("expected the finer-then-coarser composition to be rejected")
	}
}

func TestComposeMultiplicativeThreeThousand(t *testing.T) {
	out, ok := ComposeMultiplicative(
		NumeralComponent{Value: 3, Magnitude: 0},
		NumeralComponent{Value: 1000, Magnitude: 3},
	)
	if !ok {
		t.Fatal("expected ok")
	}
	if out.Value != 3000 {
		t.Errorf("got %v, want 3000", out.Value)
	}
}
