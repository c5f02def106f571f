package core

import "testing"

func TestStrategiesByNameResolvesCheapStrategies(t *testing.T) {
	strategies, err := StrategiesByName([]string{"SingleLiberties", "AvoidPools"})
	if err != nil {
		t.Fatalf("StrategiesByName failed: %v", err)
	}
	if len(strategies) != 2 {
		t.Fatalf("got %d strategies, want 2", len(strategies))
	}
	if strategies[0].Name() != "SingleLiberties" || strategies[1].Name() != "AvoidPools" {
		t.Errorf("got %s, %s; want SingleLiberties, AvoidPools", strategies[0].Name(), strategies[1].Name())
	}
}

func TestStrategiesByNameRejectsUnknownName(t *testing.T) {
	if _, err := StrategiesByName([]string{"NotARealStrategy"}); err == nil {
		t.Error("StrategiesByName should reject an unknown strategy name")
	}
}

func TestStrategiesByNameHypotheticalsRecursesIntoNamedCheapStrategies(t *testing.T) {
	strategies, err := StrategiesByName([]string{"SingleLiberties", "Hypotheticals"})
	if err != nil {
		t.Fatalf("StrategiesByName failed: %v", err)
	}
	if len(strategies) != 2 || strategies[1].Name() != "Hypotheticals" {
		t.Fatalf("got %v, want [SingleLiberties Hypotheticals]", strategies)
	}
	h, ok := strategies[1].(*Hypotheticals)
	if !ok {
		t.Fatalf("strategies[1] is %T, want *Hypotheticals", strategies[1])
	}
	if len(h.inner.strategies) != 1 || h.inner.strategies[0].Name() != "SingleLiberties" {
		t.Errorf("Hypotheticals inner strategies = %v, want [SingleLiberties]", h.inner.strategies)
	}

	// A 1x2 grid whose clue's only liberty is forced; SingleLiberties alone
	// suffices, so this exercises the configured pipeline end to end.
	g := mustGrid(t, 1, 2, []Clue{{Coord{0, 0}, 2}})
	if err := NewSolver(strategies).Solve(g); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if got := g.ToInputString(); got != "2W" {
		t.Errorf("ToInputString() = %q, want %q", got, "2W")
	}
}
