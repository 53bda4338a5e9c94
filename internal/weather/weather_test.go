package weather

import "testing"

func TestWeatherIsDeterministic(t *testing.T) {
	a := NewSystem(42)
	b := NewSystem(42)

	for tick := uint64(0); tick < 100000; tick += 360 {
		if a.At(tick) != b.At(tick) {
			t.Fatalf("same seed diverged at tick %d", tick)
		}
	}
}

func TestWeatherVaries(t *testing.T) {
	s := NewSystem(7)

	seen := make(map[Condition]bool)
	for tick := uint64(0); tick < 2000000; tick += 60 {
		seen[s.At(tick)] = true
	}
	if !seen[Clear] {
		t.Error("never clear")
	}
	if len(seen) < 2 {
		t.Errorf("weather stuck on one condition: %v", seen)
	}
}

func TestGrowthBonus(t *testing.T) {
	if GrowthBonus(Rain) <= GrowthBonus(Clear) {
		t.Error("rain should boost growth over clear skies")
	}
	if GrowthBonus(Storm) >= 0 {
		t.Error("storms should not boost growth")
	}
}
