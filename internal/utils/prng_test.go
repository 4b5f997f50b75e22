package utils

import (
	"math"
	"testing"
)

func TestPRNGServiceSeedIsDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("step %d: same seed produced %d and %d", i, x, y)
		}
	}
	if a.Seed() != 42 {
		t.Errorf("Seed() = %d, want 42", a.Seed())
	}
}

func TestPRNGServiceZeroSeedUsesClock(t *testing.T) {
	s := NewPRNGService(0)
	if s.Seed() == 0 {
		t.Fatal("zero seed was not replaced")
	}
}

func TestPRNGServiceRanges(t *testing.T) {
	s := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		if v := s.Uniform(-1.5, 1.5); v < -1.5 || v >= 1.5 {
			t.Fatalf("Uniform out of range: %v", v)
		}
		if v := s.IntRange(3, 7); v < 3 || v > 7 {
			t.Fatalf("IntRange out of range: %d", v)
		}
	}
	if v := s.IntRange(5, 5); v != 5 {
		t.Errorf("IntRange(5, 5) = %d", v)
	}
}

func TestPRNGServiceChoose(t *testing.T) {
	s := NewPRNGService(1)
	if got := s.Choose(nil); got != "" {
		t.Errorf("Choose(nil) = %q, want empty", got)
	}
	items := []string{"A", "B", "C"}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[s.Choose(items)] = true
	}
	if len(seen) != len(items) {
		t.Errorf("Choose visited %d of %d items", len(seen), len(items))
	}
}

func TestPulseScale(t *testing.T) {
	if got := PulseScale(0, 0.3, 8); math.Abs(got-1.3) > 1e-9 {
		t.Errorf("PulseScale(0) = %v, want 1.3", got)
	}
	if got := PulseScale(10, 0.3, 8); math.Abs(got-1.0) > 1e-6 {
		t.Errorf("PulseScale(10) = %v, want ~1", got)
	}
	if got := PulseScale(-1, 0.3, 8); math.Abs(got-1.3) > 1e-9 {
		t.Errorf("negative elapsed should clamp to 0, got %v", got)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ v, want float64 }{{-1, 0}, {0.5, 0.5}, {2, 1}}
	for _, c := range cases {
		if got := Clamp(c.v, 0, 1); got != c.want {
			t.Errorf("Clamp(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}
