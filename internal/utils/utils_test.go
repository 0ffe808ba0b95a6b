package utils

import (
	"testing"

	"chaos-rush/internal/types"
)

// seqRandom replays fixed values.
type seqRandom struct {
	ints   []int
	floats []float64
}

func (s *seqRandom) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0] % n
	s.ints = s.ints[1:]
	return v
}

func (s *seqRandom) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func TestPRNGDeterministic(t *testing.T) {
	a, b := NewPRNGService(7), NewPRNGService(7)
	for i := 0; i < 20; i++ {
		if a.Intn(100) != b.Intn(100) {
			t.Fatal("same seed must produce the same sequence")
		}
	}
}

func TestIntRangeInclusive(t *testing.T) {
	r := NewPRNGService(1)
	for i := 0; i < 500; i++ {
		v := IntRange(r, 5, 15)
		if v < 5 || v > 15 {
			t.Fatalf("IntRange out of bounds: %d", v)
		}
	}
	if IntRange(r, 3, 3) != 3 {
		t.Error("degenerate range should return lo")
	}
}

func TestSampleDistinct(t *testing.T) {
	r := NewPRNGService(3)
	for i := 0; i < 50; i++ {
		got := Sample(r, 6, 3)
		if len(got) != 3 {
			t.Fatalf("len = %d, want 3", len(got))
		}
		seen := map[int]bool{}
		for _, v := range got {
			if v < 0 || v >= 6 || seen[v] {
				t.Fatalf("bad sample %v", got)
			}
			seen[v] = true
		}
	}
	if got := Sample(r, 2, 3); len(got) != 2 {
		t.Errorf("k > n should clamp, got %v", got)
	}
}

func TestChance(t *testing.T) {
	r := &seqRandom{floats: []float64{0.1, 0.3}}
	if !Chance(r, 0.25) {
		t.Error("0.1 < 0.25 should succeed")
	}
	if Chance(r, 0.25) {
		t.Error("0.3 < 0.25 should fail")
	}
}

func TestMoveToward(t *testing.T) {
	p, arrived := MoveToward(types.Vec2{}, types.Vec2{X: 10}, 4)
	if arrived || p.X != 4 {
		t.Errorf("got %v arrived=%v", p, arrived)
	}
	p, arrived = MoveToward(p, types.Vec2{X: 10}, 20)
	if !arrived || p.X != 10 {
		t.Errorf("got %v arrived=%v", p, arrived)
	}
}

func TestClampToArena(t *testing.T) {
	got := ClampToArena(types.Vec2{X: -5, Y: 900}, 800, 600, 10)
	if got != (types.Vec2{X: 10, Y: 590}) {
		t.Errorf("got %v", got)
	}
}
