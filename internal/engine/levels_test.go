package engine

import "testing"

func TestXPRequiredBoundaries(t *testing.T) {
	if got := XPRequiredForLevel(0); got != 0 {
		t.Fatalf("XPRequiredForLevel(0)=%d, want 0", got)
	}
	if got := XPRequiredForLevel(1); got != 0 {
		t.Fatalf("XPRequiredForLevel(1)=%d, want 0", got)
	}
	if got := XPRequiredForLevel(2); got != 112 {
		t.Fatalf("XPRequiredForLevel(2)=%d, want 112", got)
	}
}

func TestXPRequiredMonotonic(t *testing.T) {
	prev := 0
	for l := 2; l <= MaxLevel; l++ {
		req := XPRequiredForLevel(l)
		if req <= prev {
			t.Fatalf("XPRequiredForLevel(%d)=%d not greater than previous %d", l, req, prev)
		}
		prev = req
	}
}

func TestLevelForTotalXPRoundTrip(t *testing.T) {
	for l := 1; l <= MaxLevel; l++ {
		cum := CumulativeXPForLevel(l)
		if got := LevelForTotalXP(cum); got != l {
			t.Fatalf("LevelForTotalXP(CumulativeXPForLevel(%d))=%d, want %d", l, got, l)
		}
		if l > 1 {
			if got := LevelForTotalXP(cum - 1); got != l-1 {
				t.Fatalf("LevelForTotalXP(cum-1) at level %d = %d, want %d", l, got, l-1)
			}
		}
	}
}

func TestLevelCapsAtMax(t *testing.T) {
	huge := CumulativeXPForLevel(MaxLevel) * 10
	if got := LevelForTotalXP(huge); got != MaxLevel {
		t.Fatalf("LevelForTotalXP(huge)=%d, want %d", got, MaxLevel)
	}
}

func TestDifficultyMultiplierBands(t *testing.T) {
	cases := []struct {
		level int
		want  float64
	}{
		{1, 1.0}, {9, 1.0},
		{10, 1.1}, {19, 1.1},
		{25, 1.2},
		{35, 1.3},
		{45, 1.4},
		{55, 1.5},
		{65, 1.6},
		{75, 1.7},
		{85, 1.8},
		{90, 2.0}, {99, 2.0},
	}
	for _, c := range cases {
		if got := DifficultyMultiplier(c.level); got != c.want {
			t.Fatalf("DifficultyMultiplier(%d)=%v, want %v", c.level, got, c.want)
		}
	}
}

func TestTierForLevel(t *testing.T) {
	cases := []struct {
		level int
		want  string
	}{
		{1, "Novice"},
		{9, "Novice"},
		{10, "Apprentice"},
		{42, "Master"},
		{99, "Transcendent"},
	}
	for _, c := range cases {
		if got := TierForLevel(c.level); got != c.want {
			t.Fatalf("TierForLevel(%d)=%q, want %q", c.level, got, c.want)
		}
	}
}

func TestProgressToNextLevel(t *testing.T) {
	// Halfway between level 1 and 2.
	req := XPRequiredForLevel(2)
	p := ProgressToNextLevel(req/2, 1)
	if p.XPToNext != req-req/2 {
		t.Fatalf("XPToNext=%d, want %d", p.XPToNext, req-req/2)
	}
	if p.PercentComplete <= 0 || p.PercentComplete >= 100 {
		t.Fatalf("PercentComplete=%v, want in (0,100)", p.PercentComplete)
	}

	max := ProgressToNextLevel(CumulativeXPForLevel(MaxLevel), MaxLevel)
	if max.XPToNext != 0 || max.PercentComplete != 100 {
		t.Fatalf("at max level got %+v, want 0 to next and 100%%", max)
	}
}
