package engine

import "testing"

func TestTaskXP(t *testing.T) {
	cases := []struct {
		d    Difficulty
		want int
	}{
		{DifficultyEasy, 20},
		{DifficultyMedium, 40},
		{DifficultyHard, 60},
		{DifficultyNone, 0},
	}
	for _, c := range cases {
		if got := TaskXP(c.d); got != c.want {
			t.Fatalf("TaskXP(%s)=%d, want %d", c.d, got, c.want)
		}
	}
}

func TestTaskCoins(t *testing.T) {
	cases := []struct {
		d     Difficulty
		level int
		want  int
	}{
		{DifficultyEasy, 1, 5},
		{DifficultyMedium, 1, 7}, // floor(5 * 1.5)
		{DifficultyHard, 1, 10},
		{DifficultyHard, 25, 12}, // floor(10 * 1.2)
		{DifficultyNone, 1, 0},
	}
	for _, c := range cases {
		if got := TaskCoins(c.d, c.level); got != c.want {
			t.Fatalf("TaskCoins(%s, %d)=%d, want %d", c.d, c.level, got, c.want)
		}
	}
}

func TestHabitXPStreakBonusCaps(t *testing.T) {
	if got := HabitXP(0, 1); got != 15 {
		t.Fatalf("HabitXP(0,1)=%d, want 15", got)
	}
	if got := HabitXP(5, 1); got != 25 {
		t.Fatalf("HabitXP(5,1)=%d, want 25", got)
	}
	// Bonus caps at 50 regardless of streak length.
	if got := HabitXP(25, 1); got != 65 {
		t.Fatalf("HabitXP(25,1)=%d, want 65", got)
	}
	if got := HabitXP(500, 1); got != 65 {
		t.Fatalf("HabitXP(500,1)=%d, want 65", got)
	}
	// Level multiplier applies after the cap: floor(65 * 1.1).
	if got := HabitXP(25, 10); got != 71 {
		t.Fatalf("HabitXP(25,10)=%d, want 71", got)
	}
}

func TestBossBaseDamage(t *testing.T) {
	if got := BossBaseDamage(DifficultyEasy); got != 25 {
		t.Fatalf("easy=%d, want 25", got)
	}
	if got := BossBaseDamage(DifficultyMedium); got != 50 {
		t.Fatalf("medium=%d, want 50", got)
	}
	if got := BossBaseDamage(DifficultyHard); got != 100 {
		t.Fatalf("hard=%d, want 100", got)
	}
	if got := BossBaseDamage(DifficultyNone); got != 0 {
		t.Fatalf("none=%d, want 0", got)
	}
}

func TestPomodoroXP(t *testing.T) {
	if got := PomodoroXP(1, 1); got != 20 {
		t.Fatalf("PomodoroXP(1,1)=%d, want 20", got)
	}
	if got := PomodoroXP(4, 1); got != 35 {
		t.Fatalf("PomodoroXP(4,1)=%d, want 35", got)
	}
	// floor((20 + 5) * 1.1)
	if got := PomodoroXP(2, 15); got != 27 {
		t.Fatalf("PomodoroXP(2,15)=%d, want 27", got)
	}
}
