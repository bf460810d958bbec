package achievement

import (
	"testing"

	"github.com/verte-zerg/typesprint/internal/model"
)

func hasID(ids []ID, want ID) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}

func TestDetectSpeedTiers(t *testing.T) {
	cases := map[int]ID{80: SpeedDemon, 99: SpeedDemon, 100: LightningFast, 120: TypingMaster}
	for wpm, want := range cases {
		ids := Detect(wpm, 50, 0)
		if ids[0] != want {
			t.Fatalf("Detect(%d) first = %s, want %s", wpm, ids[0], want)
		}
	}
	ids := Detect(130, 50, 0)
	if hasID(ids, LightningFast) || hasID(ids, SpeedDemon) {
		t.Fatalf("expected only the highest speed tier, got %v", ids)
	}
}

func TestDetectAccuracyAndCombos(t *testing.T) {
	ids := Detect(85, 100, 0)
	want := []ID{SpeedDemon, Perfectionist, FlawlessVictory, FirstTest}
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("index %d: expected %s, got %s", i, want[i], ids[i])
		}
	}
	ids = Detect(105, 98, 0)
	if !hasID(ids, Unstoppable) || hasID(ids, FlawlessVictory) || !hasID(ids, Sharpshooter) {
		t.Fatalf("unexpected combo result: %v", ids)
	}
	if ids := Detect(40, 95, 0); !hasID(ids, Accurate) {
		t.Fatalf("expected accurate at 95, got %v", ids)
	}
}

func TestDetectMilestones(t *testing.T) {
	if ids := Detect(0, 100, 0); hasID(ids, FirstTest) {
		t.Fatalf("expected no first-test badge at 0 wpm, got %v", ids)
	}
	if ids := Detect(51, 80, 50); !hasID(ids, Improvement) {
		t.Fatalf("expected improvement over previous best, got %v", ids)
	}
	if ids := Detect(50, 80, 50); hasID(ids, Improvement) {
		t.Fatalf("expected no improvement when tying, got %v", ids)
	}
	if ids := Detect(50, 80, 0); hasID(ids, Improvement) {
		t.Fatalf("expected no improvement without a previous result, got %v", ids)
	}
}

func TestForResultConsistency(t *testing.T) {
	history := make([]model.MetricsSnapshot, 10)
	for i := range history {
		history[i].WPM = 50
	}
	r := model.TestResult{Performance: model.Performance{WPM: 50, Accuracy: 90}, History: history}
	if ids := ForResult(r, 0); !hasID(ids, Consistent) {
		t.Fatalf("expected consistent badge for a flat history, got %v", ids)
	}
	r.History = history[:9]
	if ids := ForResult(r, 0); hasID(ids, Consistent) {
		t.Fatalf("expected no consistent badge for a short history, got %v", ids)
	}
}

func TestLevels(t *testing.T) {
	if PerformanceLevel(70) != Excellent || PerformanceLevel(50) != Good || PerformanceLevel(30) != Average || PerformanceLevel(29) != Beginner {
		t.Fatalf("unexpected performance levels")
	}
	if AccuracyLevel(95) != Excellent || AccuracyLevel(85) != Good || AccuracyLevel(75) != Average || AccuracyLevel(74) != NeedsImprovement {
		t.Fatalf("unexpected accuracy levels")
	}
}

func TestConfettiRules(t *testing.T) {
	if ShouldCelebrate(59, 89) {
		t.Fatalf("expected no confetti below thresholds")
	}
	if !ShouldCelebrate(60, 0) || !ShouldCelebrate(0, 90) {
		t.Fatalf("expected confetti at either threshold")
	}
	if ConfettiIntensity(100, 0) != Heavy || ConfettiIntensity(10, 100) != Heavy {
		t.Fatalf("expected heavy intensity")
	}
	if ConfettiIntensity(80, 0) != Medium || ConfettiIntensity(0, 95) != Medium {
		t.Fatalf("expected medium intensity")
	}
	if ConfettiIntensity(60, 90) != Light {
		t.Fatalf("expected light intensity")
	}
	if ParticleCount(100) != 80 || ParticleCount(99) != 50 {
		t.Fatalf("unexpected particle counts")
	}
	if len(Palette(50, 100)) != 4 || len(Palette(50, 50)) != 6 {
		t.Fatalf("unexpected palettes")
	}
}

func TestIconsCoverAllIDs(t *testing.T) {
	for _, id := range []ID{SpeedDemon, LightningFast, TypingMaster, Accurate, Sharpshooter, Perfectionist, FlawlessVictory, Unstoppable, FirstTest, Consistent, Improvement} {
		if id.Icon() == "" || id.Color() == "" {
			t.Fatalf("missing icon or color for %s", id)
		}
	}
}
