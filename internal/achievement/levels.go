package achievement

// Level grades one metric for feedback labels.
type Level string

// Levels.
const (
	Excellent        Level = "excellent"
	Good             Level = "good"
	Average          Level = "average"
	Beginner         Level = "beginner"
	NeedsImprovement Level = "needs-improvement"
)

// PerformanceLevel grades words per minute.
func PerformanceLevel(wpm int) Level {
	switch {
	case wpm >= 70:
		return Excellent
	case wpm >= 50:
		return Good
	case wpm >= 30:
		return Average
	default:
		return Beginner
	}
}

// AccuracyLevel grades an accuracy percentage.
func AccuracyLevel(accuracy int) Level {
	switch {
	case accuracy >= 95:
		return Excellent
	case accuracy >= 85:
		return Good
	case accuracy >= 75:
		return Average
	default:
		return NeedsImprovement
	}
}

// Intensity sizes a confetti burst.
type Intensity string

// Intensities.
const (
	Light  Intensity = "light"
	Medium Intensity = "medium"
	Heavy  Intensity = "heavy"
)

// ShouldCelebrate reports whether a result earns confetti.
func ShouldCelebrate(wpm, accuracy int) bool {
	return wpm >= 60 || accuracy >= 90
}

// ConfettiIntensity picks the burst size for a result.
func ConfettiIntensity(wpm, accuracy int) Intensity {
	switch {
	case wpm >= 100 || accuracy == 100:
		return Heavy
	case wpm >= 80 || accuracy >= 95:
		return Medium
	default:
		return Light
	}
}

// ParticleCount returns how many confetti pieces to draw.
func ParticleCount(wpm int) int {
	if wpm >= 100 {
		return 80
	}
	return 50
}

// Palette returns confetti colors as hex strings.
func Palette(wpm, accuracy int) []string {
	switch {
	case accuracy == 100:
		return []string{"#22c55e", "#16a34a", "#15803d", "#4ade80"}
	case wpm >= 100:
		return []string{"#3b82f6", "#1d4ed8", "#1e40af", "#60a5fa"}
	default:
		return []string{"#ff6b6b", "#4ecdc4", "#45b7d1", "#96ceb4", "#feca57", "#ff9ff3"}
	}
}
