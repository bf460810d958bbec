package timer

// Urgency is a coarse bucket of how little time is left.
type Urgency string

// Urgency levels, least to most pressing.
const (
	Normal   Urgency = "normal"
	Caution  Urgency = "caution"
	Warning  Urgency = "warning"
	Critical Urgency = "critical"
)

// Classify buckets remaining/total: ≤10% critical, ≤25% warning, ≤50%
// caution, otherwise normal. A zero total is critical.
func Classify(remaining, total int) Urgency {
	if total <= 0 {
		return Critical
	}
	pct := float64(remaining) / float64(total) * 100
	switch {
	case pct <= 10:
		return Critical
	case pct <= 25:
		return Warning
	case pct <= 50:
		return Caution
	default:
		return Normal
	}
}

// ClassifyBasic is Classify without the caution bucket.
func ClassifyBasic(remaining, total int) Urgency {
	u := Classify(remaining, total)
	if u == Caution {
		return Normal
	}
	return u
}
