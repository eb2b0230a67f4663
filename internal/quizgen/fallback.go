package quizgen

import "strings"

// Fallback returns the deterministic generator's item for the given topic.
// Every generator is mathematically self-consistent by construction, so the
// result is always a valid Item with no external dependency.
func Fallback(r Rand, topic, difficulty string) Item {
	t := strings.ToLower(topic)
	switch {
	case strings.Contains(t, "circle"):
		return genCircle(r, difficulty)
	case strings.Contains(t, "quadratic"):
		return genQuadratic(r, difficulty)
	case strings.Contains(t, "coordinate"):
		return genCoordinate(r, difficulty)
	case strings.Contains(t, "fraction"), strings.Contains(t, "percent"):
		return genFraction(r, difficulty)
	default:
		return genLinear(r, difficulty)
	}
}
