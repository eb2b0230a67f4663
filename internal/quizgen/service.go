package quizgen

import (
	"context"

	"github.com/google/uuid"
)

// topicPool is the fixed pool the orchestrator samples from.
var topicPool = []struct {
	topic      string
	difficulty string
}{
	{"Circles (Area, circumference)", "moderate"},
	{"Quadratic Equations & Functions (Finding roots/solutions, graphing)", "moderate"},
	{"Coordinate Geometry", "easy"},
	{"Fractions, Decimals, & Percents", "moderate"},
	{"Interpreting Variables", "easy"},
}

// Service drives item generation: it samples topics, runs the backend path
// per topic when a text generator is configured, and guarantees that every
// returned item is well-formed regardless of backend behavior.
type Service struct {
	backend TextGenerator
	rng     Rand
}

// NewService creates a Service. backend may be nil, in which case every item
// comes from the deterministic generators. r may be nil for a process-wide
// seeded source; tests inject a fixed-seed Rand.
func NewService(backend TextGenerator, r Rand) *Service {
	if r == nil {
		r = newRand()
	}
	return &Service{backend: backend, rng: r}
}

// Generate returns exactly n well-formed items. Topics are sampled without
// replacement from the fixed pool; when n exceeds the pool size the
// remaining slots are independent draws from the same pool and may repeat.
// Generate never fails for generation-quality reasons.
func (s *Service) Generate(ctx context.Context, n int) []Item {
	type pick struct{ topic, difficulty string }

	picks := make([]pick, 0, n)
	for _, i := range s.rng.Perm(len(topicPool)) {
		if len(picks) == n {
			break
		}
		picks = append(picks, pick{topicPool[i].topic, topicPool[i].difficulty})
	}
	for len(picks) < n {
		p := topicPool[s.rng.IntN(len(topicPool))]
		picks = append(picks, pick{p.topic, p.difficulty})
	}

	items := make([]Item, 0, n)
	for _, p := range picks {
		item := s.GenerateItem(ctx, p.topic, p.difficulty)

		// Defensive final pass. Upstream contracts already guarantee both
		// properties; residual violations are repaired, never surfaced.
		item.Options = EnsureFive(s.rng, item.Options)
		if item.CorrectIndex < 0 || item.CorrectIndex >= 5 {
			item.CorrectIndex = 0
		}
		items = append(items, item)
	}
	return items
}

// GenerateItem produces one item for a topic and difficulty. The backend
// path runs when a text generator is configured; any failure falls back
// to the deterministic generator immediately, with no retry.
func (s *Service) GenerateItem(ctx context.Context, topic, difficulty string) Item {
	if s.backend != nil {
		out := s.backend.Generate(ctx, BuildPrompt(topic, difficulty))
		if out.OK && out.Data != nil {
			return Repair(s.rng, out, topic, difficulty)
		}
	}
	return Fallback(s.rng, topic, difficulty)
}

// GenerateAssessment wraps Generate with a unique run ID and title for the
// exporters.
func (s *Service) GenerateAssessment(ctx context.Context, n int, title string) *Assessment {
	return &Assessment{
		ID:    uuid.New().String(),
		Title: title,
		Items: s.Generate(ctx, n),
	}
}
