package quizgen

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
)

// scriptRand replays a fixed queue of IntN results and leaves order alone,
// making generator outputs fully predictable.
type scriptRand struct {
	t    *testing.T
	ints []int
}

func (s *scriptRand) IntN(n int) int {
	s.t.Helper()
	if len(s.ints) == 0 {
		s.t.Fatalf("scriptRand exhausted on IntN(%d)", n)
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		s.t.Fatalf("scripted value %d out of range for IntN(%d)", v, n)
	}
	return v
}

func (s *scriptRand) Shuffle(n int, swap func(i, j int)) {}

func (s *scriptRand) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

func assertItemValid(t *testing.T, item Item) {
	t.Helper()
	if item.Question == "" {
		t.Error("question is empty")
	}
	assertFiveValid(t, item.Options)
	if item.CorrectIndex < 0 || item.CorrectIndex > 4 {
		t.Errorf("correct index %d out of range", item.CorrectIndex)
	}
	if item.Explanation == "" {
		t.Error("explanation is empty")
	}
	if item.Subject == "" || item.Unit == "" || item.Topic == "" {
		t.Errorf("incomplete curriculum triple: %q/%q/%q", item.Subject, item.Unit, item.Topic)
	}
}

func TestGenCircle_RadiusFive(t *testing.T) {
	r := &scriptRand{t: t, ints: []int{2}} // radius 5
	item := genCircle(r, "moderate")

	if want := "A circle has a radius of 5 units. What is the area of the circle?"; item.Question != want {
		t.Errorf("question = %q, want %q", item.Question, want)
	}
	if got := item.Options[item.CorrectIndex]; got != "$25\\pi$" {
		t.Errorf("correct option = %q, want $25\\pi$", got)
	}
	if !strings.Contains(item.Explanation, "25\\pi") {
		t.Errorf("explanation %q does not show the computed area", item.Explanation)
	}
	assertItemValid(t, item)
	if item.Topic != "Circles (Area, circumference)" {
		t.Errorf("topic = %q", item.Topic)
	}
}

func TestGenQuadratic_KnownRoots(t *testing.T) {
	r := &scriptRand{t: t, ints: []int{8, 3}} // roots 2 and -3
	item := genQuadratic(r, "moderate")

	if want := "If $x^2 + 1x - 6=0$, what are all possible values of $x$?"; item.Question != want {
		t.Errorf("question = %q, want %q", item.Question, want)
	}
	if got := item.Options[item.CorrectIndex]; got != "$x=2$ and $x=-3$" {
		t.Errorf("correct option = %q", got)
	}
	assertItemValid(t, item)
}

func TestGenQuadratic_RootsAlwaysDistinct(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	for range 200 {
		item := genQuadratic(r, "hard")
		var a, b int
		if _, err := fmt.Sscanf(item.Options[item.CorrectIndex], "$x=%d$ and $x=%d$", &a, &b); err != nil {
			t.Fatalf("unparseable correct option %q: %v", item.Options[item.CorrectIndex], err)
		}
		if a == b {
			t.Fatalf("degenerate roots in %q", item.Question)
		}
	}
}

func TestGenFraction_KnownValues(t *testing.T) {
	r := &scriptRand{t: t, ints: []int{40, 3, 0}} // 80 students, 50%, glasses
	item := genFraction(r, "easy")

	if want := "In a group of 80 students, 50% are wearing glasses. How many students are wearing glasses?"; item.Question != want {
		t.Errorf("question = %q, want %q", item.Question, want)
	}
	if got := item.Options[item.CorrectIndex]; got != "40" {
		t.Errorf("correct option = %q, want 40", got)
	}
	assertItemValid(t, item)
}

func TestGenLinear_KnownSolution(t *testing.T) {
	r := &scriptRand{t: t, ints: []int{3, 1, 7, 1}} // 5x+3 = 2x+12, x=3
	item := genLinear(r, "moderate")

	if want := "If $5x + 3 = 2x + 12$, what is the value of $x$?"; item.Question != want {
		t.Errorf("question = %q, want %q", item.Question, want)
	}
	if got := item.Options[item.CorrectIndex]; got != "3" {
		t.Errorf("correct option = %q, want 3", got)
	}
	if !strings.Contains(item.Explanation, "x=3") {
		t.Errorf("explanation %q does not state the solution", item.Explanation)
	}
	assertItemValid(t, item)
}

func TestGenCoordinate_PointsConsistent(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 11))
	for range 100 {
		item := genCoordinate(r, "easy")
		assertItemValid(t, item)
		if !item.HasImage {
			t.Fatal("coordinate item must carry an image")
		}
		if len(item.Points) != 5 {
			t.Fatalf("expected 5 labelled points, got %d", len(item.Points))
		}
		for i, want := range pointLabels {
			if item.Options[i] != want {
				t.Fatalf("options[%d] = %q, want %q", i, item.Options[i], want)
			}
		}

		target, ok := item.Points[item.Options[item.CorrectIndex]]
		if !ok {
			t.Fatalf("correct label %q missing from points", item.Options[item.CorrectIndex])
		}
		if !strings.Contains(item.Question, fmt.Sprintf("of %d?", target.X)) {
			t.Fatalf("question %q does not ask for x=%d", item.Question, target.X)
		}
		for label, p := range item.Points {
			if label != item.Options[item.CorrectIndex] && p.X == target.X {
				t.Fatalf("point %s shares x-coordinate %d with the answer", label, p.X)
			}
		}
	}
}

func TestGeneratorInvariants(t *testing.T) {
	gens := map[string]func(Rand, string) Item{
		"circle":     genCircle,
		"quadratic":  genQuadratic,
		"coordinate": genCoordinate,
		"fraction":   genFraction,
		"linear":     genLinear,
	}
	for name, gen := range gens {
		t.Run(name, func(t *testing.T) {
			r := rand.New(rand.NewPCG(3, 9))
			for range 100 {
				assertItemValid(t, gen(r, "moderate"))
			}
		})
	}
}

func TestFallback_Dispatch(t *testing.T) {
	tests := []struct {
		topic string
		unit  string
		want  string
	}{
		{"Area of a Circle", "Geometry and Measurement", "Circles (Area, circumference)"},
		{"Quadratic Equations", "Algebra", "Quadratic Equations & Functions (Finding roots/solutions, graphing)"},
		{"Coordinate Geometry", "Geometry and Measurement", "Coordinate Geometry"},
		{"Fractions and Percentages", "Numbers and Operations", "Fractions, Decimals, & Percents"},
		{"Linear Equations (Interpreting Variables)", "Algebra", "Interpreting Variables"},
		{"something unheard of", "Algebra", "Interpreting Variables"},
	}
	r := rand.New(rand.NewPCG(5, 5))
	for _, tc := range tests {
		item := Fallback(r, tc.topic, "easy")
		if item.Topic != tc.want || item.Unit != tc.unit {
			t.Errorf("Fallback(%q) produced %q/%q, want %q/%q", tc.topic, item.Unit, item.Topic, tc.unit, tc.want)
		}
		if item.Difficulty != "easy" {
			t.Errorf("difficulty = %q", item.Difficulty)
		}
	}
}
