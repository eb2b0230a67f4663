package quizgen

// Item represents a fully validated multiple-choice assessment question.
type Item struct {
	// Question is the question body shown to the student.
	// May embed LaTeX math markup, e.g. "$x^2$" or "\\frac{a}{b}".
	Question string

	// Options contains exactly 5 pairwise-distinct, non-empty answer options.
	Options []string

	// CorrectIndex is the index into Options of the correct answer.
	// Always in [0,5).
	CorrectIndex int

	// Explanation is a step-by-step worked solution. Always present.
	Explanation string

	// Subject, Unit, and Topic are the canonical curriculum triple
	// assigned by the curriculum mapper.
	Subject string
	Unit    string
	Topic   string

	// Difficulty is the free-form difficulty label, passed through unchanged.
	Difficulty string

	// HasImage is true only for questions that need a coordinate-plane
	// illustration rendered downstream.
	HasImage bool

	// Points maps a single-letter label ("A".."E") to a plotted point.
	// Non-nil iff HasImage is true and the question was produced by the
	// deterministic coordinate generator (the backend path never has the
	// geometry state to populate it).
	Points map[string]Point
}

// Point is an integer coordinate on the plane.
type Point struct {
	X int
	Y int
}

// Assessment is an ordered set of items produced by one Service.Generate run.
type Assessment struct {
	// ID is a unique identifier for this generation run.
	ID string

	// Title is the assessment title used by exporters.
	Title string

	Items []Item
}

// Outcome is the transient result of one text-generator call. It is
// consumed exactly once by the repairer and never persisted.
type Outcome struct {
	// OK reports whether the backend produced a parseable structured object.
	OK bool

	// Data is the untyped field bag parsed from the backend's raw output.
	// Only meaningful when OK is true. Field types are never trusted;
	// the repairer coerces and checks every field individually.
	Data map[string]any

	// Err describes the failure when OK is false.
	Err string
}
