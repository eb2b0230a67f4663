package quizgen

import (
	"fmt"
	"slices"
	"strconv"
)

// Each generator below builds the correct value by arithmetic construction,
// derives plausible distractors from it with fixed offsets, runs the lot
// through EnsureFive, and then relocates the correct option by exact string
// match. The post-repair position is never assumed.

func genCircle(r Rand, difficulty string) Item {
	radius := r.IntN(10) + 3 // [3,12]
	area := radius * radius
	correct := fmt.Sprintf("$%d\\pi$", area)

	options := EnsureFive(r, []string{
		correct,
		fmt.Sprintf("$%d\\pi$", 2*radius),
		fmt.Sprintf("$%d\\pi$", radius),
		fmt.Sprintf("$%d\\pi$", 2*area),
		fmt.Sprintf("$%d\\pi$", max(1, area/2)),
	})

	return Item{
		Question:     fmt.Sprintf("A circle has a radius of %d units. What is the area of the circle?", radius),
		Options:      options,
		CorrectIndex: locate(options, correct),
		Explanation: fmt.Sprintf(
			"Area formula: $A=\\pi r^2$. With $r=%d$, $A=\\pi\\cdot %d^2=%d\\pi$ square units.",
			radius, radius, area),
		Subject:    "Quantitative Math",
		Unit:       "Geometry and Measurement",
		Topic:      "Circles (Area, circumference)",
		Difficulty: difficulty,
	}
}

func genQuadratic(r Rand, difficulty string) Item {
	// Two distinct integer roots in [-6,6].
	a := r.IntN(13) - 6
	b := r.IntN(13) - 6
	for b == a {
		b = r.IntN(13) - 6
	}

	// Monic equation x^2 + Bx + C = 0 with roots a and b.
	B := -(a + b)
	C := a * b
	eq := fmt.Sprintf("$x^2 %s %dx %s %d=0$", sign(B), abs(B), sign(C), abs(C))

	correct := fmt.Sprintf("$x=%d$ and $x=%d$", a, b)
	options := EnsureFive(r, []string{
		correct,
		fmt.Sprintf("$x=%d$ and $x=%d$", a+1, b+1),
		fmt.Sprintf("$x=%d$ and $x=%d$", -a, -b),
		fmt.Sprintf("$x=%d$ and $x=%d$", a, b+2),
		fmt.Sprintf("$x=%d$ and $x=%d$", a-1, b),
	})

	return Item{
		Question:     fmt.Sprintf("If %s, what are all possible values of $x$?", eq),
		Options:      options,
		CorrectIndex: locate(options, correct),
		Explanation:  fmt.Sprintf("Factor: $(x-%d)(x-%d)=0$ so $x=%d$ or $x=%d$.", a, b, a, b),
		Subject:      "Quantitative Math",
		Unit:         "Algebra",
		Topic:        "Quadratic Equations & Functions (Finding roots/solutions, graphing)",
		Difficulty:   difficulty,
	}
}

var pointLabels = []string{"A", "B", "C", "D", "E"}

func genCoordinate(r Rand, difficulty string) Item {
	target := Point{X: r.IntN(11) - 5, Y: r.IntN(11) - 5}

	// Four more points, all with x-coordinates distinct from the target
	// and from each other, so the question has a single answer.
	pts := []Point{target}
	xs := map[int]bool{target.X: true}
	for len(pts) < 5 {
		x := r.IntN(11) - 5
		if xs[x] {
			continue
		}
		pts = append(pts, Point{X: x, Y: r.IntN(11) - 5})
		xs[x] = true
	}
	r.Shuffle(len(pts), func(i, j int) { pts[i], pts[j] = pts[j], pts[i] })

	idx := slices.Index(pts, target)
	points := make(map[string]Point, len(pts))
	for i, label := range pointLabels {
		points[label] = pts[i]
	}

	return Item{
		Question:     fmt.Sprintf("Which point on the coordinate plane has an $x$-coordinate of %d?", target.X),
		Options:      slices.Clone(pointLabels),
		CorrectIndex: idx,
		Explanation: fmt.Sprintf(
			"Point %s is at $(%d, %d)$ so its $x$-coordinate is %d.",
			pointLabels[idx], target.X, target.Y, target.X),
		Subject:    "Quantitative Math",
		Unit:       "Geometry and Measurement",
		Topic:      "Coordinate Geometry",
		Difficulty: difficulty,
		HasImage:   true,
		Points:     points,
	}
}

var (
	fractionPercentages = []int{25, 30, 40, 50, 60, 75, 80}
	fractionCategories  = []string{"wearing glasses", "playing sports", "taking music lessons"}
)

func genFraction(r Rand, difficulty string) Item {
	total := r.IntN(81) + 40 // [40,120]
	percentage := fractionPercentages[r.IntN(len(fractionPercentages))]
	category := fractionCategories[r.IntN(len(fractionCategories))]
	correct := total * percentage / 100

	candidates := []string{strconv.Itoa(correct)}
	for _, d := range []int{-10, -5, 5, 10} {
		if w := correct + d; w > 0 {
			candidates = append(candidates, strconv.Itoa(w))
		}
	}

	options := EnsureFive(r, candidates)
	r.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return Item{
		Question: fmt.Sprintf(
			"In a group of %d students, %d%% are %s. How many students are %s?",
			total, percentage, category, category),
		Options:      options,
		CorrectIndex: locate(options, strconv.Itoa(correct)),
		Explanation: fmt.Sprintf(
			"Compute %d%% of %d: $\\frac{%d}{100}\\times %d=%d$.",
			percentage, total, percentage, total, correct),
		Subject:    "Quantitative Math",
		Unit:       "Numbers and Operations",
		Topic:      "Fractions, Decimals, & Percents",
		Difficulty: difficulty,
	}
}

func genLinear(r Rand, difficulty string) Item {
	a := r.IntN(9) + 2     // [2,10]
	c := r.IntN(a-1) + 1   // [1,a-1], so a-c > 0
	d := r.IntN(16) + 5    // [5,20]
	target := r.IntN(4) + 2 // [2,5]

	// Solve the intercept backward so the target root is exact:
	// ax + b = cx + d  =>  b = d - target*(a-c).
	b := d - target*(a-c)
	expr := fmt.Sprintf("$%dx %s %d = %dx + %d$", a, sign(b), abs(b), c, d)

	options := EnsureFive(r, []string{
		strconv.Itoa(target),
		strconv.Itoa(target + 1),
		strconv.Itoa(max(1, target-1)),
		strconv.Itoa(target + 2),
		strconv.Itoa(target * 2),
	})
	r.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return Item{
		Question:     fmt.Sprintf("If %s, what is the value of $x$?", expr),
		Options:      options,
		CorrectIndex: locate(options, strconv.Itoa(target)),
		Explanation: fmt.Sprintf(
			"$%dx-%dx=%d-%d$ so $%dx=%d$, hence $x=%d$.",
			a, c, d, b, a-c, d-b, target),
		Subject:    "Quantitative Math",
		Unit:       "Algebra",
		Topic:      "Interpreting Variables",
		Difficulty: difficulty,
	}
}

// locate finds the correct option's position by exact match, defaulting to 0.
func locate(options []string, correct string) int {
	if i := slices.Index(options, correct); i >= 0 {
		return i
	}
	return 0
}

func sign(n int) string {
	if n >= 0 {
		return "+"
	}
	return "-"
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
