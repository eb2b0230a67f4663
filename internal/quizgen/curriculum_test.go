package quizgen

import "testing"

func TestMapCurriculum(t *testing.T) {
	tests := []struct {
		topic   string
		subject string
		unit    string
		mapped  string
	}{
		{"Area of a Circle", "Quantitative Math", "Geometry and Measurement", "Circles (Area, circumference)"},
		{"CIRCLE geometry", "Quantitative Math", "Geometry and Measurement", "Circles (Area, circumference)"},
		{"Quadratic Equations", "Quantitative Math", "Algebra", "Quadratic Equations & Functions (Finding roots/solutions, graphing)"},
		{"Coordinate Geometry", "Quantitative Math", "Geometry and Measurement", "Coordinate Geometry"},
		{"Fractions and Percentages", "Quantitative Math", "Numbers and Operations", "Fractions, Decimals, & Percents"},
		{"percent word problems", "Quantitative Math", "Numbers and Operations", "Fractions, Decimals, & Percents"},
		{"Linear Equations (Interpreting Variables)", "Quantitative Math", "Algebra", "Interpreting Variables"},
		{"solving linear systems", "Quantitative Math", "Algebra", "Interpreting Variables"},
		{"Probability", "Quantitative Math", "Problem Solving", "Algebra"},
		{"", "Quantitative Math", "Problem Solving", "Algebra"},
		// Rule order decides when several keywords are present.
		{"fraction of a circle", "Quantitative Math", "Geometry and Measurement", "Circles (Area, circumference)"},
	}
	for _, tc := range tests {
		subject, unit, mapped := MapCurriculum(tc.topic)
		if subject != tc.subject || unit != tc.unit || mapped != tc.mapped {
			t.Errorf("MapCurriculum(%q) = (%q, %q, %q), want (%q, %q, %q)",
				tc.topic, subject, unit, mapped, tc.subject, tc.unit, tc.mapped)
		}
	}
}
