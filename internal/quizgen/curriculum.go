package quizgen

import "strings"

// curriculumRule maps a keyword predicate to a canonical curriculum triple.
// Rules are evaluated in order; the first match wins.
type curriculumRule struct {
	keywords []string
	subject  string
	unit     string
	topic    string
}

var curriculumRules = []curriculumRule{
	{
		keywords: []string{"circle"},
		subject:  "Quantitative Math",
		unit:     "Geometry and Measurement",
		topic:    "Circles (Area, circumference)",
	},
	{
		keywords: []string{"quadratic"},
		subject:  "Quantitative Math",
		unit:     "Algebra",
		topic:    "Quadratic Equations & Functions (Finding roots/solutions, graphing)",
	},
	{
		keywords: []string{"coordinate"},
		subject:  "Quantitative Math",
		unit:     "Geometry and Measurement",
		topic:    "Coordinate Geometry",
	},
	{
		keywords: []string{"fraction", "percent"},
		subject:  "Quantitative Math",
		unit:     "Numbers and Operations",
		topic:    "Fractions, Decimals, & Percents",
	},
	{
		keywords: []string{"interpreting variables", "linear"},
		subject:  "Quantitative Math",
		unit:     "Algebra",
		topic:    "Interpreting Variables",
	},
}

// MapCurriculum classifies a free-text topic into its canonical
// (subject, unit, topic) triple. Matching is case-insensitive substring
// matching in fixed priority order, with a catch-all default.
func MapCurriculum(topic string) (subject, unit, mapped string) {
	t := strings.ToLower(topic)
	for _, rule := range curriculumRules {
		for _, kw := range rule.keywords {
			if strings.Contains(t, kw) {
				return rule.subject, rule.unit, rule.topic
			}
		}
	}
	return "Quantitative Math", "Problem Solving", "Algebra"
}
