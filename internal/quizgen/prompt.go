package quizgen

import "fmt"

// BuildPrompt renders the instruction string sent to the text generator.
// Deterministic: same topic and difficulty always yield the same prompt.
func BuildPrompt(topic, difficulty string) string {
	const schema = `{"question": "string (use LaTeX if needed)", ` +
		`"options": ["string", "string", "string", "string", "string"], ` +
		`"correct_index": "integer (0-4)", ` +
		`"explanation": "string (step-by-step; LaTeX allowed)"}`

	return fmt.Sprintf(
		"Generate ONE multiple-choice math question as JSON ONLY (no extra text).\n"+
			"Topic: %s\n"+
			"Difficulty: %s\n"+
			"Requirements:\n"+
			"- Use LaTeX for math (e.g., $x^2$, \\frac{a}{b}).\n"+
			"- Provide EXACTLY 5 unique options in an array.\n"+
			"- Set correct_index to the correct option's index (0-4).\n"+
			"- Keys must be: question, options, correct_index, explanation.\n\n"+
			"Return a compact JSON matching this schema: %s\n",
		topic, difficulty, schema)
}
