package quizgen

import (
	"fmt"
	"strconv"
	"strings"
)

// Repair coerces a text-generator outcome into a valid Item, or returns the
// deterministic generator's item when the outcome cannot be salvaged.
// Repair never fabricates missing narrative text: an empty question or
// explanation after sanitation discards the whole record.
func Repair(r Rand, out Outcome, topic, difficulty string) Item {
	if !out.OK || out.Data == nil {
		return Fallback(r, topic, difficulty)
	}

	question := CleanText(strings.TrimSpace(coerceString(out.Data["question"])))
	explanation := CleanText(strings.TrimSpace(coerceString(out.Data["explanation"])))

	raw := coerceStrings(out.Data["options"])
	for i, o := range raw {
		raw[i] = CleanText(o)
	}
	options := EnsureFive(r, raw)

	correctIndex := coerceIndex(out.Data["correct_index"])
	if correctIndex < 0 || correctIndex >= 5 {
		correctIndex = 0
	}

	if question == "" || explanation == "" {
		return Fallback(r, topic, difficulty)
	}

	subject, unit, mapped := MapCurriculum(topic)
	return Item{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		Explanation:  explanation,
		Subject:      subject,
		Unit:         unit,
		Topic:        mapped,
		Difficulty:   difficulty,
		// The backend path never yields Points; plotting needs generator
		// internal geometry state that free text cannot carry.
		HasImage: strings.Contains(strings.ToLower(mapped), "coordinate"),
	}
}

// coerceString renders any JSON value as a string. Numbers come back from
// the decoder as float64; integral values are rendered without a fraction.
func coerceString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprint(s)
	}
}

func coerceStrings(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, len(list))
		for i, e := range list {
			out[i] = coerceString(e)
		}
		return out
	default:
		return nil
	}
}

// coerceIndex attempts integer coercion, returning -1 (invalid sentinel)
// when the value has no sensible integer reading.
func coerceIndex(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return -1
		}
		return i
	default:
		return -1
	}
}
