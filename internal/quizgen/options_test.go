package quizgen

import (
	"math/rand/v2"
	"testing"
)

func testRand() Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func assertFiveValid(t *testing.T, options []string) {
	t.Helper()
	if len(options) != 5 {
		t.Fatalf("expected 5 options, got %d: %v", len(options), options)
	}
	seen := make(map[string]bool)
	for i, o := range options {
		if o == "" {
			t.Errorf("option %d is empty", i)
		}
		if seen[o] {
			t.Errorf("duplicate option %q", o)
		}
		seen[o] = true
	}
}

func TestEnsureFive_Empty(t *testing.T) {
	options := EnsureFive(testRand(), nil)
	assertFiveValid(t, options)
}

func TestEnsureFive_DedupAndTrim(t *testing.T) {
	options := EnsureFive(testRand(), []string{" 12 ", "12", "", "  ", "7", "12", "9"})
	assertFiveValid(t, options)

	// First-seen relative order of genuine inputs is preserved.
	if options[0] != "12" || options[1] != "7" || options[2] != "9" {
		t.Errorf("input order not preserved: %v", options)
	}
}

func TestEnsureFive_Truncates(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e", "f", "g"}
	options := EnsureFive(testRand(), in)
	assertFiveValid(t, options)
	for i, want := range []string{"a", "b", "c", "d", "e"} {
		if options[i] != want {
			t.Errorf("options[%d] = %q, want %q", i, options[i], want)
		}
	}
}

func TestEnsureFive_FillersNeverCollide(t *testing.T) {
	// Feed every possible filler value as an existing option; padding must
	// still find distinct values across many runs.
	for seed := range uint64(50) {
		r := rand.New(rand.NewPCG(seed, seed))
		options := EnsureFive(r, []string{"1", "2", "3"})
		assertFiveValid(t, options)
	}
}

func TestEnsureFive_ExactlyFivePassThrough(t *testing.T) {
	in := []string{"$25\\pi$", "$10\\pi$", "$5\\pi$", "$50\\pi$", "$12\\pi$"}
	options := EnsureFive(testRand(), in)
	for i := range in {
		if options[i] != in[i] {
			t.Errorf("options[%d] = %q, want %q", i, options[i], in[i])
		}
	}
}
