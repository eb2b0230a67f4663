package plot

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/quantiz/internal/quizgen"
)

func samplePoints() map[string]quizgen.Point {
	return map[string]quizgen.Point{
		"A": {X: -2, Y: 4},
		"B": {X: 0, Y: -3},
		"C": {X: 3, Y: 1},
		"D": {X: -5, Y: -1},
		"E": {X: 5, Y: 5},
	}
}

func TestRender_ProducesSquarePNG(t *testing.T) {
	data, err := Render(samplePoints())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 600 || bounds.Dy() != 600 {
		t.Errorf("image is %dx%d, want 600x600", bounds.Dx(), bounds.Dy())
	}
}

func TestRender_Deterministic(t *testing.T) {
	first, err := Render(samplePoints())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := Render(samplePoints())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("identical inputs produced different images")
	}
}

func TestRender_NoPoints(t *testing.T) {
	if _, err := Render(nil); err == nil {
		t.Fatal("expected error for empty point set")
	}
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "question_1_graph.png")
	if err := RenderFile(samplePoints(), path); err != nil {
		t.Fatalf("render file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("file is not a valid PNG: %v", err)
	}
}
