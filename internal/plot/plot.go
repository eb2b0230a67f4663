// Package plot renders coordinate-plane illustrations for questions that
// request one via their label→point mapping. The generation pipeline never
// calls into this package; rendering happens at export time.
package plot

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/fogleman/gg"

	"github.com/abhisek/quantiz/internal/quizgen"
)

const (
	imageSize = 600 // px, square
	planeMin  = -6
	planeMax  = 6
)

// Render draws the labeled points on a [-6,6]² grid and returns PNG bytes.
func Render(points map[string]quizgen.Point) ([]byte, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("no points to plot")
	}

	unit := float64(imageSize) / float64(planeMax-planeMin)
	toX := func(x int) float64 { return float64(x-planeMin) * unit }
	toY := func(y int) float64 { return float64(planeMax-y) * unit }

	dc := gg.NewContext(imageSize, imageSize)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Grid lines.
	dc.SetRGBA(0, 0, 0, 0.3)
	dc.SetLineWidth(1)
	for i := planeMin; i <= planeMax; i++ {
		dc.DrawLine(toX(i), 0, toX(i), imageSize)
		dc.DrawLine(0, toY(i), imageSize, toY(i))
	}
	dc.Stroke()

	// Axes.
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(2)
	dc.DrawLine(toX(0), 0, toX(0), imageSize)
	dc.DrawLine(0, toY(0), imageSize, toY(0))
	dc.Stroke()

	// Points, in label order so rendering is deterministic.
	labels := make([]string, 0, len(points))
	for label := range points {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		p := points[label]
		x, y := toX(p.X), toY(p.Y)

		dc.SetRGB(0.1, 0.2, 0.8)
		dc.DrawCircle(x, y, 6)
		dc.Fill()

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(label, x+8, y-8, 0, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode plot PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderFile renders the points and writes the PNG to path.
func RenderFile(points map[string]quizgen.Point, path string) error {
	png, err := Render(points)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("write plot: %w", err)
	}
	return nil
}
