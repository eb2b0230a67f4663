// Package export renders assessments into their downstream formats: the
// tagged-text ingestion format and a spreadsheet workbook. Exporters only
// read items; they never modify them.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/quantiz/internal/quizgen"
)

const txtDescription = "Comprehensive math assessment covering various curriculum topics"

// WriteTxt renders the assessment in the tagged-text ingestion format.
// The first question carries the @title/@description header; the correct
// option of each question is double-tagged (@@option).
func WriteTxt(w io.Writer, a *quizgen.Assessment) error {
	var b strings.Builder
	for i, item := range a.Items {
		writeTxtQuestion(&b, item, i+1, a.Title)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// ExportTxt writes the tagged-text rendering to path.
func ExportTxt(path string, a *quizgen.Assessment) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := WriteTxt(f, a); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func writeTxtQuestion(b *strings.Builder, item quizgen.Item, number int, title string) {
	if number == 1 {
		fmt.Fprintf(b, "@title %s\n", title)
		fmt.Fprintf(b, "@description %s\n", txtDescription)
		b.WriteString("\n")
	}
	fmt.Fprintf(b, "@question %s\n", quizgen.CleanText(item.Question))
	b.WriteString("@instruction Choose the correct option\n")
	fmt.Fprintf(b, "@difficulty %s\n", quizgen.CleanText(item.Difficulty))
	fmt.Fprintf(b, "@Order %d\n", number)
	for i, opt := range item.Options {
		tag := "@option"
		if i == item.CorrectIndex {
			tag = "@@option"
		}
		fmt.Fprintf(b, "%s %s\n", tag, quizgen.CleanText(opt))
	}
	fmt.Fprintf(b, "@explanation %s\n", quizgen.CleanText(item.Explanation))
	fmt.Fprintf(b, "@subject %s\n", quizgen.CleanText(item.Subject))
	fmt.Fprintf(b, "@unit %s\n", quizgen.CleanText(item.Unit))
	fmt.Fprintf(b, "@topic %s\n", quizgen.CleanText(item.Topic))
	b.WriteString("@plusmarks 1\n")
	b.WriteString("\n")
}
