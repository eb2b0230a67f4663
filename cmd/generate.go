package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quantiz/internal/export"
	"github.com/abhisek/quantiz/internal/llm"
	"github.com/abhisek/quantiz/internal/plot"
	"github.com/abhisek/quantiz/internal/quizgen"
	"github.com/abhisek/quantiz/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an assessment and export it",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().Int("num", 2, "Number of questions")
	generateCmd.Flags().String("title", "AI-Generated Quantitative Math Assessment", "Assessment title")
	generateCmd.Flags().String("txt", "assessment_questions.txt", "Tagged-text output path (empty to skip)")
	generateCmd.Flags().String("xlsx", "math_assessment.xlsx", "Spreadsheet output path (empty to skip)")
	generateCmd.Flags().String("images", "", "Directory for standalone plot PNGs (empty to skip)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	num, _ := cmd.Flags().GetInt("num")
	title, _ := cmd.Flags().GetString("title")
	txtPath, _ := cmd.Flags().GetString("txt")
	xlsxPath, _ := cmd.Flags().GetString("xlsx")
	imagesDir, _ := cmd.Flags().GetString("images")

	if num < 1 {
		return fmt.Errorf("--num must be at least 1")
	}

	ctx := cmd.Context()

	st, err := openStoreFromFlag(cmd)
	if err != nil {
		return fmt.Errorf("open event store: %w", err)
	}
	var repo store.EventRepo
	if st != nil {
		defer st.Close()
		repo = st.EventRepo()
	}

	// A missing provider is not an error: generation falls back to the
	// deterministic topic generators.
	var backend quizgen.TextGenerator
	if provider, err := llm.NewProviderFromEnv(ctx, repo); err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Using deterministic generators only.")
	} else {
		backend = quizgen.NewProviderBackend(provider)
	}

	svc := quizgen.NewService(backend, nil)
	assessment := svc.GenerateAssessment(ctx, num, title)

	if txtPath != "" {
		if err := export.ExportTxt(txtPath, assessment); err != nil {
			return err
		}
		fmt.Println("Formatted questions:", txtPath)
	}

	if xlsxPath != "" {
		if err := export.ExportXlsx(xlsxPath, assessment); err != nil {
			return err
		}
		fmt.Println("Spreadsheet:", xlsxPath)
	}

	if imagesDir != "" {
		if err := writeImages(imagesDir, assessment); err != nil {
			return err
		}
	}

	fmt.Printf("Generated %d questions (run %s)\n", len(assessment.Items), assessment.ID)
	return nil
}

// writeImages renders standalone plot PNGs for items that carry point data.
func writeImages(dir string, a *quizgen.Assessment) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create image dir: %w", err)
	}
	for i, item := range a.Items {
		if !item.HasImage || item.Points == nil {
			continue
		}
		path := fmt.Sprintf("%s/question_%d_graph.png", dir, i+1)
		if err := plot.RenderFile(item.Points, path); err != nil {
			return err
		}
		fmt.Println("Plot:", path)
	}
	return nil
}
