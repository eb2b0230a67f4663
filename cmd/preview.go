package cmd

import (
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/quantiz/internal/llm"
	"github.com/abhisek/quantiz/internal/quizgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate questions and print them to the terminal (no files)",
	Long: `Generate an assessment and pretty-print it without writing exports.

A stateless developer tool for judging question quality and testing
prompt or generator changes.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("num", 5, "Number of questions to generate")
	previewCmd.Flags().Bool("offline", false, "Skip the LLM and use deterministic generators only")
}

var (
	previewQuestion = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	previewCorrect = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#22C55E"))

	previewDim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))
)

func runPreview(cmd *cobra.Command, args []string) error {
	num, _ := cmd.Flags().GetInt("num")
	offline, _ := cmd.Flags().GetBool("offline")

	ctx := cmd.Context()

	var backend quizgen.TextGenerator
	if !offline {
		if provider, err := llm.NewProviderFromEnv(ctx, nil); err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Previewing deterministic generators only.")
		} else {
			backend = quizgen.NewProviderBackend(provider)
		}
	}

	svc := quizgen.NewService(backend, nil)
	items := svc.Generate(ctx, num)

	for i, item := range items {
		fmt.Println(previewQuestion.Render(fmt.Sprintf("Question %d. %s", i+1, item.Question)))
		fmt.Println(previewDim.Render(fmt.Sprintf("%s · %s · %s · %s",
			item.Subject, item.Unit, item.Topic, item.Difficulty)))

		for j, opt := range item.Options {
			line := fmt.Sprintf("  (%c) %s", 'A'+j, opt)
			if j == item.CorrectIndex {
				fmt.Println(previewCorrect.Render(line + " ✓"))
			} else {
				fmt.Println(line)
			}
		}

		fmt.Println(previewDim.Render("Explanation: " + item.Explanation))
		if item.HasImage {
			fmt.Println(previewDim.Render(fmt.Sprintf("Points: %v", item.Points)))
		}
		fmt.Println(previewDim.Render(strings.Repeat("─", 60)))
	}

	return nil
}
