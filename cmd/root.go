package cmd

import (
	"github.com/abhisek/quantiz/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quantiz",
	Short: "Synthetic quantitative math assessment generator",
	Long: "Quantiz generates multiple-choice quantitative math assessments, " +
		"using an LLM when one is configured and deterministic topic " +
		"generators otherwise.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite event log (overrides QUANTIZ_DB env var; empty disables logging for generate/preview)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// openStoreFromFlag opens the event store named by --db, or returns nil
// when no path was given.
func openStoreFromFlag(cmd *cobra.Command) (*store.Store, error) {
	p, _ := cmd.Flags().GetString("db")
	if p == "" {
		return nil, nil
	}
	if err := store.EnsureDir(p); err != nil {
		return nil, err
	}
	return store.Open(p)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUANTIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
