package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := newRootCmd()
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tsvreport",
		Short:        "Combine per-speaker transcript TSV files and write an NLP report",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd)
		},
	}
	root.SilenceErrors = true

	root.Flags().String("dir", ".", "Directory holding the input TSV files and receiving the outputs")
	root.Flags().String("config", "", "Optional YAML config file")
	root.Flags().BoolP("quiet", "q", false, "Suppress progress logging")
	return root
}
