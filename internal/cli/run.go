package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forPelevin/tsvreport/internal/pipeline"
)

func run(cmd *cobra.Command) error {
	dir, _ := cmd.Flags().GetString("dir")
	configPath, _ := cmd.Flags().GetString("config")
	quiet, _ := cmd.Flags().GetBool("quiet")

	cfg := pipeline.Config{
		Dir:      dir,
		CacheDir: getenvDefault("TSVREPORT_CACHE_DIR", pipeline.DefaultCacheDir),
		Language: getenvDefault("TSVREPORT_LANGUAGE", pipeline.DefaultLanguage),
	}
	if configPath != "" {
		var err error
		cfg, err = pipeline.LoadConfig(configPath, cfg)
		if err != nil {
			return err
		}
		// An explicit flag wins over the file.
		if cmd.Flags().Changed("dir") {
			cfg.Dir = dir
		}
	}
	if !quiet {
		errOut := cmd.ErrOrStderr()
		cfg.Logf = func(format string, args ...any) {
			fmt.Fprintf(errOut, format+"\n", args...)
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	sum, err := pipeline.Run(context.Background(), cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Combined %d TSV files into '%s'\n", sum.Sources, cfg.CombinedName)
	fmt.Fprintf(out, "NLP analysis complete. Results saved in '%s' and figures saved in '%s' folder.\n",
		cfg.ReportName, cfg.FiguresDir)
	return nil
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
