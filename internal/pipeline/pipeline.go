package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/forPelevin/tsvreport/internal/ports"
	"github.com/forPelevin/tsvreport/internal/ports/adapters/gochart"
	"github.com/forPelevin/tsvreport/internal/ports/adapters/nlp"
	"github.com/forPelevin/tsvreport/internal/ports/adapters/tsv"
	"github.com/forPelevin/tsvreport/internal/ports/adapters/wordcloud"
	"github.com/forPelevin/tsvreport/internal/resources"
	"github.com/forPelevin/tsvreport/internal/usecase"
)

const (
	DefaultInputExt     = ".tsv"
	DefaultCombinedName = "all.tsv"
	DefaultReportName   = "nlp_report.md"
	DefaultFiguresDir   = "figures"
	DefaultCacheDir     = ".cache"
	DefaultLanguage     = "english"
)

type Config struct {
	// Dir holds the input tables and receives every output. Defaults to ".".
	Dir          string `yaml:"dir"`
	InputExt     string `yaml:"input_ext"`
	CombinedName string `yaml:"combined_name"`
	ReportName   string `yaml:"report_name"`
	// FiguresDir is relative to Dir.
	FiguresDir string `yaml:"figures_dir"`

	// CacheDir is the base directory for the linguistic resource bundles.
	// Relative paths are resolved against the process working directory.
	CacheDir string `yaml:"cache_dir"`
	Language string `yaml:"language"`

	Logf func(format string, args ...any) `yaml:"-"`
}

// Validate fills defaults and rejects inconsistent settings.
func (c *Config) Validate() error {
	if c.Dir == "" {
		c.Dir = "."
	}
	if c.InputExt == "" {
		c.InputExt = DefaultInputExt
	}
	if c.CombinedName == "" {
		c.CombinedName = DefaultCombinedName
	}
	if c.ReportName == "" {
		c.ReportName = DefaultReportName
	}
	if c.FiguresDir == "" {
		c.FiguresDir = DefaultFiguresDir
	}
	if c.CacheDir == "" {
		c.CacheDir = DefaultCacheDir
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}

	if st, err := os.Stat(c.Dir); err != nil {
		return fmt.Errorf("stat dir: %w", err)
	} else if !st.IsDir() {
		return fmt.Errorf("dir %q is not a directory", c.Dir)
	}
	if !strings.HasPrefix(c.InputExt, ".") {
		return fmt.Errorf("input extension %q must start with a dot", c.InputExt)
	}
	for name, v := range map[string]string{"combined name": c.CombinedName, "report name": c.ReportName} {
		if v != filepath.Base(v) {
			return fmt.Errorf("%s %q must be a plain file name", name, v)
		}
	}
	if filepath.Ext(c.CombinedName) != c.InputExt {
		return fmt.Errorf("combined name %q must use the input extension %q", c.CombinedName, c.InputExt)
	}
	if c.CombinedName == c.ReportName {
		return errors.New("combined name and report name must differ")
	}
	if filepath.IsAbs(c.FiguresDir) || strings.HasPrefix(filepath.Clean(c.FiguresDir), "..") {
		return fmt.Errorf("figures dir %q must be relative to dir", c.FiguresDir)
	}
	if !resources.HasStopWords(c.Language) {
		return fmt.Errorf("no stop-word list for language %q", c.Language)
	}
	return nil
}

// Summary describes a finished run.
type Summary struct {
	Sources      int
	Rows         int
	CombinedPath string
	ReportPath   string
	FiguresDir   string
}

func Run(ctx context.Context, cfg Config) (Summary, error) {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	nlpDir, written, err := resources.Ensure(cfg.CacheDir)
	if err != nil {
		return Summary{}, err
	}
	if written > 0 {
		logf("nlp resources installed: %s (%d files)", nlpDir, written)
	}
	stop, err := resources.LoadStopWords(nlpDir, cfg.Language)
	if err != nil {
		return Summary{}, err
	}
	logf("stop words: %s (%d)", cfg.Language, stop.Len())

	// adapters
	store := tsv.New(cfg.InputExt, cfg.CombinedName)
	lang := nlp.New()
	charts := gochart.New()
	cloud := wordcloud.New()

	uc := usecase.New(usecase.Deps{
		Store:     store,
		Tokenizer: lang,
		Tagger:    lang,
		Charts:    charts,
		Cloud:     cloud,
	})

	combinedPath := filepath.Join(cfg.Dir, cfg.CombinedName)
	res, err := uc.Run(ctx, usecase.Input{
		Dir:          cfg.Dir,
		CombinedPath: combinedPath,
		FiguresDir:   cfg.FiguresDir,
		StopWords:    stop,
		Logf:         logf,
	})
	if err != nil {
		return Summary{}, err
	}

	reportPath := filepath.Join(cfg.Dir, cfg.ReportName)
	if err := os.WriteFile(reportPath, []byte(res.Report), 0o644); err != nil {
		return Summary{}, fmt.Errorf("write report: %w", err)
	}
	logf("report written: %s", reportPath)

	return Summary{
		Sources:      len(res.Sources),
		Rows:         len(res.Rows),
		CombinedPath: combinedPath,
		ReportPath:   reportPath,
		FiguresDir:   filepath.Join(cfg.Dir, cfg.FiguresDir),
	}, nil
}

// ensure adapters implement ports
var _ ports.TableStore = (*tsv.Adapter)(nil)
var _ ports.Tokenizer = (*nlp.Adapter)(nil)
var _ ports.Tagger = (*nlp.Adapter)(nil)
var _ ports.Charts = (*gochart.Adapter)(nil)
var _ ports.WordCloud = (*wordcloud.Adapter)(nil)
