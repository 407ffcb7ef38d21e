package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/forPelevin/tsvreport/internal/domain/report"
	"github.com/forPelevin/tsvreport/internal/domain/stats"
	"github.com/forPelevin/tsvreport/internal/domain/textnorm"
	"github.com/forPelevin/tsvreport/internal/domain/transcript"
	"github.com/forPelevin/tsvreport/internal/ports"
	"github.com/forPelevin/tsvreport/internal/types"
)

const (
	topWords    = 10
	cloudAltTop = 5
	posAltTop   = 3

	speakerChartFile = "speaker_distribution.png"
	cloudChartFile   = "wordcloud.png"
	posChartFile     = "pos_distribution.png"
)

type Deps struct {
	Store     ports.TableStore
	Tokenizer ports.Tokenizer
	Tagger    ports.Tagger
	Charts    ports.Charts
	Cloud     ports.WordCloud
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	Dir          string
	CombinedPath string
	// FiguresDir is relative to Dir; the report links figures through it.
	FiguresDir string
	StopWords  textnorm.StopWords
	Logf       func(format string, args ...any)
}

type Result struct {
	Sources  []string
	Rows     []types.Segment
	Basic    stats.Basic
	Speakers []types.Count
	Words    []types.Count
	POS      []types.Count
	Report   string
}

func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	logf := in.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	// ingest
	files, err := u.d.Store.Discover(in.Dir)
	if err != nil {
		return Result{}, fmt.Errorf("discover inputs: %w", err)
	}
	logf("found %d input files", len(files))
	sources := make([][]types.Segment, 0, len(files))
	for _, f := range files {
		rows, err := u.d.Store.ReadSource(f)
		if err != nil {
			return Result{}, fmt.Errorf("read input: %w", err)
		}
		sources = append(sources, rows)
	}
	rows, err := transcript.Combine(sources)
	if err != nil {
		return Result{}, fmt.Errorf("combine: %w", err)
	}
	if err := u.d.Store.WriteCombined(in.CombinedPath, rows); err != nil {
		return Result{}, fmt.Errorf("write combined table: %w", err)
	}
	logf("combined %d rows into %s", len(rows), in.CombinedPath)
	if n := transcript.NegativeDurations(rows); n > 0 {
		logf("warning: %d segments end before they start; statistics include them as-is", n)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	res := Result{Rows: rows, Sources: files}
	res.Basic = stats.Summarize(rows)
	res.Speakers = stats.SpeakerCounts(rows)

	// normalize
	tokens, err := u.d.Tokenizer.Tokenize(textnorm.Prepare(textnorm.Join(transcript.Texts(rows))))
	if err != nil {
		return Result{}, err
	}
	words := textnorm.Collect(textnorm.Filter(tokens, in.StopWords))
	freq := stats.NewCounter()
	freq.AddAll(words)
	res.Words = freq.MostCommon(topWords)
	logf("kept %d of %d tokens (%d distinct)", len(words), len(tokens), freq.Len())

	tagged, err := u.d.Tagger.Tag(words)
	if err != nil {
		return Result{}, err
	}
	pos := stats.POSCounter(tagged)
	res.POS = pos.MostCommon(0)
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	// charts
	speakerChart, err := u.chart(in, speakerChartFile, report.SpeakerAlt(res.Speakers), func(out string) error {
		return u.d.Charts.Pie(out, "Distribution of Speakers", res.Speakers)
	})
	if err != nil {
		return Result{}, err
	}
	cloudChart, err := u.chart(in, cloudChartFile, report.CloudAlt(freq.MostCommon(cloudAltTop)), func(out string) error {
		return u.d.Cloud.Render(out, "Word Cloud", freq.MostCommon(0))
	})
	if err != nil {
		return Result{}, err
	}
	posChart, err := u.chart(in, posChartFile, report.POSAlt(pos.MostCommon(posAltTop)), func(out string) error {
		return u.d.Charts.Bar(out, "Distribution of Parts of Speech", pos.Items())
	})
	if err != nil {
		return Result{}, err
	}
	for _, name := range []string{speakerChartFile, cloudChartFile, posChartFile} {
		logf("chart written: %s", filepath.Join(in.Dir, in.FiguresDir, name))
	}

	res.Report = report.Assemble(report.Sections{
		Basic:        res.Basic,
		Speakers:     res.Speakers,
		SpeakerChart: speakerChart,
		Words:        res.Words,
		CloudChart:   cloudChart,
		POS:          res.POS,
		POSChart:     posChart,
	})
	return res, nil
}

// chart renders one figure into the figures directory and returns its report
// fragment.
func (u Usecase) chart(in Input, name, alt string, render func(outPNG string) error) (string, error) {
	out := filepath.Join(in.Dir, in.FiguresDir, name)
	if err := render(out); err != nil {
		return "", fmt.Errorf("chart %s: %w", name, err)
	}
	return report.FigureRef(filepath.ToSlash(in.FiguresDir), name, alt), nil
}
