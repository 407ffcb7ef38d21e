package tsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/forPelevin/tsvreport/internal/types"
)

// ErrMissingColumn is returned when an input header lacks a required column.
var ErrMissingColumn = errors.New("missing column")

var combinedHeader = []string{"id", "person", "text", "start", "end", "duration"}

// Values read as a missing text cell, matching pandas' default NA markers.
var naMarkers = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

type Adapter struct {
	ext     string
	exclude string
}

// New returns a store for files with extension ext, skipping the file named
// exclude (the combined output) during discovery.
func New(ext, exclude string) *Adapter {
	if ext == "" {
		ext = ".tsv"
	}
	return &Adapter{ext: ext, exclude: exclude}
}

func (a *Adapter) Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || e.Name() == a.exclude {
			continue
		}
		if filepath.Ext(e.Name()) != a.ext {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func (a *Adapter) ReadSource(path string) ([]types.Segment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	person := SourceName(path)
	rows, err := parse(f, person)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return rows, nil
}

// SourceName is the base name of path without its extension.
func SourceName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	return cr
}

func parse(r io.Reader, person string) ([]types.Segment, error) {
	cr := newReader(r)
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file: no header row")
		}
		return nil, err
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := col[h]; !dup {
			col[h] = i
		}
	}
	for _, name := range []string{"text", "start", "end"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
	}

	var out []types.Segment
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		start, err := parseMillis(rec[col["start"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: start: %w", line, err)
		}
		end, err := parseMillis(rec[col["end"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: end: %w", line, err)
		}
		out = append(out, types.Segment{
			Person: person,
			Text:   textValue(rec[col["text"]]),
			Start:  start,
			End:    end,
		})
	}
	return out, nil
}

func parseMillis(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

func textValue(s string) string {
	if _, ok := naMarkers[s]; ok {
		return ""
	}
	return s
}

// WriteCombined writes the combined table, replacing any previous file.
func (a *Adapter) WriteCombined(path string, rows []types.Segment) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := encode(f, rows); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

func encode(w io.Writer, rows []types.Segment) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(combinedHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.ID),
			r.Person,
			r.Text,
			strconv.FormatInt(r.Start, 10),
			strconv.FormatInt(r.End, 10),
			strconv.FormatInt(r.Duration, 10),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
