package transcript

import (
	"errors"
	"sort"

	"github.com/forPelevin/tsvreport/internal/types"
)

// ErrNoSources is returned when there is nothing to concatenate.
var ErrNoSources = errors.New("no objects to concatenate")

// Combine concatenates per-source rows in the given order, stable-sorts them by
// start time, numbers them 1..N and derives the duration column.
func Combine(sources [][]types.Segment) ([]types.Segment, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	n := 0
	for _, src := range sources {
		n += len(src)
	}
	out := make([]types.Segment, 0, n)
	for _, src := range sources {
		out = append(out, src...)
	}

	// Equal starts keep concatenation order.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })

	for i := range out {
		out[i].ID = i + 1
		out[i].Duration = out[i].End - out[i].Start
	}
	return out, nil
}

// NegativeDurations counts rows that end before they start.
func NegativeDurations(rows []types.Segment) int {
	n := 0
	for _, r := range rows {
		if r.End < r.Start {
			n++
		}
	}
	return n
}

// Texts returns the text column in table order.
func Texts(rows []types.Segment) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Text
	}
	return out
}
