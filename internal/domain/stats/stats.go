package stats

import (
	"sort"

	"github.com/forPelevin/tsvreport/internal/types"
)

// Basic holds the summary numbers of the report. Times are seconds.
type Basic struct {
	TotalDuration      float64
	AvgSegmentDuration float64
	Segments           int
	Earliest           float64
	Latest             float64
}

// Summarize computes the basic statistics of the combined table.
// Stored times are milliseconds. An empty table yields zeros.
func Summarize(rows []types.Segment) Basic {
	if len(rows) == 0 {
		return Basic{}
	}
	minStart, maxEnd := rows[0].Start, rows[0].End
	var sum int64
	for _, r := range rows {
		if r.Start < minStart {
			minStart = r.Start
		}
		if r.End > maxEnd {
			maxEnd = r.End
		}
		sum += r.Duration
	}
	return Basic{
		TotalDuration:      float64(maxEnd-minStart) / 1000,
		AvgSegmentDuration: float64(sum) / float64(len(rows)) / 1000,
		Segments:           len(rows),
		Earliest:           float64(minStart) / 1000,
		Latest:             float64(maxEnd) / 1000,
	}
}

// SpeakerCounts counts segments per person, most frequent first. Ties keep the
// order in which speakers first appear in the table.
func SpeakerCounts(rows []types.Segment) []types.Count {
	c := NewCounter()
	for _, r := range rows {
		c.Add(r.Person)
	}
	return c.MostCommon(0)
}

// Counter counts keys and remembers the order in which they were first seen.
type Counter struct {
	idx   map[string]int
	items []types.Count
}

func NewCounter() *Counter {
	return &Counter{idx: map[string]int{}}
}

func (c *Counter) Add(key string) {
	if i, ok := c.idx[key]; ok {
		c.items[i].N++
		return
	}
	c.idx[key] = len(c.items)
	c.items = append(c.items, types.Count{Key: key, N: 1})
}

func (c *Counter) AddAll(keys []string) {
	for _, k := range keys {
		c.Add(k)
	}
}

func (c *Counter) Len() int { return len(c.items) }

// Items returns the counts in first-seen order.
func (c *Counter) Items() []types.Count {
	out := make([]types.Count, len(c.items))
	copy(out, c.items)
	return out
}

// MostCommon returns the n most frequent keys, ties in first-seen order.
// n <= 0 returns the full ranking.
func (c *Counter) MostCommon(n int) []types.Count {
	out := c.Items()
	sort.SliceStable(out, func(i, j int) bool { return out[i].N > out[j].N })
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
