package ports

import "github.com/forPelevin/tsvreport/internal/types"

// TableStore discovers, reads and writes tab-separated transcript tables.
type TableStore interface {
	// Discover lists the per-source input files in dir, in processing order.
	Discover(dir string) ([]string, error)
	// ReadSource parses one input file and tags every row with its source name.
	ReadSource(path string) ([]types.Segment, error)
	WriteCombined(path string, rows []types.Segment) error
}

type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

type Tagger interface {
	Tag(tokens []string) ([]types.Tagged, error)
}

// Charts renders the pie and bar charts as PNG files.
type Charts interface {
	Pie(outPNG, title string, counts []types.Count) error
	Bar(outPNG, title string, counts []types.Count) error
}

type WordCloud interface {
	Render(outPNG, title string, counts []types.Count) error
}
