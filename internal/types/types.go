package types

// Segment is one row of the combined transcript table. Times are milliseconds.
type Segment struct {
	ID       int
	Person   string
	Text     string
	Start    int64
	End      int64
	Duration int64
}

// Count is one ranked entry of a frequency table.
type Count struct {
	Key string
	N   int
}

type Tagged struct {
	Token string
	Tag   string
}

// Keys returns the keys of counts in order.
func Keys(counts []Count) []string {
	out := make([]string, 0, len(counts))
	for _, c := range counts {
		out = append(out, c.Key)
	}
	return out
}
