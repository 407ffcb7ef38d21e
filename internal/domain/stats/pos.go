package stats

import "github.com/forPelevin/tsvreport/internal/types"

const otherPOS = "Other"

var posDescriptions = map[string]string{
	"NN":  "Noun, singular",
	"NNS": "Noun, plural",
	"VB":  "Verb, base form",
	"VBD": "Verb, past tense",
	"JJ":  "Adjective",
	"RB":  "Adverb",
	"IN":  "Preposition or subordinating conjunction",
	"DT":  "Determiner",
}

// DescribePOS returns a readable description of a Penn Treebank tag.
func DescribePOS(tag string) string {
	if d, ok := posDescriptions[tag]; ok {
		return d
	}
	return otherPOS
}

// POSCounter tallies the tags of tagged tokens.
func POSCounter(tagged []types.Tagged) *Counter {
	c := NewCounter()
	for _, t := range tagged {
		c.Add(t.Tag)
	}
	return c
}
