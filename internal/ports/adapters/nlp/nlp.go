package nlp

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/forPelevin/tsvreport/internal/types"
)

// Adapter tokenizes with prose's Treebank-style tokenizer and tags with its
// averaged-perceptron model (Penn Treebank tag set).
type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (a *Adapter) Tokenize(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	toks := doc.Tokens()
	out := make([]string, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Text)
	}
	return out, nil
}

// Tag assigns a part-of-speech tag to an already tokenized sequence.
func (a *Adapter) Tag(tokens []string) ([]types.Tagged, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	doc, err := prose.NewDocument(strings.Join(tokens, " "),
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("tag: %w", err)
	}
	toks := doc.Tokens()
	out := make([]types.Tagged, 0, len(toks))
	for _, t := range toks {
		out = append(out, types.Tagged{Token: t.Text, Tag: t.Tag})
	}
	return out, nil
}
