package report

import (
	"fmt"
	"path"
	"strings"

	"github.com/forPelevin/tsvreport/internal/domain/stats"
	"github.com/forPelevin/tsvreport/internal/types"
)

const title = "# NLP Analysis Report\n\n"

const glossary = `## Glossary of Terms

- **Segment**: A portion of the audio transcription, typically representing a continuous speech by a single speaker.
- **POS (Part of Speech)**: Grammatical category of words, such as noun, verb, adjective, etc.
- **Common POS Tags**:
  - NN: Noun, singular
  - NNS: Noun, plural
  - VB: Verb, base form
  - VBD: Verb, past tense
  - JJ: Adjective
  - RB: Adverb
  - IN: Preposition or subordinating conjunction
  - DT: Determiner
- **Word Cloud**: A visual representation of word frequency where the size of each word indicates its frequency in the text.

`

// Sections are the pieces of the report, assembled in a fixed order.
type Sections struct {
	Basic        stats.Basic
	Speakers     []types.Count
	SpeakerChart string
	Words        []types.Count
	CloudChart   string
	POS          []types.Count
	POSChart     string
}

// Assemble renders the whole Markdown document.
func Assemble(s Sections) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString(glossary)
	writeBasic(&b, s.Basic)
	writeSpeakers(&b, s.Speakers)
	b.WriteString(s.SpeakerChart)
	writeWords(&b, s.Words)
	b.WriteString(s.CloudChart)
	writePOS(&b, s.POS)
	b.WriteString(s.POSChart)
	return b.String()
}

func writeBasic(b *strings.Builder, st stats.Basic) {
	b.WriteString("## Basic Statistics\n\n")
	fmt.Fprintf(b, "- Total transcription duration: %.2f seconds\n", st.TotalDuration)
	fmt.Fprintf(b, "- Number of transcribed segments: %d\n", st.Segments)
	fmt.Fprintf(b, "- Average segment duration: %.2f seconds\n", st.AvgSegmentDuration)
	fmt.Fprintf(b, "- Earliest timestamp: %.2f seconds\n", st.Earliest)
	fmt.Fprintf(b, "- Latest timestamp: %.2f seconds\n\n", st.Latest)
}

func writeSpeakers(b *strings.Builder, counts []types.Count) {
	b.WriteString("## Speaker Analysis\n\n")
	b.WriteString("| Speaker | Segment Count |\n|---------|---------------|\n")
	for _, c := range counts {
		fmt.Fprintf(b, "| %s | %d |\n", c.Key, c.N)
	}
	b.WriteString("\n")
}

func writeWords(b *strings.Builder, counts []types.Count) {
	b.WriteString("## Word Frequency Analysis\n\n")
	b.WriteString("| Word | Frequency |\n|------|----------|\n")
	for _, c := range counts {
		fmt.Fprintf(b, "| %s | %d |\n", c.Key, c.N)
	}
	b.WriteString("\n")
}

func writePOS(b *strings.Builder, counts []types.Count) {
	b.WriteString("## Parts of Speech Analysis\n\n")
	b.WriteString("| POS Tag | Count | Description |\n|---------|-------|-------------|\n")
	for _, c := range counts {
		fmt.Fprintf(b, "| %s | %d | %s |\n", c.Key, c.N, stats.DescribePOS(c.Key))
	}
	b.WriteString("\n")
}

// FigureRef is the image reference and caption for a chart stored under dir.
func FigureRef(dir, filename, alt string) string {
	return fmt.Sprintf("![%s](%s)\n\n*Alt text: %s*\n\n", alt, path.Join(dir, filename), alt)
}

func SpeakerAlt(counts []types.Count) string {
	return "Pie chart showing the distribution of speakers. " + joinCounts(counts)
}

func CloudAlt(top []types.Count) string {
	return "Word cloud showing the most frequent words. The largest words are: " +
		strings.Join(types.Keys(top), ", ")
}

func POSAlt(top []types.Count) string {
	return "Bar chart showing the distribution of parts of speech. The most common POS tags are: " +
		joinCounts(top)
}

func joinCounts(counts []types.Count) string {
	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		parts = append(parts, fmt.Sprintf("%s: %d", c.Key, c.N))
	}
	return strings.Join(parts, ", ")
}
