// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/pdiddy/paper-analyzer/internal/analyze"
	"github.com/pdiddy/paper-analyzer/pkg/types"
)

// WriteMarkdown renders r as a Markdown document. Unlike the narrative it
// lists every finding the report holds.
func WriteMarkdown(w io.Writer, r *types.AnalysisReport) error {
	md := markdown.NewMarkdown(w)

	writeMarkdownHeader(md, r)
	writeMarkdownMethodology(md, r.Methodology)
	writeMarkdownTheories(md, r.Theories)
	writeMarkdownCounts(md, "Key Sociological Concepts", "Concept", r.Concepts, noConcepts)
	writeMarkdownCounts(md, "Research Components", "Component", r.Components, noComponents)
	writeMarkdownCitations(md, r.Citations)
	writeMarkdownKeywords(md, r.Keywords)

	if err := md.Build(); err != nil {
		return fmt.Errorf("writing markdown report: %w", err)
	}
	return nil
}

func writeMarkdownHeader(md *markdown.Markdown, r *types.AnalysisReport) {
	md.H1("Sociology Paper Analysis")
	md.PlainText("")

	s := r.Summary
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + r.FilePath + "`"},
			{"Analysis Date", r.Timestamp.Format(timeLayout)},
			{"Word Count", humanize.Comma(int64(s.WordCount))},
			{"Sentence Count", humanize.Comma(int64(s.SentenceCount))},
			{"Average Sentence Length", strconv.FormatFloat(s.AvgSentenceLength, 'f', 1, 64) + " words"},
			{"Paragraph Count", humanize.Comma(int64(s.ParagraphCount))},
		},
	})
	md.PlainText("")
}

func writeMarkdownMethodology(md *markdown.Markdown, scores types.Counts) {
	md.H2("Research Methodology")
	md.PlainText("")

	shares := analyze.MethodologyShares(scores)
	if shares == nil {
		md.PlainText(noMethodology)
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(shares))
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Methodology Mentions"),
		piechart.WithShowData(true),
	)
	for _, sh := range shares {
		rows = append(rows, []string{
			DisplayName(sh.Name),
			strconv.Itoa(sh.Count),
			strconv.FormatFloat(sh.Percent, 'f', 1, 64) + "%",
		})
		if sh.Count > 0 {
			chart.LabelAndIntValue(DisplayName(sh.Name), uint64(sh.Count))
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Methodology", "Mentions", "Share"},
		Rows:   rows,
	})
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")

	primary := "Undetermined"
	if name, ok := analyze.PrimaryMethodology(scores); ok {
		primary = DisplayName(name)
	}
	md.PlainTextf("**Primary Methodology:** %s", primary)
	md.PlainText("")
}

func writeMarkdownTheories(md *markdown.Markdown, theories types.TheoryFindings) {
	md.H2("Sociological Theories")
	md.PlainText("")

	if len(theories) == 0 {
		md.PlainText(noTheories)
		md.PlainText("")
		return
	}

	rows := make([][]string, len(theories))
	for i, f := range theories {
		rows[i] = []string{DisplayName(f.Name), strconv.Itoa(f.Count), strings.Join(f.Terms, ", ")}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Theory", "Mentions", "Related Terms"},
		Rows:   rows,
	})
	md.PlainText("")
}

func writeMarkdownCounts(md *markdown.Markdown, title, label string, counts types.Counts, empty string) {
	md.H2(title)
	md.PlainText("")

	if len(counts) == 0 {
		md.PlainText(empty)
		md.PlainText("")
		return
	}

	rows := make([][]string, len(counts))
	for i, c := range counts {
		rows[i] = []string{DisplayName(c.Name), strconv.Itoa(c.Count)}
	}
	md.Table(markdown.TableSet{
		Header: []string{label, "Mentions"},
		Rows:   rows,
	})
	md.PlainText("")
}

func writeMarkdownCitations(md *markdown.Markdown, c types.CitationReport) {
	md.H2("Citation Analysis")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Measure", "Count"},
		Rows: [][]string{
			{"Total Citations Found", strconv.Itoa(c.Total)},
			{"Unique Citations", strconv.Itoa(c.Unique)},
		},
	})
	md.PlainText("")

	if len(c.Samples) > 0 {
		md.PlainText("Sample citations:")
		md.PlainText("")
		md.BulletList(c.Samples...)
		md.PlainText("")
	}
}

func writeMarkdownKeywords(md *markdown.Markdown, keywords []types.KeywordCount) {
	md.H2("Top Keywords")
	md.PlainText("")

	if len(keywords) == 0 {
		md.PlainText("No keywords found.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(keywords))
	for i, k := range keywords {
		rows[i] = []string{strconv.Itoa(i + 1), k.Word, strconv.Itoa(k.Count)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Rank", "Keyword", "Occurrences"},
		Rows:   rows,
	})
	md.PlainText("")
}
