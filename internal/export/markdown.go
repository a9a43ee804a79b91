// Package export renders read-only projections of a result artifact. Both
// renderings are pure functions of their input and participate in no state
// transition.
package export

import (
	"fmt"
	"strings"

	"legalease/internal/artifact"
)

// Markdown renders the artifact as a downloadable markdown report. Calling it
// twice on the same artifact yields identical text.
func Markdown(rec artifact.Record, filename, lang string) string {
	switch rec.Type {
	case artifact.KindAnalysis:
		return analysisMarkdown(rec.Analysis, filename, lang)
	case artifact.KindComparison:
		return comparisonMarkdown(rec.Comparison)
	default:
		return ""
	}
}

func analysisMarkdown(a *artifact.Analysis, filename, lang string) string {
	if filename == "" {
		filename = "Document"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# LegalEase Analysis Report: %s\n\n", filename)
	fmt.Fprintf(&b, "## Executive Summary\n%s\n\n", summaryIn(a, lang))
	fmt.Fprintf(&b, "**Complexity Score:** %d/10\n", a.ComplexityScore)
	fmt.Fprintf(&b, "**Verdict:** %s\n\n", a.Verdict)
	b.WriteString("## Risk Radar\n\n")
	for _, risk := range a.Risks {
		fmt.Fprintf(&b, "### %s (%s Risk)\n", risk.Category, risk.Severity)
		fmt.Fprintf(&b, "- **Issue:** %s\n", risk.Description)
		fmt.Fprintf(&b, "- **Clause:** \"%s\"\n", risk.Clause)
		fmt.Fprintf(&b, "- **Recommendation:** %s\n\n", risk.Recommendation)
	}
	b.WriteString("## Jargon Decoder\n\n")
	for _, item := range a.JargonTranslator {
		fmt.Fprintf(&b, "- **%s:** %s\n", item.Term, item.PlainEnglish)
	}
	return b.String()
}

func comparisonMarkdown(c *artifact.Comparison) string {
	var b strings.Builder
	b.WriteString("# LegalEase Comparison Report\n\n")
	fmt.Fprintf(&b, "**Baseline:** %s\n", c.BaselineName)
	fmt.Fprintf(&b, "**Comparison:** %s\n\n", c.ComparisonName)
	fmt.Fprintf(&b, "## Summary\n%s\n\n", c.Summary)
	fmt.Fprintf(&b, "## Risk Profile Shift\n%s\n\n", c.RiskShift)
	b.WriteString("## Key Changes\n\n")
	for _, change := range c.Changes {
		fmt.Fprintf(&b, "### %s: %s (%s Impact)\n", change.Type, change.Description, change.Impact)
		if change.OriginalText != "" {
			fmt.Fprintf(&b, "**Original:** %s\n", change.OriginalText)
		}
		if change.NewText != "" {
			fmt.Fprintf(&b, "**New:** %s\n", change.NewText)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// summaryIn picks the summary for lang, falling back to English.
func summaryIn(a *artifact.Analysis, lang string) string {
	if s := a.Summary[lang]; s != "" {
		return s
	}
	return a.Summary["en"]
}
