package export

import (
	"fmt"
	"strings"

	"legalease/internal/artifact"
)

// PrintText renders the artifact as a print-formatted plain-text view,
// the paper analogue of the result screen.
func PrintText(rec artifact.Record, filename, lang string) string {
	switch rec.Type {
	case artifact.KindAnalysis:
		return analysisPrint(rec.Analysis, filename, lang)
	case artifact.KindComparison:
		return comparisonPrint(rec.Comparison)
	default:
		return ""
	}
}

func analysisPrint(a *artifact.Analysis, filename, lang string) string {
	if filename == "" {
		filename = "Document"
	}
	var b strings.Builder
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(&b, "%s\nLEGALEASE ANALYSIS REPORT\n%s\n", rule, filename)
	fmt.Fprintf(&b, "%s\n\n", rule)
	fmt.Fprintf(&b, "Persona: %s    Verdict: %s    Complexity: %d/10\n\n", a.Persona, a.Verdict, a.ComplexityScore)
	fmt.Fprintf(&b, "SUMMARY\n%s\n\n", summaryIn(a, lang))
	if len(a.ClauseCards) > 0 {
		b.WriteString("KEY AREAS\n")
		for _, card := range a.ClauseCards {
			fmt.Fprintf(&b, "  * %s: %s\n", card.Title, card.Summary)
		}
		b.WriteString("\n")
	}
	if len(a.Risks) > 0 {
		b.WriteString("RISK RADAR\n")
		for i, risk := range a.Risks {
			fmt.Fprintf(&b, "  %d. [%s] %s\n", i+1, risk.Severity, risk.Category)
			fmt.Fprintf(&b, "     Clause: \"%s\"\n", risk.Clause)
			fmt.Fprintf(&b, "     Why risky: %s\n", risk.WhyRisky)
			fmt.Fprintf(&b, "     Recommendation: %s\n", risk.Recommendation)
			if risk.AlternativeClause != "" {
				fmt.Fprintf(&b, "     Safer wording: %s\n", risk.AlternativeClause)
			}
		}
		b.WriteString("\n")
	}
	if len(a.HiddenFees) > 0 {
		b.WriteString("HIDDEN FEES\n")
		for _, fee := range a.HiddenFees {
			if fee.EstimatedCost != "" {
				fmt.Fprintf(&b, "  * %s (%s): %s\n", fee.Item, fee.EstimatedCost, fee.Description)
			} else {
				fmt.Fprintf(&b, "  * %s: %s\n", fee.Item, fee.Description)
			}
		}
		b.WriteString("\n")
	}
	if len(a.JargonTranslator) > 0 {
		b.WriteString("JARGON DECODER\n")
		for _, item := range a.JargonTranslator {
			fmt.Fprintf(&b, "  * %s: %s\n", item.Term, item.PlainEnglish)
		}
	}
	return b.String()
}

func comparisonPrint(c *artifact.Comparison) string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(&b, "%s\nLEGALEASE COMPARISON REPORT\n%s vs %s\n%s\n\n", rule, c.BaselineName, c.ComparisonName, rule)
	fmt.Fprintf(&b, "SUMMARY\n%s\n\n", c.Summary)
	fmt.Fprintf(&b, "RISK PROFILE SHIFT\n%s\n\n", c.RiskShift)
	b.WriteString("KEY CHANGES\n")
	for i, change := range c.Changes {
		fmt.Fprintf(&b, "  %d. %s (%s impact): %s\n", i+1, change.Type, change.Impact, change.Description)
		if change.OriginalText != "" {
			fmt.Fprintf(&b, "     Original: \"%s\"\n", change.OriginalText)
		}
		if change.NewText != "" {
			fmt.Fprintf(&b, "     New: \"%s\"\n", change.NewText)
		}
	}
	return b.String()
}
