package artifact

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func validAnalysis() *Analysis {
	return &Analysis{
		Summary:         map[string]string{"en": "ok", "hi": "ठीक"},
		ComplexityScore: 3,
		Persona:         "Tenant",
		Verdict:         VerdictSafe,
		Risks: []Risk{{
			Category:       "Termination",
			Description:    "One-sided exit",
			Severity:       SeverityHigh,
			Clause:         "Landlord may terminate at will.",
			WhyRisky:       "No notice period for the tenant.",
			Recommendation: "Negotiate a 30-day notice.",
		}},
		ClauseCards:      []ClauseCard{{Title: "Payment", Summary: "Rent due on the 1st", Icon: "cash"}},
		HiddenFees:       []HiddenFee{{Item: "Cleaning", Description: "Deducted from deposit"}},
		JargonTranslator: []JargonEntry{{Term: "Indemnify", PlainEnglish: "You cover their losses"}},
	}
}

func TestAnalysisValidateAccepts(t *testing.T) {
	require.NoError(t, validAnalysis().Validate())
}

func TestAnalysisValidateRejects(t *testing.T) {
	cases := map[string]func(*Analysis){
		"score too low":      func(a *Analysis) { a.ComplexityScore = 0 },
		"score too high":     func(a *Analysis) { a.ComplexityScore = 11 },
		"verdict not enum":   func(a *Analysis) { a.Verdict = "Fine" },
		"missing hindi":      func(a *Analysis) { delete(a.Summary, "hi") },
		"missing persona":    func(a *Analysis) { a.Persona = "  " },
		"risk missing quote": func(a *Analysis) { a.Risks[0].Clause = "" },
		"risk bad severity":  func(a *Analysis) { a.Risks[0].Severity = "Extreme" },
		"nil risks":          func(a *Analysis) { a.Risks = nil },
		"jargon no term":     func(a *Analysis) { a.JargonTranslator[0].Term = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			a := validAnalysis()
			mutate(a)
			err := a.Validate()
			require.ErrorIs(t, err, ErrSchema)
		})
	}
}

func TestComparisonValidate(t *testing.T) {
	c := &Comparison{
		Summary:   "mostly the same",
		RiskShift: "slightly worse",
		Changes: []Change{{
			Type:        ChangeModified,
			Description: "late fee doubled",
			Impact:      ImpactNegative,
		}},
	}
	require.NoError(t, c.Validate())

	c.Changes[0].Impact = "Terrible"
	require.ErrorIs(t, c.Validate(), ErrSchema)

	c.Changes[0].Impact = ImpactNeutral
	c.Changes = nil
	require.ErrorIs(t, c.Validate(), ErrSchema)
}

func TestRecordRoundTrip(t *testing.T) {
	rec := NewAnalysisRecord(validAnalysis())
	raw, err := json.Marshal(rec)
	require.NoError(t, err)

	back, err := DecodeRecord(KindAnalysis, raw)
	require.NoError(t, err)
	require.Equal(t, KindAnalysis, back.Type)
	require.Equal(t, rec.Analysis, back.Analysis)
}

func TestDecodeRecordUnknownKind(t *testing.T) {
	_, err := DecodeRecord("Report", json.RawMessage(`{}`))
	require.Error(t, err)
}
