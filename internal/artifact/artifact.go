// Package artifact defines the validated result contracts produced by the
// remote decoder: a single-document Analysis and a two-document Comparison,
// plus the tagged Record union that history and the dashboard carry around.
package artifact

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSchema reports a remote response that parsed as JSON but does not
// satisfy the result contract. A violating artifact is rejected whole.
var ErrSchema = errors.New("artifact: response violates result schema")

// Verdict is the overall safety call on an analyzed document.
type Verdict string

const (
	VerdictSafe      Verdict = "Safe"
	VerdictCaution   Verdict = "Caution"
	VerdictDangerous Verdict = "Dangerous"
)

// Severity grades a single extracted risk.
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// Risk is one red flag found in the document, anchored to a verbatim clause.
type Risk struct {
	Category          string   `json:"category"`
	Description       string   `json:"description"`
	Severity          Severity `json:"severity"`
	Clause            string   `json:"clause"`
	WhyRisky          string   `json:"whyRisky"`
	Recommendation    string   `json:"recommendation"`
	AlternativeClause string   `json:"alternativeClause,omitempty"`
}

// ClauseCard is a topical digest of one contract area (Termination, Payment, ...).
type ClauseCard struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Icon    string `json:"icon"`
}

// HiddenFee is a cost the document implies but does not headline.
type HiddenFee struct {
	Item          string `json:"item"`
	Description   string `json:"description"`
	EstimatedCost string `json:"estimatedCost,omitempty"`
}

// JargonEntry maps one legal term to plain English.
type JargonEntry struct {
	Term         string `json:"term"`
	PlainEnglish string `json:"plainEnglish"`
}

// Analysis is the full decoded view of one document.
// Summary is keyed by language code; "en" and "hi" are always present.
type Analysis struct {
	Summary          map[string]string `json:"summary"`
	ComplexityScore  int               `json:"complexityScore"`
	Persona          string            `json:"persona"`
	Verdict          Verdict           `json:"verdict"`
	Risks            []Risk            `json:"risks"`
	ClauseCards      []ClauseCard      `json:"clauseCards"`
	HiddenFees       []HiddenFee       `json:"hiddenFees"`
	JargonTranslator []JargonEntry     `json:"jargonTranslator"`
}

// ChangeType classifies a diff between two document versions.
type ChangeType string

const (
	ChangeAdded    ChangeType = "Added"
	ChangeRemoved  ChangeType = "Removed"
	ChangeModified ChangeType = "Modified"
)

// Impact grades how a change moves the reader's position.
type Impact string

const (
	ImpactPositive Impact = "Positive"
	ImpactNegative Impact = "Negative"
	ImpactNeutral  Impact = "Neutral"
)

// Change is one classified difference between baseline and candidate.
type Change struct {
	Type         ChangeType `json:"type"`
	Description  string     `json:"description"`
	Impact       Impact     `json:"impact"`
	OriginalText string     `json:"originalText,omitempty"`
	NewText      string     `json:"newText,omitempty"`
}

// Comparison is the decoded diff of two document versions. BaselineName and
// ComparisonName are stamped locally from the uploaded filenames, never taken
// from the remote response.
type Comparison struct {
	Summary        string   `json:"summary"`
	BaselineName   string   `json:"baselineName"`
	ComparisonName string   `json:"comparisonName"`
	Changes        []Change `json:"changes"`
	RiskShift      string   `json:"riskShift"`
}

// Validate rejects an Analysis missing any required field of the contract.
func (a *Analysis) Validate() error {
	if a == nil {
		return fmt.Errorf("%w: nil analysis", ErrSchema)
	}
	for _, lang := range []string{"en", "hi"} {
		if strings.TrimSpace(a.Summary[lang]) == "" {
			return fmt.Errorf("%w: summary.%s missing", ErrSchema, lang)
		}
	}
	if a.ComplexityScore < 1 || a.ComplexityScore > 10 {
		return fmt.Errorf("%w: complexityScore %d outside [1,10]", ErrSchema, a.ComplexityScore)
	}
	if strings.TrimSpace(a.Persona) == "" {
		return fmt.Errorf("%w: persona missing", ErrSchema)
	}
	switch a.Verdict {
	case VerdictSafe, VerdictCaution, VerdictDangerous:
	default:
		return fmt.Errorf("%w: verdict %q not in enum", ErrSchema, a.Verdict)
	}
	if a.Risks == nil || a.ClauseCards == nil || a.HiddenFees == nil || a.JargonTranslator == nil {
		return fmt.Errorf("%w: required list field missing", ErrSchema)
	}
	for i, r := range a.Risks {
		switch r.Severity {
		case SeverityLow, SeverityMedium, SeverityHigh:
		default:
			return fmt.Errorf("%w: risks[%d].severity %q not in enum", ErrSchema, i, r.Severity)
		}
		if r.Category == "" || r.Description == "" || r.Clause == "" || r.WhyRisky == "" || r.Recommendation == "" {
			return fmt.Errorf("%w: risks[%d] missing required field", ErrSchema, i)
		}
	}
	for i, c := range a.ClauseCards {
		if c.Title == "" || c.Summary == "" {
			return fmt.Errorf("%w: clauseCards[%d] missing required field", ErrSchema, i)
		}
	}
	for i, f := range a.HiddenFees {
		if f.Item == "" || f.Description == "" {
			return fmt.Errorf("%w: hiddenFees[%d] missing required field", ErrSchema, i)
		}
	}
	for i, j := range a.JargonTranslator {
		if j.Term == "" || j.PlainEnglish == "" {
			return fmt.Errorf("%w: jargonTranslator[%d] missing required field", ErrSchema, i)
		}
	}
	return nil
}

// Validate rejects a Comparison missing any required field. Name stamping
// happens after validation, so the two name fields are not checked here.
func (c *Comparison) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil comparison", ErrSchema)
	}
	if strings.TrimSpace(c.Summary) == "" {
		return fmt.Errorf("%w: summary missing", ErrSchema)
	}
	if strings.TrimSpace(c.RiskShift) == "" {
		return fmt.Errorf("%w: riskShift missing", ErrSchema)
	}
	if c.Changes == nil {
		return fmt.Errorf("%w: changes missing", ErrSchema)
	}
	for i, ch := range c.Changes {
		switch ch.Type {
		case ChangeAdded, ChangeRemoved, ChangeModified:
		default:
			return fmt.Errorf("%w: changes[%d].type %q not in enum", ErrSchema, i, ch.Type)
		}
		switch ch.Impact {
		case ImpactPositive, ImpactNegative, ImpactNeutral:
		default:
			return fmt.Errorf("%w: changes[%d].impact %q not in enum", ErrSchema, i, ch.Impact)
		}
		if ch.Description == "" {
			return fmt.Errorf("%w: changes[%d].description missing", ErrSchema, i)
		}
	}
	return nil
}
