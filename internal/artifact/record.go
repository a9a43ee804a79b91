package artifact

import (
	"encoding/json"
	"fmt"
)

// Kind discriminates the two artifact shapes a Record can hold.
type Kind string

const (
	KindAnalysis   Kind = "Analysis"
	KindComparison Kind = "Comparison"
)

// Record is the tagged union carried by history and the dashboard. Exactly
// one of Analysis/Comparison is set, matching Type; consumers branch on Type
// instead of probing for a characteristic field.
type Record struct {
	Type       Kind
	Analysis   *Analysis
	Comparison *Comparison
}

// NewAnalysisRecord wraps a validated Analysis.
func NewAnalysisRecord(a *Analysis) Record {
	return Record{Type: KindAnalysis, Analysis: a}
}

// NewComparisonRecord wraps a validated Comparison.
func NewComparisonRecord(c *Comparison) Record {
	return Record{Type: KindComparison, Comparison: c}
}

// MarshalJSON emits the bare artifact object; the discriminant travels
// alongside (on the history entry), not inside the artifact itself.
func (r Record) MarshalJSON() ([]byte, error) {
	switch r.Type {
	case KindAnalysis:
		return json.Marshal(r.Analysis)
	case KindComparison:
		return json.Marshal(r.Comparison)
	default:
		return nil, fmt.Errorf("artifact: record has no kind")
	}
}

// DecodeRecord restores a Record from its bare JSON form using the
// externally stored kind tag.
func DecodeRecord(kind Kind, raw json.RawMessage) (Record, error) {
	switch kind {
	case KindAnalysis:
		var a Analysis
		if err := json.Unmarshal(raw, &a); err != nil {
			return Record{}, fmt.Errorf("artifact: decode analysis: %w", err)
		}
		return NewAnalysisRecord(&a), nil
	case KindComparison:
		var c Comparison
		if err := json.Unmarshal(raw, &c); err != nil {
			return Record{}, fmt.Errorf("artifact: decode comparison: %w", err)
		}
		return NewComparisonRecord(&c), nil
	default:
		return Record{}, fmt.Errorf("artifact: unknown record kind %q", kind)
	}
}
