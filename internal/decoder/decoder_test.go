package decoder

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"legalease/internal/artifact"
	"legalease/internal/encode"
	"legalease/internal/llmclient"
)

func pdfPayload(body string) encode.Payload {
	return encode.EncodeBytes([]byte(body), "application/pdf")
}

func TestAnalyzeReturnsValidatedArtifact(t *testing.T) {
	fake := &llmclient.FakeClient{}
	r := New(fake)
	a, err := r.Analyze(context.Background(), pdfPayload("lease"))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if a.ComplexityScore < 1 || a.ComplexityScore > 10 {
		t.Fatalf("complexityScore out of range: %d", a.ComplexityScore)
	}
	if a.Verdict != artifact.VerdictSafe {
		t.Fatalf("verdict = %q", a.Verdict)
	}
	if fake.Calls != 1 {
		t.Fatalf("expected exactly one request, got %d", fake.Calls)
	}
}

func TestAnalyzeRejectsSchemaViolations(t *testing.T) {
	cases := map[string]string{
		"not json":       `the document looks fine to me`,
		"score out":      `{"summary":{"en":"a","hi":"b"},"complexityScore":12,"persona":"Tenant","verdict":"Safe","risks":[],"clauseCards":[],"hiddenFees":[],"jargonTranslator":[]}`,
		"bad verdict":    `{"summary":{"en":"a","hi":"b"},"complexityScore":4,"persona":"Tenant","verdict":"Okay","risks":[],"clauseCards":[],"hiddenFees":[],"jargonTranslator":[]}`,
		"missing fields": `{"summary":{"en":"a","hi":"b"},"complexityScore":4}`,
	}
	for name, resp := range cases {
		t.Run(name, func(t *testing.T) {
			fake := &llmclient.FakeClient{Responses: map[string]json.RawMessage{
				"analysis": json.RawMessage(resp),
			}}
			_, err := New(fake).Analyze(context.Background(), pdfPayload("lease"))
			if !errors.Is(err, artifact.ErrSchema) {
				t.Fatalf("expected schema violation, got %v", err)
			}
		})
	}
}

func TestAnalyzeEmptyResponse(t *testing.T) {
	fake := &llmclient.FakeClient{Empty: true}
	_, err := New(fake).Analyze(context.Background(), pdfPayload("lease"))
	if !errors.Is(err, llmclient.ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestAnalyzeTransportFailure(t *testing.T) {
	fake := &llmclient.FakeClient{Err: llmclient.ErrTransport}
	_, err := New(fake).Analyze(context.Background(), pdfPayload("lease"))
	if !errors.Is(err, llmclient.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
	// One failure per user action, no automatic retry.
	if fake.Calls != 1 {
		t.Fatalf("expected one attempt, got %d", fake.Calls)
	}
}

func TestCompareStampsLocalNames(t *testing.T) {
	fake := &llmclient.FakeClient{Responses: map[string]json.RawMessage{
		"comparison": json.RawMessage(`{
			"summary": "s",
			"baselineName": "model-supplied-a.pdf",
			"comparisonName": "model-supplied-b.pdf",
			"changes": [],
			"riskShift": "none"
		}`),
	}}
	cmp, err := New(fake).Compare(context.Background(),
		NamedPayload{Name: "lease_v1.pdf", Payload: pdfPayload("v1")},
		NamedPayload{Name: "lease_v2.pdf", Payload: pdfPayload("v2")})
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if cmp.BaselineName != "lease_v1.pdf" || cmp.ComparisonName != "lease_v2.pdf" {
		t.Fatalf("names not stamped locally: %q vs %q", cmp.BaselineName, cmp.ComparisonName)
	}
}

func TestCompareRejectsBadChange(t *testing.T) {
	fake := &llmclient.FakeClient{Responses: map[string]json.RawMessage{
		"comparison": json.RawMessage(`{"summary":"s","changes":[{"type":"Tweaked","description":"d","impact":"Neutral"}],"riskShift":"r"}`),
	}}
	_, err := New(fake).Compare(context.Background(),
		NamedPayload{Name: "a.pdf", Payload: pdfPayload("a")},
		NamedPayload{Name: "b.pdf", Payload: pdfPayload("b")})
	if !errors.Is(err, artifact.ErrSchema) {
		t.Fatalf("expected schema violation, got %v", err)
	}
}

func TestCachedAnalyzeMemoizesIdenticalPayload(t *testing.T) {
	fake := &llmclient.FakeClient{}
	cached, err := NewCached(New(fake), 8)
	if err != nil {
		t.Fatalf("NewCached: %v", err)
	}
	doc := pdfPayload("same lease")
	first, err := cached.Analyze(context.Background(), doc)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := cached.Analyze(context.Background(), doc)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if fake.Calls != 1 {
		t.Fatalf("expected one remote call, got %d", fake.Calls)
	}
	if first.Persona != second.Persona || first.ComplexityScore != second.ComplexityScore {
		t.Fatalf("cached artifact differs")
	}
	// Different content misses the cache.
	if _, err := cached.Analyze(context.Background(), pdfPayload("other lease")); err != nil {
		t.Fatalf("third: %v", err)
	}
	if fake.Calls != 2 {
		t.Fatalf("expected cache miss on new content, got %d calls", fake.Calls)
	}
}

func TestCachedNeverCachesFailures(t *testing.T) {
	fake := &llmclient.FakeClient{Err: llmclient.ErrTransport}
	cached, err := NewCached(New(fake), 8)
	if err != nil {
		t.Fatalf("NewCached: %v", err)
	}
	doc := pdfPayload("lease")
	if _, err := cached.Analyze(context.Background(), doc); err == nil {
		t.Fatalf("expected failure")
	}
	fake.Err = nil
	if _, err := cached.Analyze(context.Background(), doc); err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	if fake.Calls != 2 {
		t.Fatalf("expected two remote calls, got %d", fake.Calls)
	}
}

func TestCachedCompareKeyIncludesNames(t *testing.T) {
	fake := &llmclient.FakeClient{}
	cached, err := NewCached(New(fake), 8)
	if err != nil {
		t.Fatalf("NewCached: %v", err)
	}
	a := NamedPayload{Name: "a.pdf", Payload: pdfPayload("a")}
	b := NamedPayload{Name: "b.pdf", Payload: pdfPayload("b")}
	if _, err := cached.Compare(context.Background(), a, b); err != nil {
		t.Fatalf("compare: %v", err)
	}
	// Same payloads under a renamed candidate must not reuse the stamped names.
	b2 := NamedPayload{Name: "b_renamed.pdf", Payload: b.Payload}
	out, err := cached.Compare(context.Background(), a, b2)
	if err != nil {
		t.Fatalf("compare renamed: %v", err)
	}
	if out.ComparisonName != "b_renamed.pdf" {
		t.Fatalf("stale cached name %q", out.ComparisonName)
	}
	if fake.Calls != 2 {
		t.Fatalf("expected two remote calls, got %d", fake.Calls)
	}
}

func TestInstructionsMentionLabels(t *testing.T) {
	if !strings.Contains(comparisonInstruction, "Document A (Baseline)") {
		t.Fatalf("comparison instruction lost its labels")
	}
	if !strings.Contains(analysisInstruction, "Complexity Score from 1-10") {
		t.Fatalf("analysis instruction lost its scoring rule")
	}
}
