// Package decoder issues single-shot structured requests against the remote
// reasoning capability and returns validated artifacts. One request per user
// action, no automatic retry; a failure surfaces once and the user re-triggers.
package decoder

import (
	"context"
	"encoding/json"
	"fmt"

	"legalease/internal/artifact"
	"legalease/internal/encode"
	"legalease/internal/llmclient"
)

// NamedPayload pairs an encoded document with its locally known filename.
type NamedPayload struct {
	Name    string
	Payload encode.Payload
}

// Service is the requester surface the dashboard depends on.
type Service interface {
	Analyze(ctx context.Context, doc encode.Payload) (*artifact.Analysis, error)
	Compare(ctx context.Context, baseline, candidate NamedPayload) (*artifact.Comparison, error)
}

// Requester sends decode requests through an LLM client.
type Requester struct {
	client llmclient.Client
}

func New(client llmclient.Client) *Requester {
	return &Requester{client: client}
}

// Analyze sends exactly one analysis request for doc and returns the
// validated artifact. A malformed response is rejected whole.
func (r *Requester) Analyze(ctx context.Context, doc encode.Payload) (*artifact.Analysis, error) {
	raw, err := doc.Bytes()
	if err != nil {
		return nil, err
	}
	ctx = llmclient.WithPhase(ctx, "analysis")
	out, err := r.client.GenerateJSON(ctx, []llmclient.Part{
		llmclient.BlobPart(raw, doc.MIMEType),
		llmclient.TextPart(analysisInstruction),
	}, llmclient.GenerateOptions{
		Schema:         analysisSchema(),
		ThinkingBudget: analysisThinkingBudget,
	})
	if err != nil {
		return nil, err
	}
	var a artifact.Analysis
	if err := json.Unmarshal(out, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", artifact.ErrSchema, err)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// Compare sends exactly one comparison request for the labeled pair and
// returns the validated artifact with baseline/comparison names stamped from
// the caller-supplied filenames. The remote response never contributes names.
func (r *Requester) Compare(ctx context.Context, baseline, candidate NamedPayload) (*artifact.Comparison, error) {
	baseRaw, err := baseline.Payload.Bytes()
	if err != nil {
		return nil, err
	}
	candRaw, err := candidate.Payload.Bytes()
	if err != nil {
		return nil, err
	}
	ctx = llmclient.WithPhase(ctx, "comparison")
	out, err := r.client.GenerateJSON(ctx, []llmclient.Part{
		llmclient.TextPart(fmt.Sprintf("Document A (%s):", baseline.Name)),
		llmclient.BlobPart(baseRaw, baseline.Payload.MIMEType),
		llmclient.TextPart(fmt.Sprintf("Document B (%s):", candidate.Name)),
		llmclient.BlobPart(candRaw, candidate.Payload.MIMEType),
		llmclient.TextPart(comparisonInstruction),
	}, llmclient.GenerateOptions{Schema: comparisonSchema()})
	if err != nil {
		return nil, err
	}
	var c artifact.Comparison
	if err := json.Unmarshal(out, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", artifact.ErrSchema, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.BaselineName = baseline.Name
	c.ComparisonName = candidate.Name
	return &c, nil
}
