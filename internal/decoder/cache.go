package decoder

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"

	"legalease/internal/artifact"
	"legalease/internal/encode"
)

// Cached memoizes validated artifacts by payload digest so resubmitting the
// identical document(s) issues no remote request. Failures are never cached.
type Cached struct {
	inner Service
	cache *lru.Cache[string, artifact.Record]
}

func NewCached(inner Service, size int) (*Cached, error) {
	if size <= 0 {
		size = 32
	}
	c, err := lru.New[string, artifact.Record](size)
	if err != nil {
		return nil, err
	}
	return &Cached{inner: inner, cache: c}, nil
}

func (c *Cached) Analyze(ctx context.Context, doc encode.Payload) (*artifact.Analysis, error) {
	key := digest("analysis", doc.MIMEType, doc.Data)
	if rec, ok := c.cache.Get(key); ok && rec.Type == artifact.KindAnalysis {
		cp := *rec.Analysis
		return &cp, nil
	}
	a, err := c.inner.Analyze(ctx, doc)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, artifact.NewAnalysisRecord(a))
	cp := *a
	return &cp, nil
}

func (c *Cached) Compare(ctx context.Context, baseline, candidate NamedPayload) (*artifact.Comparison, error) {
	key := digest("comparison",
		baseline.Name, baseline.Payload.MIMEType, baseline.Payload.Data,
		candidate.Name, candidate.Payload.MIMEType, candidate.Payload.Data)
	if rec, ok := c.cache.Get(key); ok && rec.Type == artifact.KindComparison {
		cp := *rec.Comparison
		return &cp, nil
	}
	out, err := c.inner.Compare(ctx, baseline, candidate)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, artifact.NewComparisonRecord(out))
	cp := *out
	return &cp, nil
}

func digest(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
