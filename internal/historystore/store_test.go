package historystore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"legalease/internal/artifact"
)

func analysisEntry(id, filename string) Entry {
	return Entry{
		ID:        id,
		Filename:  filename,
		Timestamp: time.Now().UnixMilli(),
		Type:      artifact.KindAnalysis,
		Result: artifact.NewAnalysisRecord(&artifact.Analysis{
			Summary:          map[string]string{"en": "ok", "hi": "ठीक"},
			ComplexityScore:  3,
			Persona:          "Tenant",
			Verdict:          artifact.VerdictSafe,
			Risks:            []artifact.Risk{},
			ClauseCards:      []artifact.ClauseCard{},
			HiddenFees:       []artifact.HiddenFee{},
			JargonTranslator: []artifact.JargonEntry{},
		}),
	}
}

func comparisonEntry(id string) Entry {
	return Entry{
		ID:             id,
		Filename:       "v1.pdf",
		SecondFilename: "v2.pdf",
		Timestamp:      time.Now().UnixMilli(),
		Type:           artifact.KindComparison,
		Result: artifact.NewComparisonRecord(&artifact.Comparison{
			Summary:        "small changes",
			BaselineName:   "v1.pdf",
			ComparisonName: "v2.pdf",
			Changes:        []artifact.Change{{Type: artifact.ChangeAdded, Description: "late fee", Impact: artifact.ImpactNegative}},
			RiskShift:      "worse",
		}),
	}
}

func TestAppendIsMostRecentFirst(t *testing.T) {
	s := NewStore(&MemoryBackend{})
	s.Append(analysisEntry("e1", "a.pdf"))
	s.Append(analysisEntry("e2", "b.pdf"))
	s.Append(comparisonEntry("e3"))

	got := s.List()
	require.Len(t, got, 3)
	require.Equal(t, "e3", got[0].ID)
	require.Equal(t, "e2", got[1].ID)
	require.Equal(t, "e1", got[2].ID)
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	backend := &MemoryBackend{}
	s := NewStore(backend)
	s.Append(analysisEntry("e1", "a.pdf"))
	saves := backend.Saves

	s.Remove("never-existed")
	require.Equal(t, 1, s.Len())
	require.Equal(t, saves, backend.Saves, "persisted form must be untouched")

	s.Remove("e1")
	require.Equal(t, 0, s.Len())
}

func TestLoadDoesNotMutate(t *testing.T) {
	s := NewStore(&MemoryBackend{})
	s.Append(analysisEntry("e1", "a.pdf"))

	e, ok := s.Load("e1")
	require.True(t, ok)
	require.Equal(t, "a.pdf", e.Filename)
	require.Equal(t, 1, s.Len())

	_, ok = s.Load("missing")
	require.False(t, ok)
}

func TestPersistenceRoundTrip(t *testing.T) {
	backend := &MemoryBackend{}
	s := NewStore(backend)
	s.Append(analysisEntry("e1", "a.pdf"))
	s.Append(comparisonEntry("e2"))

	reopened := NewStore(backend)
	require.Equal(t, s.List(), reopened.List())
}

func TestFileBackendRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history", "log.json")
	s := NewStore(NewFileBackend(path))
	s.Append(comparisonEntry("e1"))
	s.Append(analysisEntry("e2", "lease.pdf"))

	reopened := NewStore(NewFileBackend(path))
	got := reopened.List()
	require.Len(t, got, 2)
	require.Equal(t, "e2", got[0].ID)
	require.Equal(t, artifact.KindComparison, got[1].Type)
	require.NotNil(t, got[1].Result.Comparison)
	require.Equal(t, "v2.pdf", got[1].Result.Comparison.ComparisonName)
}

func TestCorruptFileDegradesToEmptyLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{ not json"), 0o644))

	s := NewStore(NewFileBackend(path))
	require.Equal(t, 0, s.Len())

	// The store stays writable afterwards.
	s.Append(analysisEntry("e1", "a.pdf"))
	require.Equal(t, 1, s.Len())
}

func TestSaveFailureKeepsInMemoryLog(t *testing.T) {
	backend := &MemoryBackend{SaveErr: os.ErrPermission}
	s := NewStore(backend)
	s.Append(analysisEntry("e1", "a.pdf"))
	require.Equal(t, 1, s.Len())
}

func TestNewEntryID(t *testing.T) {
	now := time.Now()
	a := NewEntryID(now)
	b := NewEntryID(now)
	require.NotEqual(t, a, b)
	require.Contains(t, a, "-")
}
