// Package historystore owns the locally persisted, most-recent-first log of
// past artifacts. The whole log is the unit of persistence: written in full
// on every mutation, read in full at startup.
package historystore

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"legalease/internal/artifact"
)

// Entry wraps exactly one artifact. Entries are created once on requester
// success, never mutated, and removed only by explicit user deletion.
type Entry struct {
	ID             string          `json:"id"`
	Filename       string          `json:"filename"`
	SecondFilename string          `json:"secondFilename,omitempty"`
	Timestamp      int64           `json:"timestamp"` // Unix milliseconds
	Type           artifact.Kind   `json:"type"`
	Result         artifact.Record `json:"result"`
}

// UnmarshalJSON decodes the result union using the entry-level type tag.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var shadow struct {
		ID             string          `json:"id"`
		Filename       string          `json:"filename"`
		SecondFilename string          `json:"secondFilename"`
		Timestamp      int64           `json:"timestamp"`
		Type           artifact.Kind   `json:"type"`
		Result         json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	rec, err := artifact.DecodeRecord(shadow.Type, shadow.Result)
	if err != nil {
		return err
	}
	e.ID = shadow.ID
	e.Filename = shadow.Filename
	e.SecondFilename = shadow.SecondFilename
	e.Timestamp = shadow.Timestamp
	e.Type = shadow.Type
	e.Result = rec
	return nil
}

// NewEntryID returns a timestamp-derived id with a random suffix.
// Uniqueness is best-effort, not cryptographic.
func NewEntryID(now time.Time) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix)
}
