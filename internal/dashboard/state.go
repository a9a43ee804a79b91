package dashboard

import (
	"encoding/json"

	"legalease/internal/artifact"
	"legalease/internal/chatsession"
	"legalease/internal/export"
)

// State is the UI-facing snapshot of the controller. It is a copy; mutating
// it affects nothing.
type State struct {
	Phase      Phase                 `json:"phase"`
	Mode       artifact.Kind         `json:"mode"`
	Staged     [2]string             `json:"staged"`
	ResultType artifact.Kind         `json:"resultType,omitempty"`
	Result     *artifact.Record      `json:"result,omitempty"`
	ResultName string                `json:"resultName,omitempty"`
	Error      string                `json:"error,omitempty"`
	Language   string                `json:"language"`
	ChatLive   bool                  `json:"chatLive"`
	Transcript []chatsession.Message `json:"transcript,omitempty"`
}

// UnmarshalJSON restores the tagged result from its bare wire form using the
// resultType discriminant, the same way history entries are stored.
func (s *State) UnmarshalJSON(data []byte) error {
	type shadow State
	aux := struct {
		*shadow
		Result json.RawMessage `json:"result,omitempty"`
	}{shadow: (*shadow)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Result) > 0 && s.ResultType != "" {
		rec, err := artifact.DecodeRecord(s.ResultType, aux.Result)
		if err != nil {
			return err
		}
		s.Result = &rec
	}
	return nil
}

// Snapshot returns the current UI-facing state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	result := c.result
	chat := c.chat
	st := State{
		Phase:      c.phase,
		Mode:       c.mode,
		ResultName: c.resultName,
		Error:      c.errMsg,
		Language:   c.language,
	}
	for i, f := range c.staged {
		if f != nil {
			st.Staged[i] = f.name
		}
	}
	c.mu.Unlock()

	if result != nil {
		rec := *result
		st.Result = &rec
		st.ResultType = rec.Type
	}
	if chat != nil {
		st.ChatLive = chat.Live()
		st.Transcript = chat.Transcript()
	}
	return st
}

// ExportMarkdown renders the current result as a markdown report. It is a
// pure read-only projection; calling it repeatedly yields identical text.
func (c *Controller) ExportMarkdown() (string, error) {
	rec, name, lang, err := c.currentResult()
	if err != nil {
		return "", err
	}
	return export.Markdown(rec, name, lang), nil
}

// ExportPrint renders the current result as a print-formatted text view.
func (c *Controller) ExportPrint() (string, error) {
	rec, name, lang, err := c.currentResult()
	if err != nil {
		return "", err
	}
	return export.PrintText(rec, name, lang), nil
}

func (c *Controller) currentResult() (artifact.Record, string, string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseResult || c.result == nil {
		return artifact.Record{}, "", "", ErrNoResult
	}
	return *c.result, c.resultName, c.language, nil
}
