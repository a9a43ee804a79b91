// Package dashboard is the top-level controller: it sequences encoding,
// decoding, history and chat for each user action and owns the transient
// UI-facing state.
package dashboard

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"legalease/internal/artifact"
	"legalease/internal/chatsession"
	"legalease/internal/decoder"
	"legalease/internal/encode"
	"legalease/internal/historystore"
	"legalease/internal/llmclient"
)

// Phase is the controller state machine position.
type Phase string

const (
	PhaseIdle   Phase = "Idle"
	PhaseBusy   Phase = "Busy"
	PhaseResult Phase = "Result"
	PhaseError  Phase = "Error"
)

var (
	// ErrBusy means an analysis or comparison run is already in flight.
	ErrBusy = errors.New("dashboard: action already in flight")
	// ErrNotStaged means the mode's required files are not all staged.
	ErrNotStaged = errors.New("dashboard: required files not staged")
	// ErrNoResult means an export was requested outside the Result phase.
	ErrNoResult = errors.New("dashboard: no result to export")
	// ErrUnknownEntry means the requested history id does not exist.
	ErrUnknownEntry = errors.New("dashboard: unknown history entry")
)

// userFacingFailure is the single message shown for any failed run; the
// taxonomy detail goes to the log only.
const userFacingFailure = "Failed to process document."

type stagedFile struct {
	name    string
	payload encode.Payload
}

// Options wires the controller's collaborators.
type Options struct {
	Decoder decoder.Service
	LLM     llmclient.Client
	History *historystore.Store
	Logger  *zap.Logger
	// Timeout bounds one run or chat open. Zero means 120s.
	Timeout time.Duration
	// Now is the clock for history ids and timestamps. Nil means time.Now.
	Now func() time.Time
}

// Controller holds the single logical user's dashboard state. All state
// transitions happen under one mutex; the remote call itself runs outside
// the lock so chat and reads stay responsive while Busy.
type Controller struct {
	svc     decoder.Service
	llm     llmclient.Client
	history *historystore.Store
	logger  *zap.Logger
	timeout time.Duration
	now     func() time.Time

	mu         sync.Mutex
	phase      Phase
	mode       artifact.Kind
	staged     [2]*stagedFile
	result     *artifact.Record
	resultName string
	errMsg     string
	language   string
	chat       *chatsession.Session
	gen        uint64
}

func NewController(opts Options) *Controller {
	c := &Controller{
		svc:      opts.Decoder,
		llm:      opts.LLM,
		history:  opts.History,
		logger:   opts.Logger,
		timeout:  opts.Timeout,
		now:      opts.Now,
		phase:    PhaseIdle,
		mode:     artifact.KindAnalysis,
		language: "en",
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.timeout <= 0 {
		c.timeout = 120 * time.Second
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// SetMode switches between Analysis and Comparison. Rejected while Busy.
func (c *Controller) SetMode(mode artifact.Kind) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseBusy {
		return ErrBusy
	}
	if mode != artifact.KindAnalysis && mode != artifact.KindComparison {
		return errors.New("dashboard: unknown mode")
	}
	c.mode = mode
	return nil
}

// SetLanguage picks the summary language used by exports and the result view.
func (c *Controller) SetLanguage(lang string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if lang != "" {
		c.language = lang
	}
}

// StageFile encodes and stages the document for the given slot (0 = primary,
// 1 = comparison candidate). Read failures surface to the caller; nothing is
// staged on error.
func (c *Controller) StageFile(slot int, name string, r io.Reader, mimeType string) error {
	if slot < 0 || slot > 1 {
		return errors.New("dashboard: invalid file slot")
	}
	payload, err := encode.Encode(r, mimeType)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseBusy {
		return ErrBusy
	}
	c.staged[slot] = &stagedFile{name: name, payload: payload}
	return nil
}

// ClearFile removes the staged document from the slot.
func (c *Controller) ClearFile(slot int) {
	if slot < 0 || slot > 1 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseBusy {
		return
	}
	c.staged[slot] = nil
}

// Run triggers the staged action for the current mode: Idle → Busy, then
// Result (with a new history entry, and a live chat session for Analysis) or
// Error. The trigger is a no-op error when the required files are missing.
func (c *Controller) Run(ctx context.Context) error {
	c.mu.Lock()
	if c.phase == PhaseBusy {
		c.mu.Unlock()
		return ErrBusy
	}
	mode := c.mode
	if c.staged[0] == nil || (mode == artifact.KindComparison && c.staged[1] == nil) {
		c.mu.Unlock()
		return ErrNotStaged
	}
	primary := *c.staged[0]
	var secondary stagedFile
	if mode == artifact.KindComparison {
		secondary = *c.staged[1]
	}
	c.phase = PhaseBusy
	c.result = nil
	c.resultName = ""
	c.errMsg = ""
	c.chat = nil
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if mode == artifact.KindAnalysis {
		return c.runAnalysis(ctx, gen, primary)
	}
	return c.runComparison(ctx, gen, primary, secondary)
}

func (c *Controller) runAnalysis(ctx context.Context, gen uint64, doc stagedFile) error {
	a, err := c.svc.Analyze(ctx, doc.payload)
	if err != nil {
		c.fail(gen, "analysis", err)
		return err
	}
	// The session binds to the just-analyzed document. Chat is an optional
	// extra on top of a successful run; a failed open degrades to no session
	// rather than failing the run.
	var sess *chatsession.Session
	if c.llm != nil {
		if s, chatErr := chatsession.Open(ctx, c.llm, doc.payload); chatErr == nil {
			sess = s
		} else {
			c.logger.Warn("chat session open failed", zap.Error(chatErr))
		}
	}
	rec := artifact.NewAnalysisRecord(a)
	now := c.now()
	entry := historystore.Entry{
		ID:        historystore.NewEntryID(now),
		Filename:  doc.name,
		Timestamp: now.UnixMilli(),
		Type:      artifact.KindAnalysis,
		Result:    rec,
	}
	c.finish(gen, rec, doc.name, entry, sess)
	return nil
}

func (c *Controller) runComparison(ctx context.Context, gen uint64, baseline, candidate stagedFile) error {
	cmp, err := c.svc.Compare(ctx,
		decoder.NamedPayload{Name: baseline.name, Payload: baseline.payload},
		decoder.NamedPayload{Name: candidate.name, Payload: candidate.payload})
	if err != nil {
		c.fail(gen, "comparison", err)
		return err
	}
	rec := artifact.NewComparisonRecord(cmp)
	now := c.now()
	entry := historystore.Entry{
		ID:             historystore.NewEntryID(now),
		Filename:       baseline.name,
		SecondFilename: candidate.name,
		Timestamp:      now.UnixMilli(),
		Type:           artifact.KindComparison,
		Result:         rec,
	}
	c.finish(gen, rec, baseline.name, entry, nil)
	return nil
}

// finish applies a successful run. A stale generation means the user reset
// or loaded history mid-flight; the completed work is abandoned silently.
func (c *Controller) finish(gen uint64, rec artifact.Record, name string, entry historystore.Entry, sess *chatsession.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.phase = PhaseResult
	c.result = &rec
	c.resultName = name
	c.chat = sess
	if c.history != nil {
		c.history.Append(entry)
	}
	c.logger.Info("run complete",
		zap.String("type", string(entry.Type)),
		zap.String("entry_id", entry.ID))
}

func (c *Controller) fail(gen uint64, phase string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.phase = PhaseError
	c.errMsg = userFacingFailure
	c.logger.Error("run failed", zap.String("phase", phase), zap.Error(err))
}

// Reset returns to Idle, clearing staged files, result, error and chat.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.phase = PhaseIdle
	c.staged = [2]*stagedFile{}
	c.result = nil
	c.resultName = ""
	c.errMsg = ""
	c.chat = nil
}

// OpenHistory loads a stored entry for display, transitioning directly to
// Result from any state. A historical Analysis yields a placeholder chat
// transcript; a live session requires re-submitting the document.
func (c *Controller) OpenHistory(id string) error {
	entry, ok := c.history.Load(id)
	if !ok {
		return ErrUnknownEntry
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.phase = PhaseResult
	c.mode = entry.Type
	rec := entry.Result
	c.result = &rec
	c.resultName = entry.Filename
	c.errMsg = ""
	if entry.Type == artifact.KindAnalysis {
		c.chat = chatsession.Placeholder()
	} else {
		c.chat = nil
	}
	return nil
}

// DeleteHistory removes the entry if present; unknown ids are a no-op.
func (c *Controller) DeleteHistory(id string) {
	c.history.Remove(id)
}

// History lists past entries most-recent-first.
func (c *Controller) History() []historystore.Entry {
	return c.history.List()
}

// HistoryEntry returns one stored entry without touching controller state.
func (c *Controller) HistoryEntry(id string) (historystore.Entry, bool) {
	return c.history.Load(id)
}

// SendChat issues one chat turn on the current session. Chat is independent
// of the Busy phase and never transitions controller state; a failed send is
// recorded as one model-role transcript line and returned as an error.
func (c *Controller) SendChat(ctx context.Context, text string) (string, error) {
	c.mu.Lock()
	sess := c.chat
	c.mu.Unlock()
	if sess == nil {
		return "", chatsession.ErrNoLiveSession
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	reply, err := sess.Send(ctx, text)
	if err != nil {
		c.logger.Warn("chat send failed", zap.Error(err))
	}
	return reply, err
}
