// Package chatsession manages the document-grounded Q&A session that opens
// after a successful analysis. A session binds to exactly one encoded
// document at creation and keeps a strictly alternating user/model transcript.
package chatsession

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"legalease/internal/encode"
	"legalease/internal/llmclient"
)

var (
	// ErrNoLiveSession means the session is a transcript-only placeholder
	// (loaded from history); chat stays disabled until the document is
	// re-submitted.
	ErrNoLiveSession = errors.New("chatsession: no live session")
	// ErrSendInFlight means a send is already pending on this session.
	ErrSendInFlight = errors.New("chatsession: send already in flight")
	// ErrSendFailed means the assistant turn could not be completed. The
	// session stays usable; the transcript records one model-role failure line.
	ErrSendFailed = errors.New("chatsession: assistant communication failed")
)

const systemInstruction = "You are a legal assistant trained to answer questions about the provided document. " +
	"Use simple language. Be concise. If the user asks about risks, identify them clearly. " +
	"Always add a disclaimer that you are an AI assistant and not a lawyer."

const openingTurn = "Please read this document and prepare to answer my questions."

// FailureLine is the model-role transcript line recorded when a send fails.
const FailureLine = "Error communicating with AI assistant."

// PlaceholderLine seeds the transcript of a non-live session loaded from history.
const PlaceholderLine = "Re-upload document to enable live chat session."

// Role tags one transcript turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one transcript turn.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Session is one conversational exchange bound to a single document.
type Session struct {
	mu         sync.Mutex
	chat       llmclient.Chat // nil for placeholders
	transcript []Message
	inFlight   bool
}

// Open starts a live session whose hidden context is the fixed system
// instruction followed by the document payload as the opening turn.
func Open(ctx context.Context, client llmclient.Client, doc encode.Payload) (*Session, error) {
	raw, err := doc.Bytes()
	if err != nil {
		return nil, err
	}
	ctx = llmclient.WithPhase(ctx, "chat")
	chat, err := client.NewChat(ctx, systemInstruction, []llmclient.Part{
		llmclient.BlobPart(raw, doc.MIMEType),
		llmclient.TextPart(openingTurn),
	})
	if err != nil {
		return nil, err
	}
	return &Session{chat: chat}, nil
}

// Placeholder returns a transcript-only session for a historical analysis.
func Placeholder() *Session {
	return &Session{transcript: []Message{{Role: RoleModel, Text: PlaceholderLine}}}
}

// Live reports whether sends can be attempted on this session.
func (s *Session) Live() bool {
	if s == nil {
		return false
	}
	return s.chat != nil
}

// Transcript returns a copy of the ordered transcript.
func (s *Session) Transcript() []Message {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Send appends a user turn, requests the model turn, appends and returns it.
// At most one send may be in flight; callers see ErrSendInFlight otherwise.
// On failure the returned text is FailureLine, the transcript records it as
// the model turn, and the session remains usable.
func (s *Session) Send(ctx context.Context, text string) (string, error) {
	if !s.Live() {
		return "", ErrNoLiveSession
	}
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return "", ErrSendInFlight
	}
	s.inFlight = true
	s.transcript = append(s.transcript, Message{Role: RoleUser, Text: text})
	s.mu.Unlock()

	reply, err := s.chat.Send(ctx, text)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if err != nil {
		s.transcript = append(s.transcript, Message{Role: RoleModel, Text: FailureLine})
		return FailureLine, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	s.transcript = append(s.transcript, Message{Role: RoleModel, Text: reply})
	return reply, nil
}
