// Package llmclient wraps the remote reasoning capability behind a small
// interface so the decoder and chat layers can run against a fake offline.
package llmclient

import (
	"context"
	"encoding/json"
	"errors"

	genai "google.golang.org/genai"
)

var (
	// ErrEmptyResponse means the remote call completed but returned no content.
	ErrEmptyResponse = errors.New("llmclient: empty response from model")
	// ErrTransport means the remote call itself failed (network, auth, rate limit).
	ErrTransport = errors.New("llmclient: transport failure")
)

// Part is one unit of request content: text, or an inline document blob.
type Part struct {
	Text     string
	Data     []byte
	MIMEType string
}

// TextPart builds a text part.
func TextPart(s string) Part { return Part{Text: s} }

// BlobPart builds an inline document part.
func BlobPart(data []byte, mimeType string) Part {
	return Part{Data: data, MIMEType: mimeType}
}

// GenerateOptions constrain one structured generation call.
type GenerateOptions struct {
	// Schema is the strict response schema; the model must answer with one
	// JSON document conforming to it, no prose wrapper.
	Schema *genai.Schema
	// ThinkingBudget caps the model's internal reasoning tokens. Zero means
	// the model default.
	ThinkingBudget int32
}

// Chat is one live, document-grounded conversational session.
type Chat interface {
	// Send issues the next user turn and returns the model's reply text.
	Send(ctx context.Context, text string) (string, error)
}

// Client is the remote reasoning capability.
type Client interface {
	Name() string
	// GenerateJSON sends the parts and returns the model's raw JSON.
	GenerateJSON(ctx context.Context, parts []Part, opts GenerateOptions) (json.RawMessage, error)
	// NewChat opens a session seeded with a system instruction and an
	// opening document-bearing turn.
	NewChat(ctx context.Context, system string, opening []Part) (Chat, error)
	Close() error
}
