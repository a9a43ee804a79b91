package llmclient

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// FakeClient returns deterministic payloads per phase for offline/testing.
// The zero value yields valid canned artifacts; set Err/Empty to exercise the
// failure paths.
type FakeClient struct {
	mu sync.Mutex

	// Err, when set, fails every GenerateJSON call.
	Err error
	// Empty simulates a completed call with no content.
	Empty bool
	// Responses overrides the canned output for a phase.
	Responses map[string]json.RawMessage

	// ChatErr, when set, fails every chat send.
	ChatErr error
	// ChatReplies are consumed one per send; after they run out, replies are
	// synthesized.
	ChatReplies []string

	Calls     int
	ChatOpens int
}

func (f *FakeClient) Name() string { return "FakeLLM" }
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) GenerateJSON(ctx context.Context, parts []Part, opts GenerateOptions) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.Err != nil {
		return nil, f.Err
	}
	if f.Empty {
		return nil, ErrEmptyResponse
	}
	phase := PhaseFrom(ctx)
	if raw, ok := f.Responses[phase]; ok {
		return raw, nil
	}
	switch phase {
	case "comparison":
		return json.RawMessage(`{
			"summary": "fake comparison summary",
			"changes": [
				{"type": "Added", "description": "fake added clause", "impact": "Negative", "newText": "fake new text"}
			],
			"riskShift": "fake risk shift"
		}`), nil
	default:
		return json.RawMessage(`{
			"summary": {"en": "fake summary", "hi": "नकली सारांश"},
			"complexityScore": 3,
			"persona": "Tenant",
			"verdict": "Safe",
			"risks": [],
			"clauseCards": [],
			"hiddenFees": [],
			"jargonTranslator": []
		}`), nil
	}
}

func (f *FakeClient) NewChat(ctx context.Context, system string, opening []Part) (Chat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ChatOpens++
	return &fakeChat{client: f}, nil
}

type fakeChat struct {
	client *FakeClient
	turns  int
}

func (c *fakeChat) Send(ctx context.Context, text string) (string, error) {
	c.client.mu.Lock()
	defer c.client.mu.Unlock()
	if c.client.ChatErr != nil {
		return "", c.client.ChatErr
	}
	c.turns++
	if len(c.client.ChatReplies) > 0 {
		reply := c.client.ChatReplies[0]
		c.client.ChatReplies = c.client.ChatReplies[1:]
		return reply, nil
	}
	return fmt.Sprintf("fake reply %d", c.turns), nil
}
