package llmclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	genai "google.golang.org/genai"
)

// GeminiClient is a thin wrapper around the official genai client.
// Structured generation and chat may run on different models; the original
// deployment pairs a pro model for decoding with a flash model for chat.
type GeminiClient struct {
	cli       *genai.Client
	genModel  string
	chatModel string
}

func NewGeminiClient(ctx context.Context, apiKey, genModel, chatModel string) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return &GeminiClient{cli: cli, genModel: genModel, chatModel: chatModel}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.genModel }
func (g *GeminiClient) Close() error { return nil }

// GenerateJSON sends the parts with response constrained to application/json
// plus the strict schema. One request per call; retries are the caller's call.
func (g *GeminiClient) GenerateJSON(ctx context.Context, parts []Part, opts GenerateOptions) (json.RawMessage, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   opts.Schema,
	}
	if opts.ThinkingBudget > 0 {
		cfg.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(opts.ThinkingBudget)}
	}
	resp, err := g.cli.Models.GenerateContent(ctx, g.genModel,
		[]*genai.Content{{Role: genai.RoleUser, Parts: toGenaiParts(parts)}}, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	txt := firstText(resp)
	if txt == "" {
		return nil, ErrEmptyResponse
	}
	return json.RawMessage(txt), nil
}

// NewChat opens a live session on the chat model. The opening parts become
// the first user turn; the session cannot be rebound afterwards.
func (g *GeminiClient) NewChat(ctx context.Context, system string, opening []Part) (Chat, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
	}
	history := []*genai.Content{{Role: genai.RoleUser, Parts: toGenaiParts(opening)}}
	chat, err := g.cli.Chats.Create(ctx, g.chatModel, cfg, history)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return &geminiChat{chat: chat}, nil
}

type geminiChat struct {
	chat *genai.Chat
}

func (c *geminiChat) Send(ctx context.Context, text string) (string, error) {
	resp, err := c.chat.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	txt := firstText(resp)
	if txt == "" {
		return "", ErrEmptyResponse
	}
	return txt, nil
}

func toGenaiParts(parts []Part) []*genai.Part {
	out := make([]*genai.Part, 0, len(parts))
	for _, p := range parts {
		if len(p.Data) > 0 {
			out = append(out, &genai.Part{InlineData: &genai.Blob{MIMEType: p.MIMEType, Data: p.Data}})
			continue
		}
		out = append(out, &genai.Part{Text: p.Text})
	}
	return out
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil && strings.TrimSpace(p.Text) != "" {
			return p.Text
		}
	}
	return ""
}
