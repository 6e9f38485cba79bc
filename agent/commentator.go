// Package agent connects the tracker to the generative commentary service.
//
// The service is an opaque collaborator: it receives the normalized
// last-snapshots summary and returns text. Nothing in here recomputes
// figures, the engine's SummaryReport is the single source.
package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tmasc/networth"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

const systemInstruction = `You are a family wealth assistant. You receive a
JSON digest of the household's recent net-worth snapshots: one entry per
date with the normalized total and a per-category breakdown. Comment on the
trend, notable category moves, and concentration. Be concise, factual, and
never invent figures that are not in the digest.`

// Commentator wraps a genai chat that turns a net-worth summary into a
// short commentary.
type Commentator struct {
	ModelName string
	Config    *genai.GenerateContentConfig
	chat      *genai.Chat
}

// NewCommentator returns a commentator with the default model and prompt.
func NewCommentator() *Commentator {
	return &Commentator{
		ModelName: defaultModel,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: systemInstruction}},
			},
		},
	}
}

// Start creates the chat session.
func (c *Commentator) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, c.ModelName, c.Config, nil)
	if err != nil {
		return err
	}
	c.chat = chat
	return nil
}

// Comment sends the summary digest and returns the commentary text.
func (c *Commentator) Comment(ctx context.Context, summary *networth.SummaryReport) (string, error) {
	if c.chat == nil {
		return "", fmt.Errorf("commentator is not started")
	}

	digest, err := json.Marshal(summary.Entries)
	if err != nil {
		return "", fmt.Errorf("cannot marshal summary digest: %w", err)
	}
	prompt := fmt.Sprintf("Family member scope: %s\nSnapshot digest:\n%s", summary.Member, digest)

	resp, err := c.chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from commentary service")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
