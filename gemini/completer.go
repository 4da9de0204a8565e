// Package gemini implements the completion client using Google Gemini.
package gemini

import (
	"context"
	"time"

	"github.com/jmartel/bibliofind"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash-lite"

// DefaultCompleteTimeout bounds one completion call.
const DefaultCompleteTimeout = 60 * time.Second

// Ensure Completer implements bibliofind.Completer at compile time.
var _ bibliofind.Completer = (*Completer)(nil)

// Completer implements bibliofind.Completer using Google Gemini.
type Completer struct {
	client  *genai.Client
	timeout time.Duration
}

// Option configures a Completer.
type Option func(*Completer)

// WithTimeout sets the per-call timeout.
// Defaults to DefaultCompleteTimeout (60s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Completer) {
		c.timeout = d
	}
}

// NewCompleter creates a new Completer.
func NewCompleter(client *genai.Client, opts ...Option) *Completer {
	c := &Completer{
		client:  client,
		timeout: DefaultCompleteTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete sends the instruction as the system directive and the question
// as the user content, and returns the raw response text.
func (c *Completer) Complete(ctx context.Context, instruction string, question string) (string, error) {
	if instruction == "" {
		return "", bibliofind.Errorf(bibliofind.EINVALID, "instruction required")
	}
	if question == "" {
		return "", bibliofind.Errorf(bibliofind.EINVALID, "question required")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: question}},
		}},
		BuildConfig(instruction),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", bibliofind.Errorf(bibliofind.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// The temperature is pinned low: the model is asked for exact catalog
// titles, not prose.
func BuildConfig(instruction string) *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: instruction}},
		},
		Temperature: &temp,
	}
}
