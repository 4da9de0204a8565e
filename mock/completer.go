package mock

import (
	"context"

	"github.com/jmartel/bibliofind"
)

var _ bibliofind.Completer = (*Completer)(nil)

// Completer is a mock implementation of bibliofind.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, instruction string, question string) (string, error)
}

func (c *Completer) Complete(ctx context.Context, instruction string, question string) (string, error) {
	return c.CompleteFn(ctx, instruction, question)
}
