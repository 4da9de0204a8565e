package bibliofind

import "context"

// Completer sends one instruction/question pair to a completion model and
// returns the raw response text.
type Completer interface {
	// Complete issues a single synchronous model call. The instruction is
	// passed as a system-level directive and the question as the user
	// content. Transport and API errors are propagated unmodified.
	Complete(ctx context.Context, instruction string, question string) (string, error)
}
