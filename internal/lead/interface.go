package lead

import "context"

// UseCase is the rule-evaluation engine for inbound lead messages.
type UseCase interface {
	// Decide classifies a single message. It is a pure function of its input:
	// malformed or empty input degrades to the clarify branch instead of failing.
	Decide(ctx context.Context, input DecideInput) Decision
}
