package rules

// Signals is the set of signals extracted from a single normalized message.
// Recomputed per call; nothing here survives the request.
type Signals struct {
	Escalate   bool // sensitive keyword present (billing/legal/etc.)
	Amount     *int // first dollar amount found, nil if no digits
	Unfiled    bool // phrases indicating missing returns
	NoUnfiled  bool // phrases indicating full filing compliance
	StateIssue bool // state tax authority mentioned
}
