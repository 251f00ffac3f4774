package lead

// Action is the classification the engine assigns to an inbound message.
type Action string

const (
	ActionEscalate  Action = "escalate"
	ActionReply     Action = "reply"
	ActionQualified Action = "qualified"
)

// Band is the qualification bucket derived from amount and filing signals.
type Band string

const (
	BandUnknown        Band = "unknown"
	BandOverThreshold  Band = "over_threshold"
	BandMidWithUnfiled Band = "mid_with_unfiled"
	BandMidBand        Band = "mid_band"
	BandUnderSecondary Band = "under_secondary"
)

// TriState is a yes/no/unknown flag. StateIssue never reports "no" — absence
// of a state-authority mention only means we don't know.
type TriState string

const (
	TriYes     TriState = "yes"
	TriNo      TriState = "no"
	TriUnknown TriState = "unknown"
)

// Notes tags identify which decision-table rule fired.
const (
	NotesAutoEscalate   = "auto_escalate"
	NotesSelfHelp       = "disqualify_self_help"
	NotesOverThreshold  = "qualify_over_threshold"
	NotesMidUnfiled     = "qualify_mid_unfiled"
	NotesUnderSecondary = "clarify_unfiled_years"
	NotesMidBand        = "nudge_mid_band"
	NotesPrimaryClarify = "primary_clarify"
)

// RouteBooking marks decisions that hand off to the scheduling flow.
// Decisions carrying this route are forwarded to the configured webhook.
const RouteBooking = "booking"

// DecideInput is a single inbound message plus optional prior context.
type DecideInput struct {
	Name       string // lead display name, may be empty
	Text       string // raw message text, may be empty
	LastAmount *int   // previously observed amount supplied by the caller
}

// Escalation carries the human-handoff context for escalate decisions.
type Escalation struct {
	Summary   string `json:"summary"`
	Suggested string `json:"suggested"`
}

// Handoff describes the downstream team receiving a qualified lead.
type Handoff struct {
	Type string `json:"type"`
	Team string `json:"team"`
}

// Workflow carries CRM/campaign metadata for booking decisions.
type Workflow struct {
	Campaign string `json:"campaign"`
}

// Qualified is the qualification snapshot attached to every decision.
type Qualified struct {
	Band            Band     `json:"band"`
	Amount          *int     `json:"amount,omitempty"`
	HasUnfiledYears TriState `json:"has_unfiled_years"`
	StateIssue      TriState `json:"state_issue"`
}

// Decision is the engine's output record, returned verbatim to the caller.
// Identical input must produce a byte-identical decision, so nothing in here
// may depend on clocks, randomness, or per-request IDs.
type Decision struct {
	Action     Action      `json:"action"`
	ReplyText  *string     `json:"reply_text"`
	Notes      string      `json:"notes"`
	Escalation *Escalation `json:"escalation,omitempty"`
	Route      string      `json:"route,omitempty"`
	Handoff    *Handoff    `json:"handoff,omitempty"`
	Workflow   *Workflow   `json:"workflow,omitempty"`
	Forwarded  bool        `json:"forwarded"`
	Qualified  Qualified   `json:"qualified"`
}
