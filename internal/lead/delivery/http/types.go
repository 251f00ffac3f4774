package http

import "gene-woofallback/internal/lead"

// fallbackReq is the inbound body from the automation platform. Every field
// is optional: a missing lead, message, or text degrades to empty input and
// the engine falls through to the clarify branch.
type fallbackReq struct {
	Lead    *leadPart    `json:"lead"`
	Message *messagePart `json:"message"`
	Context *contextPart `json:"context"`
}

type leadPart struct {
	Name string `json:"name"`
}

type messagePart struct {
	Text string `json:"text"`
}

type contextPart struct {
	// JSON numbers arrive as float64; truncated to whole dollars.
	LastAmount *float64 `json:"last_amount"`
}

func (r fallbackReq) toInput() lead.DecideInput {
	input := lead.DecideInput{}
	if r.Lead != nil {
		input.Name = r.Lead.Name
	}
	if r.Message != nil {
		input.Text = r.Message.Text
	}
	if r.Context != nil && r.Context.LastAmount != nil && *r.Context.LastAmount >= 0 {
		amount := int(*r.Context.LastAmount)
		input.LastAmount = &amount
	}
	return input
}
