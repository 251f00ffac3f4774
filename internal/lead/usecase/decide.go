package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gene-woofallback/internal/lead"
	"gene-woofallback/internal/rules"
)

// Decide evaluates the decision table in strict order; first match wins.
// Order: escalate, self-help disqualify, current-message amount bands,
// default clarify. Escalation dominates everything else.
func (e *Engine) Decide(ctx context.Context, input lead.DecideInput) lead.Decision {
	text := rules.Normalize(input.Text)
	sig := e.ex.Extract(text)
	first := firstName(input.Name)

	// 1. Sensitive keyword: terminal, no reply text, human handoff suggested.
	if sig.Escalate {
		e.l.Infof(ctx, "%s: escalate keyword matched", LogPrefixDecide)
		return lead.Decision{
			Action:    lead.ActionEscalate,
			ReplyText: nil,
			Notes:     lead.NotesAutoEscalate,
			Escalation: &lead.Escalation{
				Summary:   escalationSummary,
				Suggested: fmt.Sprintf(escalationSuggestedScript, first),
			},
			Qualified: lead.Qualified{
				Band:            lead.BandUnknown,
				HasUnfiledYears: lead.TriUnknown,
				StateIssue:      lead.TriUnknown,
			},
		}
	}

	stateIssue := lead.TriUnknown
	if sig.StateIssue {
		stateIssue = lead.TriYes
	}

	// 2. Effective amount: the prior-context amount only takes over when the
	// current message yields no number.
	effective := sig.Amount
	if effective == nil {
		effective = input.LastAmount
	}

	// 3. Self-help disqualify: low balance and fully filed. Only the
	// no-unfiled signal is consulted here; a simultaneous unfiled match is
	// ignored (documented ambiguity, no tie-break).
	if effective != nil && *effective < e.cfg.SecondaryLow && sig.NoUnfiled {
		e.l.Infof(ctx, "%s: self-help disqualify at $%d", LogPrefixDecide, *effective)
		return e.reply(lead.NotesSelfHelp,
			fmt.Sprintf(selfHelpScript, first, formatDollars(e.cfg.SecondaryLow)),
			lead.Qualified{
				Band:            lead.BandUnderSecondary,
				Amount:          effective,
				HasUnfiledYears: lead.TriNo,
				StateIssue:      stateIssue,
			})
	}

	// 4. Amount bands apply to the current message only, never to context.
	if sig.Amount != nil {
		amt := *sig.Amount
		switch {
		case amt >= e.cfg.DebtHigh:
			e.l.Infof(ctx, "%s: qualified over threshold at $%d", LogPrefixDecide, amt)
			return e.qualified(lead.NotesOverThreshold,
				fmt.Sprintf(overThresholdScript, first),
				lead.Qualified{
					Band:            lead.BandOverThreshold,
					Amount:          sig.Amount,
					HasUnfiledYears: lead.TriUnknown,
					StateIssue:      stateIssue,
				})

		case amt >= e.cfg.MidApptLow && amt <= e.cfg.MidApptHigh && sig.Unfiled:
			e.l.Infof(ctx, "%s: qualified mid band with unfiled years at $%d", LogPrefixDecide, amt)
			return e.qualified(lead.NotesMidUnfiled,
				fmt.Sprintf(midUnfiledScript, first),
				lead.Qualified{
					Band:            lead.BandMidWithUnfiled,
					Amount:          sig.Amount,
					HasUnfiledYears: lead.TriYes,
					StateIssue:      stateIssue,
				})

		case amt < e.cfg.SecondaryLow:
			// Filing status unresolved: step 3 already took the no-unfiled case.
			return e.reply(lead.NotesUnderSecondary,
				fmt.Sprintf(underSecondaryScript, first),
				lead.Qualified{
					Band:            lead.BandUnderSecondary,
					Amount:          sig.Amount,
					HasUnfiledYears: lead.TriUnknown,
					StateIssue:      stateIssue,
				})

		default:
			return e.reply(lead.NotesMidBand,
				fmt.Sprintf(midBandScript, first),
				lead.Qualified{
					Band:            lead.BandMidBand,
					Amount:          sig.Amount,
					HasUnfiledYears: lead.TriUnknown,
					StateIssue:      stateIssue,
				})
		}
	}

	// 5. Default clarify: no usable amount. Also catches a context amount
	// that step 3 did not consume.
	return e.reply(lead.NotesPrimaryClarify,
		fmt.Sprintf(primaryClarifyScript, formatDollars(e.cfg.DebtHigh)),
		lead.Qualified{
			Band:            lead.BandUnknown,
			HasUnfiledYears: lead.TriUnknown,
			StateIssue:      lead.TriUnknown,
		})
}

func (e *Engine) reply(notes, text string, q lead.Qualified) lead.Decision {
	return lead.Decision{
		Action:    lead.ActionReply,
		ReplyText: &text,
		Notes:     notes,
		Qualified: q,
	}
}

// qualified builds a booking decision with handoff and campaign metadata.
func (e *Engine) qualified(notes, text string, q lead.Qualified) lead.Decision {
	return lead.Decision{
		Action:    lead.ActionQualified,
		ReplyText: &text,
		Notes:     notes,
		Route:     lead.RouteBooking,
		Handoff: &lead.Handoff{
			Type: handoffTypeAppointment,
			Team: handoffTeamResolution,
		},
		Workflow: &lead.Workflow{
			Campaign: e.cfg.CampaignBooked,
		},
		Qualified: q,
	}
}

// firstName returns the first whitespace-delimited token of the supplied
// name, or the fallback placeholder.
func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return FallbackFirstName
	}
	return fields[0]
}

// formatDollars renders n with comma grouping: 8000 -> "8,000".
func formatDollars(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
