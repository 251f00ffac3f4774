package rules

import (
	"regexp"
	"strconv"
	"strings"
)

// autoEscalateKeywords trigger immediate human escalation. Matched as plain
// substrings anywhere in the normalized text, not word-boundary-limited:
// "refunds", "lawyers" etc. must still trip the check.
var autoEscalateKeywords = []string{
	"chargeback", "refund", "billing", "attorney", "lawyer",
	"levy", "lien", "garnish", "garnishment", "lawsuit",
	"complaint", "harassment",
}

// Compiled patterns for filing-status detection. Each detector stays an
// independent predicate: the keyword sets evolve separately and the decision
// table consumes them as independent signals.
var (
	// First $-optional digit run with optional k-multiplier, commas stripped
	// beforehand. The suffix must be attached to the digits so "2 kids" parses
	// as 2, not 2000.
	amountRe = regexp.MustCompile(`\$?(\d+)(k?)`)

	unfiledRe = regexp.MustCompile(
		`(?i)\bunfiled\b|missing (tax )?years?|(not|haven'?t|didn'?t) filed?\b|behind on filing|back (returns?|years?)`)

	noUnfiledRe = regexp.MustCompile(
		`(?i)no (missing )?(tax )?years?|all (returns?|years?) (are )?filed|up to date on filing|everything (is )?filed|all filed|current on filing`)

	stateIssueRe = regexp.MustCompile(
		`(?i)state tax(es)?|department of revenue|\b(dor|ftb|edd|dtf)\b|franchise tax board`)
)

// Normalize lowercases and trims the input. Absent text is the empty string.
// Idempotent; all downstream matching operates on this form.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Extractor computes the signal set for a normalized message. Stateless and
// safe for concurrent use; construct once and share.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract computes all signals for the given normalized text.
func (e *Extractor) Extract(text string) Signals {
	return Signals{
		Escalate:   e.EscalateMatch(text),
		Amount:     e.ParseAmount(text),
		Unfiled:    e.UnfiledMatch(text),
		NoUnfiled:  e.NoUnfiledMatch(text),
		StateIssue: e.StateIssueMatch(text),
	}
}

// EscalateMatch reports whether any auto-escalate keyword appears as a
// substring of the normalized text.
func (e *Extractor) EscalateMatch(text string) bool {
	for _, kw := range autoEscalateKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// ParseAmount locates the first dollar amount in the normalized text and
// returns it in whole dollars, or nil if the text contains no digits.
// "12,000", "$12,000", "12k" and "$12k" all parse to 12000. Only the first
// match is used; ranges like "5k-7k" resolve to their first number.
func (e *Extractor) ParseAmount(text string) *int {
	stripped := strings.ReplaceAll(text, ",", "")

	m := amountRe.FindStringSubmatch(stripped)
	if m == nil {
		return nil
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		// Digit run too long for int; treat as no amount.
		return nil
	}
	if m[2] == "k" {
		n *= 1000
	}
	return &n
}

// UnfiledMatch reports phrases indicating missing tax returns.
func (e *Extractor) UnfiledMatch(text string) bool {
	return unfiledRe.MatchString(text)
}

// NoUnfiledMatch reports phrases indicating full filing compliance.
func (e *Extractor) NoUnfiledMatch(text string) bool {
	return noUnfiledRe.MatchString(text)
}

// StateIssueMatch reports references to state tax authorities.
func (e *Extractor) StateIssueMatch(text string) bool {
	return stateIssueRe.MatchString(text)
}
