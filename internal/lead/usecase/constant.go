package usecase

// Log prefixes
const (
	LogPrefixDecide = "lead.usecase.Decide"
)

// FallbackFirstName is used when the caller supplies no lead name.
const FallbackFirstName = "there"

// Reply scripts. %s placeholders are filled with the lead's first name,
// except primaryClarifyScript and selfHelpScript which also take a
// comma-formatted dollar threshold.
const (
	escalationSummary = "Sensitive keyword detected (billing/legal/etc.)"

	escalationSuggestedScript = "Hi %s, I’m looping a specialist in now. What’s the best number/time today?"

	selfHelpScript = "Hi %s, good news: with all returns filed and a balance under $%s, " +
		"you can usually resolve this directly with the IRS — a payment plan at irs.gov/payments " +
		"takes about 15 minutes to set up. If anything changes, we’re here. —Gene, Lexington Tax Group"

	overThresholdScript = "Thanks %s — that balance is right in the range we resolve every day. " +
		"Grab a time with our team and we’ll map out your options. —Gene, Lexington Tax Group"

	midUnfiledScript = "Thanks %s — with unfiled years in the mix, a quick call is the fastest way " +
		"to get you caught up and protected. Grab a time with our team. —Gene, Lexington Tax Group"

	underSecondaryScript = "Thanks %s — one quick check: do you have any unfiled tax years, " +
		"or are all your returns filed?"

	midBandScript = "Thanks %s — you’re right around the range where a short call saves the most. " +
		"Want me to set one up? —Gene, Lexington Tax Group"

	primaryClarifyScript = "Thanks for the note—quick check so I point you the right way: " +
		"about how much does the IRS say you owe—over or under $%s? " +
		"And do you have any unfiled tax years? —Gene, Lexington Tax Group"
)

// Booking handoff metadata attached to qualified decisions.
const (
	handoffTypeAppointment = "appointment"
	handoffTeamResolution  = "tax-resolution"
)
