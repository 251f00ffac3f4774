package rules_test

import (
	"testing"

	"gene-woofallback/internal/rules"
)

func TestNormalize(t *testing.T) {
	t.Run("Lowercase And Trim", func(t *testing.T) {
		if got := rules.Normalize("  I OWE $12K  "); got != "i owe $12k" {
			t.Errorf("unexpected normalized text: %q", got)
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		if got := rules.Normalize(""); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		once := rules.Normalize("Behind ON Filing")
		twice := rules.Normalize(once)
		if once != twice {
			t.Errorf("normalize not idempotent: %q vs %q", once, twice)
		}
	})
}

func TestEscalateMatch(t *testing.T) {
	e := rules.NewExtractor()

	keywords := []string{
		"chargeback", "refund", "billing", "attorney", "lawyer",
		"levy", "lien", "garnish", "garnishment", "lawsuit",
		"complaint", "harassment",
	}
	for _, kw := range keywords {
		if !e.EscalateMatch(rules.Normalize("question about my " + kw)) {
			t.Errorf("keyword %q should escalate", kw)
		}
	}

	t.Run("Substring Not Word Boundary", func(t *testing.T) {
		// "refunds" and "lawyers" contain the keywords as substrings.
		if !e.EscalateMatch("i want refunds now") {
			t.Error("expected substring match on 'refunds'")
		}
		if !e.EscalateMatch("my lawyers will call") {
			t.Error("expected substring match on 'lawyers'")
		}
	})

	t.Run("Case Insensitive Via Normalize", func(t *testing.T) {
		if !e.EscalateMatch(rules.Normalize("My ATTORNEY said so")) {
			t.Error("expected match after normalization")
		}
	})

	t.Run("No Keyword", func(t *testing.T) {
		if e.EscalateMatch("i owe the irs about 9k") {
			t.Error("unexpected escalation match")
		}
	})
}

func TestParseAmount(t *testing.T) {
	e := rules.NewExtractor()

	cases := []struct {
		name string
		text string
		want int
	}{
		{"Plain Digits", "i owe 12000", 12000},
		{"Comma Separated", "i owe 12,000", 12000},
		{"K Suffix", "about 12k", 12000},
		{"Dollar K Suffix", "about $12k", 12000},
		{"Dollar Comma", "around $12,000 total", 12000},
		{"First Match Wins", "between 5k and 7k", 5000},
		{"Range Literal", "maybe 5k-7k", 5000},
		{"Suffix Must Be Attached", "i have 2 kids and owe nothing", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.ParseAmount(rules.Normalize(tc.text))
			if got == nil {
				t.Fatalf("expected %d, got no amount", tc.want)
			}
			if *got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, *got)
			}
		})
	}

	t.Run("No Digits", func(t *testing.T) {
		if got := e.ParseAmount("no idea how much i owe"); got != nil {
			t.Errorf("expected nil, got %d", *got)
		}
	})

	t.Run("Empty Text", func(t *testing.T) {
		if got := e.ParseAmount(""); got != nil {
			t.Errorf("expected nil, got %d", *got)
		}
	})
}

func TestFilingDetectors(t *testing.T) {
	e := rules.NewExtractor()

	t.Run("Unfiled Phrases", func(t *testing.T) {
		for _, text := range []string{
			"i have unfiled returns",
			"missing years from 2019",
			"missing tax years",
			"i have not filed since 2020",
			"haven't filed in a while",
			"didn't file last year",
			"i'm behind on filing",
			"a few back returns",
			"two back years to catch up",
		} {
			if !e.UnfiledMatch(rules.Normalize(text)) {
				t.Errorf("expected unfiled match for %q", text)
			}
		}
	})

	t.Run("No Unfiled Phrases", func(t *testing.T) {
		for _, text := range []string{
			"no missing years",
			"no missing tax years",
			"all returns filed",
			"all years are filed",
			"up to date on filing",
			"everything is filed",
			"all filed here",
			"current on filing",
		} {
			if !e.NoUnfiledMatch(rules.Normalize(text)) {
				t.Errorf("expected no-unfiled match for %q", text)
			}
		}
	})

	t.Run("State Issue Phrases", func(t *testing.T) {
		for _, text := range []string{
			"i owe state taxes too",
			"a state tax problem",
			"letter from the department of revenue",
			"the ftb is after me",
			"got a notice from edd",
			"dtf sent a bill",
			"dor letter came in",
			"franchise tax board garnishment notice",
		} {
			if !e.StateIssueMatch(rules.Normalize(text)) {
				t.Errorf("expected state-issue match for %q", text)
			}
		}
	})

	t.Run("State Abbreviation Needs Word Boundary", func(t *testing.T) {
		if e.StateIssueMatch("i sold my fedora collection") {
			t.Error("'dor' inside another word must not match")
		}
	})

	t.Run("Neither Detector", func(t *testing.T) {
		text := rules.Normalize("i owe about 9k to the irs")
		if e.UnfiledMatch(text) || e.NoUnfiledMatch(text) {
			t.Error("expected no filing signals")
		}
	})

	// Known ambiguity: "no missing years" satisfies both detectors, since the
	// unfiled pattern also sees "missing years". The decision table consumes
	// the signals independently and performs no tie-break.
	t.Run("Contradictory Signals Both Fire", func(t *testing.T) {
		text := rules.Normalize("no missing years at all")
		if !e.NoUnfiledMatch(text) {
			t.Error("expected no-unfiled match")
		}
		if !e.UnfiledMatch(text) {
			t.Error("expected unfiled match too (documented overlap)")
		}
	})
}

func TestExtract(t *testing.T) {
	e := rules.NewExtractor()

	text := rules.Normalize("I owe $6,500 and I'm behind on filing with the FTB")
	sig := e.Extract(text)

	if sig.Escalate {
		t.Error("unexpected escalate signal")
	}
	if sig.Amount == nil || *sig.Amount != 6500 {
		t.Errorf("expected amount 6500, got %v", sig.Amount)
	}
	if !sig.Unfiled {
		t.Error("expected unfiled signal")
	}
	if sig.NoUnfiled {
		t.Error("unexpected no-unfiled signal")
	}
	if !sig.StateIssue {
		t.Error("expected state-issue signal")
	}
}
