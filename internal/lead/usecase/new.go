package usecase

import (
	"gene-woofallback/internal/lead"
	"gene-woofallback/internal/rules"
	pkgLog "gene-woofallback/pkg/log"
)

// Config holds the decision-table thresholds, in whole dollars.
// Constructed once from service configuration and passed in — the engine
// never reads ambient state.
type Config struct {
	DebtHigh       int // auto-qualify at/above
	SecondaryLow   int // below this, self-help path applies when fully filed
	MidApptLow     int // inclusive lower bound of the unfiled-exception band
	MidApptHigh    int // inclusive upper bound of the unfiled-exception band
	CampaignBooked string
}

// Engine evaluates the decision table over extracted signals.
type Engine struct {
	cfg Config
	ex  *rules.Extractor
	l   pkgLog.Logger
}

var _ lead.UseCase = (*Engine)(nil)

// New creates a new Engine.
// Convention: factory function returns concrete type for internal packages.
func New(l pkgLog.Logger, cfg Config) *Engine {
	return &Engine{
		cfg: cfg,
		ex:  rules.NewExtractor(),
		l:   l,
	}
}
