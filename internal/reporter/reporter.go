package reporter

import (
	"fmt"

	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/config"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/models"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/mutator"
	"github.com/rs/zerolog"
)

// Recommendation trigger constants.
const (
	inlinedBytesWarnLimit    = 50 * 1024
	largeExternalAssetSize   = 100 * 1024
	modernTransportHintCount = 10

	excellentReductionPercent = 30
	goodReductionPercent      = 10
)

// EmbeddingReport aggregates the outcome of one processing pass: counters
// plus an ordered list of qualitative recommendations. Purely derived, no
// side effects.
type EmbeddingReport struct {
	TotalAssets       int
	InlinedCount      int
	ExternalizedCount int
	DelegatedCount    int
	BytesBefore       int64
	BytesAfter        int64
	InlinedBytes      int64
	RequestsSaved     int
	ReductionPercent  int
	Recommendations   []string
}

// Reporter derives the aggregate report from the decision map and the
// totals accumulated during mutation.
type Reporter struct {
	config config.EmbeddingConfig
	logger zerolog.Logger
}

// NewReporter creates a new Reporter instance
func NewReporter(cfg config.EmbeddingConfig, logger zerolog.Logger) *Reporter {
	return &Reporter{
		config: cfg,
		logger: logger.With().Str("component", "Reporter").Logger(),
	}
}

// Generate builds the report. A pass with zero distinct assets yields a
// well-formed all-zero report; the reduction percentage is guarded against
// division by zero and treated as 0%.
func (r *Reporter) Generate(decisions map[string]models.AssetDecision, stats mutator.MutationStats) EmbeddingReport {
	report := EmbeddingReport{
		TotalAssets:       len(decisions),
		InlinedCount:      stats.InlinedCount,
		ExternalizedCount: stats.ExternalizedCount,
		DelegatedCount:    stats.DelegatedCount,
		BytesBefore:       stats.BytesBefore,
		BytesAfter:        stats.BytesAfter,
		InlinedBytes:      stats.InlinedBytes,
		RequestsSaved:     stats.RequestsSaved,
	}

	if report.TotalAssets > 0 {
		report.ReductionPercent = report.RequestsSaved * 100 / report.TotalAssets
	}

	report.Recommendations = r.recommendations(decisions, report)
	return report
}

// recommendations evaluates each advisory rule independently; multiple may
// fire, in a fixed order.
func (r *Reporter) recommendations(decisions map[string]models.AssetDecision, report EmbeddingReport) []string {
	var recs []string

	if report.RequestsSaved > 0 {
		recs = append(recs, fmt.Sprintf("eliminated %d HTTP requests by embedding assets directly", report.RequestsSaved))
	}

	if report.InlinedBytes > inlinedBytesWarnLimit {
		recs = append(recs, fmt.Sprintf("inlined payload totals %d KB; base64 encoding inflates transfer size, review the largest inlined assets", report.InlinedBytes/1024))
	}

	if !r.config.ModernTransport && report.InlinedCount > modernTransportHintCount {
		recs = append(recs, fmt.Sprintf("%d assets were inlined; enabling the modern transport option tightens inline thresholds for multiplexed connections", report.InlinedCount))
	}

	if !r.config.DelegateUpload && hasLargeExternalAsset(decisions) {
		recs = append(recs, "externalized assets over 100 KB detected; enabling upload delegation would move them to managed storage")
	}

	if path, found := criticalExternalAsset(decisions); found {
		recs = append(recs, fmt.Sprintf("critical above-the-fold asset '%s' is still externalized and delays first paint", path))
	}

	switch {
	case report.ReductionPercent >= excellentReductionPercent:
		recs = append(recs, fmt.Sprintf("excellent: request count reduced by %d%%", report.ReductionPercent))
	case report.ReductionPercent >= goodReductionPercent:
		recs = append(recs, fmt.Sprintf("good: request count reduced by %d%%", report.ReductionPercent))
	default:
		recs = append(recs, fmt.Sprintf("request count reduced by only %d%%; consider tuning the inline thresholds", report.ReductionPercent))
	}

	return recs
}

// hasLargeExternalAsset reports whether any externalized asset exceeds the
// delegation hint size.
func hasLargeExternalAsset(decisions map[string]models.AssetDecision) bool {
	for _, d := range decisions {
		if d.Kind == models.DecisionExternalize && d.OriginalSize > largeExternalAssetSize {
			return true
		}
	}
	return false
}

// criticalExternalAsset returns the first critical asset left external, if
// any. Map order is unspecified; any match serves the advisory.
func criticalExternalAsset(decisions map[string]models.AssetDecision) (string, bool) {
	for path, d := range decisions {
		if d.Kind == models.DecisionExternalize && d.Critical {
			return path, true
		}
	}
	return "", false
}
