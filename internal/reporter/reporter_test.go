package reporter

import (
	"strings"
	"testing"

	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/config"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/models"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/mutator"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReporter(cfg config.EmbeddingConfig) *Reporter {
	return NewReporter(cfg, zerolog.Nop())
}

func findRecommendation(recs []string, fragment string) bool {
	for _, rec := range recs {
		if strings.Contains(rec, fragment) {
			return true
		}
	}
	return false
}

func TestGenerate_ZeroAssets(t *testing.T) {
	r := newTestReporter(config.NewDefaultEmbeddingConfig())

	report := r.Generate(map[string]models.AssetDecision{}, mutator.MutationStats{})

	assert.Equal(t, 0, report.TotalAssets)
	assert.Equal(t, 0, report.ReductionPercent, "division by zero is guarded and treated as 0%")
	require.NotEmpty(t, report.Recommendations)
	assert.True(t, findRecommendation(report.Recommendations, "only 0%"))
}

func TestGenerate_Counters(t *testing.T) {
	r := newTestReporter(config.NewDefaultEmbeddingConfig())

	decisions := map[string]models.AssetDecision{
		"a.png": {Kind: models.DecisionInlineData, OriginalSize: 1000, Savings: models.Savings{HTTPRequests: 1, ByteDelta: 370}},
		"b.jpg": {Kind: models.DecisionExternalize, OriginalSize: 5000},
	}
	stats := mutator.MutationStats{
		InlinedCount:      1,
		ExternalizedCount: 1,
		BytesBefore:       6000,
		BytesAfter:        6370,
		InlinedBytes:      1370,
		RequestsSaved:     1,
	}

	report := r.Generate(decisions, stats)

	assert.Equal(t, 2, report.TotalAssets)
	assert.Equal(t, 50, report.ReductionPercent)
	assert.Equal(t, int64(6000), report.BytesBefore)
	assert.Equal(t, int64(6370), report.BytesAfter)
	assert.True(t, findRecommendation(report.Recommendations, "eliminated 1 HTTP requests"))
}

func TestGenerate_ReductionBuckets(t *testing.T) {
	r := newTestReporter(config.NewDefaultEmbeddingConfig())

	tests := []struct {
		name          string
		totalAssets   int
		requestsSaved int
		fragment      string
	}{
		{"excellent at 30 percent", 10, 3, "excellent: request count reduced by 30%"},
		{"good at 10 percent", 10, 1, "good: request count reduced by 10%"},
		{"tuning below 10 percent", 20, 1, "only 5%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decisions := make(map[string]models.AssetDecision, tt.totalAssets)
			for i := 0; i < tt.totalAssets; i++ {
				decisions[strings.Repeat("x", i+1)+".png"] = models.AssetDecision{Kind: models.DecisionExternalize}
			}
			report := r.Generate(decisions, mutator.MutationStats{RequestsSaved: tt.requestsSaved})
			assert.True(t, findRecommendation(report.Recommendations, tt.fragment), "recommendations: %v", report.Recommendations)
		})
	}
}

func TestGenerate_Base64OverheadWarning(t *testing.T) {
	r := newTestReporter(config.NewDefaultEmbeddingConfig())

	stats := mutator.MutationStats{InlinedCount: 1, InlinedBytes: 60 * 1024, RequestsSaved: 1}
	report := r.Generate(map[string]models.AssetDecision{"a.png": {Kind: models.DecisionInlineData}}, stats)

	assert.True(t, findRecommendation(report.Recommendations, "60 KB"), "literal KB figure in the warning")
}

func TestGenerate_ModernTransportSuggestion(t *testing.T) {
	cfg := config.NewDefaultEmbeddingConfig()
	r := newTestReporter(cfg)

	stats := mutator.MutationStats{InlinedCount: 11}
	report := r.Generate(map[string]models.AssetDecision{}, stats)
	assert.True(t, findRecommendation(report.Recommendations, "modern transport"))

	cfg.ModernTransport = true
	report = newTestReporter(cfg).Generate(map[string]models.AssetDecision{}, stats)
	assert.False(t, findRecommendation(report.Recommendations, "modern transport"))
}

func TestGenerate_DelegationSuggestion(t *testing.T) {
	cfg := config.NewDefaultEmbeddingConfig()
	decisions := map[string]models.AssetDecision{
		"big.jpg": {Kind: models.DecisionExternalize, OriginalSize: 150 * 1024},
	}

	report := newTestReporter(cfg).Generate(decisions, mutator.MutationStats{})
	assert.True(t, findRecommendation(report.Recommendations, "upload delegation"))

	cfg.DelegateUpload = true
	report = newTestReporter(cfg).Generate(decisions, mutator.MutationStats{})
	assert.False(t, findRecommendation(report.Recommendations, "upload delegation"))
}

func TestGenerate_CriticalExternalWarning(t *testing.T) {
	r := newTestReporter(config.NewDefaultEmbeddingConfig())

	decisions := map[string]models.AssetDecision{
		"hero.jpg": {Kind: models.DecisionExternalize, OriginalSize: 90000, Critical: true},
	}
	report := r.Generate(decisions, mutator.MutationStats{})
	assert.True(t, findRecommendation(report.Recommendations, "hero.jpg"))
	assert.True(t, findRecommendation(report.Recommendations, "first paint"))
}
