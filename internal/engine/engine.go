package engine

import (
	"fmt"

	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/config"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/models"
	"github.com/rs/zerolog"
)

// base64OverheadRatio approximates the payload growth of base64 encoding.
// Raw expansion is closer to 33%; the margin covers the data URI prefix and
// attribute quoting around the payload.
const base64OverheadRatio = 0.37

// decisionRule is one predicate+action pair in the priority chain. evaluate
// returns the decision and true when the rule fires.
type decisionRule struct {
	name     string
	evaluate func(rec models.AssetRecord, prof models.AssetProfile) (models.AssetDecision, bool)
}

// DecisionEngine turns one (AssetRecord, AssetProfile) pair into exactly one
// AssetDecision. Rules are evaluated in strict priority order with early
// return: no re-evaluation, no backtracking, no state shared between assets.
type DecisionEngine struct {
	config config.EmbeddingConfig
	rules  []decisionRule
	logger zerolog.Logger
}

// NewDecisionEngine creates a new DecisionEngine instance
func NewDecisionEngine(cfg config.EmbeddingConfig, logger zerolog.Logger) *DecisionEngine {
	e := &DecisionEngine{
		config: cfg,
		logger: logger.With().Str("component", "DecisionEngine").Logger(),
	}
	e.rules = []decisionRule{
		{name: "vector-inline", evaluate: e.evaluateVectorInline},
		{name: "delegate-upload", evaluate: e.evaluateDelegateUpload},
		{name: "size-inline", evaluate: e.evaluateSizeInline},
		{name: "critical-asset", evaluate: e.evaluateCriticalAsset},
		{name: "multi-use", evaluate: e.evaluateMultiUse},
	}
	return e
}

// Decide evaluates the rule chain for a single asset. Video and audio assets
// bypass the chain entirely and always externalize.
func (e *DecisionEngine) Decide(rec models.AssetRecord, prof models.AssetProfile) models.AssetDecision {
	if decision, ok := e.evaluateMediaOverride(rec, prof); ok {
		return decision
	}

	for _, rule := range e.rules {
		if decision, ok := rule.evaluate(rec, prof); ok {
			e.logger.Debug().
				Str("path", rec.Path).
				Str("rule", rule.name).
				Str("decision", string(decision.Kind)).
				Msg("Decision rule fired")
			return decision
		}
	}

	return e.defaultExternalize(rec, prof)
}

// evaluateMediaOverride externalizes video and audio unconditionally; they
// are never candidates for any inline rule.
func (e *DecisionEngine) evaluateMediaOverride(rec models.AssetRecord, prof models.AssetProfile) (models.AssetDecision, bool) {
	if prof.Kind != models.MediaKindVideo && prof.Kind != models.MediaKindAudio {
		return models.AssetDecision{}, false
	}
	decision := e.newDecision(rec, prof, models.DecisionExternalize)
	decision.Reason = "media files are too large to inline"
	decision.Warnings = append(decision.Warnings, fmt.Sprintf("consider serving %s through a streaming host instead of a static file", models.FilenameOf(rec.Path)))
	return decision, true
}

// evaluateVectorInline inlines scalable vector assets as raw text regardless
// of size or usage count.
func (e *DecisionEngine) evaluateVectorInline(rec models.AssetRecord, prof models.AssetProfile) (models.AssetDecision, bool) {
	if !e.config.InlineVectorText || !models.IsVectorPath(rec.Path) {
		return models.AssetDecision{}, false
	}
	decision := e.newDecision(rec, prof, models.DecisionInlineText)
	decision.InlinePayload = string(rec.Content)
	decision.Reason = "vector formats benefit from inlining for manipulation"
	decision.Savings = models.Savings{HTTPRequests: 1, ByteDelta: 0}
	return decision, true
}

// evaluateDelegateUpload routes large single-use cacheable assets to the
// configured upload target. A missing target keeps the rule inert.
func (e *DecisionEngine) evaluateDelegateUpload(rec models.AssetRecord, prof models.AssetProfile) (models.AssetDecision, bool) {
	if !e.config.DelegateUpload || !e.config.UploadTarget.IsConfigured() {
		return models.AssetDecision{}, false
	}
	if prof.Size <= e.thresholdFor(prof.Kind) || prof.UsageCount != 1 {
		return models.AssetDecision{}, false
	}
	if e.config.RespectCacheHints && !prof.Cacheable {
		return models.AssetDecision{}, false
	}

	decision := e.newDecision(rec, prof, models.DecisionDelegateUpload)
	decision.TargetURL = e.synthesizeUploadURL(rec.Path)
	decision.Reason = "large single-use asset routed to managed storage"
	return decision, true
}

// evaluateSizeInline inlines assets under the kind-specific threshold as
// base64 data URIs. When modern transport is targeted the effective
// threshold is halved and the size re-checked against it before approving.
func (e *DecisionEngine) evaluateSizeInline(rec models.AssetRecord, prof models.AssetProfile) (models.AssetDecision, bool) {
	if !e.config.InlineDataURIs {
		return models.AssetDecision{}, false
	}

	threshold := e.thresholdFor(prof.Kind)
	if prof.Size > threshold {
		return models.AssetDecision{}, false
	}
	if e.config.ModernTransport {
		effective := int64(float64(threshold) * e.config.ModernTransportMultiplier)
		if prof.Size > effective {
			return models.AssetDecision{}, false
		}
	}

	decision := e.newDecision(rec, prof, models.DecisionInlineData)
	decision.InlinePayload = models.DataURIFor(rec)
	decision.Reason = fmt.Sprintf("%d bytes fits under the %s inline threshold", prof.Size, prof.Kind)
	decision.Savings = models.Savings{
		HTTPRequests: 1,
		ByteDelta:    int64(float64(prof.Size) * base64OverheadRatio),
	}
	return decision, true
}

// evaluateCriticalAsset inlines above-the-fold assets up to twice the
// ordinary threshold so the first paint needs no extra round trip.
func (e *DecisionEngine) evaluateCriticalAsset(rec models.AssetRecord, prof models.AssetProfile) (models.AssetDecision, bool) {
	if !prof.Critical || !e.config.InlineDataURIs {
		return models.AssetDecision{}, false
	}
	threshold := e.thresholdFor(prof.Kind)
	if prof.Size > 2*threshold {
		return models.AssetDecision{}, false
	}

	decision := e.newDecision(rec, prof, models.DecisionInlineData)
	decision.InlinePayload = models.DataURIFor(rec)
	decision.Reason = "critical above-the-fold asset inlined for faster paint"
	decision.Savings = models.Savings{
		HTTPRequests: 1,
		ByteDelta:    int64(float64(prof.Size) * base64OverheadRatio),
	}
	if prof.Size > threshold {
		decision.Warnings = append(decision.Warnings, fmt.Sprintf("%d bytes exceeds the ordinary %s inline threshold of %d", prof.Size, prof.Kind, threshold))
	}
	return decision, true
}

// evaluateMultiUse keeps assets referenced more than once external so the
// browser cache serves repeat uses.
func (e *DecisionEngine) evaluateMultiUse(rec models.AssetRecord, prof models.AssetProfile) (models.AssetDecision, bool) {
	if prof.UsageCount <= 1 {
		return models.AssetDecision{}, false
	}
	decision := e.newDecision(rec, prof, models.DecisionExternalize)
	decision.Reason = fmt.Sprintf("referenced %d times; a shared external file benefits from caching", prof.UsageCount)
	return decision, true
}

// defaultExternalize is the terminal rule: nothing else matched.
func (e *DecisionEngine) defaultExternalize(rec models.AssetRecord, prof models.AssetProfile) models.AssetDecision {
	decision := e.newDecision(rec, prof, models.DecisionExternalize)
	decision.Reason = fmt.Sprintf("%d bytes exceeds every inline threshold", prof.Size)
	if prof.Critical {
		decision.Warnings = append(decision.Warnings, "critical above-the-fold asset left external")
	}
	return decision
}

// newDecision seeds the fields every decision carries.
func (e *DecisionEngine) newDecision(rec models.AssetRecord, prof models.AssetProfile, kind models.DecisionKind) models.AssetDecision {
	return models.AssetDecision{
		Path:         rec.Path,
		Kind:         kind,
		OriginalSize: prof.Size,
		Critical:     prof.Critical,
	}
}

// thresholdFor returns the kind-specific inline threshold.
func (e *DecisionEngine) thresholdFor(kind models.MediaKind) int64 {
	switch kind {
	case models.MediaKindImage:
		return e.config.ImageInlineThreshold
	case models.MediaKindFont:
		return e.config.FontInlineThreshold
	default:
		return e.config.GenericInlineThreshold
	}
}
