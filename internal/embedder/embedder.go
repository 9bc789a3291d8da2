package embedder

import (
	"bytes"
	"context"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/config"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/datastore"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/engine"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/errorwrapper"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/extractor"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/models"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/mutator"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/profiler"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/reporter"
	"github.com/rs/zerolog"
)

// Result carries everything one processing pass produces for downstream
// collaborators: the mutated document, the decision map, and the aggregate
// report.
type Result struct {
	SessionID string
	Document  string
	Decisions map[string]models.AssetDecision
	Stats     mutator.MutationStats
	Report    reporter.EmbeddingReport
}

// Embedder ties the pipeline together: extract references, profile assets,
// decide embeddings, mutate the document, and report.
type Embedder struct {
	config    *config.Config
	logger    zerolog.Logger
	extractor *extractor.ReferenceExtractor
	profiler  *profiler.AssetProfiler
	engine    *engine.DecisionEngine
	mutator   *mutator.DocumentMutator
	reporter  *reporter.Reporter
	store     *datastore.DecisionStore // optional history sink
}

// EmbedderBuilder provides a fluent interface for creating Embedder instances
type EmbedderBuilder struct {
	config *config.Config
	logger zerolog.Logger
	store  *datastore.DecisionStore
}

// NewEmbedderBuilder creates a new EmbedderBuilder instance
func NewEmbedderBuilder(logger zerolog.Logger) *EmbedderBuilder {
	return &EmbedderBuilder{
		logger: logger.With().Str("module", "Embedder").Logger(),
	}
}

// WithConfig sets the application configuration
func (eb *EmbedderBuilder) WithConfig(cfg *config.Config) *EmbedderBuilder {
	eb.config = cfg
	return eb
}

// WithDecisionStore sets an optional decision history store
func (eb *EmbedderBuilder) WithDecisionStore(store *datastore.DecisionStore) *EmbedderBuilder {
	eb.store = store
	return eb
}

// Build creates a new Embedder instance with the configured settings
func (eb *EmbedderBuilder) Build() (*Embedder, error) {
	if eb.config == nil {
		return nil, errorwrapper.NewValidationError("config", nil, "embedder config cannot be nil")
	}

	embeddingCfg := eb.config.EmbeddingConfig
	return &Embedder{
		config:    eb.config,
		logger:    eb.logger,
		extractor: extractor.NewReferenceExtractor(eb.logger),
		profiler:  profiler.NewAssetProfiler(embeddingCfg, eb.logger),
		engine:    engine.NewDecisionEngine(embeddingCfg, eb.logger),
		mutator:   mutator.NewDocumentMutator(eb.logger),
		reporter:  reporter.NewReporter(embeddingCfg, eb.logger),
		store:     eb.store,
	}, nil
}

// Process runs one pass over a document and its fetched asset buffers. The
// pipeline itself cannot fail; errors surface only from document parsing and
// the optional history sink.
func (e *Embedder) Process(ctx context.Context, htmlContent []byte, assets map[string][]byte) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlContent))
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse HTML content")
	}

	sessionID := uuid.NewString()
	logger := e.logger.With().Str("session_id", sessionID).Logger()

	records := make(map[string]models.AssetRecord, len(assets))
	for path, content := range assets {
		records[path] = models.AssetRecord{Path: path, Content: content}
	}

	refs := e.extractor.Extract(doc)
	profiles := e.profiler.Profile(refs, records)
	decisions := e.decideAll(records, profiles)
	stats := e.mutator.Apply(doc, refs, decisions)

	document, err := doc.Html()
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to serialize mutated document")
	}

	report := e.reporter.Generate(decisions, stats)
	logger.Info().
		Int("assets", report.TotalAssets).
		Int("inlined", report.InlinedCount).
		Int("externalized", report.ExternalizedCount).
		Int("delegated", report.DelegatedCount).
		Int("requests_saved", report.RequestsSaved).
		Msg("Processing pass complete")

	if e.store != nil {
		if err := e.store.Append(ctx, sessionID, decisions); err != nil {
			// History is telemetry; a failed write never fails the pass.
			logger.Warn().Err(err).Msg("Failed to persist decision history")
		}
	}

	return &Result{
		SessionID: sessionID,
		Document:  document,
		Decisions: decisions,
		Stats:     stats,
		Report:    report,
	}, nil
}

// decideAll evaluates the decision engine for every profiled path. Each
// decision is a pure function of its own asset, so evaluation runs
// concurrently and the results are merged afterward.
func (e *Embedder) decideAll(records map[string]models.AssetRecord, profiles map[string]models.AssetProfile) map[string]models.AssetDecision {
	decisions := make(map[string]models.AssetDecision, len(profiles))

	var wg sync.WaitGroup
	var mu sync.Mutex
	for path, profile := range profiles {
		wg.Add(1)
		go func(path string, profile models.AssetProfile) {
			defer wg.Done()
			decision := e.engine.Decide(records[path], profile)
			mu.Lock()
			decisions[path] = decision
			mu.Unlock()
		}(path, profile)
	}
	wg.Wait()

	return decisions
}
