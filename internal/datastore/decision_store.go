package datastore

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/config"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/errorwrapper"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/models"
	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"
)

// DecisionStore persists one Parquet file of decision records per processing
// pass, for telemetry and later analysis.
type DecisionStore struct {
	config *config.StorageConfig
	logger zerolog.Logger
}

// DecisionStoreBuilder provides a fluent interface for creating DecisionStore
type DecisionStoreBuilder struct {
	config *config.StorageConfig
	logger zerolog.Logger
}

// NewDecisionStoreBuilder creates a new DecisionStoreBuilder
func NewDecisionStoreBuilder(logger zerolog.Logger) *DecisionStoreBuilder {
	return &DecisionStoreBuilder{
		logger: logger.With().Str("component", "DecisionStore").Logger(),
	}
}

// WithStorageConfig sets the storage configuration
func (b *DecisionStoreBuilder) WithStorageConfig(cfg *config.StorageConfig) *DecisionStoreBuilder {
	b.config = cfg
	return b
}

// Build creates a new DecisionStore instance
func (b *DecisionStoreBuilder) Build() (*DecisionStore, error) {
	if b.config == nil {
		return nil, errorwrapper.NewValidationError("config", b.config, "storage config cannot be nil")
	}
	if b.config.ParquetBasePath == "" {
		return nil, errorwrapper.NewValidationError("parquet_base_path", b.config.ParquetBasePath, "base path required for decision store")
	}

	return &DecisionStore{
		config: b.config,
		logger: b.logger,
	}, nil
}

// Append writes one record per decided asset for the given session. Records
// are ordered by asset path so identical inputs produce identical files.
func (ds *DecisionStore) Append(ctx context.Context, sessionID string, decisions map[string]models.AssetDecision) error {
	if len(decisions) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	paths := make([]string, 0, len(decisions))
	for path := range decisions {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	now := time.Now()
	records := make([]DecisionRecord, 0, len(paths))
	for _, path := range paths {
		records = append(records, TransformDecision(sessionID, decisions[path], now))
	}

	filePath := filepath.Join(ds.config.ParquetBasePath, "decisions-"+sessionID+".parquet")
	if err := ds.writeRecords(filePath, records); err != nil {
		return errorwrapper.WrapErrorf(err, "failed to write decision history to '%s'", filePath)
	}

	ds.logger.Info().
		Str("file", filePath).
		Int("records", len(records)).
		Msg("Persisted decision history")
	return nil
}

// writeRecords creates the Parquet file and writes all rows.
func (ds *DecisionStore) writeRecords(filePath string, records []DecisionRecord) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return errorwrapper.WrapError(err, "failed to create history directory")
	}

	file, err := os.Create(filePath)
	if err != nil {
		return errorwrapper.WrapError(err, "failed to create history file")
	}
	defer file.Close()

	writer := parquet.NewWriter(file, parquet.SchemaOf(DecisionRecord{}), ds.compressionOption())
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return errorwrapper.WrapError(err, "failed to write record")
		}
	}
	return writer.Close()
}

// compressionOption maps the configured codec string to a writer option.
func (ds *DecisionStore) compressionOption() parquet.WriterOption {
	switch strings.ToLower(ds.config.CompressionCodec) {
	case "snappy":
		return parquet.Compression(&parquet.Snappy)
	case "gzip":
		return parquet.Compression(&parquet.Gzip)
	case "zstd":
		return parquet.Compression(&parquet.Zstd)
	case "", "none":
		return parquet.Compression(&parquet.Uncompressed)
	default:
		ds.logger.Warn().Str("codec", ds.config.CompressionCodec).Msg("Unsupported compression codec, defaulting to uncompressed")
		return parquet.Compression(&parquet.Uncompressed)
	}
}
