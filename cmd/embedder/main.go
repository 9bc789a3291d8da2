package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/config"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/datastore"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/embedder"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/logger"
)

func main() {
	flags := ParseFlags()

	cfg, err := config.LoadConfig(flags.ConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load config from '%s': %v", flags.ConfigFile, err)
	}

	zLogger, err := logger.New(cfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	htmlContent, err := os.ReadFile(flags.InputFile)
	if err != nil {
		zLogger.Fatal().Err(err).Str("file", flags.InputFile).Msg("Could not read input document")
	}

	assets := map[string][]byte{}
	if flags.AssetsDir != "" {
		assets, err = loadAssets(flags.AssetsDir)
		if err != nil {
			zLogger.Fatal().Err(err).Str("dir", flags.AssetsDir).Msg("Could not load asset files")
		}
	}

	builder := embedder.NewEmbedderBuilder(zLogger).WithConfig(cfg)
	if cfg.StorageConfig.ParquetBasePath != "" {
		store, err := datastore.NewDecisionStoreBuilder(zLogger).
			WithStorageConfig(&cfg.StorageConfig).
			Build()
		if err != nil {
			zLogger.Fatal().Err(err).Msg("Could not initialize decision store")
		}
		builder = builder.WithDecisionStore(store)
	}

	emb, err := builder.Build()
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Could not build embedder")
	}

	result, err := emb.Process(context.Background(), htmlContent, assets)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Processing failed")
	}

	if flags.OutputFile != "" {
		if err := os.WriteFile(flags.OutputFile, []byte(result.Document), 0o644); err != nil {
			zLogger.Fatal().Err(err).Str("file", flags.OutputFile).Msg("Could not write output document")
		}
	} else {
		fmt.Println(result.Document)
	}

	printSummary(result)
}

// loadAssets reads every file under the assets directory, keyed by its
// slash-separated path relative to the directory root. A leading-slash
// variant is registered too, so absolute document references resolve.
func loadAssets(dir string) (map[string][]byte, error) {
	assets := make(map[string][]byte)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		assets[key] = content
		assets["/"+key] = content
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assets, nil
}

// printSummary writes the human-facing pass summary to stderr so the
// document on stdout stays clean.
func printSummary(result *embedder.Result) {
	report := result.Report
	fmt.Fprintf(os.Stderr, "Assets decided: %d (inlined %d, externalized %d, delegated %d)\n",
		report.TotalAssets, report.InlinedCount, report.ExternalizedCount, report.DelegatedCount)
	fmt.Fprintf(os.Stderr, "Bytes: %d before, %d after; requests saved: %d (%d%%)\n",
		report.BytesBefore, report.BytesAfter, report.RequestsSaved, report.ReductionPercent)
	for _, rec := range report.Recommendations {
		fmt.Fprintf(os.Stderr, "  - %s\n", rec)
	}
}
