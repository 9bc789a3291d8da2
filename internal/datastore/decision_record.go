package datastore

import (
	"strings"
	"time"

	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/models"
)

// DecisionRecord defines the schema for storing asset decisions in Parquet
// format. Timestamps are stored as int64 UnixMilli.
type DecisionRecord struct {
	SessionID     string  `parquet:"session_id"`
	AssetPath     string  `parquet:"asset_path"`
	MediaKind     string  `parquet:"media_kind"`
	Decision      string  `parquet:"decision"`
	OriginalSize  int64   `parquet:"original_size"`
	ByteDelta     int64   `parquet:"byte_delta"`
	RequestsSaved int32   `parquet:"requests_saved"`
	Critical      bool    `parquet:"critical"`
	Reason        *string `parquet:"reason,optional"`
	Warnings      *string `parquet:"warnings,optional"`
	RecordedAt    int64   `parquet:"recorded_at"`
}

// TransformDecision converts an AssetDecision into its Parquet row form.
func TransformDecision(sessionID string, decision models.AssetDecision, recordedAt time.Time) DecisionRecord {
	return DecisionRecord{
		SessionID:     sessionID,
		AssetPath:     decision.Path,
		MediaKind:     string(models.MediaKindOf(decision.Path)),
		Decision:      string(decision.Kind),
		OriginalSize:  decision.OriginalSize,
		ByteDelta:     decision.Savings.ByteDelta,
		RequestsSaved: int32(decision.Savings.HTTPRequests),
		Critical:      decision.Critical,
		Reason:        stringPtrOrNil(decision.Reason),
		Warnings:      stringPtrOrNil(strings.Join(decision.Warnings, "; ")),
		RecordedAt:    recordedAt.UnixMilli(),
	}
}

// stringPtrOrNil returns nil for empty strings so optional columns stay null.
func stringPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
