package config

// Default embedding thresholds and flags. See NewDefaultEmbeddingConfig.
const (
	DefaultGenericInlineThreshold = 10240
	DefaultImageInlineThreshold   = 8192
	DefaultFontInlineThreshold    = 50000

	// DefaultModernTransportMultiplier scales inline thresholds down when
	// the target transport multiplexes requests cheaply.
	DefaultModernTransportMultiplier = 0.5

	DefaultUploadPathTemplate = "/wp-content/uploads/{filename}"
)

// Default storage settings for the decision history store.
const (
	DefaultCompressionCodec = "zstd"
)

// Default logging settings.
const (
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3
)
