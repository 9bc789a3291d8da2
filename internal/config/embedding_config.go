package config

// UploadTargetConfig describes where delegated assets are routed. The engine
// only synthesizes URLs from it; the actual upload is performed by an
// external pipeline.
type UploadTargetConfig struct {
	BaseURL      string `json:"base_url,omitempty" yaml:"base_url,omitempty" validate:"omitempty,url"`
	PathTemplate string `json:"path_template,omitempty" yaml:"path_template,omitempty"`
}

// IsConfigured reports whether the target is usable for URL synthesis.
// Delegation must not fire without a base URL.
func (u UploadTargetConfig) IsConfigured() bool {
	return u.BaseURL != ""
}

// EmbeddingConfig carries the thresholds and feature flags that drive the
// decision engine. It is supplied once per run and never mutated mid-run;
// every component receives it by value.
type EmbeddingConfig struct {
	GenericInlineThreshold int64 `json:"generic_inline_threshold,omitempty" yaml:"generic_inline_threshold,omitempty" validate:"min=0"`
	ImageInlineThreshold   int64 `json:"image_inline_threshold,omitempty" yaml:"image_inline_threshold,omitempty" validate:"min=0"`
	FontInlineThreshold    int64 `json:"font_inline_threshold,omitempty" yaml:"font_inline_threshold,omitempty" validate:"min=0"`

	// ModernTransportMultiplier scales the effective inline threshold when
	// ModernTransport is enabled.
	ModernTransportMultiplier float64 `json:"modern_transport_multiplier,omitempty" yaml:"modern_transport_multiplier,omitempty" validate:"gt=0,lte=1"`

	InlineDataURIs    bool `json:"inline_data_uris" yaml:"inline_data_uris"`
	InlineVectorText  bool `json:"inline_vector_text" yaml:"inline_vector_text"`
	ModernTransport   bool `json:"modern_transport" yaml:"modern_transport"`
	RespectCacheHints bool `json:"respect_cache_hints" yaml:"respect_cache_hints"`
	DelegateUpload    bool `json:"delegate_upload" yaml:"delegate_upload"`

	UploadTarget UploadTargetConfig `json:"upload_target,omitempty" yaml:"upload_target,omitempty"`
}

// NewDefaultEmbeddingConfig creates an EmbeddingConfig with default values.
func NewDefaultEmbeddingConfig() EmbeddingConfig {
	return EmbeddingConfig{
		GenericInlineThreshold:    DefaultGenericInlineThreshold,
		ImageInlineThreshold:      DefaultImageInlineThreshold,
		FontInlineThreshold:       DefaultFontInlineThreshold,
		ModernTransportMultiplier: DefaultModernTransportMultiplier,
		InlineDataURIs:            true,
		InlineVectorText:          true,
		ModernTransport:           false,
		RespectCacheHints:         true,
		DelegateUpload:            false,
		UploadTarget: UploadTargetConfig{
			PathTemplate: DefaultUploadPathTemplate,
		},
	}
}
