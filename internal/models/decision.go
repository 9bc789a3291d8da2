package models

// DecisionKind is the final embedding decision for one asset path.
type DecisionKind string

const (
	// DecisionInlineData embeds the asset as a base64 data URI.
	DecisionInlineData DecisionKind = "inline-data"
	// DecisionInlineText embeds a vector asset's raw markup directly.
	DecisionInlineText DecisionKind = "inline-text"
	// DecisionExternalize leaves the asset as an externally linked file.
	DecisionExternalize DecisionKind = "externalize"
	// DecisionDelegateUpload routes the asset to a managed upload target.
	DecisionDelegateUpload DecisionKind = "delegate-upload"
)

// Savings estimates what a decision changes for the rendered page: HTTP
// requests eliminated and the document payload growth in bytes.
type Savings struct {
	HTTPRequests int
	ByteDelta    int64
}

// AssetDecision is the engine's verdict for one distinct asset path. It is a
// pure function of (AssetRecord, AssetProfile, EmbeddingConfig): identical
// inputs always produce an identical decision.
type AssetDecision struct {
	Path          string
	Kind          DecisionKind
	OriginalSize  int64
	InlinePayload string // data URI or raw vector text, set for inline decisions
	TargetURL     string // synthesized upload URL, set for delegate decisions
	Savings       Savings
	Warnings      []string
	Reason        string
	Critical      bool // carried from the profile for reporting
}
