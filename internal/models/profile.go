package models

// RecommendedAction is the profiler's preliminary classification of an
// asset. The decision engine consumes it as a hint; the final AssetDecision
// may differ.
type RecommendedAction string

const (
	RecommendInline   RecommendedAction = "inline"
	RecommendExternal RecommendedAction = "external"
	RecommendUpload   RecommendedAction = "upload"
)

// AssetProfile is the derived view of one distinct asset path that has both
// at least one reference and a caller-supplied byte buffer. Profiles are
// created fresh each processing pass and never mutated after creation.
type AssetProfile struct {
	Path              string
	Kind              MediaKind
	Size              int64
	UsageCount        int
	Critical          bool
	Cacheable         bool
	RecommendedAction RecommendedAction
	RecommendReason   string
}
