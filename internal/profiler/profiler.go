package profiler

import (
	"fmt"
	"strings"

	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/config"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"
)

// criticalImageCount is the number of leading document-order image
// references treated as above-the-fold candidates. Tunable heuristic, not a
// law; the rest of the pipeline only sees the resulting Critical flag.
const criticalImageCount = 5

// criticalRegionMarkers are substrings of class or id attributes that tag an
// ancestor as a header/hero/banner layout region.
var criticalRegionMarkers = []string{"hero", "banner"}

// AssetProfiler derives one AssetProfile per distinct path that has both at
// least one reference and a caller-supplied byte buffer. Paths missing
// either side are silently excluded: they cannot be decided.
type AssetProfiler struct {
	config config.EmbeddingConfig
	logger zerolog.Logger
}

// NewAssetProfiler creates a new AssetProfiler instance
func NewAssetProfiler(cfg config.EmbeddingConfig, logger zerolog.Logger) *AssetProfiler {
	return &AssetProfiler{
		config: cfg,
		logger: logger.With().Str("component", "AssetProfiler").Logger(),
	}
}

// Profile builds the path-to-profile map from the extracted references and
// the fetched asset records.
func (ap *AssetProfiler) Profile(refs []models.AssetReference, records map[string]models.AssetRecord) map[string]models.AssetProfile {
	usage := make(map[string]int)
	firstImageRef := make(map[string]models.AssetReference)
	var imageOrder []string

	for _, ref := range refs {
		usage[ref.Path]++
		if ref.Kind == models.ReferenceKindImageSrc || ref.Kind == models.ReferenceKindSrcset {
			if _, seen := firstImageRef[ref.Path]; !seen {
				firstImageRef[ref.Path] = ref
				imageOrder = append(imageOrder, ref.Path)
			}
		}
	}

	leadingImages := make(map[string]bool)
	for i, path := range imageOrder {
		if i >= criticalImageCount {
			break
		}
		leadingImages[path] = true
	}

	profiles := make(map[string]models.AssetProfile)
	for path, count := range usage {
		record, ok := records[path]
		if !ok {
			continue
		}

		profile := models.AssetProfile{
			Path:       path,
			Kind:       record.Kind(),
			Size:       record.Size(),
			UsageCount: count,
			Cacheable:  models.IsCacheablePath(path),
		}

		if ref, ok := firstImageRef[path]; ok {
			profile.Critical = leadingImages[path] || inCriticalRegion(ref.Node)
		}

		profile.RecommendedAction, profile.RecommendReason = ap.recommend(profile)
		profiles[path] = profile
	}

	ap.logger.Debug().
		Int("reference_count", len(refs)).
		Int("profile_count", len(profiles)).
		Msg("Profiled assets")
	return profiles
}

// recommend produces the preliminary classification consumed by, but
// distinct from, the final per-asset decision.
func (ap *AssetProfiler) recommend(profile models.AssetProfile) (models.RecommendedAction, string) {
	switch profile.Kind {
	case models.MediaKindVideo, models.MediaKindAudio:
		return models.RecommendExternal, "media files stream best from their own URL"
	}

	threshold := ap.thresholdFor(profile.Kind)
	if profile.Size <= threshold {
		return models.RecommendInline, fmt.Sprintf("%d bytes fits the %s inline threshold", profile.Size, profile.Kind)
	}
	if profile.Cacheable && profile.UsageCount == 1 {
		return models.RecommendUpload, "large single-use cacheable asset suits managed storage"
	}
	return models.RecommendExternal, fmt.Sprintf("%d bytes exceeds the %s inline threshold", profile.Size, profile.Kind)
}

// thresholdFor returns the kind-specific inline threshold.
func (ap *AssetProfiler) thresholdFor(kind models.MediaKind) int64 {
	switch kind {
	case models.MediaKindImage:
		return ap.config.ImageInlineThreshold
	case models.MediaKindFont:
		return ap.config.FontInlineThreshold
	default:
		return ap.config.GenericInlineThreshold
	}
}

// inCriticalRegion walks the ancestors of a reference node looking for a
// header element or a hero/banner tagged region.
func inCriticalRegion(node *html.Node) bool {
	for n := node; n != nil; n = n.Parent {
		if n.Type != html.ElementNode {
			continue
		}
		if n.Data == "header" {
			return true
		}
		for _, attr := range n.Attr {
			if attr.Key != "class" && attr.Key != "id" {
				continue
			}
			value := strings.ToLower(attr.Val)
			for _, marker := range criticalRegionMarkers {
				if strings.Contains(value, marker) {
					return true
				}
			}
		}
	}
	return false
}
