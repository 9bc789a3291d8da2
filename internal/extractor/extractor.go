package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/models"
	"github.com/rs/zerolog"
)

// ReferenceExtractor walks a parsed document and collects every asset
// reference together with its syntactic location, in document order and with
// duplicates preserved. It does not interpret or deduplicate paths.
type ReferenceExtractor struct {
	logger zerolog.Logger
}

// NewReferenceExtractor creates a new ReferenceExtractor instance
func NewReferenceExtractor(logger zerolog.Logger) *ReferenceExtractor {
	return &ReferenceExtractor{
		logger: logger.With().Str("component", "ReferenceExtractor").Logger(),
	}
}

// Extract performs a single pass over the document tree collecting image
// source attributes, srcset entries, inline style attributes and style block
// bodies. Malformed url() syntax is skipped, never an error.
func (re *ReferenceExtractor) Extract(doc *goquery.Document) []models.AssetReference {
	var refs []models.AssetReference

	doc.Find("*").Each(func(i int, s *goquery.Selection) {
		if len(s.Nodes) == 0 {
			return
		}
		node := s.Nodes[0]

		switch goquery.NodeName(s) {
		case "img":
			if src, ok := s.Attr("src"); ok {
				if path := normalizeRefPath(src); path != "" {
					refs = append(refs, models.AssetReference{
						Path: path,
						Kind: models.ReferenceKindImageSrc,
						Node: node,
						Attr: "src",
					})
				}
			}
			refs = append(refs, re.extractSrcset(s)...)
		case "source":
			refs = append(refs, re.extractSrcset(s)...)
		case "style":
			for _, path := range ScanCSSURLs(s.Text()) {
				refs = append(refs, models.AssetReference{
					Path: path,
					Kind: models.ReferenceKindStyleBlock,
					Node: node,
				})
			}
			return
		}

		if styleAttr, ok := s.Attr("style"); ok {
			for _, path := range ScanCSSURLs(styleAttr) {
				refs = append(refs, models.AssetReference{
					Path: path,
					Kind: models.ReferenceKindStyleAttr,
					Node: node,
					Attr: "style",
				})
			}
		}
	})

	re.logger.Debug().Int("reference_count", len(refs)).Msg("Extracted asset references")
	return refs
}

// extractSrcset collects one reference per srcset candidate URL.
func (re *ReferenceExtractor) extractSrcset(s *goquery.Selection) []models.AssetReference {
	srcset, ok := s.Attr("srcset")
	if !ok || strings.TrimSpace(srcset) == "" {
		return nil
	}

	var refs []models.AssetReference
	for _, candidate := range ParseSrcsetURLs(srcset) {
		if path := normalizeRefPath(candidate); path != "" {
			refs = append(refs, models.AssetReference{
				Path: path,
				Kind: models.ReferenceKindSrcset,
				Node: s.Nodes[0],
				Attr: "srcset",
			})
		}
	}
	return refs
}

// ParseSrcsetURLs parses candidate URLs out of a srcset attribute value,
// dropping the width/density descriptors.
func ParseSrcsetURLs(srcset string) []string {
	var urls []string
	for _, part := range strings.Split(srcset, ",") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) > 0 {
			urls = append(urls, fields[0])
		}
	}
	return urls
}

// normalizeRefPath trims a raw attribute value and filters out schemes that
// can never correspond to a fetched asset buffer.
func normalizeRefPath(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || shouldSkipPath(trimmed) {
		return ""
	}
	return trimmed
}

// shouldSkipPath reports whether the path uses a scheme that is already
// embedded or not fetchable. Skipping data: keeps extraction idempotent on
// documents that have already been mutated.
func shouldSkipPath(path string) bool {
	skipPrefixes := []string{"data:", "mailto:", "tel:", "javascript:", "#"}
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
