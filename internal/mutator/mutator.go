package mutator

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/extractor"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/net/html"
)

// MutationStats are the per-category running totals accumulated while
// decisions are applied. The reporter consumes them alongside the decision
// map.
type MutationStats struct {
	InlinedCount      int
	ExternalizedCount int
	DelegatedCount    int
	BytesBefore       int64
	BytesAfter        int64
	InlinedBytes      int64
	RequestsSaved     int
}

// DocumentMutator applies asset decisions back into the document tree,
// rewriting every occurrence of a decided path uniformly. It must run
// serialized per document; independent documents may be mutated
// concurrently.
type DocumentMutator struct {
	logger zerolog.Logger
}

// NewDocumentMutator creates a new DocumentMutator instance
func NewDocumentMutator(logger zerolog.Logger) *DocumentMutator {
	return &DocumentMutator{
		logger: logger.With().Str("component", "DocumentMutator").Logger(),
	}
}

// Apply rewrites each reference according to its path's decision and returns
// the accumulated totals. References without a decision are left untouched.
// Re-applying to an already-mutated document is a no-op: the rewritten
// references no longer carry the original paths.
func (dm *DocumentMutator) Apply(doc *goquery.Document, refs []models.AssetReference, decisions map[string]models.AssetDecision) MutationStats {
	stats := MutationStats{}
	counted := make(map[string]bool)

	for _, ref := range refs {
		decision, ok := decisions[ref.Path]
		if !ok {
			continue
		}

		if !counted[ref.Path] {
			counted[ref.Path] = true
			accumulate(&stats, decision)
		}

		switch decision.Kind {
		case models.DecisionInlineData:
			dm.rewriteReference(ref, decision.InlinePayload)
		case models.DecisionDelegateUpload:
			dm.rewriteReference(ref, decision.TargetURL)
		case models.DecisionInlineText:
			dm.substituteVector(ref, decision.InlinePayload)
		case models.DecisionExternalize:
			// Left as-is.
		}
	}

	dm.logger.Debug().
		Int("inlined", stats.InlinedCount).
		Int("externalized", stats.ExternalizedCount).
		Int("delegated", stats.DelegatedCount).
		Msg("Applied asset decisions")
	return stats
}

// rewriteReference replaces the reference's URL token with the given target,
// respecting the syntactic location it was extracted from.
func (dm *DocumentMutator) rewriteReference(ref models.AssetReference, target string) {
	switch ref.Kind {
	case models.ReferenceKindImageSrc:
		setNodeAttr(ref.Node, ref.Attr, target)
	case models.ReferenceKindSrcset:
		current := nodeAttr(ref.Node, "srcset")
		setNodeAttr(ref.Node, "srcset", rewriteSrcset(current, ref.Path, target))
	case models.ReferenceKindStyleAttr:
		current := nodeAttr(ref.Node, "style")
		setNodeAttr(ref.Node, "style", extractor.RewriteCSSURLs(current, ref.Path, target))
	case models.ReferenceKindStyleBlock:
		setElementText(ref.Node, extractor.RewriteCSSURLs(elementText(ref.Node), ref.Path, target))
	}
}

// substituteVector replaces the referencing element itself with the parsed
// vector markup. Style-based references keep their url() form untouched:
// raw markup cannot stand in for a CSS url token.
func (dm *DocumentMutator) substituteVector(ref models.AssetReference, payload string) {
	if ref.Kind != models.ReferenceKindImageSrc && ref.Kind != models.ReferenceKindSrcset {
		return
	}

	parent := ref.Node.Parent
	if parent == nil {
		return
	}

	nodes, err := html.ParseFragment(strings.NewReader(payload), parent)
	if err != nil || len(nodes) == 0 {
		dm.logger.Warn().
			Str("path", ref.Path).
			Err(err).
			Msg("Failed to parse vector payload, leaving reference untouched")
		return
	}

	for _, n := range nodes {
		parent.InsertBefore(n, ref.Node)
	}
	parent.RemoveChild(ref.Node)
}

// accumulate folds one distinct decision into the running totals.
func accumulate(stats *MutationStats, decision models.AssetDecision) {
	stats.BytesBefore += decision.OriginalSize
	stats.RequestsSaved += decision.Savings.HTTPRequests

	switch decision.Kind {
	case models.DecisionInlineData:
		stats.InlinedCount++
		stats.InlinedBytes += decision.OriginalSize + decision.Savings.ByteDelta
		stats.BytesAfter += decision.OriginalSize + decision.Savings.ByteDelta
	case models.DecisionInlineText:
		stats.InlinedCount++
		stats.InlinedBytes += decision.OriginalSize
		stats.BytesAfter += decision.OriginalSize
	case models.DecisionDelegateUpload:
		stats.DelegatedCount++
		stats.BytesAfter += decision.OriginalSize
	case models.DecisionExternalize:
		stats.ExternalizedCount++
		stats.BytesAfter += decision.OriginalSize
	}
}

// rewriteSrcset replaces the URL field of every srcset candidate matching
// oldPath while preserving the width/density descriptors.
func rewriteSrcset(srcset, oldPath, target string) string {
	parts := strings.Split(srcset, ",")
	for i, part := range parts {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) == 0 || fields[0] != oldPath {
			continue
		}
		fields[0] = target
		parts[i] = strings.Join(fields, " ")
	}
	return strings.Join(parts, ", ")
}

// nodeAttr returns the value of an attribute on a node, or empty.
func nodeAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// setNodeAttr sets or adds an attribute on a node.
func setNodeAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// elementText concatenates the text children of an element.
func elementText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

// setElementText replaces the children of an element with a single text node.
func setElementText(n *html.Node, text string) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}
