package mutator

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/extractor"
	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func applyDecisions(t *testing.T, html string, decisions map[string]models.AssetDecision) (string, MutationStats) {
	t.Helper()
	doc := parseDoc(t, html)
	refs := extractor.NewReferenceExtractor(zerolog.Nop()).Extract(doc)
	stats := NewDocumentMutator(zerolog.Nop()).Apply(doc, refs, decisions)
	out, err := doc.Html()
	require.NoError(t, err)
	return out, stats
}

func TestApply_InlineDataRewritesEveryOccurrence(t *testing.T) {
	html := `<html><head>
		<style>.a { background: url('pic.png'); }</style>
	</head><body>
		<img src="pic.png">
		<div style="background:url(pic.png)">x</div>
	</body></html>`

	dataURI := "data:image/png;base64,AAAA"
	out, stats := applyDecisions(t, html, map[string]models.AssetDecision{
		"pic.png": {
			Path:          "pic.png",
			Kind:          models.DecisionInlineData,
			OriginalSize:  1000,
			InlinePayload: dataURI,
			Savings:       models.Savings{HTTPRequests: 1, ByteDelta: 370},
		},
	})

	assert.NotContains(t, out, `"pic.png"`)
	assert.NotContains(t, out, "url('pic.png')")
	assert.NotContains(t, out, "url(pic.png)")
	assert.Equal(t, 3, strings.Count(out, dataURI), "attribute, style attribute and style block all rewritten")

	assert.Equal(t, 1, stats.InlinedCount, "distinct paths counted once")
	assert.Equal(t, int64(1000), stats.BytesBefore)
	assert.Equal(t, int64(1370), stats.BytesAfter)
	assert.Equal(t, 1, stats.RequestsSaved)
}

func TestApply_DelegateRewritesToTargetURL(t *testing.T) {
	html := `<html><body><img src="photos/big.jpg"></body></html>`
	target := "https://cms.example.com/wp-content/uploads/big.jpg"

	out, stats := applyDecisions(t, html, map[string]models.AssetDecision{
		"photos/big.jpg": {
			Path:         "photos/big.jpg",
			Kind:         models.DecisionDelegateUpload,
			OriginalSize: 200000,
			TargetURL:    target,
		},
	})

	assert.Contains(t, out, `src="`+target+`"`)
	assert.NotContains(t, out, "photos/big.jpg")
	assert.Equal(t, 1, stats.DelegatedCount)
}

func TestApply_VectorSubstitutionReplacesElement(t *testing.T) {
	html := `<html><body><p>before</p><img src="logo.svg" alt="logo"><p>after</p></body></html>`
	payload := `<svg viewBox="0 0 10 10"><circle cx="5" cy="5" r="4"></circle></svg>`

	out, stats := applyDecisions(t, html, map[string]models.AssetDecision{
		"logo.svg": {
			Path:          "logo.svg",
			Kind:          models.DecisionInlineText,
			OriginalSize:  512,
			InlinePayload: payload,
			Savings:       models.Savings{HTTPRequests: 1},
		},
	})

	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "circle")
	assert.NotContains(t, out, "<img", "the referencing element itself is replaced")
	assert.Contains(t, out, "<p>before</p>")
	assert.Contains(t, out, "<p>after</p>")
	assert.Equal(t, 1, stats.InlinedCount)
}

func TestApply_ExternalizeLeavesReferenceUntouched(t *testing.T) {
	html := `<html><body><img src="big.jpg"></body></html>`

	out, stats := applyDecisions(t, html, map[string]models.AssetDecision{
		"big.jpg": {Path: "big.jpg", Kind: models.DecisionExternalize, OriginalSize: 500000},
	})

	assert.Contains(t, out, `src="big.jpg"`)
	assert.Equal(t, 1, stats.ExternalizedCount)
	assert.Equal(t, int64(500000), stats.BytesBefore)
	assert.Equal(t, int64(500000), stats.BytesAfter)
}

func TestApply_UndecidedPathsUntouched(t *testing.T) {
	html := `<html><body><img src="nobuffer.png"></body></html>`
	out, stats := applyDecisions(t, html, map[string]models.AssetDecision{})

	assert.Contains(t, out, `src="nobuffer.png"`)
	assert.Equal(t, MutationStats{}, stats)
}

func TestApply_SrcsetCandidateRewritten(t *testing.T) {
	html := `<html><body><img src="a.png" srcset="a.png 480w, b.png 960w"></body></html>`
	dataURI := "data:image/png;base64,QQQQ"

	out, _ := applyDecisions(t, html, map[string]models.AssetDecision{
		"a.png": {Path: "a.png", Kind: models.DecisionInlineData, OriginalSize: 10, InlinePayload: dataURI, Savings: models.Savings{HTTPRequests: 1}},
	})

	assert.Contains(t, out, dataURI+" 480w", "descriptor preserved")
	assert.Contains(t, out, "b.png 960w", "other candidates untouched")
}

func TestApply_IdempotentOnMutatedDocument(t *testing.T) {
	html := `<html><head>
		<style>.a { background: url(pic.png); }</style>
	</head><body><img src="pic.png"></body></html>`

	dataURI := "data:image/png;base64,AAAA"
	decisions := map[string]models.AssetDecision{
		"pic.png": {Path: "pic.png", Kind: models.DecisionInlineData, OriginalSize: 10, InlinePayload: dataURI, Savings: models.Savings{HTTPRequests: 1}},
	}

	first, _ := applyDecisions(t, html, decisions)

	// A second pass over the mutated document finds no references to the
	// original path and leaves the inlined payloads intact.
	doc := parseDoc(t, first)
	refs := extractor.NewReferenceExtractor(zerolog.Nop()).Extract(doc)
	assert.Empty(t, refs, "data URIs are not extracted as references")

	stats := NewDocumentMutator(zerolog.Nop()).Apply(doc, refs, decisions)
	second, err := doc.Html()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, MutationStats{}, stats)
}

func TestRewriteSrcset(t *testing.T) {
	tests := []struct {
		name     string
		srcset   string
		oldPath  string
		target   string
		expected string
	}{
		{"single candidate", "a.png 480w", "a.png", "X", "X 480w"},
		{"second candidate", "a.png 480w, b.png 960w", "b.png", "X", "a.png 480w, X 960w"},
		{"no descriptor", "a.png", "a.png", "X", "X"},
		{"no match", "a.png 480w", "c.png", "X", "a.png 480w"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rewriteSrcset(tt.srcset, tt.oldPath, tt.target); got != tt.expected {
				t.Errorf("rewriteSrcset(%q) = %q, expected %q", tt.srcset, got, tt.expected)
			}
		})
	}
}
