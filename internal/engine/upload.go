package engine

import (
	"strings"

	"github.com/nunyabiz757/website-cloner-pro-sub001/internal/models"
)

// filenamePlaceholder is the token substituted with the asset filename in
// the upload target's path template.
const filenamePlaceholder = "{filename}"

// synthesizeUploadURL builds the managed-storage URL for a delegated asset
// from the upload target descriptor and the asset filename. Only string
// synthesis happens here; the actual upload is an external responsibility.
func (e *DecisionEngine) synthesizeUploadURL(assetPath string) string {
	template := e.config.UploadTarget.PathTemplate
	if template == "" {
		template = "/" + filenamePlaceholder
	}

	rendered := strings.ReplaceAll(template, filenamePlaceholder, models.FilenameOf(assetPath))
	if !strings.HasPrefix(rendered, "/") {
		rendered = "/" + rendered
	}

	return strings.TrimRight(e.config.UploadTarget.BaseURL, "/") + rendered
}
