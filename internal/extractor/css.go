package extractor

import (
	"regexp"
	"strings"
)

// cssURLPattern matches url(...) tokens with optional single or double
// quotes. Parens are excluded from the path class so an unterminated url( swallows
// nothing and simply fails to match.
var cssURLPattern = regexp.MustCompile(`url\(\s*['"]?([^'"()]+)['"]?\s*\)`)

// ScanCSSURLs returns every url(...) target found in a style attribute value
// or style block body, in source order, duplicates preserved.
func ScanCSSURLs(styleText string) []string {
	var paths []string
	for _, match := range cssURLPattern.FindAllStringSubmatch(styleText, -1) {
		path := strings.TrimSpace(match[1])
		if path == "" || shouldSkipPath(path) {
			continue
		}
		paths = append(paths, path)
	}
	return paths
}

// RewriteCSSURLs replaces every url(...) occurrence of oldPath inside the
// style text with a quoted url() pointing at newTarget. Other url() tokens
// and unrelated text are left untouched.
func RewriteCSSURLs(styleText, oldPath, newTarget string) string {
	return cssURLPattern.ReplaceAllStringFunc(styleText, func(token string) string {
		sub := cssURLPattern.FindStringSubmatch(token)
		if len(sub) < 2 || strings.TrimSpace(sub[1]) != oldPath {
			return token
		}
		return "url('" + newTarget + "')"
	})
}
