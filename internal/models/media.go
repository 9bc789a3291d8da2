package models

import (
	"path"
	"strings"
)

// MediaKind classifies an asset by its file extension.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindFont  MediaKind = "font"
	MediaKindVideo MediaKind = "video"
	MediaKindAudio MediaKind = "audio"
	MediaKindOther MediaKind = "other"
)

// mediaKindByExtension is the fixed extension lookup table. Unknown
// extensions classify as MediaKindOther.
var mediaKindByExtension = map[string]MediaKind{
	".png":   MediaKindImage,
	".jpg":   MediaKindImage,
	".jpeg":  MediaKindImage,
	".gif":   MediaKindImage,
	".webp":  MediaKindImage,
	".svg":   MediaKindImage,
	".ico":   MediaKindImage,
	".bmp":   MediaKindImage,
	".avif":  MediaKindImage,
	".woff":  MediaKindFont,
	".woff2": MediaKindFont,
	".ttf":   MediaKindFont,
	".otf":   MediaKindFont,
	".eot":   MediaKindFont,
	".mp4":   MediaKindVideo,
	".webm":  MediaKindVideo,
	".mov":   MediaKindVideo,
	".avi":   MediaKindVideo,
	".mkv":   MediaKindVideo,
	".m4v":   MediaKindVideo,
	".mp3":   MediaKindAudio,
	".wav":   MediaKindAudio,
	".ogg":   MediaKindAudio,
	".flac":  MediaKindAudio,
	".aac":   MediaKindAudio,
	".m4a":   MediaKindAudio,
}

// mimeTypeByExtension maps extensions to the MIME type used when building
// data URIs. Extensions absent from the map fall back to
// application/octet-stream.
var mimeTypeByExtension = map[string]string{
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".webp":  "image/webp",
	".svg":   "image/svg+xml",
	".ico":   "image/x-icon",
	".bmp":   "image/bmp",
	".avif":  "image/avif",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".otf":   "font/otf",
	".eot":   "application/vnd.ms-fontobject",
}

// cacheableExtensions is the allow-list of extensions browsers and CDNs
// conventionally cache long-term.
var cacheableExtensions = map[string]bool{
	".png":   true,
	".jpg":   true,
	".jpeg":  true,
	".gif":   true,
	".webp":  true,
	".svg":   true,
	".ico":   true,
	".avif":  true,
	".woff":  true,
	".woff2": true,
	".ttf":   true,
	".otf":   true,
	".mp4":   true,
	".webm":  true,
	".mp3":   true,
	".wav":   true,
}

// ExtensionOf returns the lowercase file extension of an asset path with any
// query string or fragment stripped first.
func ExtensionOf(assetPath string) string {
	if idx := strings.IndexAny(assetPath, "?#"); idx != -1 {
		assetPath = assetPath[:idx]
	}
	return strings.ToLower(path.Ext(assetPath))
}

// FilenameOf returns the final path segment of an asset path with any query
// string or fragment stripped.
func FilenameOf(assetPath string) string {
	if idx := strings.IndexAny(assetPath, "?#"); idx != -1 {
		assetPath = assetPath[:idx]
	}
	return path.Base(assetPath)
}

// MediaKindOf derives the media kind for an asset path from its extension.
func MediaKindOf(assetPath string) MediaKind {
	if kind, ok := mediaKindByExtension[ExtensionOf(assetPath)]; ok {
		return kind
	}
	return MediaKindOther
}

// MIMETypeOf returns the MIME type for an asset path.
func MIMETypeOf(assetPath string) string {
	if mime, ok := mimeTypeByExtension[ExtensionOf(assetPath)]; ok {
		return mime
	}
	return "application/octet-stream"
}

// IsCacheablePath reports whether the path's extension is in the long-cache
// allow-list.
func IsCacheablePath(assetPath string) bool {
	return cacheableExtensions[ExtensionOf(assetPath)]
}

// IsVectorPath reports whether the path denotes a scalable vector format
// whose raw text can be inlined directly into markup.
func IsVectorPath(assetPath string) bool {
	return ExtensionOf(assetPath) == ".svg"
}
