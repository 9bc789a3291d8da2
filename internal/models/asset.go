package models

import (
	"encoding/base64"

	"golang.org/x/net/html"
)

// ReferenceKind identifies the syntactic location an asset reference was
// extracted from, so the mutator can rewrite it in place.
type ReferenceKind string

const (
	ReferenceKindImageSrc   ReferenceKind = "img-src"
	ReferenceKindSrcset     ReferenceKind = "srcset"
	ReferenceKindStyleAttr  ReferenceKind = "style-attr"
	ReferenceKindStyleBlock ReferenceKind = "style-block"
)

// AssetReference is one occurrence of an asset path inside a document.
// Multiple references may share the same path. References are immutable once
// extracted and live for a single processing pass.
type AssetReference struct {
	Path string
	Kind ReferenceKind
	Node *html.Node // owning element for attribute refs, the <style> element for block refs
	Attr string     // attribute holding the reference, empty for style blocks
}

// AssetRecord is the caller-supplied byte buffer for one asset path. The
// engine holds a read-only view; the buffer is owned by the caller.
type AssetRecord struct {
	Path    string
	Content []byte
}

// Size returns the byte length of the asset content.
func (r AssetRecord) Size() int64 {
	return int64(len(r.Content))
}

// Kind returns the media kind derived from the record's file extension.
func (r AssetRecord) Kind() MediaKind {
	return MediaKindOf(r.Path)
}

// DataURIFor encodes a record's content as a base64 data URI with the MIME
// type derived from its extension.
func DataURIFor(r AssetRecord) string {
	return "data:" + MIMETypeOf(r.Path) + ";base64," + base64.StdEncoding.EncodeToString(r.Content)
}
