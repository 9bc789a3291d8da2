package models

import "testing"

func TestMediaKindOf(t *testing.T) {
	tests := []struct {
		path     string
		expected MediaKind
	}{
		{"logo.png", MediaKindImage},
		{"photo.JPG", MediaKindImage},
		{"img/pic.webp?v=2", MediaKindImage},
		{"fonts/body.woff2", MediaKindFont},
		{"type.TTF", MediaKindFont},
		{"intro.mp4", MediaKindVideo},
		{"song.mp3", MediaKindAudio},
		{"doc.pdf", MediaKindOther},
		{"no-extension", MediaKindOther},
		{"", MediaKindOther},
	}

	for _, tt := range tests {
		if got := MediaKindOf(tt.path); got != tt.expected {
			t.Errorf("MediaKindOf(%q) = %s, expected %s", tt.path, got, tt.expected)
		}
	}
}

func TestMIMETypeOf(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"a.png", "image/png"},
		{"b.jpg", "image/jpeg"},
		{"c.svg", "image/svg+xml"},
		{"d.woff2", "font/woff2"},
		{"e.unknown", "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := MIMETypeOf(tt.path); got != tt.expected {
			t.Errorf("MIMETypeOf(%q) = %s, expected %s", tt.path, got, tt.expected)
		}
	}
}

func TestExtensionOf_StripsQueryAndFragment(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"a.png", ".png"},
		{"a.png?v=1", ".png"},
		{"a.png#frag", ".png"},
		{"dir/a.WEBP?x=1#y", ".webp"},
		{"noext", ""},
	}

	for _, tt := range tests {
		if got := ExtensionOf(tt.path); got != tt.expected {
			t.Errorf("ExtensionOf(%q) = %q, expected %q", tt.path, got, tt.expected)
		}
	}
}

func TestIsVectorPath(t *testing.T) {
	if !IsVectorPath("icon.svg") {
		t.Error("svg is a vector format")
	}
	if IsVectorPath("icon.svgz") {
		t.Error("svgz is compressed, not inlinable text")
	}
	if IsVectorPath("icon.png") {
		t.Error("png is not a vector format")
	}
}

func TestDataURIFor(t *testing.T) {
	rec := AssetRecord{Path: "dot.png", Content: []byte{1, 2, 3}}
	expected := "data:image/png;base64,AQID"
	if got := DataURIFor(rec); got != expected {
		t.Errorf("DataURIFor = %q, expected %q", got, expected)
	}
}
