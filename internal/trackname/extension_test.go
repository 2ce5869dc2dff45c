package trackname

import (
	"errors"
	"testing"
)

func TestClassifyExtensionKnown(t *testing.T) {
	for _, raw := range []string{"mp3", "flac", "ogg", "m4a", "mp4", "mkv"} {
		ext, err := ClassifyExtension(raw)
		if err != nil {
			t.Fatalf("ClassifyExtension(%q) error = %v", raw, err)
		}
		if !ext.Known() {
			t.Errorf("ClassifyExtension(%q).Known() = false", raw)
		}
		if ext.String() != raw {
			t.Errorf("ClassifyExtension(%q).String() = %q", raw, ext.String())
		}
	}
}

func TestClassifyExtensionCaseInsensitive(t *testing.T) {
	tests := []struct {
		upper string
		lower string
	}{
		{"MP3", "mp3"},
		{"Flac", "flac"},
		{"OGG", "ogg"},
		{"M4A", "m4a"},
		{"Mp4", "mp4"},
		{"MKV", "mkv"},
	}

	for _, tt := range tests {
		a, err := ClassifyExtension(tt.upper)
		if err != nil {
			t.Fatalf("ClassifyExtension(%q) error = %v", tt.upper, err)
		}
		b, err := ClassifyExtension(tt.lower)
		if err != nil {
			t.Fatalf("ClassifyExtension(%q) error = %v", tt.lower, err)
		}
		if a != b {
			t.Errorf("ClassifyExtension(%q) != ClassifyExtension(%q)", tt.upper, tt.lower)
		}
	}
}

func TestClassifyExtensionUnknown(t *testing.T) {
	// Matching is case-insensitive, but the unknown payload keeps the
	// original casing and round-trips through String unchanged.
	for _, raw := range []string{"AIFF", "wav", "Opus", "webm"} {
		ext, err := ClassifyExtension(raw)
		if err != nil {
			t.Fatalf("ClassifyExtension(%q) error = %v", raw, err)
		}
		if ext.Known() {
			t.Errorf("ClassifyExtension(%q).Known() = true", raw)
		}
		if ext != UnknownExtension(raw) {
			t.Errorf("ClassifyExtension(%q) = %v, want Unknown(%q)", raw, ext, raw)
		}
		if ext.String() != raw {
			t.Errorf("ClassifyExtension(%q).String() = %q, want %q", raw, ext.String(), raw)
		}
	}
}

func TestClassifyExtensionEmpty(t *testing.T) {
	_, err := ClassifyExtension("")
	if !errors.Is(err, ErrNoExtension) {
		t.Errorf("ClassifyExtension(\"\") error = %v, want ErrNoExtension", err)
	}
}

func TestClassifyExtensionIdempotent(t *testing.T) {
	// Classifying a rendered extension yields the same classification.
	for _, raw := range []string{"FLAC", "mp3", "AIFF"} {
		first, err := ClassifyExtension(raw)
		if err != nil {
			t.Fatalf("ClassifyExtension(%q) error = %v", raw, err)
		}
		second, err := ClassifyExtension(first.String())
		if err != nil {
			t.Fatalf("ClassifyExtension(%q) error = %v", first.String(), err)
		}
		if first != second {
			t.Errorf("reclassifying %q: got %v, want %v", first.String(), second, first)
		}
	}
}

func TestExtensionEquality(t *testing.T) {
	if UnknownExtension("aiff") != UnknownExtension("aiff") {
		t.Error("equal unknown payloads should compare equal")
	}
	if UnknownExtension("aiff") == UnknownExtension("AIFF") {
		t.Error("unknown payloads with different casing should differ")
	}
}
