package trackname

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoExtension reports a filename with no extension at all. This is
// distinct from an extension we simply don't recognize: a missing
// extension means the filename cannot describe a finished track.
var ErrNoExtension = errors.New("filename has no extension")

// Extension is a tagged variant over the recognized media encodings
// plus an open "unknown" case that keeps the original text. The zero
// value is a construction placeholder and never appears in a finished
// Info. Two unknown extensions compare equal when their texts do.
type Extension struct {
	kind extKind
	raw  string // original text, kept verbatim for unknown extensions
}

type extKind int

const (
	extPlaceholder extKind = iota
	extMP3
	extFLAC
	extOGG
	extM4A
	extMP4
	extMKV
	extUnknown
)

var knownExtensions = map[string]extKind{
	"mp3":  extMP3,
	"flac": extFLAC,
	"ogg":  extOGG,
	"m4a":  extM4A,
	"mp4":  extMP4,
	"mkv":  extMKV,
}

var extNames = map[extKind]string{
	extMP3:  "mp3",
	extFLAC: "flac",
	extOGG:  "ogg",
	extM4A:  "m4a",
	extMP4:  "mp4",
	extMKV:  "mkv",
}

// ClassifyExtension matches raw against the recognized encodings,
// case-insensitively. Anything else becomes an unknown extension
// carrying the original text with its casing intact. An empty string
// is ErrNoExtension, never an unknown.
func ClassifyExtension(raw string) (Extension, error) {
	if raw == "" {
		return Extension{}, ErrNoExtension
	}
	if kind, ok := knownExtensions[strings.ToLower(raw)]; ok {
		return Extension{kind: kind}, nil
	}
	return Extension{kind: extUnknown, raw: raw}, nil
}

// UnknownExtension builds the open variant directly.
func UnknownExtension(raw string) Extension {
	return Extension{kind: extUnknown, raw: raw}
}

// Known reports whether e is one of the closed set of encodings.
func (e Extension) Known() bool {
	return e.kind != extPlaceholder && e.kind != extUnknown
}

// IsPlaceholder reports whether e is still the construction placeholder.
func (e Extension) IsPlaceholder() bool {
	return e.kind == extPlaceholder
}

// String renders the extension: the canonical lowercase name for a
// recognized encoding, the original text verbatim for an unknown one,
// and "" for the placeholder.
func (e Extension) String() string {
	if e.kind == extUnknown {
		return e.raw
	}
	return extNames[e.kind]
}

// MarshalJSON renders the extension as its string form.
func (e Extension) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}
