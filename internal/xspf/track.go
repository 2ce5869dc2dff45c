package xspf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/llehouerou/xspf/internal/trackname"
)

const fileURIPrefix = "file:///"

// Classified construction failures. Playlist building skips tracks
// that fail with any of these instead of aborting the document.
var (
	// ErrUnsupportedURI reports a location that does not use the
	// file:/// scheme.
	ErrUnsupportedURI = errors.New("unsupported URI: must start with file:///")
	// ErrNoLocation reports a track element without a location child.
	ErrNoLocation = errors.New("track element has no location")
	// ErrShortPath reports a path with fewer than two segments, which
	// leaves no room for the date-directory + filename split.
	ErrShortPath = errors.New("path has fewer than two segments")
)

// decodeEscapes undoes the percent escapes that show up in practice in
// the playlists this tool handles: space, common punctuation and a few
// UTF-8 accented/quote sequences. A fixed allowlist, not general
// percent-decoding; sequences outside it pass through verbatim.
var decodeEscapes = strings.NewReplacer(
	"%20", " ",
	"%21", "!",
	"%22", `"`,
	"%23", "#",
	"%24", "$",
	"%26", "&",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2B", "+",
	"%2C", ",",
	"%3B", ";",
	"%3D", "=",
	"%40", "@",
	"%5B", "[",
	"%5D", "]",
	"%C3%A0", "à",
	"%C3%A7", "ç",
	"%C3%A8", "è",
	"%C3%A9", "é",
	"%C3%AA", "ê",
	"%E2%80%98", "‘",
	"%E2%80%99", "’",
	"%E2%80%9C", "“",
	"%E2%80%9D", "”",
	"%25", "%",
)

// Track is one playlist entry. Built once from a path or URI and never
// mutated afterwards, except for the one-time duration assignment
// during document parsing.
type Track struct {
	// Path is the full percent-decoded path from the document.
	Path string `json:"path"`
	// Filename is the last path segment.
	Filename string `json:"filename"`
	// Date is the parent directory label, which names the recording
	// session date in this library layout.
	Date string `json:"date"`
	// Duration in milliseconds as stored in the document; nil when the
	// document carries none.
	Duration *Duration `json:"duration"`
	// Info is the metadata decomposed from Filename.
	Info trackname.Info `json:"info"`
}

// TrackFromPath builds a track from a (possibly percent-escaped)
// filesystem path. No filesystem access happens here; whether the file
// exists is the caller's concern.
func TrackFromPath(p string) (Track, error) {
	decoded := decodeEscapes.Replace(p)

	segs := strings.Split(decoded, "/")
	if len(segs) < 2 {
		return Track{}, fmt.Errorf("%w: %q", ErrShortPath, decoded)
	}
	filename := segs[len(segs)-1]
	date := segs[len(segs)-2]

	info, err := trackname.Parse(filename)
	if err != nil {
		return Track{}, fmt.Errorf("decompose %q: %w", filename, err)
	}

	return Track{
		Path:     decoded,
		Filename: filename,
		Date:     date,
		Info:     info,
	}, nil
}

// TrackFromURI builds a track from a playlist location URI.
func TrackFromURI(uri string) (Track, error) {
	if !strings.HasPrefix(uri, fileURIPrefix) {
		return Track{}, fmt.Errorf("%w: %q", ErrUnsupportedURI, uri)
	}
	return TrackFromPath(strings.TrimPrefix(uri, fileURIPrefix))
}

// trackFromElement builds a track from one decoded <track> element.
// A missing location is an error; a missing or unparsable duration is
// not, the duration just stays unset.
func trackFromElement(el trackElement) (Track, error) {
	if el.Location == nil {
		return Track{}, ErrNoLocation
	}

	t, err := TrackFromURI(strings.TrimSpace(*el.Location))
	if err != nil {
		return Track{}, err
	}

	if el.Duration != nil {
		if ms, err := strconv.ParseInt(strings.TrimSpace(*el.Duration), 10, 64); err == nil {
			d := Duration(ms)
			t.Duration = &d
		}
	}
	return t, nil
}
