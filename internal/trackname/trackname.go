// Package trackname decomposes track filenames into the structured
// metadata they encode: track type, take index, descriptive title and
// extension.
package trackname

import (
	"path"
	"regexp"
	"strconv"
	"strings"
)

// Untitled is the sentinel name used when a pattern matches but the
// filename carries no title of its own.
const Untitled = "<Untitled>"

// Info holds the metadata decomposed from a single track filename.
type Info struct {
	Type TrackType `json:"track_type"`
	// Index is the take/session ordinal embedded in the filename, not
	// the track's position in any playlist. 0 when the pattern carries
	// none.
	Index int `json:"index"`
	// Name is the descriptive title: verbatim from the filename when a
	// pattern supplies one, Untitled when a pattern matches without one,
	// the whole stem when nothing matches.
	Name string    `json:"name"`
	Ext  Extension `json:"extn"`
}

// A recognizer pairs a compiled pattern with the extraction of an Info
// stub from its submatches. Recognizers are tried in order, the first
// match wins, and matches are never combined or scored.
type recognizer struct {
	re      *regexp.Regexp
	extract func(m []string) Info
}

// Compiled once at startup; the patterns are pure and stateless after
// construction. Append new naming schemes here without reordering the
// existing ones.
var recognizers = []recognizer{
	// Violin layering takes: v01-title, v05L-title, plus the legacy
	// long-form prefixes vln_layering-01 and vln_improv_01. The single
	// variant letter after the digits is discarded. A missing title
	// yields the Untitled sentinel.
	{
		re: regexp.MustCompile(`^(?:v|vln_layering-|vln_improv_)(\d+)([a-zA-Z]?)(?:-(.+))?$`),
		extract: func(m []string) Info {
			return Info{
				Type:  TypeViolinLayering,
				Index: atoiOrZero(m[1]),
				Name:  orUntitled(m[3]),
			}
		},
	},
	// MuseScore renders: 20170802-02-Title. The date is not retained
	// here; it is separately available from the track's parent
	// directory.
	{
		re: regexp.MustCompile(`^(\d{8})([a-zA-Z]?)-(\d+)-(.+)$`),
		extract: func(m []string) Info {
			return Info{
				Type:  TypeMuseScore,
				Index: atoiOrZero(m[3]),
				Name:  m[4],
			}
		},
	},
}

// Decompose classifies a filename stem (extension already stripped).
// It is total: when no recognizer matches, the whole stem becomes the
// name of an unknown-type track.
func Decompose(stem string) Info {
	for _, r := range recognizers {
		if m := r.re.FindStringSubmatch(stem); m != nil {
			return r.extract(m)
		}
	}
	return Info{Type: TypeUnknown, Index: 0, Name: stem}
}

// Parse splits filename into stem and extension, decomposes the stem
// and classifies the extension. A filename without an extension is an
// error: a finished Info never carries the placeholder extension.
func Parse(filename string) (Info, error) {
	ext := path.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)

	e, err := ClassifyExtension(strings.TrimPrefix(ext, "."))
	if err != nil {
		return Info{}, err
	}

	info := Decompose(stem)
	info.Ext = e
	return info, nil
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func orUntitled(s string) string {
	if s == "" {
		return Untitled
	}
	return s
}
