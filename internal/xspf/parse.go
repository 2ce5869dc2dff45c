// Package xspf reads XSPF playlist documents and models their tracks.
//
// Only the playlist title and each track's location and duration are
// inspected; the rest of the XSPF vocabulary is ignored.
package xspf

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

type xmlDocument struct {
	XMLName xml.Name       `xml:"playlist"`
	Title   *string        `xml:"title"`
	Tracks  []trackElement `xml:"trackList>track"`
}

// trackElement is the raw, undecoded view of one <track> element.
// nil fields mean the child element was absent.
type trackElement struct {
	Location *string `xml:"location"`
	Duration *string `xml:"duration"`
}

// Parse reads an XSPF document and builds the playlist. An unparsable
// document is a hard failure; individual malformed track entries are
// skipped so one bad element does not lose the rest of the playlist.
func Parse(r io.Reader) (*Playlist, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return fromDocument(doc), nil
}

// ParseFile parses the XSPF document at path.
func ParseFile(path string) (*Playlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open playlist: %w", err)
	}
	defer f.Close()

	pl, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pl, nil
}

// fromDocument builds the playlist in document order, dropping track
// elements whose location is missing or unusable.
func fromDocument(doc xmlDocument) *Playlist {
	pl := &Playlist{}
	if doc.Title != nil {
		pl.Title = *doc.Title
	}
	for _, el := range doc.Tracks {
		t, err := trackFromElement(el)
		if err != nil {
			pl.Skipped++
			continue
		}
		pl.Tracks = append(pl.Tracks, t)
	}
	return pl
}
