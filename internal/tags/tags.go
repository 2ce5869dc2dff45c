// Package tags reads embedded audio tag metadata from track files.
package tags

import (
	"fmt"
	"os"

	"github.com/dhowden/tag"
)

// Metadata is the subset of embedded tag data the tags mode displays.
type Metadata struct {
	Title  string
	Artist string
	Album  string
	Format string
}

// Probe reads the tag metadata of the audio file at path. Unlike track
// construction this touches the filesystem: a missing file or an
// unreadable tag block is an error the caller reports per track.
func Probe(path string) (Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return Metadata{}, fmt.Errorf("read tags: %w", err)
	}

	return Metadata{
		Title:  m.Title(),
		Artist: m.Artist(),
		Album:  m.Album(),
		Format: string(m.Format()),
	}, nil
}
