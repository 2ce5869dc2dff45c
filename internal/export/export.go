// Package export copies and converts playlist tracks into ordered,
// consistently named files for bulk transfer.
package export

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/llehouerou/xspf/internal/xspf"
)

// DefaultBitrate is the ffmpeg CBR bitrate used when none is configured.
const DefaultBitrate = "320k"

// Exporter handles copying and converting files for export.
type Exporter struct {
	// Bitrate is the ffmpeg -b:a value for conversions, e.g. "320k".
	Bitrate string
}

// NewExporter creates an Exporter. An empty bitrate falls back to
// DefaultBitrate.
func NewExporter(bitrate string) *Exporter {
	if bitrate == "" {
		bitrate = DefaultBitrate
	}
	return &Exporter{Bitrate: bitrate}
}

// Result describes the outcome of exporting a single track.
type Result struct {
	Src       string
	Dst       string
	Bytes     int64
	Converted bool
	Skipped   bool // destination already existed
	Err       error
}

// NeedsConversion returns true if the file extension requires conversion.
func NeedsConversion(ext string) bool {
	return strings.EqualFold(ext, ".flac")
}

// CopyFile copies a file from src to dst and reports the bytes written.
// Creates parent directories if needed. Skips if destination already
// exists (returns 0 bytes).
func (e *Exporter) CopyFile(src, dst string) (int64, error) {
	// Check if destination exists (skip if so)
	if _, err := os.Stat(dst); err == nil {
		return 0, nil
	}

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return 0, fmt.Errorf("create directory: %w", err)
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("open source: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("create destination: %w", err)
	}
	defer dstFile.Close()

	n, err := io.Copy(dstFile, srcFile)
	if err != nil {
		// Clean up partial file
		os.Remove(dst)
		return 0, fmt.Errorf("copy: %w", err)
	}

	return n, dstFile.Close()
}

// ConvertToMP3 converts a FLAC file to MP3 using ffmpeg with a CBR
// preset at the configured bitrate.
func (e *Exporter) ConvertToMP3(src, dst string) error {
	// Check if destination exists
	if _, err := os.Stat(dst); err == nil {
		return nil // Already exists, skip
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	cmd := exec.Command("ffmpeg",
		"-i", src,
		"-codec:a", "libmp3lame",
		"-b:a", e.Bitrate,
		"-map_metadata", "0", // Preserve tags
		"-id3v2_version", "3",
		"-y", // Overwrite temp files
		dst,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		// Clean up partial file
		os.Remove(dst)
		return fmt.Errorf("ffmpeg conversion failed: %w\n%s", err, string(output))
	}

	return nil
}

// ExportPlaylist copies (or converts) every track of pl into destDir,
// naming files with zero-padded playlist ordinals so they sort in
// playlist order. Per-track failures land in the results; they do not
// abort the rest of the export.
func (e *Exporter) ExportPlaylist(pl *xspf.Playlist, destDir string, convert bool) []Result {
	width := pl.TrackIndexWidth()
	results := make([]Result, 0, pl.Len())

	for i, t := range pl.Tracks {
		dst := filepath.Join(destDir, Name(t.Info, i+1, width))
		r := Result{Src: t.Path, Dst: dst}

		if convert && NeedsConversion(filepath.Ext(t.Path)) {
			r.Dst = strings.TrimSuffix(dst, filepath.Ext(dst)) + ".mp3"
			r.Converted = true
			r.Err = e.ConvertToMP3(t.Path, r.Dst)
		} else {
			var existed bool
			if _, err := os.Stat(r.Dst); err == nil {
				existed = true
			}
			r.Bytes, r.Err = e.CopyFile(t.Path, r.Dst)
			r.Skipped = existed && r.Err == nil
		}

		results = append(results, r)
	}

	return results
}
