// Package render writes the list, json, summary, tags and export-report
// output of the CLI modes.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/xspf/internal/export"
	"github.com/llehouerou/xspf/internal/tags"
	"github.com/llehouerou/xspf/internal/xspf"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	typeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// List writes one track path per line: the list mode contract.
func List(w io.Writer, pl *xspf.Playlist) error {
	for _, t := range pl.Tracks {
		if _, err := fmt.Fprintln(w, t.Path); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes the playlist as indented JSON mirroring the data model.
func JSON(w io.Writer, pl *xspf.Playlist) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(pl)
}

// Summary writes a human-readable overview of the playlist: title, one
// line per track and the duration totals. With styled=true the output
// is colored for terminal display.
func Summary(w io.Writer, pl *xspf.Playlist, styled bool) error {
	style := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	if pl.Title != "" {
		if _, err := fmt.Fprintln(w, style(titleStyle, pl.Title)); err != nil {
			return err
		}
	}

	width := pl.TrackIndexWidth()
	for i, t := range pl.Tracks {
		timecode := "--:--"
		if t.Duration != nil {
			timecode = t.Duration.Timecode()
		}
		line := fmt.Sprintf("%0*d  %s  %02d  %-40s %s  %s",
			width, i+1,
			style(typeStyle, fmt.Sprintf("[%2s]", t.Info.Type.Abbrev())),
			t.Info.Index,
			t.Info.Name,
			timecode,
			style(mutedStyle, t.Date),
		)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	total, uncounted := pl.TotalDuration()
	footer := fmt.Sprintf("%d track(s), total %s", pl.Len(), total.Timecode())
	if uncounted > 0 {
		footer += fmt.Sprintf(" (%d without duration)", uncounted)
	}
	_, err := fmt.Fprintln(w, style(mutedStyle, footer))
	return err
}

// Tags writes one line of embedded tag metadata per track, probing each
// track file on disk. Per-track probe failures are reported inline and
// counted in the returned total; they do not stop the listing.
func Tags(w io.Writer, pl *xspf.Playlist, styled bool) (failed int, err error) {
	style := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	for _, t := range pl.Tracks {
		m, probeErr := tags.Probe(t.Path)
		if probeErr != nil {
			failed++
			line := fmt.Sprintf("%s: %v", t.Filename, probeErr)
			if _, err := fmt.Fprintln(w, style(errorStyle, line)); err != nil {
				return failed, err
			}
			continue
		}

		fields := make([]string, 0, 3)
		for _, f := range []string{m.Artist, m.Album, m.Title} {
			if f != "" {
				fields = append(fields, f)
			}
		}
		line := fmt.Sprintf("%s  %s  %s",
			t.Filename,
			style(typeStyle, fmt.Sprintf("[%s]", m.Format)),
			strings.Join(fields, " / "),
		)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return failed, err
		}
	}
	return failed, nil
}

// ExportReport summarizes export results: per-file failures, then the
// counts and the humanized byte total.
func ExportReport(w io.Writer, results []export.Result, styled bool) error {
	style := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	var exported, skipped, failed int
	var bytes uint64
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			line := fmt.Sprintf("%s: %v", r.Src, r.Err)
			if _, err := fmt.Fprintln(w, style(errorStyle, line)); err != nil {
				return err
			}
		case r.Skipped:
			skipped++
		default:
			exported++
			bytes += uint64(r.Bytes)
		}
	}

	line := fmt.Sprintf("%d exported (%s), %d skipped, %d failed",
		exported, humanize.IBytes(bytes), skipped, failed)
	_, err := fmt.Fprintln(w, style(mutedStyle, line))
	return err
}
