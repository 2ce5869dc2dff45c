package xspf

// Playlist is the ordered collection of tracks from one document.
// Track order always equals document order.
type Playlist struct {
	Title  string  `json:"title,omitempty"`
	Tracks []Track `json:"tracks"`
	// Skipped counts track elements dropped during parsing because
	// their location was missing or unusable.
	Skipped int `json:"-"`
}

// Len returns the number of tracks.
func (p *Playlist) Len() int { return len(p.Tracks) }

// TotalDuration folds the stored track durations into one total.
// Tracks without a duration do not contribute; uncounted reports how
// many were left out of the sum.
func (p *Playlist) TotalDuration() (total Duration, uncounted int) {
	for _, t := range p.Tracks {
		if t.Duration == nil {
			uncounted++
			continue
		}
		total = total.Add(*t.Duration)
	}
	return total, uncounted
}

// TrackIndexWidth returns the digit width used to zero-pad 1-based
// track ordinals in generated filenames: 2 up to 99 tracks, 3 up to
// 999, 4 beyond. This mirrors the fixed-width naming convention of
// bulk export, it is not a general log10.
func (p *Playlist) TrackIndexWidth() int {
	switch n := len(p.Tracks); {
	case n <= 99:
		return 2
	case n <= 999:
		return 3
	default:
		return 4
	}
}
