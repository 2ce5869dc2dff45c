package xspf

import "fmt"

// Duration is a track duration in milliseconds, as stored in XSPF
// documents. The JSON form is the raw integer while String renders a
// "mm:ss" timecode; the two representations are deliberately distinct.
type Duration int64

// Millis returns the raw millisecond count.
func (d Duration) Millis() int64 { return int64(d) }

// Seconds converts to seconds.
func (d Duration) Seconds() float64 { return float64(d) / 1000.0 }

// Minutes converts to minutes.
func (d Duration) Minutes() float64 { return d.Seconds() / 60.0 }

// Timecode renders "mm:ss" with the sub-second remainder truncated.
// Minutes are not wrapped: a 100 minute track renders as "100:00".
func (d Duration) Timecode() string {
	total := int64(d) / 1000
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// Add combines two durations.
func (d Duration) Add(other Duration) Duration { return d + other }

// AddMillis adds a raw millisecond count.
func (d Duration) AddMillis(ms int64) Duration { return d + Duration(ms) }

func (d Duration) String() string { return d.Timecode() }
