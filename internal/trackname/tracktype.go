package trackname

import "encoding/json"

// TrackType classifies a track by the naming scheme its filename follows.
type TrackType int

const (
	// TypeUnknown is the fallback when no recognizer matches.
	TypeUnknown TrackType = iota
	// TypeViolinLayering covers "v<NN>" takes and the legacy
	// vln_layering / vln_improv prefixes.
	TypeViolinLayering
	// TypeMuseScore covers "<YYYYMMDD>-<NN>-<title>" MuseScore renders.
	TypeMuseScore
	// TypePiano is reserved; no recognizer produces it yet.
	TypePiano
	// TypeVoice is reserved; no recognizer produces it yet.
	TypeVoice
)

// String returns the full classification name.
func (t TrackType) String() string {
	switch t {
	case TypeViolinLayering:
		return "ViolinLayering"
	case TypeMuseScore:
		return "MuseScore"
	case TypePiano:
		return "Piano"
	case TypeVoice:
		return "Voice"
	default:
		return "Unknown"
	}
}

// Abbrev returns the compact abbreviation used in listings.
func (t TrackType) Abbrev() string {
	switch t {
	case TypeViolinLayering:
		return "VL"
	case TypeMuseScore:
		return "MS"
	case TypePiano:
		return "P"
	case TypeVoice:
		return "V"
	default:
		return "?"
	}
}

// FileAbbrev returns an abbreviation safe for use in generated
// filenames. Only the unknown type differs from Abbrev, since "?" is
// not a filename-safe character.
func (t TrackType) FileAbbrev() string {
	if t == TypeUnknown {
		return "t"
	}
	return t.Abbrev()
}

// MarshalJSON renders the classification name as a JSON string.
func (t TrackType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}
