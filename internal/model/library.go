package model

import (
	"sort"
)

// Library holds every track of one exported library file.
//
// Tracks are sorted by ID (numerically when IDs are numbers) so every pass
// over a library visits tracks in the same order.
type Library struct {
	// Path is the file the library was read from.
	Path string

	// Tracks contains all track records, including incomplete ones.
	Tracks []Track
}

// NewLibrary creates a Library and sorts its tracks by ID.
func NewLibrary(path string, tracks []Track) *Library {
	sort.SliceStable(tracks, func(i, j int) bool {
		return lessID(tracks[i].ID, tracks[j].ID)
	})
	return &Library{Path: path, Tracks: tracks}
}

// Names returns the set of track names. Tracks without a usable name are
// left out.
func (l *Library) Names() map[string]struct{} {
	names := make(map[string]struct{}, len(l.Tracks))
	for _, t := range l.Tracks {
		if name, ok := t.Name.Get(); ok {
			names[name] = struct{}{}
		}
	}
	return names
}

// lessID orders numeric IDs by value ("9" < "10") and falls back to plain
// string order otherwise.
func lessID(a, b string) bool {
	if isDigits(a) && isDigits(b) && len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
