package analysis

import (
	"sort"

	"github.com/handiism/spirotunes/internal/logging"
	"github.com/handiism/spirotunes/internal/model"
)

// Duplicate is a track name that occurs more than once with the same
// duration.
type Duplicate struct {
	Name  string
	Count int
}

type trackEntry struct {
	seconds int
	count   int
}

// Duplicates finds repeated tracks in lib.
//
// The first track seen for a name (in ID order) sets the reference
// duration. Every track with that name whose duration truncates to the same
// whole second counts as an occurrence, the reference included. Names seen
// at least twice are returned, sorted by name.
func Duplicates(lib *model.Library) []Duplicate {
	index := make(map[string]*trackEntry)

	for _, t := range lib.Tracks {
		name, ok := t.Name.Get()
		if !ok {
			skipped(t, "name", t.Name.State)
			continue
		}
		seconds, ok := t.DurationSeconds()
		if !ok {
			skipped(t, "total time", t.TotalTime.State)
			continue
		}

		e, seen := index[name]
		if !seen {
			index[name] = &trackEntry{seconds: seconds, count: 1}
			continue
		}
		if seconds == e.seconds {
			e.count++
		}
	}

	var dups []Duplicate
	for name, e := range index {
		if e.count > 1 {
			dups = append(dups, Duplicate{Name: name, Count: e.count})
		}
	}
	sort.Slice(dups, func(i, j int) bool { return dups[i].Name < dups[j].Name })
	return dups
}

// skipped logs why a track was left out. Absent fields are routine in
// library exports; malformed ones are worth a closer look.
func skipped(t model.Track, field string, state model.FieldState) {
	if state == model.FieldMalformed {
		logging.Debug("track %s: %s is malformed, skipping", t.ID, field)
	}
}
