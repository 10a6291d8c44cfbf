package analysis

import (
	"errors"
	"sort"

	"github.com/handiism/spirotunes/internal/model"
)

// ErrNoLibraries is returned when Common is called without input.
var ErrNoLibraries = errors.New("no libraries given")

// Common returns the names present in every library, sorted.
func Common(libs ...*model.Library) ([]string, error) {
	if len(libs) == 0 {
		return nil, ErrNoLibraries
	}

	common := libs[0].Names()
	for _, lib := range libs[1:] {
		names := lib.Names()
		for name := range common {
			if _, ok := names[name]; !ok {
				delete(common, name)
			}
		}
	}

	out := make([]string, 0, len(common))
	for name := range common {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}
