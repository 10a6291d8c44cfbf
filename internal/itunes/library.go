package itunes

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/handiism/spirotunes/internal/logging"
	"github.com/handiism/spirotunes/internal/model"
	"howett.net/plist"
)

// ErrNoTracks is returned when a property list has no Tracks dictionary.
var ErrNoTracks = errors.New("no Tracks dictionary")

// Load reads and parses the library file at path.
func Load(path string) (*model.Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lib, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	lib.Path = path
	return lib, nil
}

// Decode parses a property list from r.
//
// A document that is not a property list, or whose Tracks entry is missing
// or not a dictionary, is an error. Individual track records that are not
// dictionaries are skipped.
func Decode(r io.ReadSeeker) (*model.Library, error) {
	var root map[string]any
	if err := plist.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("parse property list: %w", err)
	}

	raw, ok := root["Tracks"]
	if !ok {
		return nil, ErrNoTracks
	}
	records, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: Tracks is %T", ErrNoTracks, raw)
	}

	tracks := make([]model.Track, 0, len(records))
	for id, v := range records {
		rec, ok := v.(map[string]any)
		if !ok {
			logging.Debug("track %s: record is %T, skipping", id, v)
			continue
		}
		tracks = append(tracks, model.Track{
			ID:          id,
			Name:        StringField(rec, KeyName),
			TotalTime:   IntField(rec, KeyTotalTime),
			AlbumRating: IntField(rec, KeyAlbumRating),
		})
	}

	return model.NewLibrary("", tracks), nil
}
