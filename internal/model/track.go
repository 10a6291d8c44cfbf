package model

// Track represents a single entry of an exported track library.
//
// Track mirrors the fields the analyzer reads from a library record:
//   - Name for matching tracks across and within files
//   - TotalTime (milliseconds) for duplicate matching and statistics
//   - AlbumRating (0-100) for statistics
//
// Tracks are read-only once loaded.
//
// Example:
//
//	t := Track{
//	    ID:        "1234",
//	    Name:      Present("Come Together"),
//	    TotalTime: Present(259000),
//	}
//	minutes, ok := t.DurationMinutes() // 4.3166..., true
type Track struct {
	// ID is the key of the track in the library's Tracks dictionary.
	ID string

	// Name is the track title.
	Name Field[string]

	// TotalTime is the track length in milliseconds.
	TotalTime Field[int]

	// AlbumRating is the album rating on a 0-100 scale.
	AlbumRating Field[int]
}

// DurationMinutes returns TotalTime converted to minutes.
func (t Track) DurationMinutes() (float64, bool) {
	ms, ok := t.TotalTime.Get()
	if !ok {
		return 0, false
	}
	return float64(ms) / 60000.0, true
}

// DurationSeconds returns TotalTime truncated to whole seconds, which is
// the granularity duplicates are matched at.
func (t Track) DurationSeconds() (int, bool) {
	ms, ok := t.TotalTime.Get()
	if !ok {
		return 0, false
	}
	return ms / 1000, true
}
