package analysis

import (
	"errors"

	"github.com/handiism/spirotunes/internal/model"
)

// ErrNoStats is returned when no track carries both a duration and an
// album rating.
var ErrNoStats = errors.New("no valid Album Rating/Total Time data")

// StatPoint is one track's duration and rating.
type StatPoint struct {
	Minutes float64
	Rating  int
}

// Summary aggregates a set of StatPoints.
type Summary struct {
	Count       int
	MeanMinutes float64
	MaxMinutes  float64
	MeanRating  float64
}

// Stats extracts (duration in minutes, album rating) pairs from lib.
func Stats(lib *model.Library) ([]StatPoint, error) {
	var points []StatPoint
	for _, t := range lib.Tracks {
		rating, ok := t.AlbumRating.Get()
		if !ok {
			skipped(t, "album rating", t.AlbumRating.State)
			continue
		}
		minutes, ok := t.DurationMinutes()
		if !ok {
			skipped(t, "total time", t.TotalTime.State)
			continue
		}
		points = append(points, StatPoint{Minutes: minutes, Rating: rating})
	}

	if len(points) == 0 {
		return nil, ErrNoStats
	}
	return points, nil
}

// Summarize computes count, means and the longest duration.
func Summarize(points []StatPoint) Summary {
	s := Summary{Count: len(points)}
	if s.Count == 0 {
		return s
	}
	var minutes, rating float64
	for _, p := range points {
		minutes += p.Minutes
		rating += float64(p.Rating)
		s.MaxMinutes = max(s.MaxMinutes, p.Minutes)
	}
	s.MeanMinutes = minutes / float64(s.Count)
	s.MeanRating = rating / float64(s.Count)
	return s
}
