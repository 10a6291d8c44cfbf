// Package analysis implements the three playlist analyses.
//
// # Common Tracks
//
// Common intersects the track names of several libraries:
//
//	names, err := analysis.Common(libA, libB)
//	wrote, path, err := analysis.NewReportWriter(".").WriteCommon(ctx, names)
//	// common.txt, one name per line; nothing is written for an empty set
//
// # Duplicates
//
// Duplicates groups the tracks of one library by name. A track counts as a
// copy when its duration, in whole seconds, equals the duration of the first
// track seen with that name:
//
//	dups := analysis.Duplicates(lib)
//	path, err := analysis.NewReportWriter(".").WriteDuplicates(ctx, dups)
//	// dups.txt, lines like "[3] Come Together"
//
// # Statistics
//
// Stats pairs durations (minutes) with album ratings and RenderChart draws
// a scatter plot above a duration histogram:
//
//	points, err := analysis.Stats(lib)
//	if errors.Is(err, analysis.ErrNoStats) {
//	    // no track has both fields
//	}
//	err = analysis.RenderChart(ctx, points, "stats.png", analysis.DefaultChartOptions())
//
// Every analysis skips tracks missing the fields it needs.
package analysis
