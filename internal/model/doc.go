// Package model defines the core data structures of the playlist analyzer.
//
// # Track
//
// Track is one entry of an exported track library. Every field except the
// ID is optional and carries its own FieldState:
//
//	name, ok := track.Name.Get()
//	if !ok {
//	    // absent or malformed, skip the track
//	}
//
// # Library
//
// Library holds every track of one exported file, sorted by ID:
//
//	lib := model.NewLibrary("Library.xml", tracks)
//	names := lib.Names() // distinct names of tracks that have one
package model
