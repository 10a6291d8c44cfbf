// Package canvas turns Spirograph trails into pictures: PNG rasters,
// Encapsulated PostScript, and braille-dot text for the terminal.
//
// All renderers take the same input, a list of Strokes in logical
// coordinates (origin at the viewport center, y up), and map them onto
// their own output space.
package canvas
