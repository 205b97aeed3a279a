// Package buffer implements the pure, grapheme-accurate text model behind a
// single bio field.
//
// Coordinates are 0-based (Row, GraphemeCol) in grapheme clusters.
// Ranges are half-open selections in document coordinates: [Start, End).
//
// A Buffer may carry a rune limit. Every edit is checked against it before
// anything is mutated, so a rejected edit leaves text, cursor, selection,
// version and history untouched.
package buffer
