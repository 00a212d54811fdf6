// Package display renders the fixed-width console output shared by the XNAT
// command-line tools.
//
// Every tool opens with the same framed banner (tool name, authorship,
// usage and examples hints), echoes the arguments it recognized, and closes
// with a completion banner. The frame is Width characters wide and the
// helpers here guarantee that width regardless of the text they are given.
//
// The package also carries the small object-tree display used when walking
// projects, subjects and sessions, and a table writer with the suite's
// standard styling for richer listings.
//
// All functions write to an io.Writer supplied by the caller; commands pass
// os.Stdout.
package display
