// Package cli carries the command plumbing shared by every tool in the
// suite.
//
// A tool is described by a Tool value: its name, its purpose lines, the
// flags it adds on top of the common ones, and its check and run
// functions. NewCommand turns that description into a cobra command that
// follows the suite's fixed flow: banner, argument echo, optional extra
// display, argument check, core run, completion banner.
//
// The package also holds the pieces the tools call directly: common flag
// registration with environment and config-file defaults, comma-separated
// option-list parsing, the interactive yes/no prompt, and the XNAT host
// reachability probe.
package cli
