// Package xnat describes XNAT objects and normalizes the values the tools
// send to an XNAT host.
//
// XNAT accepts a fixed vocabulary for demographic fields: gender is one of
// female, male or unknown, handedness one of right, left, ambidextrous or
// unknown. Users type abbreviations and mixed case; the FromLabel helpers
// absorb anything unrecognized into "unknown" and never fail.
//
// The Client interface is the contract between the tools and the XNAT REST
// API. This package defines the surface only; the HTTP implementation lives
// with the suite, and tests substitute their own.
package xnat
