package xnat

import "strings"

// Gender values accepted by XNAT.
const (
	Female  = "female"
	Male    = "male"
	Unknown = "unknown"
)

// Handedness values accepted by XNAT.
const (
	Right        = "right"
	Left         = "left"
	Ambidextrous = "ambidextrous"
)

// GenderFromLabel maps a user-supplied gender label to the value XNAT
// accepts. Single letters and full words match case-insensitively; anything
// else becomes Unknown.
func GenderFromLabel(gender string) string {
	switch strings.ToLower(gender) {
	case "female", "f":
		return Female
	case "male", "m":
		return Male
	default:
		return Unknown
	}
}

// HandednessFromLabel maps a user-supplied handedness label to the value
// XNAT accepts. Single letters and full words match case-insensitively;
// anything else becomes Unknown.
func HandednessFromLabel(handedness string) string {
	switch strings.ToLower(handedness) {
	case "right", "r":
		return Right
	case "left", "l":
		return Left
	case "ambidextrous", "a":
		return Ambidextrous
	default:
		return Unknown
	}
}
