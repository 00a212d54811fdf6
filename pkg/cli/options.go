package cli

import "strings"

// OptionList parses a comma-separated option value into the labels it
// names. The sentinel "all" selects everything and yields (nil, true). An
// empty value and the literal "nan" mean the option was not requested and
// yield (nil, false); spreadsheet exports write "nan" into empty cells.
// Tokens are split verbatim, without trimming.
func OptionList(value string) ([]string, bool) {
	switch value {
	case "", "nan":
		return nil, false
	case "all":
		return nil, true
	default:
		return strings.Split(value, ","), false
	}
}
