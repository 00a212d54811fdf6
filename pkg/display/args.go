package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	pkgstrings "xnattools/pkg/strings"
)

// argFormat lays out one echoed option: name column 15 wide, value column
// 45 wide, both left justified.
const argFormat = "    %-15s -> %-45s"

// Args echoes the options a tool was invoked with, one row per flag that
// carries a value. Booleans render as "on" and appear only when set; other
// flags show their value shortened from the front when it exceeds the value
// column. Unset and empty flags are omitted. This is a display filter, not
// validation: the tool still sees every flag.
func Args(w io.Writer, flags *pflag.FlagSet) {
	var rows []string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "help" {
			return
		}

		name := strings.ReplaceAll(f.Name, "-", " ")
		value := f.Value.String()
		if f.Value.Type() == "bool" {
			if value == "true" {
				rows = append(rows, fmt.Sprintf(argFormat, name, "on"))
			}
			return
		}
		if value == "" || value == "0" || value == "[]" {
			return
		}
		rows = append(rows, fmt.Sprintf(argFormat, name, pkgstrings.Truncate(value, true)))
	})

	fmt.Fprintf(w, "Arguments:\n%s\n", strings.Join(rows, "\n"))
	Separator(w, "-")
}
