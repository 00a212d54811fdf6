package display

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Width is the full width of the framed console displays, in characters.
const Width = 64

const (
	// bodyWidth is the room left for text between the "# " and " #" frame.
	bodyWidth = Width - 4
	// endWidth is the body width of the completion banner, whose frame is
	// the " DONE " marker instead of the "#" border.
	endWidth = Width - 6
)

// lineFormat frames one banner row.
const lineFormat = "# %s%s #"

var border = strings.Repeat("#", Width)

// PadLine fits s into one framed banner row: leftPad spaces, the text, then
// space fill up to the frame. The rendered body is always exactly bodyWidth
// characters for text that fits.
func PadLine(s string, leftPad int) string {
	return PadLineTo(s, bodyWidth, leftPad, lineFormat, " ")
}

// PadLines renders each line the way PadLine does and joins the rows with
// newlines.
func PadLines(lines []string, leftPad int) string {
	padded := make([]string, 0, len(lines))
	for _, line := range lines {
		padded = append(padded, PadLine(line, leftPad))
	}
	return strings.Join(padded, "\n")
}

// PadLineTo is the fully parameterized form of PadLine: explicit body width,
// row format and fill symbol. A non-space symbol leaves one space between
// the left fill and the text. Text wider than width is kept whole and gets
// no right fill.
func PadLineTo(s string, width, leftPad int, format, symbol string) string {
	if leftPad < 0 {
		leftPad = 0
	}
	pad := strings.Repeat(symbol, leftPad)
	if symbol != " " {
		if pad == "" {
			pad = " "
		} else {
			pad = pad[:len(pad)-len(symbol)] + " "
		}
	}

	body := pad + s
	fill := width - utf8.RuneCountInString(body)
	if fill < 0 {
		fill = 0
	}
	return fmt.Sprintf(format, body, strings.Repeat(symbol, fill))
}

// Banner prints the framed introduction every tool shows before doing any
// work: the tool name centered, the authorship and support rows, the
// purpose lines indented under Usage, and the help hint. A dashed rule
// closes the display.
//
// The name's left padding is computed against the full frame width, so the
// name sits two cells right of true center. Consumers parse these banners;
// the spacing is part of the output contract.
func Banner(w io.Writer, name string, purpose []string) {
	fmt.Fprintln(w, border)
	fmt.Fprintln(w, PadLine(name, (Width-utf8.RuneCountInString(name))/2))
	fmt.Fprintln(w, PadLine("", 0))
	fmt.Fprintln(w, PadLine("Developed by the MASI Lab Vanderbilt University, TN, USA.", 0))
	fmt.Fprintln(w, PadLine("If issues, please start a thread here:", 0))
	fmt.Fprintln(w, PadLine("https://groups.google.com/forum/#!forum/vuiis-cci", 0))
	fmt.Fprintln(w, PadLine("Usage:", 0))
	fmt.Fprintln(w, PadLines(purpose, 4))
	fmt.Fprintln(w, PadLine("Examples:", 0))
	fmt.Fprintln(w, PadLine("Check the help for examples by running --help", 4))
	fmt.Fprintln(w, border)
	fmt.Fprintln(w)
	Separator(w, "-")
}

// Separator prints a full-width rule of the given symbol.
func Separator(w io.Writer, symbol string) {
	fmt.Fprintln(w, strings.Repeat(symbol, Width))
}

// End prints the completion banner a tool shows when it is done: the name
// centered in a row of "=" around the DONE marker, followed by two blank
// lines.
func End(w io.Writer, name string) {
	leftPad := (endWidth - utf8.RuneCountInString(name)) / 2
	fmt.Fprintln(w, PadLineTo(name, endWidth, leftPad, "%s DONE %s", "="))
	fmt.Fprint(w, "\n\n")
}
