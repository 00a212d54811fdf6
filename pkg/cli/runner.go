package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"xnattools/pkg/display"
)

// Tool describes one tool of the suite. NewCommand turns the description
// into a runnable command; the fields beyond Name, Use and Run are
// optional.
type Tool struct {
	// Name is the tool's display name, e.g. "Xnatcheck". It appears in
	// the banners and tags the tool's user errors.
	Name string

	// Use is the cobra use line, e.g. "check".
	Use string

	// Purpose holds the banner's purpose lines. The first line doubles as
	// the command's short description.
	Purpose []string

	// AddFlags registers the tool's own flags on top of the common ones.
	// The runner trusts the callback; it does not inspect what the
	// callback did to the command.
	AddFlags func(cmd *cobra.Command)

	// ExtraDisplay is printed verbatim after the argument echo.
	ExtraDisplay string

	// Check validates the parsed arguments before the tool runs.
	// Returning false skips Run without error.
	Check func(cmd *cobra.Command) (bool, error)

	// Run is the tool's core function.
	Run func(cmd *cobra.Command) error
}

// NewCommand assembles the cobra command for a tool. Every tool follows
// the same flow: framed banner, argument echo, optional extra display,
// argument check, core run, completion banner. The completion banner is
// printed only when Run finishes without error; a skipped or failed run
// ends without it.
func NewCommand(tool Tool, flags *CommonFlags) *cobra.Command {
	short := ""
	if len(tool.Purpose) > 0 {
		short = tool.Purpose[0]
	}

	cmd := &cobra.Command{
		Use:          tool.Use,
		Short:        short,
		SilenceUsage: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			display.Banner(out, tool.Name, tool.Purpose)
			display.Args(out, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if tool.ExtraDisplay != "" {
				fmt.Fprintln(out, tool.ExtraDisplay)
			}

			run := true
			if tool.Check != nil {
				var err error
				run, err = tool.Check(cmd)
				if err != nil {
					return err
				}
			}
			if !run {
				return nil
			}

			if err := tool.Run(cmd); err != nil {
				return err
			}

			display.End(out, tool.Name)
			return nil
		},
	}

	RegisterCommonFlags(cmd, flags)
	if tool.AddFlags != nil {
		tool.AddFlags(cmd)
	}

	return cmd
}
