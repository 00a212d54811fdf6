package cmd

import (
	"errors"
	"os"

	"xnattools/pkg/errdefs"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
// These follow common conventions so the tools compose well in scripts.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, internal problem).
	ExitCodeError = 1
	// ExitCodeUserError indicates bad input the user can fix (missing file,
	// unset host, invalid option).
	ExitCodeUserError = 2
)

// rootCmd represents the base command for the xnattools application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "xnattools",
	Short: "Command line tools for XNAT",
	Long: `xnattools bundles the command line utilities for working with an
XNAT imaging database: checking connectivity, downloading and uploading
resources, and reporting on projects, subjects and sessions.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	// This is useful for providing cleaner error output to the user.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
// This can be used by other commands to access the build version.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles subcommands and flags.
// This function is called by main.main().
func Execute() {
	// SetVersionTemplate defines a custom template for displaying the version.
	// This is used when the --version flag is invoked.
	rootCmd.SetVersionTemplate(`{{printf "xnattools version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Check for specific error types and return appropriate exit codes
		exitCode := getExitCode(err)
		os.Exit(exitCode)
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	var userErr *errdefs.UserError
	if errors.As(err, &userErr) {
		return ExitCodeUserError
	}

	// Default to general error
	return ExitCodeError
}

// init is a special Go function that is executed when the package is initialized.
// It is used here to add subcommands to the root command.
func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
