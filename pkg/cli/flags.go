package cli

import (
	"os"

	"github.com/spf13/cobra"

	"xnattools/pkg/config"
)

// HostEnvVar is the environment variable name for setting the default XNAT
// host.
const HostEnvVar = "XNAT_HOST"

// CommonFlags holds the flag values shared by every tool in the suite.
// Tool-specific flags stay with the tools; passwords are never flags and
// are always prompted.
type CommonFlags struct {
	// Host is the XNAT host URL
	Host string
	// Username is the XNAT username
	Username string
}

// GetDefaultHost returns the host to use when --host is not given: the
// XNAT_HOST environment variable if set, otherwise the host from the suite
// configuration file. The full resolution order is flag > environment >
// configuration file.
func GetDefaultHost() string {
	if host := os.Getenv(HostEnvVar); host != "" {
		return host
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		return ""
	}
	return cfg.Host
}

// GetDefaultUsername returns the username from the suite configuration
// file, if any.
func GetDefaultUsername() string {
	cfg, err := config.LoadDefault()
	if err != nil {
		return ""
	}
	return cfg.Username
}

// RegisterCommonFlags registers the flags every tool shares. Defaults are
// resolved at registration time so the help text shows the values the tool
// will actually use.
//
// The registered flags are:
//   - --host: XNAT host URL (env: XNAT_HOST, then config file)
//   - --username/-u: XNAT username (config file)
func RegisterCommonFlags(cmd *cobra.Command, flags *CommonFlags) {
	cmd.Flags().StringVar(&flags.Host, "host", GetDefaultHost(), "Host for XNAT. Default: env XNAT_HOST.")
	cmd.Flags().StringVarP(&flags.Username, "username", "u", GetDefaultUsername(), "Username for XNAT.")
}
