package cmd

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"xnattools/pkg/cli"
	"xnattools/pkg/config"
	"xnattools/pkg/display"
	"xnattools/pkg/errdefs"
)

const checkToolName = "Xnatcheck"

// newCheckCmd creates the command that verifies the XNAT connection
// settings: host reachability and, with --login, the user credentials.
func newCheckCmd() *cobra.Command {
	var (
		flags cli.CommonFlags
		login bool
		save  bool
	)

	tool := cli.Tool{
		Name: checkToolName,
		Use:  "check",
		Purpose: []string{
			"Check the connection settings for an XNAT host.",
			"Verifies the host answers and, with --login, that",
			"the username and password are accepted.",
		},
		AddFlags: func(cmd *cobra.Command) {
			cmd.Flags().BoolVar(&login, "login", false, "Also verify the username and password.")
			cmd.Flags().BoolVar(&save, "save", false, "Save the verified settings to the config file.")
		},
		Check: func(cmd *cobra.Command) (bool, error) {
			if flags.Host == "" {
				return false, errdefs.NewUserError(checkToolName, "no host given. Use --host or set %s.", cli.HostEnvVar)
			}
			if login && flags.Username == "" {
				return false, errdefs.NewUserError(checkToolName, "no username given. Use --username with --login.")
			}
			return true, nil
		},
		Run: func(cmd *cobra.Command) error {
			return runCheck(cmd, &flags, login, save)
		},
	}

	return cli.NewCommand(tool, &flags)
}

// runCheck probes the host, optionally verifies the credentials, and prints
// a summary table. The summary is printed before any failure is reported so
// the user always sees what was checked.
func runCheck(cmd *cobra.Command, flags *cli.CommonFlags, login, save bool) error {
	out := cmd.OutOrStdout()

	hostErr := probeHost(flags.Host)

	hostStatus := text.FgGreen.Sprint("OK")
	if hostErr != nil {
		hostStatus = text.FgRed.Sprint("unreachable")
	}

	rows := [][2]string{
		{"Host", flags.Host},
		{"Reachable", hostStatus},
	}

	var loginErr error
	if login && hostErr == nil {
		password, err := cli.ReadPassword(fmt.Sprintf("Password for %s on %s: ", flags.Username, flags.Host))
		if err != nil {
			return err
		}

		loginErr = checkCredentials(flags.Host, flags.Username, password)
		loginStatus := text.FgGreen.Sprint("accepted")
		if loginErr != nil {
			loginStatus = text.FgRed.Sprint("rejected")
		}
		rows = append(rows,
			[2]string{"Username", flags.Username},
			[2]string{"Credentials", loginStatus},
		)
	}

	display.KeyValue(out, rows)

	if hostErr != nil {
		return hostErr
	}
	if loginErr != nil {
		return loginErr
	}

	if save {
		saved, err := saveSettings(flags)
		if err != nil {
			return err
		}
		if saved {
			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Settings saved for %s.", flags.Host)))
		} else {
			fmt.Fprintln(out, cli.FormatWarning("Settings not saved."))
		}
	}

	return nil
}

// probeHost wraps the reachability check in a progress spinner.
func probeHost(host string) error {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Checking XNAT host %s...", host)
	s.Start()
	defer s.Stop()

	err := cli.CheckHost(host)
	if err != nil {
		s.FinalMSG = text.FgRed.Sprint("Could not reach the XNAT host") + "\n"
	}
	return err
}

// checkCredentials verifies the username and password with a single
// authenticated request against the host's session endpoint.
func checkCredentials(host, username, password string) error {
	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	url := strings.TrimSuffix(host, "/") + "/data/JSESSION"
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", host, err)
	}
	req.SetBasicAuth(username, password)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("XNAT host %s is not reachable. Check the address and your network connection", host)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return errdefs.NewUserError(checkToolName, "the username or password was not accepted by %s.", host)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("XNAT host %s is not responding correctly (status: %d)", host, resp.StatusCode)
	}
	return nil
}

// saveSettings writes the host and username to the config file. An existing
// file is only replaced after the user confirms. Returns whether the file
// was written.
func saveSettings(flags *cli.CommonFlags) (bool, error) {
	path, err := config.GetDefaultConfigPath()
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(path); err == nil {
		overwrite, err := cli.ConfirmYesNo(fmt.Sprintf("The config file %s already exists. Overwrite it?", path))
		if err != nil {
			return false, err
		}
		if !overwrite {
			return false, nil
		}
	}

	cfg := config.Config{Host: flags.Host, Username: flags.Username}
	if err := config.Save(path, cfg); err != nil {
		return false, err
	}
	return true, nil
}
