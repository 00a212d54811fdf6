package cli

import (
	"fmt"
	"net/http"
	"time"
)

// CheckHost checks that the XNAT host answers HTTP requests. It performs a
// single GET against the host URL; it does not authenticate and moves no
// data.
func CheckHost(host string) error {
	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	resp, err := client.Get(host)
	if err != nil {
		return fmt.Errorf("XNAT host %s is not reachable. Check the address and your network connection", host)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("XNAT host %s is not responding correctly (status: %d)", host, resp.StatusCode)
	}

	return nil
}

// FormatError formats an error message for console output
func FormatError(err error) string {
	return fmt.Sprintf("Error: %v", err)
}

// FormatSuccess formats a success message for console output
func FormatSuccess(msg string) string {
	return fmt.Sprintf("✓ %s", msg)
}

// FormatWarning formats a warning message for console output
func FormatWarning(msg string) string {
	return fmt.Sprintf("⚠ %s", msg)
}
