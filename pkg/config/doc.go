// Package config loads and saves the optional suite configuration file for
// the XNAT tools.
//
// The file lives at ~/.config/xnattools/config.yaml and supplies defaults
// that every tool in the suite shares, currently the XNAT host and the
// username. A missing file is not an error: tools then rely on their flags
// and on the XNAT_HOST environment variable alone. The check command writes
// the file on request after verifying the settings.
//
// Resolution order for the host is flag > environment > this file; the
// ordering is implemented in pkg/cli where the flag defaults are computed.
package config
