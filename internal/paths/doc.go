// Package paths provides cross-platform path resolution for mailcheck
// configuration directories.
//
// The package wraps github.com/adrg/xdg for XDG Base Directory
// Specification compliance. On Linux and macOS, paths follow XDG
// conventions (~/.config, ~/.cache).
//
//	paths.AppConfigDir() // <ConfigHome>/mailcheck/
//
// The MAILCHECK_CONFIG_DIR environment variable overrides the config
// directory, which test code uses to isolate itself from a real user
// configuration.
package paths
