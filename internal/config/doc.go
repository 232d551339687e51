// Package config provides configuration management for the mailcheck CLI.
//
// # Configuration File
//
// The default configuration file location is ~/.config/mailcheck/config.yaml
// (the MAILCHECK_CONFIG_DIR environment variable overrides the directory).
// The file uses YAML format with the following structure:
//
//	version: 1
//	output_format: text   # text or json
//	color: auto           # auto, always, or never
//
// # Loading Configuration
//
// Call [Init] once at startup to register defaults and search paths, then
// [Load] to read the file:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return fmt.Errorf("loading config: %w", err)
//	}
//
// Loading with an empty path falls back to defaults when no file exists;
// loading an explicit path fails if the file is missing.
//
// # Validation
//
// Use [Validate] to check field values:
//
//	errs := config.Validate(cfg)
//	if len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Println(e)
//	    }
//	}
package config
