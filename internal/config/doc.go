// Package config provides application configuration and filesystem path
// resolution for the processor.
//
// Configuration is loaded from environment variables (prefix PROC) overlaid
// on an optional config.yaml next to the executable, then validated. The
// configured path entries are resolved into a Paths value relative to the
// executable directory or an explicit base, and passed down by the caller.
package config
