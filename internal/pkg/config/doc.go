// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file and environment variables, validated,
// and handed to the CLI and REST entry points. Nothing in here is touched
// once the process has started serving.
package config
