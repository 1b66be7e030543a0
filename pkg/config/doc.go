// Package config loads lollywiz settings. Sources are layered with koanf:
// embedded TOML defaults, the user config file, an optional answers file
// (TOML or YAML), LOLLYWIZ_ environment variables and finally command line
// flags.
package config
