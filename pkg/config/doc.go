// Package config loads linkrouter's application settings.
//
// Settings are layered with koanf, later layers winning: the embedded
// defaults, config.toml or config.yaml in the config directory,
// LINKROUTER_* environment variables, then explicitly set command line
// flags. Rule files are not settings and are loaded by the rules package.
package config
