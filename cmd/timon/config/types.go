// Package config provides configuration management for the timon CLI.
// Configuration is loaded from TOML files with embedded defaults, in the
// same layered scheme as the interactive tools in this ecosystem.
package config

// Config is the root configuration structure.
type Config struct {
	Theme    ThemeConfig    `mapstructure:"theme"`
	Security SecurityConfig `mapstructure:"security"`
}

// ThemeConfig defines CLI colors as lipgloss color strings (ANSI codes in
// the embedded defaults). The repl subcommand reads Prompt, Output and
// Error; internal/diagnostics uses its own fixed colors and reads none of
// these.
type ThemeConfig struct {
	Location string `mapstructure:"location"`
	Error    string `mapstructure:"error"`
	Warning  string `mapstructure:"warning"`
	Gutter   string `mapstructure:"gutter"`
	Prompt   string `mapstructure:"prompt"`
	Output   string `mapstructure:"output"`
}

// SecurityConfig overrides the parser's bounded-cost limits. The lexer's
// limits are constants and are not configurable.
type SecurityConfig struct {
	MaxNestingDepth int `mapstructure:"max_nesting_depth"`
	MaxTokenCount   int `mapstructure:"max_token_count"`
}
