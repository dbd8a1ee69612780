package cliconfig

// CLIConfig represents the complete configuration for the ulidgen CLI.
// Configuration values can come from multiple sources with the following precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables
// 3. Config file named by --config or ULIDGEN_CONFIG
// 4. Local config file (.ulidgenrc.yaml in current directory)
// 5. Global config file (~/.config/ulidgen/config.yaml)
// 6. Default values (lowest priority)
type CLIConfig struct {
	// Generation settings
	Mode    string `yaml:"mode" json:"mode"`
	Count   int    `yaml:"count" json:"count"`
	Entropy string `yaml:"entropy" json:"entropy"`

	// Parsing settings
	Strict bool `yaml:"strict" json:"strict"`

	// Output settings
	Format string `yaml:"format" json:"format"`
	JSON   bool   `yaml:"json" json:"json"`

	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`

	// ConfigFile is the explicit config file, if any. It is read from
	// ULIDGEN_CONFIG or --config, never from a file.
	ConfigFile string `yaml:"-" json:"configFile,omitempty"`

	// Source tracks where each value came from (for debugging)
	Sources map[string]string `yaml:"-" json:"-"`

	// SetFields records the YAML keys present in a loaded file, so that an
	// explicit false or zero is merged instead of being skipped.
	SetFields map[string]bool `yaml:"-" json:"-"`

	// Files lists the config files that were merged, in order.
	Files []string `yaml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFile    = "file"
	SourceFlag    = "flag"
)

// Keys lists the YAML keys of CLIConfig in display order.
var Keys = []string{
	"mode",
	"count",
	"entropy",
	"strict",
	"format",
	"json",
	"logLevel",
	"logFormat",
}
