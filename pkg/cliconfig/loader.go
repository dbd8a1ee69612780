package cliconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// GlobalConfigDir is the directory for global config
	GlobalConfigDir = "ulidgen"
)

// LocalConfigFileNames are the names to search for local config (in order).
var LocalConfigFileNames = []string{".ulidgenrc.yaml", ".ulidgenrc.yml"}

// GlobalConfigFileNames are the names to search for global config (in order).
var GlobalConfigFileNames = []string{"config.yaml", "config.yml"}

// FindLocalConfig searches for .ulidgenrc.yaml or .ulidgenrc.yml in the current directory.
func FindLocalConfig() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for _, name := range LocalConfigFileNames {
		path := filepath.Join(cwd, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// FindGlobalConfig returns the path to the global config file.
// Returns empty string if not found.
func FindGlobalConfig() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		//nolint:nilerr // no config dir means no global config
		return "", nil
	}
	for _, name := range GlobalConfigFileNames {
		path := filepath.Join(configDir, GlobalConfigDir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// LoadConfigFile loads a CLIConfig from a YAML file. Unknown keys are an
// error. An empty file yields an empty config.
func LoadConfigFile(path string) (*CLIConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg CLIConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, newConfigError(path, err)
	}

	var keys map[string]any
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, newConfigError(path, err)
	}
	cfg.SetFields = make(map[string]bool, len(keys))
	for k := range keys {
		cfg.SetFields[k] = true
	}

	cfg.Sources = make(map[string]string)
	return &cfg, nil
}

// ConfigError represents a configuration file error with location info.
type ConfigError struct {
	Path    string
	Line    int
	Message string
}

func (e *ConfigError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d): %s", e.Path, e.Line, e.Message)
	}
	return e.Path + ": " + e.Message
}

var yamlLine = regexp.MustCompile(`line (\d+): `)

// newConfigError lifts the first line number out of a yaml.v3 error.
func newConfigError(path string, err error) *ConfigError {
	msg := err.Error()
	ce := &ConfigError{Path: path, Message: msg}
	if m := yamlLine.FindStringSubmatchIndex(msg); m != nil {
		ce.Line, _ = strconv.Atoi(msg[m[2]:m[3]])
		ce.Message = msg[m[1]:]
	}
	return ce
}

// LoadAll loads configuration from all sources and merges them.
// Precedence: env > explicit file > local config > global config > defaults.
// Flags are applied by the caller. explicitPath may be empty, in which case
// ULIDGEN_CONFIG is consulted. A missing explicit file is an error; missing
// discovered files are not.
func LoadAll(explicitPath string) (*CLIConfig, error) {
	// Start with defaults
	cfg := NewDefault()

	// Load global config
	globalPath, err := FindGlobalConfig()
	if err != nil {
		return nil, err
	}
	if err := mergeFile(cfg, globalPath, SourceGlobal); err != nil {
		return nil, err
	}

	// Load local config
	localPath, err := FindLocalConfig()
	if err != nil {
		return nil, err
	}
	if err := mergeFile(cfg, localPath, SourceLocal); err != nil {
		return nil, err
	}

	// Load explicit config
	if explicitPath == "" {
		explicitPath = os.Getenv(EnvConfig)
	}
	if explicitPath != "" {
		if err := mergeFile(cfg, explicitPath, SourceFile); err != nil {
			return nil, err
		}
		cfg.ConfigFile = explicitPath
	}

	// Load environment variables
	if err := LoadEnvConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func mergeFile(cfg *CLIConfig, path, source string) error {
	if path == "" {
		return nil
	}
	fileCfg, err := LoadConfigFile(path)
	if err != nil {
		return err
	}
	MergeConfig(cfg, fileCfg, source)
	cfg.Files = append(cfg.Files, path)
	return nil
}
