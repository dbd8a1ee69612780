package cliconfig

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variable names
const (
	EnvMode      = "ULIDGEN_MODE"
	EnvCount     = "ULIDGEN_COUNT"
	EnvEntropy   = "ULIDGEN_ENTROPY"
	EnvStrict    = "ULIDGEN_STRICT"
	EnvFormat    = "ULIDGEN_FORMAT"
	EnvJSON      = "ULIDGEN_JSON"
	EnvLogLevel  = "ULIDGEN_LOG_LEVEL"
	EnvLogFormat = "ULIDGEN_LOG_FORMAT"
	EnvConfig    = "ULIDGEN_CONFIG"
)

// LoadEnvConfig loads configuration from environment variables.
// It only sets values that are present in the environment. Values that do
// not parse are reported together.
func LoadEnvConfig(cfg *CLIConfig) error {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}
	var errs []error

	setString := func(env, key string, dst *string) {
		if v := os.Getenv(env); v != "" {
			*dst = v
			cfg.Sources[key] = SourceEnv
		}
	}
	setBool := func(env, key string, dst *bool) {
		v := os.Getenv(env)
		if v == "" {
			return
		}
		b, err := parseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", env, err))
			return
		}
		*dst = b
		cfg.Sources[key] = SourceEnv
	}

	setString(EnvMode, "mode", &cfg.Mode)
	setString(EnvEntropy, "entropy", &cfg.Entropy)
	setString(EnvFormat, "format", &cfg.Format)
	setString(EnvLogLevel, "logLevel", &cfg.LogLevel)
	setString(EnvLogFormat, "logFormat", &cfg.LogFormat)
	setBool(EnvStrict, "strict", &cfg.Strict)
	setBool(EnvJSON, "json", &cfg.JSON)

	// ULIDGEN_COUNT
	if v := os.Getenv(EnvCount); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %q is not a number", EnvCount, v))
		} else {
			cfg.Count = n
			cfg.Sources["count"] = SourceEnv
		}
	}

	return errors.Join(errs...)
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a boolean", v)
}
