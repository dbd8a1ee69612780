package cliconfig

// MergeConfig merges source config into target, updating sources tracking.
// Only non-zero values from source are applied.
func MergeConfig(target, source *CLIConfig, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.Mode != "" {
		target.Mode = source.Mode
		target.Sources["mode"] = sourceType
	}
	if source.Count != 0 || isSet(source, "count") {
		target.Count = source.Count
		target.Sources["count"] = sourceType
	}
	if source.Entropy != "" {
		target.Entropy = source.Entropy
		target.Sources["entropy"] = sourceType
	}
	if source.Format != "" {
		target.Format = source.Format
		target.Sources["format"] = sourceType
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.Sources["logLevel"] = sourceType
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.Sources["logFormat"] = sourceType
	}
	// For booleans, checking `if source.X` cannot detect an explicit false.
	// SetFields (populated during file loading) tells whether the key was
	// present. Programmatic configs without SetFields only merge true.
	if boolIsSet(source, "strict") {
		target.Strict = source.Strict
		target.Sources["strict"] = sourceType
	}
	if boolIsSet(source, "json") {
		target.JSON = source.JSON
		target.Sources["json"] = sourceType
	}
	if source.ConfigFile != "" {
		target.ConfigFile = source.ConfigFile
	}
}

func isSet(cfg *CLIConfig, yamlKey string) bool {
	return cfg.SetFields != nil && cfg.SetFields[yamlKey]
}

// boolIsSet reports whether a boolean field identified by its YAML key was
// explicitly set in the source config.
func boolIsSet(cfg *CLIConfig, yamlKey string) bool {
	if cfg.SetFields != nil {
		return cfg.SetFields[yamlKey]
	}
	switch yamlKey {
	case "strict":
		return cfg.Strict
	case "json":
		return cfg.JSON
	}
	return false
}
