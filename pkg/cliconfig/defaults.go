package cliconfig

// DefaultMode is the default generation mode.
const DefaultMode = "plain"

// DefaultCount is the default number of ULIDs per invocation.
const DefaultCount = 1

// MaxCount caps the number of ULIDs per invocation.
const MaxCount = 1_000_000

// DefaultEntropy is the default randomness source.
const DefaultEntropy = EntropyCrypto

// DefaultFormat is the default output format.
const DefaultFormat = FormatText

// DefaultLogLevel is the default log level. The CLI only logs problems.
const DefaultLogLevel = "warn"

// DefaultLogFormat is the default log format.
const DefaultLogFormat = "text"

// Randomness sources.
const (
	EntropyCrypto = "crypto"
	EntropyFast   = "fast"
)

// Output formats for generated ULIDs.
const (
	FormatText  = "text"
	FormatLower = "lower"
	FormatUUID  = "uuid"
	FormatInt   = "int"
	FormatHex   = "hex"
)

// ValidEntropies lists the accepted entropy values.
var ValidEntropies = []string{EntropyCrypto, EntropyFast}

// ValidFormats lists the accepted format values.
var ValidFormats = []string{FormatText, FormatLower, FormatUUID, FormatInt, FormatHex}

// NewDefault creates a new CLIConfig with default values.
func NewDefault() *CLIConfig {
	cfg := &CLIConfig{
		Mode:      DefaultMode,
		Count:     DefaultCount,
		Entropy:   DefaultEntropy,
		Format:    DefaultFormat,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Sources:   make(map[string]string),
	}

	// Mark all as default source
	for _, key := range Keys {
		cfg.Sources[key] = SourceDefault
	}

	return cfg
}
