package cli

import (
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/getmockd/ulidgen/pkg/cliconfig"
	"github.com/getmockd/ulidgen/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootOptions holds the persistent flags and the state resolved from them
// before any subcommand runs.
type rootOptions struct {
	configFile string
	jsonOutput bool
	logLevel   string
	logFormat  string

	cfg    *cliconfig.CLIConfig
	logger *slog.Logger
}

// NewRootCommand builds the ulidgen command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "ulidgen",
		Short: "ulidgen generates and inspects ULIDs",
		Long: `ulidgen generates Universally Unique Lexicographically Sortable Identifiers
and converts them between their text, UUID, hex and integer forms.

Running ulidgen without a command is the same as 'ulidgen generate'.

Configuration can be provided via flags, ULIDGEN_* environment variables,
a file given with --config, .ulidgenrc.yaml in the current directory, or
~/.config/ulidgen/config.yaml.`,
		SilenceUsage:  true,
		SilenceErrors: true, // We handle errors in main
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "Config file path (YAML)")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Output command results in JSON format")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (default: warn)")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format: text, json (default: text)")

	rootCmd.AddCommand(
		newGenerateCommand(opts),
		newParseCommand(opts),
		newConvertCommand(opts),
		newConfigCommand(opts),
		newVersionCommand(opts),
	)
	return rootCmd
}

// resolve loads configuration, lays explicitly passed persistent flags on
// top and builds the logger.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := cliconfig.LoadAll(o.configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	setFlag(cfg, flags.Changed("json"), "json", func() { cfg.JSON = o.jsonOutput })
	setFlag(cfg, flags.Changed("log-level"), "logLevel", func() { cfg.LogLevel = o.logLevel })
	setFlag(cfg, flags.Changed("log-format"), "logFormat", func() { cfg.LogFormat = o.logFormat })

	o.cfg = cfg
	o.logger = newLogger(cmd.ErrOrStderr(), cfg)
	o.logger.Debug("configuration loaded", "files", cfg.Files)
	return nil
}

// setFlag applies a flag value when the user passed it explicitly.
func setFlag(cfg *cliconfig.CLIConfig, changed bool, key string, apply func()) {
	if !changed {
		return
	}
	apply()
	cfg.Sources[key] = cliconfig.SourceFlag
}

func newLogger(w io.Writer, cfg *cliconfig.CLIConfig) *slog.Logger {
	return logging.NewFromStrings(cfg.LogLevel, cfg.LogFormat, w)
}

// Execute runs ulidgen with args, writing to stdout and stderr.
// An argument list that does not start with a command runs 'generate'.
func Execute(args []string, stdout, stderr io.Writer) error {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(withDefaultCommand(rootCmd, args))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}

// withDefaultCommand prepends "generate" unless args name a command or ask
// for root help. Persistent flags may come before the command name.
func withDefaultCommand(rootCmd *cobra.Command, args []string) []string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if slices.Contains([]string{"-h", "--help", "help", "completion", "__complete", "__completeNoDesc"}, arg) {
			return args
		}
		if strings.HasPrefix(arg, "-") {
			if takesValue(rootCmd, arg) {
				i++
			}
			continue
		}
		for _, c := range rootCmd.Commands() {
			if c.Name() == arg || c.HasAlias(arg) {
				return args
			}
		}
		break
	}
	return append([]string{"generate"}, args...)
}

// takesValue reports whether arg is a persistent flag whose value is the
// next argument.
func takesValue(rootCmd *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	flags := rootCmd.PersistentFlags()
	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f = flags.Lookup(name)
	} else if len(arg) == 2 {
		f = flags.ShorthandLookup(arg[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}
