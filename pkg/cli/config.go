package cli

import (
	"fmt"
	"io"

	"github.com/getmockd/ulidgen/pkg/cli/internal/output"
	"github.com/getmockd/ulidgen/pkg/cliconfig"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ConfigOutput represents JSON output format
type ConfigOutput struct {
	Config  *cliconfig.CLIConfig `json:"config"`
	Sources map[string]string    `json:"sources"`
	Files   []string             `json:"files"`
}

func newConfigCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show effective configuration",
		Long: `Show the effective configuration after merging defaults, config files,
ULIDGEN_* environment variables and flags. Each value is annotated with
where it came from.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if err := printConfig(cmd.OutOrStdout(), cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				output.Warn(cmd.ErrOrStderr(), "configuration is invalid: %v", err)
			}
			return nil
		},
	}
}

func printConfig(w io.Writer, cfg *cliconfig.CLIConfig) error {
	files := cfg.Files
	if files == nil {
		files = []string{}
	}
	if cfg.JSON {
		return output.JSON(w, ConfigOutput{Config: cfg, Sources: cfg.Sources, Files: files})
	}

	var node yaml.Node
	if err := node.Encode(cfg); err != nil {
		return err
	}
	// Content alternates key and value nodes.
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if src := cfg.Sources[key.Value]; src != "" {
			value.LineComment = "# " + src
		}
	}

	if len(files) == 0 {
		fmt.Fprintln(w, "# no config files loaded")
	}
	for _, f := range files {
		fmt.Fprintf(w, "# loaded %s\n", f)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return err
	}
	return enc.Close()
}
