package cli

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/getmockd/ulidgen/internal/id"
	"github.com/getmockd/ulidgen/pkg/cli/internal/output"
	"github.com/getmockd/ulidgen/pkg/cliconfig"
	"github.com/getmockd/ulidgen/pkg/ulid"
	"github.com/spf13/cobra"
)

// GenerateOutput is one generated ULID in JSON output.
type GenerateOutput struct {
	ULID      string `json:"ulid"`
	Value     string `json:"value,omitempty"`
	Timestamp uint64 `json:"timestamp"`
	Time      string `json:"time"`
}

func newGenerateCommand(opts *rootOptions) *cobra.Command {
	var (
		count   int
		mode    string
		format  string
		entropy string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate ULIDs",
		Long: `Generate one or more ULIDs.

Modes:
  plain      fresh randomness for every ULID
  monotonic  ULIDs within one millisecond increment the previous one
  strict     like monotonic, but waits out a clock that moved backwards

Formats: text, lower, uuid, int, hex`,
		Example: `  ulidgen
  ulidgen generate -n 5 --mode monotonic
  ulidgen -n 3 --format uuid --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			flags := cmd.Flags()
			setFlag(cfg, flags.Changed("count"), "count", func() { cfg.Count = count })
			setFlag(cfg, flags.Changed("mode"), "mode", func() { cfg.Mode = mode })
			setFlag(cfg, flags.Changed("format"), "format", func() { cfg.Format = format })
			setFlag(cfg, flags.Changed("entropy"), "entropy", func() { cfg.Entropy = entropy })
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runGenerate(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", cliconfig.DefaultCount, "Number of ULIDs to generate")
	cmd.Flags().StringVarP(&mode, "mode", "m", cliconfig.DefaultMode, "Generation mode: plain, monotonic, strict")
	cmd.Flags().StringVarP(&format, "format", "f", cliconfig.DefaultFormat, "Output format: "+strings.Join(cliconfig.ValidFormats, ", "))
	cmd.Flags().StringVar(&entropy, "entropy", cliconfig.DefaultEntropy, "Randomness source: crypto, fast")
	return cmd
}

func runGenerate(w io.Writer, opts *rootOptions) error {
	cfg := opts.cfg
	mode, err := id.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	genOpts := []ulid.Option{ulid.WithLogger(opts.logger)}
	if strings.EqualFold(cfg.Entropy, cliconfig.EntropyFast) {
		r, err := ulid.NewFastEntropy()
		if err != nil {
			return err
		}
		genOpts = append(genOpts, ulid.WithEntropy(r))
	}

	stream := id.NewStream(ulid.NewGenerator(genOpts...), id.Config{
		Mode:   mode,
		Logger: opts.logger,
	})

	start := time.Now()
	ids, err := stream.Batch(cfg.Count)
	if err != nil {
		return err
	}
	opts.logger.Debug("generated ulids",
		"count", len(ids),
		"mode", mode.String(),
		"entropy", cfg.Entropy,
		"elapsed", time.Since(start),
	)

	format := strings.ToLower(cfg.Format)
	if cfg.JSON {
		out := make([]GenerateOutput, len(ids))
		for i, u := range ids {
			out[i] = GenerateOutput{
				ULID:      u.String(),
				Timestamp: u.Timestamp(),
				Time:      u.Time().UTC().Format(time.RFC3339Nano),
			}
			if format != cliconfig.FormatText {
				out[i].Value, _ = formatULID(u, format)
			}
		}
		return output.JSON(w, out)
	}

	bw := bufio.NewWriter(w)
	for _, u := range ids {
		s, err := formatULID(u, format)
		if err != nil {
			return err
		}
		bw.WriteString(s)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// formatULID renders u in one of the output formats.
func formatULID(u ulid.ULID, format string) (string, error) {
	switch format {
	case cliconfig.FormatText:
		return u.String(), nil
	case cliconfig.FormatLower:
		return strings.ToLower(u.String()), nil
	case cliconfig.FormatUUID:
		return u.UUID().String(), nil
	case cliconfig.FormatInt:
		return ulid.Integer(u).String(), nil
	case cliconfig.FormatHex:
		b := u.Bytes(ulid.BigEndian)
		return hex.EncodeToString(b[:]), nil
	case formatHexLE:
		b := u.Bytes(ulid.LittleEndian)
		return hex.EncodeToString(b[:]), nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}
