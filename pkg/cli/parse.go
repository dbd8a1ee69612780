package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/getmockd/ulidgen/pkg/cli/internal/output"
	"github.com/getmockd/ulidgen/pkg/ulid"
	"github.com/spf13/cobra"
)

// ParseOutput describes one decoded ULID in JSON output.
type ParseOutput struct {
	ULID      string `json:"ulid"`
	Timestamp uint64 `json:"timestamp"`
	Time      string `json:"time"`
	Entropy   string `json:"entropy"`
	UUID      string `json:"uuid"`
	Integer   string `json:"integer"`
	Hi        uint64 `json:"hi"`
	Lo        uint64 `json:"lo"`
}

func newParseCommand(opts *rootOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "parse <ulid>...",
		Short: "Decode ULIDs and show their parts",
		Long: `Decode one or more ULIDs and show the timestamp, the randomness and
the UUID form of each.

Lowercase input is accepted. Unless --strict is given the look-alike
letters I and L are read as 1 and O as 0.`,
		Example: `  ulidgen parse 01ETGRM6448X1HM0PYWG2KT648
  ulidgen parse --strict --json 01etgrm6448x1hm0pywg2kt648`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			setFlag(cfg, cmd.Flags().Changed("strict"), "strict", func() { cfg.Strict = strict })
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runParse(cmd.OutOrStdout(), opts, args)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Reject the look-alike letters I, L and O")
	return cmd
}

func runParse(w io.Writer, opts *rootOptions, args []string) error {
	parse := ulid.Parse
	if opts.cfg.Strict {
		parse = ulid.ParseStrict
	}

	results := make([]ParseOutput, 0, len(args))
	for _, arg := range args {
		u, err := parse(arg)
		if err != nil {
			return fmt.Errorf("parse %q: %w", arg, err)
		}
		e := u.Entropy()
		results = append(results, ParseOutput{
			ULID:      u.String(),
			Timestamp: u.Timestamp(),
			Time:      u.Time().UTC().Format(time.RFC3339Nano),
			Entropy:   hex.EncodeToString(e[:]),
			UUID:      u.UUID().String(),
			Integer:   ulid.Integer(u).String(),
			Hi:        u.Hi(),
			Lo:        u.Lo(),
		})
	}

	if opts.cfg.JSON {
		return output.JSON(w, results)
	}

	tw := output.Table(w)
	output.Header(tw, "ulid", "timestamp", "time", "entropy", "uuid")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", r.ULID, r.Timestamp, r.Time, r.Entropy, r.UUID)
	}
	return tw.Flush()
}
