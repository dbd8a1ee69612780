package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/getmockd/ulidgen/pkg/cli/internal/output"
	"github.com/getmockd/ulidgen/pkg/ulid"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const formatHexLE = "hex-le"

// ConvertOutput is one converted value in JSON output.
type ConvertOutput struct {
	Input  string `json:"input"`
	From   string `json:"from"`
	To     string `json:"to"`
	Output string `json:"output"`
}

func newConvertCommand(opts *rootOptions) *cobra.Command {
	var (
		from   string
		to     string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "convert <value>...",
		Short: "Convert ULIDs between text, UUID, hex and integer forms",
		Long: `Convert values between the forms of a ULID.

Input forms (--from):  text, uuid, hex, hex-le, int
Output forms (--to):   text, lower, uuid, hex, hex-le, int

hex is the 16 big-endian bytes; hex-le is the same bytes reversed.
int is the unsigned 128-bit decimal value.`,
		Example: `  ulidgen convert 01ETGRM6448X1HM0PYWG2KT648 --to uuid
  ulidgen convert 0176a18a-1884-4743-1a02-dee4053d1888 --from uuid
  ulidgen convert 1945195434112195390215103893317949576 --from int --to hex`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			setFlag(cfg, cmd.Flags().Changed("strict"), "strict", func() { cfg.Strict = strict })
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runConvert(cmd.OutOrStdout(), opts, args, strings.ToLower(from), strings.ToLower(to))
		},
	}

	cmd.Flags().StringVar(&from, "from", "text", "Input form: text, uuid, hex, hex-le, int")
	cmd.Flags().StringVar(&to, "to", "text", "Output form: text, lower, uuid, hex, hex-le, int")
	cmd.Flags().BoolVar(&strict, "strict", false, "Reject the look-alike letters I, L and O in text input")
	return cmd
}

func runConvert(w io.Writer, opts *rootOptions, args []string, from, to string) error {
	if _, err := formatULID(ulid.Nil, to); err != nil {
		return err
	}

	results := make([]ConvertOutput, 0, len(args))
	for _, arg := range args {
		u, err := decodeValue(arg, from, opts.cfg.Strict)
		if err != nil {
			return fmt.Errorf("convert %q: %w", arg, err)
		}
		out, err := formatULID(u, to)
		if err != nil {
			return err
		}
		results = append(results, ConvertOutput{Input: arg, From: from, To: to, Output: out})
	}

	if opts.cfg.JSON {
		return output.JSON(w, results)
	}
	for _, r := range results {
		fmt.Fprintln(w, r.Output)
	}
	return nil
}

// decodeValue reads s in one of the input forms.
func decodeValue(s, from string, strict bool) (ulid.ULID, error) {
	switch from {
	case "text":
		if strict {
			return ulid.ParseStrict(s)
		}
		return ulid.Parse(s)
	case "uuid":
		id, err := uuid.Parse(s)
		if err != nil {
			return ulid.Nil, err
		}
		return ulid.FromUUID(id), nil
	case "hex", formatHexLE:
		b, err := hex.DecodeString(strings.TrimPrefix(strings.ToLower(s), "0x"))
		if err != nil {
			return ulid.Nil, err
		}
		order := ulid.BigEndian
		if from == formatHexLE {
			order = ulid.LittleEndian
		}
		return ulid.FromBytes(b, order)
	case "int":
		return ulid.ParseInteger(s)
	default:
		return ulid.Nil, fmt.Errorf("%w %q", ErrUnknownFormat, from)
	}
}
