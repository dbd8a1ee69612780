// Package cli provides the command-line interface for ulidgen.
//
// Commands:
//   - generate: Generate one or more ULIDs (default command)
//   - parse: Decode ULIDs and show their timestamp, randomness and other forms
//   - convert: Convert between text, UUID, hex and decimal integer forms
//   - config: Display effective configuration and where each value came from
//   - version: Show ulidgen version
//   - completion: Generate shell completion scripts
//
// Every command accepts --json for machine-readable output, and --config,
// --log-level and --log-format. Configuration is loaded through cliconfig.
package cli
