package cliconfig

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/getmockd/ulidgen/internal/id"
	"github.com/getmockd/ulidgen/pkg/logging"
)

// Validate checks every field and reports all problems at once.
func (c *CLIConfig) Validate() error {
	var errs []error

	if _, err := id.ParseMode(c.Mode); err != nil {
		errs = append(errs, fmt.Errorf("mode %q is invalid (valid: plain, monotonic, strict)", c.Mode))
	}
	if c.Count < 1 || c.Count > MaxCount {
		errs = append(errs, fmt.Errorf("count %d is out of range (1-%d)", c.Count, MaxCount))
	}
	if !slices.Contains(ValidEntropies, strings.ToLower(c.Entropy)) {
		errs = append(errs, fmt.Errorf("entropy %q is invalid (valid: %s)", c.Entropy, strings.Join(ValidEntropies, ", ")))
	}
	if !slices.Contains(ValidFormats, strings.ToLower(c.Format)) {
		errs = append(errs, fmt.Errorf("format %q is invalid (valid: %s)", c.Format, strings.Join(ValidFormats, ", ")))
	}
	if !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("logLevel %q is invalid (valid: debug, info, warn, error)", c.LogLevel))
	}
	if !logging.ValidFormat(c.LogFormat) {
		errs = append(errs, fmt.Errorf("logFormat %q is invalid (valid: text, json)", c.LogFormat))
	}

	return errors.Join(errs...)
}
