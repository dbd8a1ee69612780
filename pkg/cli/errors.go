package cli

import "errors"

// Common CLI errors
var (
	ErrUnknownFormat = errors.New("unknown format")
)
