// Package cliconfig provides configuration types and loading for the ulidgen CLI.
//
// It implements a layered configuration system with the following precedence
// (highest to lowest):
//
//  1. Command-line flags
//  2. Environment variables (ULIDGEN_* prefix)
//  3. Explicit config file (--config or ULIDGEN_CONFIG)
//  4. Local config file (.ulidgenrc.yaml in current directory)
//  5. Global config file (~/.config/ulidgen/config.yaml)
//  6. Default values
//
// Sources records where each value came from, which `ulidgen config` prints.
package cliconfig
