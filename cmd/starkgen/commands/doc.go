// Package commands defines the starkgen CLI.
//
// Commands
//
//   - expand   Expand contract modules and write generated sources
//   - check    Expand in memory and report diagnostics only
//
// # Implementation
//
// The root command resolves configuration before any subcommand runs:
// defaults first, then an optional TOML file, then command-line flags
// on top. Handlers read one resolved Config. Expansion diagnostics are
// product output and print as plain file:line:col lines on stderr;
// operational logging goes through zerolog, also on stderr.
package commands
