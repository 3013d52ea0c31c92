// Package cmd implements the mjml subcommands.
//
// [Check] parses documents concurrently and reports errors and warnings as
// styled text, JSON or YAML. [Tokens] prints the token stream of a single
// document, which is useful when a diagnostic points at unexpected markup.
package cmd
