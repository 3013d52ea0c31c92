package cmd

import "github.com/ardnew/mjml/pkg"

var (
	// ErrCheckFailed is returned by [Check] when a reported diagnostic makes
	// the run fail.
	ErrCheckFailed = pkg.NewError("check failed")
	// ErrFilter is returned for a --filter expression that does not compile
	// or does not evaluate to a boolean.
	ErrFilter = pkg.NewError("invalid filter expression")
	// ErrWriteReport is returned when the report cannot be written.
	ErrWriteReport = pkg.NewError("write report")
)
