// Package exitcodes defines the exit codes used by fbcheck.
package exitcodes

// Exit code constants used by fbcheck:
//
// * Success (0): at least one check passed, or nothing failed
// * TestFailure (1): every executed check failed (at least one failure, no passes)
// * RuntimeErr (2): configuration errors, interrupted runs and other harness failures
const (
	Success     = 0
	TestFailure = 1
	RuntimeErr  = 2
)
