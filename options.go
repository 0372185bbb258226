// SPDX-License-Identifier: MIT

// Package detinfer: functional configuration of the contract-violation policy.
//
// Every compute entry point (vector.Dot, matrix.Add/Apply/Multiply,
// conv.Conv2D) accepts ...Option. Options are resolved on the caller's stack
// by Gather; the With* constructors return closures that capture nothing, so
// passing options does not allocate.
//
// Policy:
//   - Strict (default): a violation leaves the destination untouched and
//     returns a sentinel error.
//   - Silent: a violation leaves the destination untouched and returns nil.
//     This reproduces the legacy certified behavior where the call site has
//     no error branch.
//   - Diagnostics: when enabled (default), the violation branch emits a Debug
//     record on Logger(). The success path never touches the logger.
package detinfer

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultSilent reports contract violations as errors.
	DefaultSilent = false

	// DefaultDiagnostics emits a Debug log record on every contract violation.
	DefaultDiagnostics = true
)

// Option mutates Options. Safe to apply repeatedly; last writer wins.
type Option func(*Options)

// Options is the resolved policy. Fields are unexported; read them through
// Silent and Diagnostics.
type Options struct {
	silent      bool
	diagnostics bool
}

// WithStrict reports contract violations as errors (default).
func WithStrict() Option {
	return func(o *Options) { o.silent = false }
}

// WithSilent suppresses contract-violation errors: the destination is still
// left untouched, but the operation returns nil.
func WithSilent() Option {
	return func(o *Options) { o.silent = true }
}

// WithDiagnostics toggles the Debug record emitted on contract violations.
func WithDiagnostics(enabled bool) Option {
	if enabled {
		return func(o *Options) { o.diagnostics = true }
	}

	return func(o *Options) { o.diagnostics = false }
}

// Gather applies opts in order over the defaults.
// Complexity: O(len(opts)). No allocation.
func Gather(opts ...Option) Options {
	o := Options{
		silent:      DefaultSilent,
		diagnostics: DefaultDiagnostics,
	}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// Silent reports whether contract violations are suppressed.
func (o Options) Silent() bool { return o.silent }

// Diagnostics reports whether contract violations are logged.
func (o Options) Diagnostics() bool { return o.diagnostics }

// Violation is the single exit used by compute packages on a contract
// violation. It logs (when enabled) and returns either the tagged error or
// nil under the silent policy. attrs are forwarded to the log record as
// alternating key/value pairs.
func (o Options) Violation(op string, err error, attrs ...any) error {
	if o.diagnostics {
		logViolation(op, err, attrs...)
	}
	if o.silent {
		return nil
	}

	return OpError(op, err)
}
