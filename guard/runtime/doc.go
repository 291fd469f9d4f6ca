// Package runtime holds process-wide reporting settings for assertion handlers:
// the production-mode switch and the optional external ErrorReporter.
package runtime
