// Package log defines the logging interface used by assertion handlers and
// the typed fields they attach.
//
// GoLogger backs the interface with the standard library logger; the zap
// package provides a structured adapter.
package log
