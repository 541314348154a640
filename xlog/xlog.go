// Package xlog is a small leveled wrapper over the standard library's
// log package, in the same spirit as the teacher's plain log.Printf /
// log.Fatal call sites (agogo.go, arena.go) but with severity made
// explicit at the call site (§7 expansion).
package xlog

import "log"

// Warn logs a recoverable condition: an unimplemented card effect, a
// discarded report sink, or similar documented gap (§7 "Unimplemented
// effect" taxonomy row).
func Warn(format string, args ...interface{}) {
	log.Printf("[warn] "+format, args...)
}

// Fatal logs a configuration or memory error and exits the process,
// mirroring the teacher's log.Fatal call sites.
func Fatal(format string, args ...interface{}) {
	log.Fatalf("[fatal] "+format, args...)
}
