// Package debug provides optional structured trace logging for layout passes.
//
// When the WEFT_DEBUG environment variable is set to a file path, trace
// events are appended to that file as JSON lines. Otherwise, logging is a
// no-op with zero allocation on the hot path.
package debug
