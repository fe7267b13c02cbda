// Package debug provides optional file-based debug logging.
//
// When the RBOX_DEBUG environment variable is set to a file path, layout
// traces are appended to that file at debug level. Otherwise, logging is
// a no-op.
package debug
