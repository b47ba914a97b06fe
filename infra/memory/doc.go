// Package memory provides the low-level primitives behind refkit's
// ownership handles: a typed object pool used to recycle control blocks,
// a lock-free retire ring, and reader epochs that let a Reclaimer defer
// finalization of released values until no reader is inside a read
// section.
//
// Errors from finalizers are aggregated with cockroachdb/errors; apart
// from that the package only needs the standard library. It is the
// foundation the ptr package builds on.
package memory
