// Package mmfile provides platform-specific helpers for off-heap memory regions.
//
// On Linux, macOS and the BSDs regions are private anonymous mappings made
// with golang.org/x/sys/unix. Elsewhere they fall back to Go heap slices so
// callers keep a single code path.
package mmfile
