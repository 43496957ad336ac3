//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package mmfile

import "fmt"

// Mapped reports whether MapAnon returns real memory mappings on this platform.
const Mapped = false

// MapAnon allocates size zeroed bytes on the Go heap when anonymous mappings
// are not available.
func MapAnon(size int) ([]byte, func() error, error) {
	if size < 0 {
		return nil, nil, fmt.Errorf("mmfile: negative mapping size %d", size)
	}
	return make([]byte, size), func() error { return nil }, nil
}

// PageSize is the mapping granularity.
func PageSize() int {
	return 4096
}
