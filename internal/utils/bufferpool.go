// Package utils provides small, dependency-free helpers shared by the
// binary codec and metadata layers: scratch buffers and overflow-checked
// arithmetic.
package utils

import "sync"

var bufferPool = sync.Pool{
	New: func() interface{} {
		return make([]byte, 0, 64)
	},
}

// GetBuffer returns a byte slice of the requested size from the pool,
// sized for the header and trailer's fixed 64-byte regions. Larger
// requests fall back to a fresh allocation.
func GetBuffer(size int) []byte {
	buf := bufferPool.Get().([]byte)
	if cap(buf) < size {
		return make([]byte, size)
	}
	return buf[:size]
}

// ReleaseBuffer returns a buffer obtained from GetBuffer to the pool.
func ReleaseBuffer(buf []byte) {
	//nolint:staticcheck // SA6002: slice descriptor copy is acceptable for sync.Pool
	bufferPool.Put(buf[:0])
}
