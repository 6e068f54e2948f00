// Package shared holds small helpers used by both the client and the
// backend.
package shared

// WipeByteArray zeroes b in place. Use it on buffers that held a password
// once their contents have been copied out. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
