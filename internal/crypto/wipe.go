package crypto

import (
	"crypto/rand"
	"io"
	"runtime"
)

// Wipe overwrites b with random data and then zeros to clear sensitive
// material from memory. If the random source is unavailable the slice is
// still zeroed. runtime.KeepAlive prevents the writes from being optimized
// away. Defense-in-depth only: Go gives no guarantee about copies made by
// the runtime.
func Wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	io.ReadFull(rand.Reader, b)
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// WipeAll wipes multiple byte slices.
func WipeAll(slices ...[]byte) {
	for _, s := range slices {
		Wipe(s)
	}
}
