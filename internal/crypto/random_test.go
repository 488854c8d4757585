package crypto

import (
	"bytes"
	"errors"
	"testing"
)

// failingReader always errors, simulating an unavailable random source.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy pool exhausted")
}

func TestBytes(t *testing.T) {
	for _, n := range []int{0, 1, 12, 16, 32, 4096} {
		b, err := Bytes(n)
		if err != nil {
			t.Fatalf("Bytes(%d) error = %v", n, err)
		}
		if len(b) != n {
			t.Errorf("Bytes(%d) length = %d", n, len(b))
		}
	}
}

func TestBytes_Independent(t *testing.T) {
	a, err := Bytes(32)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Bytes(32)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, b) {
		t.Error("two 32-byte draws were identical")
	}
}

func TestBytes_SourceUnavailable(t *testing.T) {
	restore := SetRandReaderForTesting(failingReader{})
	defer restore()

	if _, err := Bytes(16); !errors.Is(err, ErrRandomUnavailable) {
		t.Errorf("Bytes() error = %v, want ErrRandomUnavailable", err)
	}
}

func TestBytes_Concurrent(t *testing.T) {
	const workers = 64

	results := make(chan []byte, workers)
	for i := 0; i < workers; i++ {
		go func() {
			b, err := Bytes(16)
			if err != nil {
				b = nil
			}
			results <- b
		}()
	}

	seen := make(map[string]bool, workers)
	for i := 0; i < workers; i++ {
		b := <-results
		if b == nil {
			t.Fatal("concurrent Bytes() failed")
		}
		if seen[string(b)] {
			t.Fatal("concurrent Bytes() produced a repeated value")
		}
		seen[string(b)] = true
	}
}
