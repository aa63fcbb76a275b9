package hash

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty label", "", 0xef46db3751d8e999},
		{"short label", "test", 0x4fdcca5ddb678139},
		{"long label", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another label", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestFingerprint(t *testing.T) {
	// Fingerprint and ID agree on identical bytes.
	assert.Equal(t, ID("test"), Fingerprint([]byte("test")))
	assert.Equal(t, ID(""), Fingerprint(nil))

	samples := []byte{0, 1, 1, 0, 1, 0, 0, 1}
	first := Fingerprint(samples)
	assert.Equal(t, first, Fingerprint(samples), "fingerprint must be deterministic")

	flipped := append([]byte(nil), samples...)
	flipped[3] ^= 1
	assert.NotEqual(t, first, Fingerprint(flipped), "single symbol change must alter the fingerprint")
}

func randBytes(n int) []byte {
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range b {
		b[i] = byte(seededRand.Intn(256))
	}

	return b
}

func BenchmarkFingerprint(b *testing.B) {
	samples := randBytes(1 << 20)
	b.ResetTimer()
	for b.Loop() {
		Fingerprint(samples)
	}
}
