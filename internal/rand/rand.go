package rand

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

const (
	bytesInUint64 = 8
	charset       = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var charsetLen = len(charset)

var defaultRandBytes = newRandBytes()

func newRandBytes() *randBytes {
	seed := make([]byte, bytesInUint64*2)

	if _, err := cryptorand.Read(seed); err != nil {
		panic("unreachable")
	}

	return &randBytes{
		//nolint:gosec // request IDs are not security sensitive
		rng: rand.New(rand.NewPCG(
			binary.LittleEndian.Uint64(seed[:8]),
			binary.LittleEndian.Uint64(seed[8:]),
		)),
	}
}

type randBytes struct {
	mut sync.Mutex
	rng *rand.Rand
}

func (rb *randBytes) read(buf []byte) {
	rb.mut.Lock()
	defer rb.mut.Unlock()

	for i := range buf {
		buf[i] = byte(rb.rng.Uint64())
	}
}

// NewRequestID returns a short random identifier for correlating RPC
// requests with responses. Distribution is not perfectly uniform,
// which is acceptable here.
func NewRequestID(requestIDLength int) string {
	buf := make([]byte, requestIDLength)
	defaultRandBytes.read(buf)

	for i, b := range buf {
		buf[i] = charset[int(b)%charsetLen]
	}

	return string(buf)
}
