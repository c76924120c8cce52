package primitives

import (
	"golang.org/x/crypto/blake2b"
)

// BlakeTwo256 is the only hash function the chain uses: Blake2b with a 256-bit output.
func BlakeTwo256(data ...[]byte) Hash {
	h, _ := blake2b.New256(nil) // only fails for oversized keys
	for _, d := range data {
		h.Write(d)
	}
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

func blakeTwo512(data ...[]byte) [blake2b.Size]byte {
	h, _ := blake2b.New512(nil)
	for _, d := range data {
		h.Write(d)
	}
	var out [blake2b.Size]byte
	copy(out[:], h.Sum(nil))
	return out
}
