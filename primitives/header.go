package primitives

import (
	"github.com/ethereum/go-ethereum/rlp"
)

// DigestItem is an opaque header log entry. Kind is interpreted by the consensus engine.
type DigestItem struct {
	Kind uint8
	Data []byte
}

type Header struct {
	ParentHash     Hash
	Number         BlockNumber
	StateRoot      Hash
	ExtrinsicsRoot Hash
	Digest         []DigestItem
}

// Hash is BlakeTwo256 over the RLP encoding of the header.
func (h *Header) Hash() Hash {
	bz, err := rlp.EncodeToBytes(h)
	if err != nil {
		panic(err)
	}
	return BlakeTwo256(bz)
}

// Block carries opaque extrinsics; decoding them is the runtime's concern.
type Block struct {
	Header     Header
	Extrinsics [][]byte
}

func (b *Block) Hash() Hash {
	return b.Header.Hash()
}

// BlockId refers to a block either by hash or by number.
type BlockId struct {
	Hash   *Hash
	Number *BlockNumber
}

func BlockIdFromHash(h Hash) BlockId {
	return BlockId{Hash: &h}
}

func BlockIdFromNumber(n BlockNumber) BlockId {
	return BlockId{Number: &n}
}
