package primitives

import (
	"github.com/gcash/bchutil/base58"
	"github.com/pkg/errors"
)

// SS58Prefix is the generic substrate address format used by the Deeper chain.
const SS58Prefix uint16 = 42

const (
	ss58ChecksumLen  = 2
	ss58MaxPrefix    = 16383
	ss58SimpleLimit  = 64
	ss58FullMaxFirst = 127
)

var ss58Pre = []byte("SS58PRE")

var (
	ErrInvalidSS58       = errors.New("invalid ss58 address")
	ErrSS58Checksum      = errors.New("ss58 checksum mismatch")
	ErrInvalidSS58Prefix = errors.New("ss58 prefix out of range")
)

func encodeSS58Prefix(prefix uint16) ([]byte, error) {
	switch {
	case prefix < ss58SimpleLimit:
		return []byte{byte(prefix)}, nil
	case prefix <= ss58MaxPrefix:
		first := byte((prefix&0x00fc)>>2) | 0x40
		second := byte(prefix>>8) | byte((prefix&0x0003)<<6)
		return []byte{first, second}, nil
	default:
		return nil, errors.Wrapf(ErrInvalidSS58Prefix, "%d", prefix)
	}
}

func ss58Checksum(payload []byte) []byte {
	sum := blakeTwo512(ss58Pre, payload)
	return sum[:ss58ChecksumLen]
}

// SS58 renders the account in the substrate SS58 address format under the given network prefix.
func (id AccountId) SS58(prefix uint16) (string, error) {
	payload, err := encodeSS58Prefix(prefix)
	if err != nil {
		return "", err
	}
	payload = append(payload, id[:]...)
	payload = append(payload, ss58Checksum(payload)...)
	return base58.Encode(payload), nil
}

// ParseSS58 decodes an SS58 address and returns the account and its network prefix.
func ParseSS58(s string) (AccountId, uint16, error) {
	var id AccountId
	data := base58.Decode(s)
	if len(data) < 2 {
		return id, 0, ErrInvalidSS58
	}

	var prefix uint16
	var prefixLen int
	switch {
	case data[0] < ss58SimpleLimit:
		prefix, prefixLen = uint16(data[0]), 1
	case data[0] <= ss58FullMaxFirst:
		lower := (data[0] << 2) | (data[1] >> 6)
		upper := data[1] & 0x3f
		prefix, prefixLen = uint16(lower)|uint16(upper)<<8, 2
	default:
		return id, 0, errors.Wrapf(ErrInvalidSS58Prefix, "first byte %d", data[0])
	}

	if len(data) != prefixLen+AccountIdLen+ss58ChecksumLen {
		return id, 0, errors.Wrapf(ErrInvalidSS58, "length %d", len(data))
	}
	body := data[:prefixLen+AccountIdLen]
	checksum := data[prefixLen+AccountIdLen:]
	expected := ss58Checksum(body)
	if checksum[0] != expected[0] || checksum[1] != expected[1] {
		return id, 0, ErrSS58Checksum
	}
	copy(id[:], body[prefixLen:])
	return id, prefix, nil
}
