package testutils

import (
	"encoding/hex"
	"strings"

	"github.com/deepernetwork/dprparams/primitives"
)

func HexToAccount(s string) primitives.AccountId {
	acc, err := primitives.AccountIdFromBytes(HexToBytes(s))
	if err != nil {
		panic(err)
	}
	return acc
}

func HexToBytes(s string) []byte {
	if strings.HasPrefix(s, "0x") {
		s = s[2:]
	}
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "\n", "")

	bytes, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return bytes
}
