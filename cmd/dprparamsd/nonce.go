package main

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/deepernetwork/dprparams/internal/ethutils"
	"github.com/deepernetwork/dprparams/primitives"
)

// SignNonceCmd signs a device nonce with a secp256k1 key, for testing verifiers.
func SignNonceCmd(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "sign-nonce [ecdsa_private_key] [nonce]",
		Short: "Sign a nonce with an ecdsa key and print the encoded signature",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			privKey, _, err := ethutils.HexToPrivKey(args[0])
			if err != nil {
				return err
			}
			nonce, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return err
			}
			sig, err := ethutils.Sign(primitives.NonceMessage(nonce), privKey)
			if err != nil {
				return err
			}
			if err := printAccount(ethutils.PrivKeyToAccount(privKey), ctx.Config.SS58Prefix); err != nil {
				return err
			}
			fmt.Println("Signature:", hexutil.Encode(sig.Encode()))
			return nil
		},
	}
}

func VerifyNonceCmd(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "verify-nonce [account] [nonce] [signature]",
		Short: "Check an encoded device signature over a nonce with the configured verifier",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := ctx.Params()
			if err != nil {
				return err
			}
			acc, err := parseAccount(args[0])
			if err != nil {
				return err
			}
			nonce, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return err
			}
			sig, err := hexutil.Decode(args[2])
			if err != nil {
				return err
			}
			if !p.SignatureVerifier.VerifySignature(nonce, sig, acc) {
				return fmt.Errorf("signature does not match %s", acc.Hex())
			}
			fmt.Println("OK")
			return nil
		},
	}
}
