/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command gobf-demo runs one end-to-end pass of the Boneh-Franklin IBE
// scheme: Setup, a master keypair, Extract for one identity, Encrypt of
// a random message to that identity, and Decrypt, reporting whether the
// recovered plaintext matches the original.
package main

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/cobra"

	"github.com/weilcrypt/gobf/bitstring"
	"github.com/weilcrypt/gobf/ibe"
	"github.com/weilcrypt/gobf/sample"
)

var (
	securityBits int
	identity     string
	messageBits  int
)

var rootCmd = &cobra.Command{
	Use:   "gobf-demo",
	Short: "Run one end-to-end Boneh-Franklin IBE round trip",
	RunE:  run,
}

func init() {
	rootCmd.Flags().IntVar(&securityBits, "security-bits", 40, "bit length of the interval Setup samples l from")
	rootCmd.Flags().StringVar(&identity, "identity", "alice@example.com", "identity string to extract a private key for")
	rootCmd.Flags().IntVar(&messageBits, "message-bits", 128, "length in bits of the random message to encrypt")
}

func run(cmd *cobra.Command, args []string) error {
	lo := new(big.Int).Lsh(big.NewInt(1), uint(securityBits-1))
	hi := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(securityBits)), big.NewInt(1))

	fmt.Printf("setup: sampling l in [2^%d, 2^%d)\n", securityBits-1, securityBits)
	params, err := ibe.Setup(lo, hi)
	if err != nil {
		return err
	}
	fmt.Printf("setup: l = %s, q = %s\n", params.L, params.Base.Modulus())

	s, pub, err := ibe.MasterKeypair(params)
	if err != nil {
		return err
	}
	fmt.Printf("master keypair: P = %s, P_pub = %s\n", params.P, pub)

	id := []byte(identity)
	priv, err := ibe.Extract(params, s, id)
	if err != nil {
		return err
	}
	fmt.Printf("extract: Q_%s = %s\n", identity, priv.Q)

	mInt, err := sample.NewBitString(messageBits).Sample()
	if err != nil {
		return err
	}
	m := bitstring.FromBigInt(mInt, messageBits)
	fmt.Printf("message:    %s\n", m)

	ct, err := ibe.Encrypt(params, m, pub, priv.Q, rand.Reader)
	if err != nil {
		return err
	}
	fmt.Printf("ciphertext: U = %s, V = %s\n", ct.U, ct.V)

	recovered, err := ibe.Decrypt(params, ct, priv.D, rand.Reader)
	if err != nil {
		return err
	}
	fmt.Printf("recovered:  %s\n", recovered)

	if !recovered.Equal(m) {
		return fmt.Errorf("round trip failed: recovered message does not match original")
	}
	fmt.Println("round trip OK")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
