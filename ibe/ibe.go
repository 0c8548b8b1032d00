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

// Package ibe implements the Boneh-Franklin identity-based encryption
// scheme: a trusted Private Key Generator holds a master secret and can
// derive a private key for any identity string on demand, while anyone
// holding the master public key can encrypt to that identity without
// any prior interaction with its holder.
package ibe

import (
	"crypto/rand"
	"crypto/sha1"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/weilcrypt/gobf/bitstring"
	"github.com/weilcrypt/gobf/curve"
	"github.com/weilcrypt/gobf/fq"
	"github.com/weilcrypt/gobf/fq2"
	"github.com/weilcrypt/gobf/pairing"
	"github.com/weilcrypt/gobf/sample"
)

// Sentinel errors surfaced above the library boundary, per the scheme's
// error handling contract: division by zero and mismatched fields are
// programmer errors and panic instead. A singular curve is rejected by
// curve.New with an error, which Setup reports as ErrInvalidParameter.
var (
	// ErrInvalidParameter is returned when Setup's interval can't
	// plausibly contain a prime, or the derived curve modulus isn't
	// prime.
	ErrInvalidParameter = errors.New("ibe: invalid parameter")

	// ErrHashToCurve is returned when H1 of an identity string lands on
	// the curve's 6-torsion, producing the point at infinity instead of
	// an order-l point.
	ErrHashToCurve = errors.New("ibe: identity hashes to the point at infinity")

	// ErrPairingDegenerate is returned when the modified Weil pairing
	// could not avoid its exceptional set within its retry budget.
	ErrPairingDegenerate = errors.New("ibe: pairing degenerate after retries")
)

// setupAttempts bounds how many (l, q=6l-1) candidates Setup tries
// before giving up; q = 6l-1 is prime for only a fraction of primes l,
// so a handful of attempts is normal, not a sign of trouble.
const setupAttempts = 256

// Params holds the public system parameters produced by Setup: the
// field tower, curve, and base point generating the order-l subgroup
// the scheme operates in.
type Params struct {
	Base  *fq.Field
	Ext   *fq2.Field2
	Curve *curve.Curve
	P     *curve.Point
	L     *big.Int
}

// Setup samples a prime l in [lo, hi], derives q = 6l-1 (retrying with
// a fresh l until q is also prime), and builds the field tower, curve
// y^2 = x^3 + 1 over F_{q^2}, and an order-l base point P.
func Setup(lo, hi *big.Int) (*Params, error) {
	primeSampler := sample.NewPrime(lo, hi)
	six := big.NewInt(6)

	for attempt := 0; attempt < setupAttempts; attempt++ {
		l, err := primeSampler.Sample()
		if err != nil {
			return nil, errors.Wrap(ErrInvalidParameter, err.Error())
		}

		q := new(big.Int).Mul(six, l)
		q.Sub(q, big.NewInt(1))

		base, err := fq.NewField(q)
		if err != nil {
			continue // q = 6l-1 isn't prime for this l; try another.
		}

		ext, err := fq2.NewField2(base)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidParameter, err.Error())
		}

		a := ext.IntToFq2Int64(0)
		b := ext.IntToFq2Int64(1)
		c, err := curve.New(a, b, ext)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidParameter, err.Error())
		}

		p, err := curve.FindOrderLPoint(c, ext, rand.Reader)
		if err != nil {
			continue
		}

		return &Params{Base: base, Ext: ext, Curve: c, P: p, L: l}, nil
	}

	return nil, errors.Wrapf(ErrInvalidParameter, "no usable (l, q=6l-1) pair found in %d attempts", setupAttempts)
}

// MasterKeypair samples the PKG's master secret s in [1, l-1] and
// returns it alongside the master public key P_pub = [s]P.
func MasterKeypair(p *Params) (s *big.Int, pub *curve.Point, err error) {
	s, err = sample.NewUniformRange(big.NewInt(1), p.L).Sample()
	if err != nil {
		return nil, nil, err
	}
	return s, p.Curve.ScalarMul(s, p.P), nil
}

// H1 hashes an identity string to an order-l point on the curve: the
// SHA-1 digest of id, reduced mod q, is lifted to a curve point via the
// same cube-root construction as RandomPoint, then the cofactor 6 is
// cleared. It returns ErrHashToCurve if that clears all the way to the
// point at infinity, in which case the caller should perturb id (e.g.
// append a counter) and retry.
func H1(p *Params, id []byte) (*curve.Point, error) {
	digest := sha1.Sum(id)
	y := new(big.Int).SetBytes(digest[:])
	q := p.Base.Modulus()
	yElt := p.Base.Elem(new(big.Int).Mod(y, q))

	point := curve.PointFromHash(p.Ext, yElt)
	if !p.Curve.OnCurve(point) {
		panic("ibe: H1 produced a point not on the curve")
	}

	qID := p.Curve.ScalarMul(big.NewInt(6), point)
	if qID.Infinity {
		return nil, ErrHashToCurve
	}
	return qID, nil
}

// H2 maps a pairing value g and a target length n to an n-bit string:
// v = Tr(g).Val() + q*g.Y().Val(), rendered as binary and truncated (or
// zero-padded) to n bits. Tr(g).Val() is always in [0,q), so v encodes
// the pair (Tr(g), g.Y()) without overlap between the two terms, which
// is what makes H2 collision-free on its F_{q^2} input.
func H2(p *Params, g *fq2.Elt2, n int) bitstring.BitString {
	v := new(big.Int).Set(g.Trace().Val())
	v.Add(v, new(big.Int).Mul(p.Base.Modulus(), g.Y().Val()))
	return bitstring.FromBigInt(v, n)
}

// Identity bundles the public Q_ID with the PKG-issued private key
// d_ID for one identity. Q_ID is not secret; keeping it alongside d_ID
// is a convenience for callers that need both.
type Identity struct {
	Q *curve.Point
	D *curve.Point
}

// Extract derives the identity-specific private key: Q_ID = H1(id) and
// d_ID = [s]Q_ID.
func Extract(p *Params, s *big.Int, id []byte) (*Identity, error) {
	q, err := H1(p, id)
	if err != nil {
		return nil, err
	}
	return &Identity{Q: q, D: p.Curve.ScalarMul(s, q)}, nil
}

// Ciphertext is the pair (U, V) produced by Encrypt: a curve point and
// an n-bit masked message.
type Ciphertext struct {
	U *curve.Point
	V bitstring.BitString
}

// Encrypt encrypts the n-bit message m to the identity whose public
// point is qID, under master public key pub, drawing r and the
// pairing's auxiliary point from rng:
//
//	r      <- [1, l-1]
//	g_ID   := ê(qID, pub)
//	U      := [r]P
//	V      := m XOR H2(g_ID^r, n)
func Encrypt(p *Params, m bitstring.BitString, pub, qID *curve.Point, rng io.Reader) (*Ciphertext, error) {
	n := m.Len()

	r, err := rand.Int(rng, new(big.Int).Sub(p.L, big.NewInt(1)))
	if err != nil {
		return nil, err
	}
	r.Add(r, big.NewInt(1))

	gID, err := pairing.ModifiedWeil(p.Curve, p.Ext, qID, pub, p.L, rng)
	if err != nil {
		return nil, errors.Wrap(ErrPairingDegenerate, err.Error())
	}

	u := p.Curve.ScalarMul(r, p.P)
	mask := H2(p, gID.Exp(r), n)

	return &Ciphertext{U: u, V: m.Xor(mask)}, nil
}

// Decrypt recovers the plaintext from a ciphertext using the identity's
// private key d_ID:
//
//	w := ê(d_ID, U)
//	m := V XOR H2(w, n)
func Decrypt(p *Params, ct *Ciphertext, dID *curve.Point, rng io.Reader) (bitstring.BitString, error) {
	n := ct.V.Len()

	w, err := pairing.ModifiedWeil(p.Curve, p.Ext, dID, ct.U, p.L, rng)
	if err != nil {
		return nil, errors.Wrap(ErrPairingDegenerate, err.Error())
	}

	mask := H2(p, w, n)
	return ct.V.Xor(mask), nil
}
