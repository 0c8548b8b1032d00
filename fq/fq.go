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

// Package fq implements arithmetic in the prime field F_q = Z/qZ.
//
// A Field is constructed once per modulus and every Elt it produces
// carries a pointer back to it, so an Elt always knows which field it
// belongs to and operations never need a modulus argument threaded
// through by hand.
package fq

import (
	"fmt"
	"math/big"

	"github.com/weilcrypt/gobf/internal/modarith"
	"github.com/weilcrypt/gobf/internal/primes"
)

// Field is the prime field Z/qZ.
type Field struct {
	q *big.Int
}

// NewField constructs the field Z/qZ. It returns an error if q is not
// prime, since every other guarantee this package makes (invertibility
// of non-zero elements, uniqueness of cube roots when q%3==2 elsewhere)
// depends on q being prime.
func NewField(q *big.Int) (*Field, error) {
	if q.Sign() <= 0 {
		return nil, fmt.Errorf("fq: modulus must be positive")
	}
	if !primes.IsProbablePrime(q, 40) {
		return nil, fmt.Errorf("fq: modulus %s is not prime", q)
	}
	return &Field{q: new(big.Int).Set(q)}, nil
}

// Modulus returns q.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.q)
}

// Elt is an element of a Field.
type Elt struct {
	f *Field
	n *big.Int
}

// Elem reduces n modulo q and wraps it as an element of f.
func (f *Field) Elem(n *big.Int) *Elt {
	return &Elt{f: f, n: new(big.Int).Mod(n, f.q)}
}

// ElemInt64 is a convenience wrapper around Elem for small constants.
func (f *Field) ElemInt64(n int64) *Elt {
	return f.Elem(big.NewInt(n))
}

// Field returns the field e belongs to.
func (e *Elt) Field() *Field {
	return e.f
}

// Val returns the element's representative in [0, q).
func (e *Elt) Val() *big.Int {
	return new(big.Int).Set(e.n)
}

// String renders the element's representative.
func (e *Elt) String() string {
	return e.n.String()
}

func (e *Elt) sameField(o *Elt) {
	if e.f != o.f {
		panic("fq: operands belong to different fields")
	}
}

// Add returns e + o.
func (e *Elt) Add(o *Elt) *Elt {
	e.sameField(o)
	return e.f.Elem(new(big.Int).Add(e.n, o.n))
}

// Sub returns e - o.
func (e *Elt) Sub(o *Elt) *Elt {
	e.sameField(o)
	return e.f.Elem(new(big.Int).Sub(e.n, o.n))
}

// Mul returns e * o.
func (e *Elt) Mul(o *Elt) *Elt {
	e.sameField(o)
	return e.f.Elem(new(big.Int).Mul(e.n, o.n))
}

// Neg returns -e.
func (e *Elt) Neg() *Elt {
	return e.f.Elem(new(big.Int).Neg(e.n))
}

// Equal reports whether e and o represent the same field element.
func (e *Elt) Equal(o *Elt) bool {
	e.sameField(o)
	return e.n.Cmp(o.n) == 0
}

// IsZero reports whether e is the additive identity.
func (e *Elt) IsZero() bool {
	return e.n.Sign() == 0
}

// Exp computes e^k via left-to-right square-and-multiply. k must be
// non-negative.
func (e *Elt) Exp(k *big.Int) *Elt {
	return &Elt{f: e.f, n: modarith.ExpMod(e.n, k, e.f.q)}
}

// Inv returns e^-1 via Fermat's little theorem. It panics if e is zero
// (DivisionByZero is a programmer error, not a recoverable failure).
func (e *Elt) Inv() *Elt {
	if e.IsZero() {
		panic("fq: division by zero")
	}
	return &Elt{f: e.f, n: modarith.Inverse(e.n, e.f.q)}
}

// Div returns e / o. It panics if o is zero.
func (e *Elt) Div(o *Elt) *Elt {
	e.sameField(o)
	return e.Mul(o.Inv())
}
