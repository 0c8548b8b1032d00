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

// Package pairing implements Miller's algorithm and the (modified)
// Weil pairing on a short Weierstrass curve over F_{q^2}.
//
// Ref: Hoffstein, Pipher, Silverman, "An Introduction to Mathematical
// Cryptography", Theorem 6.41.
package pairing

import (
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/weilcrypt/gobf/curve"
	"github.com/weilcrypt/gobf/fq2"
)

// ErrDegenerate is returned when the modified Weil pairing could not
// find an auxiliary point that avoids the pairing's exceptional set
// within its attempt budget.
var ErrDegenerate = errors.New("pairing: degenerate evaluation point")

// maxAuxAttempts bounds how many auxiliary points ModifiedWeil samples
// before giving up. The chance any single random point lands in the
// (measure-zero-in-practice) exceptional set is tiny, so this is
// generous headroom, not a tuned constant.
const maxAuxAttempts = 16

// lineFunction evaluates, at the point r, the function g_{p,q} whose
// divisor is [P] + [Q] - [P+Q] - [O]. p and q may coincide, in which
// case the tangent line at p is used instead of the secant through p
// and q.
func lineFunction(c *curve.Curve, p, q, r *curve.Point) *fq2.Elt2 {
	switch {
	case p.X.Equal(q.X) && p.Y.Equal(q.Y):
		if p.Y.IsZero() {
			return r.X.Sub(p.X)
		}
		three := c.F.IntToFq2Int64(3)
		two := c.F.IntToFq2Int64(2)
		lambda := three.Mul(p.X.Mul(p.X)).Add(c.A).Div(two.Mul(p.Y))
		numer := r.Y.Sub(p.Y).Sub(lambda.Mul(r.X.Sub(p.X)))
		denom := r.X.Add(p.X).Add(q.X).Sub(lambda.Mul(lambda))
		return numer.Div(denom)
	case p.X.Equal(q.X):
		return r.X.Sub(p.X)
	default:
		lambda := q.Y.Sub(p.Y).Div(q.X.Sub(p.X))
		numer := r.Y.Sub(p.Y).Sub(lambda.Mul(r.X.Sub(p.X)))
		denom := r.X.Add(p.X).Add(q.X).Sub(lambda.Mul(lambda))
		return numer.Div(denom)
	}
}

// Miller evaluates f_P(R), the function with divisor m[P] - [mP] -
// (m-1)[O], at r via the standard double-and-add accumulation of line
// functions. m must be positive.
func Miller(c *curve.Curve, p *curve.Point, m *big.Int, r *curve.Point) *fq2.Elt2 {
	t := p
	f := c.F.IntToFq2Int64(1)
	for i := m.BitLen() - 2; i >= 0; i-- {
		f = f.Mul(f).Mul(lineFunction(c, t, t, r))
		t = c.Add(t, t)
		if m.Bit(i) == 1 {
			f = f.Mul(lineFunction(c, t, p, r))
			t = c.Add(t, p)
		}
	}
	return f
}

// Weil evaluates the Weil pairing e_m(P,Q) using the auxiliary point s
// to avoid evaluating any Miller function at a pole:
//
//	e_m(P,Q) = (f_P(Q+S)/f_P(S)) / (f_Q(P-S)/f_Q(-S))
func Weil(c *curve.Curve, p, q, s *curve.Point, m *big.Int) *fq2.Elt2 {
	qs := c.Add(q, s)
	ps := c.Sub(p, s)
	negS := c.Neg(s)

	fPQS := Miller(c, p, m, qs)
	fPS := Miller(c, p, m, s)
	fQPS := Miller(c, q, m, ps)
	fQNegS := Miller(c, q, m, negS)

	numer := fPQS.Div(fPS)
	denom := fQPS.Div(fQNegS)
	return numer.Div(denom)
}

// ModifiedWeil evaluates e_l(P, phi(Q)), the modified Weil pairing that
// composes the distortion map with Q so that pairing a point with
// itself is non-degenerate. Unlike a single fixed auxiliary point, it
// samples a fresh random point S for each attempt and retries (up to
// maxAuxAttempts times) whenever S lands in the pairing's exceptional
// set or the result collapses to 1, which a fixed unconditional S
// cannot protect against.
func ModifiedWeil(c *curve.Curve, ext *fq2.Field2, p, q *curve.Point, l *big.Int, rng io.Reader) (result *fq2.Elt2, err error) {
	one := ext.IntToFq2Int64(1)
	phiQ := c.Distortion(q)

	for attempt := 0; attempt < maxAuxAttempts; attempt++ {
		s, serr := curve.RandomPoint(ext, rng)
		if serr != nil {
			return nil, errors.Wrap(serr, "pairing: sampling auxiliary point")
		}

		result, err = evalWeil(c, p, phiQ, s, l)
		if err != nil {
			continue
		}
		if result.Equal(one) {
			continue
		}
		return result, nil
	}

	return nil, errors.Wrap(ErrDegenerate, "pairing: modified Weil pairing")
}

// evalWeil runs Weil under a recover, since lineFunction divides by
// zero whenever the auxiliary point happens to land on one of the
// Miller function's poles; that is an expected, retryable outcome of
// the random sampling in ModifiedWeil, not a programmer error.
func evalWeil(c *curve.Curve, p, q, s *curve.Point, m *big.Int) (e *fq2.Elt2, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, err = nil, errors.Errorf("pairing: exceptional auxiliary point: %v", r)
		}
	}()
	return Weil(c, p, q, s, m), nil
}
