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

package pairing_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weilcrypt/gobf/curve"
	"github.com/weilcrypt/gobf/fq"
	"github.com/weilcrypt/gobf/fq2"
	"github.com/weilcrypt/gobf/pairing"
)

// fqPoint and fqConst embed plain F_q values into F_{q^2} along the
// diagonal subfield {(-c,-c) : c in F_q} via FqToFq2/IntToFq2Int64 -
// the only subset of F_{q^2} closed under Add/Mul/Inv, and so the only
// faithful copy of F_q the pinned plain-F_q vectors can be checked
// against.
func fqPoint(ext *fq2.Field2, x, y int64) *curve.Point {
	base := ext.Base()
	return curve.Affine(
		ext.FqToFq2(base.ElemInt64(x)),
		ext.FqToFq2(base.ElemInt64(y)),
	)
}

func fqConst(ext *fq2.Field2, c int64) *fq2.Elt2 {
	return ext.IntToFq2Int64(c)
}

func fqVal(ext *fq2.Field2, c int64) *fq2.Elt2 {
	return fqConst(ext, c)
}

func setup(t *testing.T, q int64) *fq2.Field2 {
	t.Helper()
	base, err := fq.NewField(big.NewInt(q))
	assert.NoError(t, err)
	ext, err := fq2.NewField2(base)
	assert.NoError(t, err)
	return ext
}

// setupUnchecked builds a Field2 over a modulus that need not be 2 mod
// 3, valid here because the pinned vector below only ever touches the
// diagonal subfield, which mirrors plain F_q arithmetic regardless.
func setupUnchecked(t *testing.T, q int64) *fq2.Field2 {
	t.Helper()
	base, err := fq.NewField(big.NewInt(q))
	assert.NoError(t, err)
	return fq2.NewField2Unchecked(base)
}

// TestMillerAndWeilPinned is spec vector 5: F_q=631, y^2=x^3+30x+34,
// P=(36,60), m=5, Q=(121,387), S=(0,36).
func TestMillerAndWeilPinned(t *testing.T) {
	ext := setupUnchecked(t, 631)
	c, err := curve.New(fqConst(ext, 30), fqConst(ext, 34), ext)
	assert.NoError(t, err)

	p := fqPoint(ext, 36, 60)
	q := fqPoint(ext, 121, 387)
	s := fqPoint(ext, 0, 36)
	m := big.NewInt(5)

	assert.True(t, c.OnCurve(p))
	assert.True(t, c.OnCurve(q))
	assert.True(t, c.OnCurve(s))

	qPlusS := c.Add(q, s)
	fPQS := pairing.Miller(c, p, m, qPlusS)
	assert.True(t, fPQS.Equal(fqVal(ext, 103)))

	fPS := pairing.Miller(c, p, m, s)
	assert.True(t, fPS.Equal(fqVal(ext, 219)))

	numer := fPQS.Div(fPS)
	assert.True(t, numer.Equal(fqVal(ext, 473)))

	pMinusS := c.Sub(p, s)
	fQPS := pairing.Miller(c, q, m, pMinusS)
	assert.True(t, fQPS.Equal(fqVal(ext, 284)))

	negS := c.Neg(s)
	fQNegS := pairing.Miller(c, q, m, negS)
	assert.True(t, fQNegS.Equal(fqVal(ext, 204)))

	denom := fQPS.Div(fQNegS)
	assert.True(t, denom.Equal(fqVal(ext, 88)))

	e := pairing.Weil(c, p, q, s, m)
	assert.True(t, e.Equal(fqVal(ext, 242)))
}

func TestModifiedWeilNonDegenerate(t *testing.T) {
	ext := setup(t, 111347)
	c, err := curve.New(fqConst(ext, 0), fqConst(ext, 1), ext)
	assert.NoError(t, err)

	l := big.NewInt(18558) // (111347+1)/6
	p, err := curve.FindOrderLPoint(c, ext, rand.Reader)
	assert.NoError(t, err)
	q, err := curve.FindOrderLPoint(c, ext, rand.Reader)
	assert.NoError(t, err)

	e, err := pairing.ModifiedWeil(c, ext, p, q, l, rand.Reader)
	assert.NoError(t, err)
	assert.False(t, e.EqualInt(big.NewInt(1)))

	// Bilinearity: e_l(P, [2]Q) == e_l(P,Q)^2.
	two := big.NewInt(2)
	q2 := c.ScalarMul(two, q)
	lhs, err := pairing.ModifiedWeil(c, ext, p, q2, l, rand.Reader)
	assert.NoError(t, err)
	rhs := e.Exp(two)
	assert.True(t, lhs.Equal(rhs))
}
