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

// Package curve implements short Weierstrass elliptic curve arithmetic
// y^2 = x^3 + a*x + b over an fq2.Field2, plus the distortion map used
// to make the Weil pairing of a point with itself non-degenerate.
package curve

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/weilcrypt/gobf/fq"
	"github.com/weilcrypt/gobf/fq2"
)

// Curve is y^2 = x^3 + a*x + b over F_{q^2}.
type Curve struct {
	A, B *fq2.Elt2
	F    *fq2.Field2
}

// New constructs the curve y^2 = x^3 + a*x + b. It returns an error if
// the discriminant 4a^3 + 27b^2 is zero (SingularCurve, spec.md §7).
func New(a, b *fq2.Elt2, f *fq2.Field2) (*Curve, error) {
	four := f.IntToFq2Int64(4)
	twentySeven := f.IntToFq2Int64(27)

	aCubed := a.Mul(a).Mul(a)
	bSquared := b.Mul(b)
	disc := four.Mul(aCubed).Add(twentySeven.Mul(bSquared))

	if disc.IsZero() {
		return nil, fmt.Errorf("curve: singular curve, discriminant is zero")
	}

	return &Curve{A: a, B: b, F: f}, nil
}

// Point is a point on a Curve: either the distinguished point at
// infinity, or an affine pair (X, Y). Infinity is a tagged variant, not
// a nil Point.
type Point struct {
	Infinity bool
	X, Y     *fq2.Elt2
}

// Inf returns the point at infinity, the curve group's identity
// element.
func Inf() *Point {
	return &Point{Infinity: true}
}

// Affine constructs the point (x, y). It does not check that the point
// lies on any particular curve; use Curve.OnCurve for that.
func Affine(x, y *fq2.Elt2) *Point {
	return &Point{X: x, Y: y}
}

// OnCurve reports whether p satisfies y^2 = x^3 + a*x + b. The point at
// infinity is on-curve by convention.
func (c *Curve) OnCurve(p *Point) bool {
	if p.Infinity {
		return true
	}
	lhs := p.Y.Mul(p.Y)
	rhs := p.X.Mul(p.X).Mul(p.X).Add(c.A.Mul(p.X)).Add(c.B)
	return lhs.Equal(rhs)
}

// Neg returns -p: (x, y) -> (x, -y), and infinity maps to itself.
func (c *Curve) Neg(p *Point) *Point {
	if p.Infinity {
		return Inf()
	}
	return Affine(p.X, p.Y.Neg())
}

// Add returns p + q following the standard short Weierstrass addition
// law: infinity is the identity, P + (-P) = infinity, doubling uses the
// tangent slope, and the general case uses the secant slope.
func (c *Curve) Add(p, q *Point) *Point {
	if p.Infinity {
		return q
	}
	if q.Infinity {
		return p
	}
	if p.X.Equal(q.X) && p.Y.Equal(q.Y.Neg()) {
		return Inf()
	}

	var lambda *fq2.Elt2
	if p.X.Equal(q.X) && p.Y.Equal(q.Y) {
		if p.Y.IsZero() {
			return Inf()
		}
		three := c.F.IntToFq2Int64(3)
		two := c.F.IntToFq2Int64(2)
		num := three.Mul(p.X.Mul(p.X)).Add(c.A)
		den := two.Mul(p.Y)
		lambda = num.Div(den)
	} else {
		num := q.Y.Sub(p.Y)
		den := q.X.Sub(p.X)
		lambda = num.Div(den)
	}

	x3 := lambda.Mul(lambda).Sub(p.X).Sub(q.X)
	y3 := lambda.Mul(p.X.Sub(x3)).Sub(p.Y)

	return Affine(x3, y3)
}

// Sub returns p - q, i.e. p + (-q).
func (c *Curve) Sub(p, q *Point) *Point {
	return c.Add(p, c.Neg(q))
}

// ScalarMul returns [n]p via binary left-to-right double-and-add.
// [0]p is infinity for any p; negative n computes [|n|](-p).
func (c *Curve) ScalarMul(n *big.Int, p *Point) *Point {
	if n.Sign() == 0 {
		return Inf()
	}
	if n.Sign() < 0 {
		return c.ScalarMul(new(big.Int).Neg(n), c.Neg(p))
	}

	result := Inf()
	for i := n.BitLen() - 1; i >= 0; i-- {
		result = c.Add(result, result)
		if n.Bit(i) == 1 {
			result = c.Add(result, p)
		}
	}

	return result
}

// Distortion applies the distortion map phi((x,y)) = (omega*x, y), where
// omega = (1,0) is a non-trivial cube root of unity in F_{q^2}. Applied
// to the order-l subgroup generated by the public base point, it
// produces a linearly independent order-l subgroup, which is what makes
// the modified Weil pairing non-degenerate.
func (c *Curve) Distortion(p *Point) *Point {
	if p.Infinity {
		return Inf()
	}
	omega := c.F.Elem(c.F.Base().ElemInt64(1), c.F.Base().ElemInt64(0))
	return Affine(p.X.Mul(omega), p.Y)
}

// Equal reports whether p and q are the same point.
func (p *Point) Equal(q *Point) bool {
	if p.Infinity || q.Infinity {
		return p.Infinity == q.Infinity
	}
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// String renders the point as "inf" or "(x,y)".
func (p *Point) String() string {
	if p.Infinity {
		return "inf"
	}
	return fmt.Sprintf("(%s,%s)", p.X, p.Y)
}

// cubeRootExponent returns (2q-1)/3, the exponent that computes cube
// roots in F_q when q%3==2: since gcd(3,q-1)==1 in that case, cubing is
// a bijection on F_q and every element has a unique cube root.
func cubeRootExponent(q *big.Int) *big.Int {
	exp := new(big.Int).Mul(big.NewInt(2), q)
	exp.Sub(exp, big.NewInt(1))
	return exp.Div(exp, big.NewInt(3))
}

// pointFromY builds the point (x,y) on y^2 = x^3 + 1 for a given
// F_q-valued y, setting x to the cube root of y^2-1. Valid only when
// the base field's modulus is 2 mod 3.
//
// x and y are lifted into F_{q^2} via the diagonal embedding
// FqToFq2 (v -> (-v,-v)), not (0,v): the diagonal is the subset of
// F_{q^2} that is closed under Add/Mul/Inv and so is the only faithful
// copy of F_q inside F_{q^2}, matching int_to_fq2 in the original
// construction.
func pointFromY(ext *fq2.Field2, y *fq.Elt) *Point {
	base := ext.Base()
	rhs := y.Mul(y).Sub(base.ElemInt64(1))
	x := rhs.Exp(cubeRootExponent(base.Modulus()))
	return Affine(ext.FqToFq2(x), ext.FqToFq2(y))
}

// RandomPoint samples a uniformly random affine point on the curve
// y^2 = x^3 + 1 over F_q, embedded in ext's extension field: it draws y
// uniformly from [0,q) and sets x to the cube root of y^2-1.
//
// This samples points on E(F_q), not the full E(F_{q^2}); it is the
// base-field half of the pairing's domain, and is only valid for the
// fixed curve y^2 = x^3 + 1 (a=0, b=1) over a base field whose modulus
// is 2 mod 3.
func RandomPoint(ext *fq2.Field2, rng io.Reader) (*Point, error) {
	yVal, err := rand.Int(rng, ext.Base().Modulus())
	if err != nil {
		return nil, err
	}
	return pointFromY(ext, ext.Base().Elem(yVal)), nil
}

// PointFromHash builds the deterministic point (x,y) on y^2 = x^3 + 1
// for a given base-field value (typically a hash output reduced mod
// q), the same way RandomPoint does for a sampled y.
func PointFromHash(ext *fq2.Field2, y *fq.Elt) *Point {
	return pointFromY(ext, y)
}

// FindOrderLPoint samples random points on E(F_q) and clears the
// cofactor 6, returning the first [6]R that is not infinity. Since
// |E(F_q)| = 6*l, [6]R then has order l unless R itself landed in the
// 6-torsion, which FindOrderLPoint detects and retries on.
func FindOrderLPoint(c *Curve, ext *fq2.Field2, rng io.Reader) (*Point, error) {
	const maxAttempts = 64
	six := big.NewInt(6)

	for i := 0; i < maxAttempts; i++ {
		r, err := RandomPoint(ext, rng)
		if err != nil {
			return nil, err
		}
		p := c.ScalarMul(six, r)
		if !p.Infinity {
			return p, nil
		}
	}

	return nil, fmt.Errorf("curve: failed to find an order-l point after %d attempts", maxAttempts)
}
