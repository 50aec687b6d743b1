// Copyright 2025 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civiltime

import (
	"math/big"
	"strings"
)

// Seconds is an exact decimal number of seconds.
//
// A Seconds value records its own precision, the count of fractional
// digits it was constructed with. Arithmetic carries the larger
// precision of its operands and formatting prints exactly that many
// fractional digits, so "7.50" stays distinct from "7.5" in text even
// though the two compare numerically equal.
//
// Seconds values are immutable. The zero value is 0 at precision 0.
type Seconds struct {
	coef *big.Int // scaled integer; the value is coef / 10**prec
	prec int      // count of fractional digits
}

var bigZero = new(big.Int)

var bigOne = big.NewInt(1)

// pow10tab holds the powers of ten representable in an int64.
var pow10tab = [...]int64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18,
}

func pow10(n int) *big.Int {
	if n < len(pow10tab) {
		return big.NewInt(pow10tab[n])
	}
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func (s Seconds) coefficient() *big.Int {
	if s.coef == nil {
		return bigZero
	}
	return s.coef
}

// rescaled returns the coefficient of s at precision p >= s.prec.
// The result aliases the receiver's coefficient when p == s.prec and
// must not be modified.
func (s Seconds) rescaled(p int) *big.Int {
	c := s.coefficient()
	if p == s.prec {
		return c
	}
	return new(big.Int).Mul(c, pow10(p-s.prec))
}

// SecondsOf returns n as a Seconds value at precision 0.
func SecondsOf(n int64) Seconds { return Seconds{coef: big.NewInt(n)} }

// ParseSeconds parses a decimal of the form digits[.digits] with an
// optional leading sign. The count of fractional digits, trailing
// zeros included, becomes the precision of the result.
func ParseSeconds(text string) (Seconds, error) {
	s := text
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	intPart, fracPart := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot+1:]
		if fracPart == "" {
			return Seconds{}, ErrMalformedTimestamp
		}
	}
	if intPart == "" {
		return Seconds{}, ErrMalformedTimestamp
	}
	for i := 0; i < len(intPart); i++ {
		if !digit(intPart[i]) {
			return Seconds{}, ErrMalformedTimestamp
		}
	}
	for i := 0; i < len(fracPart); i++ {
		if !digit(fracPart[i]) {
			return Seconds{}, ErrMalformedTimestamp
		}
	}
	coef, _ := new(big.Int).SetString(intPart+fracPart, 10)
	if neg {
		coef.Neg(coef)
	}
	return Seconds{coef: coef, prec: len(fracPart)}, nil
}

// String formats s with exactly its precision's count of fractional
// digits.
func (s Seconds) String() string {
	c := s.coefficient()
	abs := new(big.Int).Abs(c)
	digits := abs.String()

	var b strings.Builder
	if c.Sign() < 0 {
		b.WriteByte('-')
	}
	if s.prec == 0 {
		b.WriteString(digits)
		return b.String()
	}
	if len(digits) <= s.prec {
		b.WriteByte('0')
		b.WriteByte('.')
		for i := len(digits); i < s.prec; i++ {
			b.WriteByte('0')
		}
		b.WriteString(digits)
	} else {
		b.WriteString(digits[:len(digits)-s.prec])
		b.WriteByte('.')
		b.WriteString(digits[len(digits)-s.prec:])
	}
	return b.String()
}

// Precision returns the count of fractional digits carried by s.
func (s Seconds) Precision() int { return s.prec }

// Sign returns -1, 0 or +1 according to the sign of s.
func (s Seconds) Sign() int { return s.coefficient().Sign() }

// Cmp compares s and t numerically, returning -1, 0 or +1.
func (s Seconds) Cmp(t Seconds) int {
	p := s.prec
	if t.prec > p {
		p = t.prec
	}
	return s.rescaled(p).Cmp(t.rescaled(p))
}

// Equal reports whether s and t are numerically equal; precision is
// not compared, so 7.50 equals 7.5.
func (s Seconds) Equal(t Seconds) bool { return s.Cmp(t) == 0 }

// Add returns s+t at the larger of the two precisions.
func (s Seconds) Add(t Seconds) Seconds {
	p := s.prec
	if t.prec > p {
		p = t.prec
	}
	return Seconds{coef: new(big.Int).Add(s.rescaled(p), t.rescaled(p)), prec: p}
}

// Sub returns s-t at the larger of the two precisions.
func (s Seconds) Sub(t Seconds) Seconds {
	p := s.prec
	if t.prec > p {
		p = t.prec
	}
	return Seconds{coef: new(big.Int).Sub(s.rescaled(p), t.rescaled(p)), prec: p}
}

// AddInt returns s+n at s's precision.
func (s Seconds) AddInt(n int64) Seconds { return s.Add(SecondsOf(n)) }

// Neg returns -s at s's precision.
func (s Seconds) Neg() Seconds {
	return Seconds{coef: new(big.Int).Neg(s.coefficient()), prec: s.prec}
}

// Floor returns the largest integer not greater than s, together with
// the non-negative fractional remainder at s's precision.
func (s Seconds) Floor() (int64, Seconds) {
	q, rem := s.floorDiv(1)
	return q.Int64(), rem
}

// floorDiv returns the floor quotient of s by the positive integer n,
// along with the remainder in [0, n) at s's precision.
func (s Seconds) floorDiv(n int64) (*big.Int, Seconds) {
	den := new(big.Int).Mul(big.NewInt(n), pow10(s.prec))
	q := new(big.Int)
	r := new(big.Int)
	q.QuoRem(s.coefficient(), den, r)
	if r.Sign() < 0 {
		q.Sub(q, bigOne)
		r.Add(r, den)
	}
	return q, Seconds{coef: r, prec: s.prec}
}
