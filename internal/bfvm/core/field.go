// Package core provides the finite-field and polynomial arithmetic that
// the rest of the VM is arithmetized over.
package core

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Modulus is the Goldilocks prime p = 2^64 - 2^32 + 1.
const Modulus uint64 = 18446744069414584321

// epsilon is 2^64 - p = 2^32 - 1, the reduction constant used to fold a
// carry or a high limb back into the field.
const epsilon uint64 = 0xFFFFFFFF

// FieldElement is an element of F_p, always held in canonical form
// (0 <= value < Modulus).
type FieldElement uint64

// Zero is the additive identity.
const Zero FieldElement = 0

// One is the multiplicative identity.
const One FieldElement = 1

// Generator is a generator of the multiplicative group, exposed for the
// downstream prover.
const Generator FieldElement = 7

// New reduces v modulo p and returns the corresponding element.
func New(v uint64) FieldElement {
	if v >= Modulus {
		return FieldElement(v - Modulus)
	}
	return FieldElement(v)
}

// FromInt64 converts a non-negative int64 to a field element. Negative
// values are a contract violation: callers must negate explicitly via
// Neg(New(uint64(-x))).
func FromInt64(v int64) FieldElement {
	if v < 0 {
		panic(fmt.Sprintf("core: FromInt64 called with negative value %d; use Neg(New(...)) explicitly", v))
	}
	return New(uint64(v))
}

// Uint64 returns the canonical uint64 representation.
func (a FieldElement) Uint64() uint64 {
	return uint64(a)
}

// IsZero reports whether a is the additive identity.
func (a FieldElement) IsZero() bool {
	return a == Zero
}

// reduce128 folds a 128-bit value hi*2^64+lo into canonical F_p form.
//
// Since 2^64 = p + epsilon, hi*2^64 = hi_hi*2^96 + hi_lo*2^64 (splitting hi
// into its top and bottom 32 bits) and 2^96 = -1 (mod p), the whole limb
// collapses to lo - hi_hi + hi_lo*epsilon (mod p).
func reduce128(hi, lo uint64) uint64 {
	hiHi := hi >> 32
	hiLo := hi & epsilon

	t0, borrow := bits.Sub64(lo, hiHi, 0)
	if borrow != 0 {
		t0 -= epsilon
	}

	t1 := hiLo * epsilon

	sum, carry := bits.Add64(t0, t1, 0)
	if carry != 0 {
		sum += epsilon
	}
	if sum >= Modulus {
		sum -= Modulus
	}
	return sum
}

// Add returns a+b mod p, widening to 128 bits before reduction.
func (a FieldElement) Add(b FieldElement) FieldElement {
	sum, carry := bits.Add64(uint64(a), uint64(b), 0)
	return FieldElement(reduce128(carry, sum))
}

// Neg returns the additive inverse of a.
func (a FieldElement) Neg() FieldElement {
	if a == Zero {
		return Zero
	}
	return FieldElement(Modulus - uint64(a))
}

// Sub returns a-b mod p.
func (a FieldElement) Sub(b FieldElement) FieldElement {
	return a.Add(b.Neg())
}

// Mul returns a*b mod p, widening to 128 bits before reduction.
func (a FieldElement) Mul(b FieldElement) FieldElement {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return FieldElement(reduce128(hi, lo))
}

// Inverse returns the unique y with a*y = 1 (mod p). Calling Inverse on
// zero is a fatal contract violation: zero has no multiplicative inverse.
//
// The extended-Euclidean step needs signed integers wider than 64 bits
// (intermediate coefficients can go negative and exceed int64 range), which
// Go has no native type for; math/big is used for this step only, every
// other Field operation stays on native uint64/128-bit widening.
func (a FieldElement) Inverse() FieldElement {
	if a == Zero {
		panic("core: Inverse called on zero field element")
	}

	aBig := new(big.Int).SetUint64(uint64(a))
	pBig := new(big.Int).SetUint64(Modulus)

	gcd, x, _ := new(big.Int), new(big.Int), new(big.Int)
	gcd.GCD(x, nil, aBig, pBig)
	if gcd.Cmp(big.NewInt(1)) != 0 {
		panic(fmt.Sprintf("core: %d is not invertible mod p", a))
	}

	x.Mod(x, pBig)
	if x.Sign() < 0 {
		x.Add(x, pBig)
	}
	return FieldElement(x.Uint64())
}

// Div returns a / b = a * Inverse(b). Fails fatally when b is zero.
func (a FieldElement) Div(b FieldElement) FieldElement {
	return a.Mul(b.Inverse())
}

// Pow returns a^e for e interpreted as a non-negative integer exponent,
// using square-and-multiply. Naive repeated multiplication would be O(e)
// and is unusable once e approaches p.
func (a FieldElement) Pow(e FieldElement) FieldElement {
	result := One
	base := a
	exp := uint64(e)
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result
}

// String renders the canonical decimal value.
func (a FieldElement) String() string {
	return fmt.Sprintf("%d", uint64(a))
}
