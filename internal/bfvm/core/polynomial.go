package core

import "fmt"

// Polynomial is a dense, non-empty, highest-degree-first coefficient
// vector over F_p: for [c0, c1, ..., ck] the polynomial is
// c0*x^k + c1*x^(k-1) + ... + ck. The zero polynomial is encoded [0].
type Polynomial struct {
	coeffs []FieldElement
}

// NewPolynomial constructs a polynomial from highest-degree-first
// coefficients. An empty coefficient vector is a fatal contract
// violation -- callers must always supply at least the constant term.
func NewPolynomial(coeffs []FieldElement) Polynomial {
	if len(coeffs) == 0 {
		panic("core: NewPolynomial called with empty coefficient vector")
	}
	cp := make([]FieldElement, len(coeffs))
	copy(cp, coeffs)
	return Polynomial{coeffs: cp}
}

// Degree returns len(coeffs)-1.
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficient returns the coefficient at the given highest-degree-first
// index (0 is the leading term).
func (p Polynomial) Coefficient(i int) FieldElement {
	return p.coeffs[i]
}

// Coefficients returns a copy of the underlying coefficient vector.
func (p Polynomial) Coefficients() []FieldElement {
	cp := make([]FieldElement, len(p.coeffs))
	copy(cp, p.coeffs)
	return cp
}

// Scale multiplies every coefficient by k.
func (p Polynomial) Scale(k FieldElement) Polynomial {
	out := make([]FieldElement, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = c.Mul(k)
	}
	return Polynomial{coeffs: out}
}

// Evaluate computes p(x) = sum_i coeffs[i] * x^(deg-i) via Horner's method,
// which for the highest-degree-first convention is simply folding left to
// right: result = ((c0*x + c1)*x + c2)*x + ... + ck.
func (p Polynomial) Evaluate(x FieldElement) FieldElement {
	result := Zero
	for _, c := range p.coeffs {
		result = result.Mul(x).Add(c)
	}
	return result
}

// align returns (longer, shorter) coefficient slices so that shorter can be
// added/subtracted into the tail of longer -- the shift implied by the
// highest-degree-first convention.
func align(a, b []FieldElement) ([]FieldElement, []FieldElement) {
	if len(a) >= len(b) {
		return a, b
	}
	return b, a
}

// Add returns p+q. The result has degree = max(deg p, deg q); the shorter
// operand's coefficients are added into the tail of the longer, which is
// algebraically correct because that tail shift is exactly the degree
// difference between the two operands.
func (p Polynomial) Add(q Polynomial) Polynomial {
	longer, shorter := align(p.coeffs, q.coeffs)
	out := make([]FieldElement, len(longer))
	copy(out, longer)
	diff := len(longer) - len(shorter)
	for i, c := range shorter {
		out[diff+i] = out[diff+i].Add(c)
	}
	return Polynomial{coeffs: out}
}

// Sub returns p-q using the same tail alignment as Add. Note this is not
// symmetric in which operand contributes the base vector, but the result is
// always algebraically p-q because the alignment shift equals the degree
// difference.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	if len(p.coeffs) >= len(q.coeffs) {
		out := make([]FieldElement, len(p.coeffs))
		copy(out, p.coeffs)
		diff := len(out) - len(q.coeffs)
		for i, c := range q.coeffs {
			out[diff+i] = out[diff+i].Sub(c)
		}
		return Polynomial{coeffs: out}
	}

	out := make([]FieldElement, len(q.coeffs))
	diff := len(out) - len(p.coeffs)
	for i := range out {
		out[i] = q.coeffs[i].Neg()
	}
	for i, c := range p.coeffs {
		out[diff+i] = out[diff+i].Add(c)
	}
	return Polynomial{coeffs: out}
}

// Mul returns the convolution of p and q; the result has degree
// deg(p)+deg(q).
func (p Polynomial) Mul(q Polynomial) Polynomial {
	out := make([]FieldElement, len(p.coeffs)+len(q.coeffs)-1)
	for i := range out {
		out[i] = Zero
	}
	for i, a := range p.coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range q.coeffs {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return Polynomial{coeffs: out}
}

// String renders the polynomial highest-degree-first, e.g. "3x^2 + 1".
func (p Polynomial) String() string {
	deg := p.Degree()
	s := ""
	for i, c := range p.coeffs {
		power := deg - i
		if c.IsZero() && len(p.coeffs) > 1 {
			continue
		}
		if s != "" {
			s += " + "
		}
		switch {
		case power == 0:
			s += c.String()
		case power == 1:
			s += fmt.Sprintf("%sx", c.String())
		default:
			s += fmt.Sprintf("%sx^%d", c.String(), power)
		}
	}
	if s == "" {
		s = "0"
	}
	return s
}

// InterpolationError is returned by LagrangeInterpolate when the input
// points cannot be interpolated.
type InterpolationError struct {
	Kind string
}

func (e *InterpolationError) Error() string {
	return "core: interpolation error: " + e.Kind
}

// ErrDuplicateX, ErrLengthMismatch, and ErrEmptyInput are the
// interpolation failure kinds.
const (
	ErrDuplicateX     = "DuplicateX"
	ErrLengthMismatch = "LengthMismatch"
	// ErrEmptyInput reports zero interpolation points, which §4.2
	// disallows outright rather than treating as a length mismatch.
	ErrEmptyInput = "EmptyInput"
)

// LagrangeInterpolate returns the unique polynomial of degree <= n-1
// passing through (xs[i], ys[i]) for all i. For each j it forms the
// Lagrange basis l_j(x) = prod_{i != j} (x - xs[i]) / (xs[j] - xs[i]) by
// iterative multiplication of linear factors followed by a scalar
// division, then sums ys[j] * l_j.
func LagrangeInterpolate(xs, ys []FieldElement) (Polynomial, error) {
	if len(xs) != len(ys) {
		return Polynomial{}, &InterpolationError{Kind: ErrLengthMismatch}
	}
	if len(xs) == 0 {
		return Polynomial{}, &InterpolationError{Kind: ErrEmptyInput}
	}

	n := len(xs)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if xs[i] == xs[j] {
				return Polynomial{}, &InterpolationError{Kind: ErrDuplicateX}
			}
		}
	}

	result := NewPolynomial([]FieldElement{Zero})
	one := NewPolynomial([]FieldElement{One})

	for j := 0; j < n; j++ {
		basis := one
		denom := One
		for i := 0; i < n; i++ {
			if i == j {
				continue
			}
			// linear factor (x - xs[i]), highest-degree-first: [1, -xs[i]]
			factor := NewPolynomial([]FieldElement{One, xs[i].Neg()})
			basis = basis.Mul(factor)
			denom = denom.Mul(xs[j].Sub(xs[i]))
		}
		basis = basis.Scale(ys[j].Div(denom))
		result = result.Add(basis)
	}

	return result, nil
}
