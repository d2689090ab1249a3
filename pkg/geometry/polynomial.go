package geometry

import "math"

// Polynomial root finding for the analytic shapes. The cubic and quartic
// solvers follow the closed-form reduction to depressed polynomials; roots of
// the quartic are refined with a few Newton steps against the original
// coefficients because the closed form loses precision for the torus.

const (
	equationEpsilon = 1e-9
	newtonSteps     = 4
)

func isZero(x float64) bool {
	return x > -equationEpsilon && x < equationEpsilon
}

// solveQuadratic returns the real roots of a*x^2 + b*x + c = 0. A degenerate
// leading coefficient falls back to the linear equation.
func solveQuadratic(a, b, c float64) []float64 {
	if isZero(a) {
		if isZero(b) {
			return nil
		}
		return []float64{-c / b}
	}

	p := b / (2 * a)
	q := c / a
	discriminant := p*p - q

	switch {
	case isZero(discriminant):
		return []float64{-p}
	case discriminant < 0:
		return nil
	default:
		sqrtD := math.Sqrt(discriminant)
		return []float64{-p - sqrtD, -p + sqrtD}
	}
}

// solveCubic returns the real roots of a*x^3 + b*x^2 + c*x + d = 0
func solveCubic(a, b, c, d float64) []float64 {
	if isZero(a) {
		return solveQuadratic(b, c, d)
	}

	// Normal form x^3 + A x^2 + B x + C = 0
	A := b / a
	B := c / a
	C := d / a

	// Substitute x = y - A/3 to eliminate the quadratic term: y^3 + 3p y + 2q = 0
	sqA := A * A
	p := (-sqA/3 + B) / 3
	q := (2.0/27.0*A*sqA - A*B/3 + C) / 2

	cbP := p * p * p
	discriminant := q*q + cbP

	var roots []float64
	switch {
	case isZero(discriminant):
		if isZero(q) {
			roots = []float64{0}
		} else {
			u := math.Cbrt(-q)
			roots = []float64{2 * u, -u}
		}
	case discriminant < 0:
		// Three real roots
		phi := math.Acos(-q/math.Sqrt(-cbP)) / 3
		t := 2 * math.Sqrt(-p)
		roots = []float64{
			t * math.Cos(phi),
			-t * math.Cos(phi+math.Pi/3),
			-t * math.Cos(phi-math.Pi/3),
		}
	default:
		sqrtD := math.Sqrt(discriminant)
		roots = []float64{math.Cbrt(sqrtD-q) - math.Cbrt(sqrtD+q)}
	}

	sub := A / 3
	for i := range roots {
		roots[i] -= sub
	}
	return roots
}

// solveQuartic returns the real roots of
// a*x^4 + b*x^3 + c*x^2 + d*x + e = 0
func solveQuartic(a, b, c, d, e float64) []float64 {
	if isZero(a) {
		return solveCubic(b, c, d, e)
	}

	// Normal form x^4 + A x^3 + B x^2 + C x + D = 0
	A := b / a
	B := c / a
	C := d / a
	D := e / a

	// Substitute x = y - A/4 to eliminate the cubic term: y^4 + p y^2 + q y + r = 0
	sqA := A * A
	p := -3.0/8.0*sqA + B
	q := sqA*A/8 - A*B/2 + C
	r := -3.0/256.0*sqA*sqA + sqA*B/16 - A*C/4 + D

	var roots []float64
	if isZero(r) {
		// y (y^3 + p y + q) = 0
		roots = append(solveCubic(1, 0, p, q), 0)
	} else {
		// Any real root of the resolvent cubic splits the quartic into two
		// quadratics
		resolvent := solveCubic(1, -p/2, -r, r*p/2-q*q/8)
		if len(resolvent) == 0 {
			return nil
		}
		z := resolvent[0]

		u := z*z - r
		v := 2*z - p

		switch {
		case isZero(u):
			u = 0
		case u > 0:
			u = math.Sqrt(u)
		default:
			return nil
		}

		switch {
		case isZero(v):
			v = 0
		case v > 0:
			v = math.Sqrt(v)
		default:
			return nil
		}

		if q < 0 {
			v = -v
		}
		roots = append(roots, solveQuadratic(1, v, z-u)...)
		roots = append(roots, solveQuadratic(1, -v, z+u)...)
	}

	sub := A / 4
	for i := range roots {
		roots[i] = polishRoot(roots[i]-sub, a, b, c, d, e)
	}
	return roots
}

// polishRoot refines a quartic root with Newton's method
func polishRoot(x, a, b, c, d, e float64) float64 {
	for i := 0; i < newtonSteps; i++ {
		f := (((a*x+b)*x+c)*x+d)*x + e
		df := ((4*a*x+3*b)*x+2*c)*x + d
		if df == 0 {
			break
		}
		next := x - f/df
		if math.IsNaN(next) || math.IsInf(next, 0) {
			break
		}
		x = next
	}
	return x
}
