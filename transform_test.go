package claylake

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	assertWithin(t, name, got, want, epsilon)
}

func assertWithin(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%g)", name, got, want, tol)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- multiplyAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	id := identityTransform
	m := [6]float64{2, 1, 3, 4, 5, 6}
	assertMatrix(t, "id*m", multiplyAffine(id, m), m)
	assertMatrix(t, "m*id", multiplyAffine(m, id), m)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 20}
	b := [6]float64{1, 0, 0, 1, 5, 3}
	got := multiplyAffine(a, b)
	assertMatrix(t, "translations", got, [6]float64{1, 0, 0, 1, 15, 23})
}

// --- translate / rotate / scale ---

func TestTranslateAffine(t *testing.T) {
	m := translateAffine(identityTransform, 10, 20)
	assertMatrix(t, "translate", m, [6]float64{1, 0, 0, 1, 10, 20})

	// Translation happens in the already-scaled space.
	m = translateAffine([6]float64{2, 0, 0, 3, 0, 0}, 10, 20)
	assertMatrix(t, "scaled translate", m, [6]float64{2, 0, 0, 3, 20, 60})
}

func TestRotateAffine90(t *testing.T) {
	m := rotateAffine(identityTransform, math.Pi/2)
	// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", m, [6]float64{0, 1, -1, 0, 0, 0})

	x, y := transformPoint(m, 1, 0)
	assertNear(t, "x", x, 0)
	assertNear(t, "y", y, 1)
}

func TestScaleAffine(t *testing.T) {
	m := scaleAffine(translateAffine(identityTransform, 5, 5), 2, 3)
	x, y := transformPoint(m, 1, 1)
	assertNear(t, "x", x, 7)
	assertNear(t, "y", y, 8)
}

func TestTransformChainOrder(t *testing.T) {
	// Same order a canvas applies: translate, rotate, scale.
	m := translateAffine(identityTransform, 100, 50)
	m = rotateAffine(m, math.Pi)
	m = scaleAffine(m, 2, 2)
	x, y := transformPoint(m, 10, 0)
	assertNear(t, "x", x, 80)
	assertNear(t, "y", y, 50)
}

// --- invertAffine ---

func TestInvertAffine(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}
	inv := invertAffine(m)
	result := multiplyAffine(m, inv)
	assertMatrix(t, "m*inv=id", result, identityTransform)
}

func TestInvertAffineComplex(t *testing.T) {
	// Scale + rotation
	m := scaleAffine(rotateAffine(translateAffine(identityTransform, 7, -3), math.Pi/3), 2, 1)
	inv := invertAffine(m)
	result := multiplyAffine(m, inv)
	assertMatrix(t, "m*inv=id", result, identityTransform)
}

func TestInvertAffineSingularReturnsIdentity(t *testing.T) {
	// ScaleX=0 produces a singular matrix (determinant=0).
	m := [6]float64{0, 0, 0, 1, 10, 20}
	inv := invertAffine(m)
	assertMatrix(t, "singular→identity", inv, identityTransform)
}

func TestInvertAffineBothZeroScales(t *testing.T) {
	m := [6]float64{0, 0, 0, 0, 50, 100}
	inv := invertAffine(m)
	assertMatrix(t, "zero-scale→identity", inv, identityTransform)
}

// --- transformRect ---

func TestTransformRectRotated(t *testing.T) {
	m := rotateAffine(identityTransform, math.Pi/2)
	r := transformRect(m, Rect{X: 0, Y: 0, Width: 10, Height: 4})
	assertNear(t, "x", r.X, -4)
	assertNear(t, "y", r.Y, 0)
	assertNear(t, "w", r.Width, 4)
	assertNear(t, "h", r.Height, 10)
}

// --- Benchmarks ---

func BenchmarkMultiplyAffine(b *testing.B) {
	a := [6]float64{2, 0.1, 0.3, 3, 100, 200}
	c := [6]float64{1.5, 0.2, 0.1, 2.5, 50, 30}
	b.ReportAllocs()
	for b.Loop() {
		_ = multiplyAffine(a, c)
	}
}
