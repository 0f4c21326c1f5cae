// Package ease maps normalized animation time to progress with Bezier curves.
package ease

import (
	"fmt"
	"strings"

	"github.com/Faultbox/affinity/pkg/math"
)

// Curve names a fixed easing curve.
type Curve int

const (
	Linear Curve = iota
	EaseIn
	EaseOut
	EaseInOut
	QuadEaseIn
	QuadEaseOut
	BackInOut
)

// QuadraticBasis is the quadratic Bezier basis matrix; B(t) = [t² t 1] · M · P.
var QuadraticBasis = math.Mat3{
	1, -2, 1,
	-2, 2, 0,
	1, 0, 0,
}

// CubicBasis is the cubic Bezier basis matrix; B(t) = [t³ t² t 1] · M · P.
var CubicBasis = math.Mat4{
	-1, 3, -3, 1,
	3, -6, 3, 0,
	-3, 3, 0, 0,
	1, 0, 0, 0,
}

// Row-vector times basis, precomputed as basisᵀ · column.
var (
	quadT  = QuadraticBasis.Transposed()
	cubicT = CubicBasis.Transposed()
)

// Control values per curve. The first is always 0 and the last always 1, so
// every curve starts at 0 and ends at 1. Inner values outside [0,1] overshoot.
type control struct {
	name  string
	cubic bool
	p     math.Vec4 // quadratic curves use X, Y, Z
}

var curves = [...]control{
	Linear:      {"linear", true, math.Vec4{X: 0, Y: 1.0 / 3, Z: 2.0 / 3, W: 1}},
	EaseIn:      {"ease-in", true, math.Vec4{X: 0, Y: 0, Z: 0.5, W: 1}},
	EaseOut:     {"ease-out", true, math.Vec4{X: 0, Y: 0.5, Z: 1, W: 1}},
	EaseInOut:   {"ease-in-out", true, math.Vec4{X: 0, Y: 0, Z: 1, W: 1}},
	QuadEaseIn:  {"quad-ease-in", false, math.Vec4{X: 0, Y: 0, Z: 1}},
	QuadEaseOut: {"quad-ease-out", false, math.Vec4{X: 0, Y: 1, Z: 1}},
	BackInOut:   {"back-in-out", true, math.Vec4{X: 0, Y: -0.4, Z: 1.4, W: 1}},
}

// Curves returns every supported curve.
func Curves() []Curve {
	out := make([]Curve, len(curves))
	for i := range curves {
		out[i] = Curve(i)
	}
	return out
}

// Valid reports whether c names a known curve.
func (c Curve) Valid() bool {
	return c >= 0 && int(c) < len(curves)
}

func (c Curve) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Curve(%d)", int(c))
	}
	return curves[c].name
}

// ParseCurve parses a curve name such as "ease-in-out". Underscores are
// accepted in place of dashes.
func ParseCurve(s string) (Curve, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, c := range curves {
		if c.name == name {
			return Curve(i), nil
		}
	}
	return Linear, fmt.Errorf("unknown easing curve %q", s)
}

// Ease evaluates the curve at t. t is clamped to [0,1]; the result is 0 at
// t=0 and 1 at t=1 but may leave [0,1] in between for overshooting curves.
func (c Curve) Ease(t float32) float32 {
	t = min(max(t, 0), 1)
	if !c.Valid() {
		return t
	}
	ctl := curves[c]
	if ctl.cubic {
		t2 := t * t
		coeff := cubicT.MulVec(math.Vec4{X: t2 * t, Y: t2, Z: t, W: 1})
		return coeff.Dot(ctl.p)
	}
	coeff := quadT.MulVec(math.Vec3{X: t * t, Y: t, Z: 1})
	return coeff.Dot(ctl.p.Vec3())
}

// MarshalText implements encoding.TextMarshaler.
func (c Curve) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid easing curve %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Curve) UnmarshalText(text []byte) error {
	parsed, err := ParseCurve(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
