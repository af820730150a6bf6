package quant

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Angle is a physical angle. The zero value is a zero angle.
type Angle struct {
	rad float64
}

// radians per named angle unit.
var angleUnits = map[string]float64{
	"rad": 1, "radian": 1, "radians": 1,
	"deg": math.Pi / 180, "degree": math.Pi / 180, "degrees": math.Pi / 180,
	"turn": 2 * math.Pi, "turns": 2 * math.Pi,
}

// Radians returns an Angle of v radians.
func Radians(v float64) Angle { return Angle{rad: v} }

// Degrees returns an Angle of v degrees.
func Degrees(v float64) Angle { return Angle{rad: v * math.Pi / 180} }

// FullTurn is one complete revolution.
func FullTurn() Angle { return Angle{rad: 2 * math.Pi} }

// ParseAngle parses a string like "90 deg" or "1.5708rad".
// Unknown units fail with ErrInvalidUnit.
func ParseAngle(s string) (Angle, error) {
	value, unit, err := splitQuantity(s)
	if err != nil {
		return Angle{}, err
	}
	factor, ok := angleUnits[unit]
	if !ok {
		return Angle{}, fmt.Errorf("parse angle %q: %w: %q", s, ErrInvalidUnit, unit)
	}
	return Angle{rad: value * factor}, nil
}

// Rad returns the angle in radians. This is the canonical unit handed to
// kernel adapters.
func (a Angle) Rad() float64 { return a.rad }

// Deg returns the angle in degrees.
func (a Angle) Deg() float64 { return a.rad * 180 / math.Pi }

// In converts the angle to the named unit for display or export.
func (a Angle) In(unit string) (float64, error) {
	factor, ok := angleUnits[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return 0, fmt.Errorf("convert angle: %w: %q", ErrInvalidUnit, unit)
	}
	return a.rad / factor, nil
}

// Add returns a + o.
func (a Angle) Add(o Angle) Angle { return Angle{rad: a.rad + o.rad} }

// Sub returns a - o.
func (a Angle) Sub(o Angle) Angle { return Angle{rad: a.rad - o.rad} }

// Mul returns the angle scaled by a dimensionless factor.
func (a Angle) Mul(k float64) Angle { return Angle{rad: a.rad * k} }

// Div returns the angle divided by a dimensionless factor.
func (a Angle) Div(k float64) Angle { return Angle{rad: a.rad / k} }

// Neg returns the negated angle.
func (a Angle) Neg() Angle { return Angle{rad: -a.rad} }

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 { return math.Sin(a.rad) }

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 { return math.Cos(a.rad) }

// Eq reports whether two angles are equal within Eps.
func (a Angle) Eq(o Angle) bool { return math.Abs(a.rad-o.rad) < Eps }

// IsZero reports whether the angle is zero within Eps.
func (a Angle) IsZero() bool { return math.Abs(a.rad) < Eps }

// String formats the angle in degrees.
func (a Angle) String() string {
	return strconv.FormatFloat(a.Deg(), 'g', -1, 64) + "deg"
}
