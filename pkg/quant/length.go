// Package quant defines the measurement value types used throughout smithy.
// Lengths and angles are never passed as bare numbers: every public API in
// the model layer takes these types, which makes unit mistakes a
// construction-time failure instead of a silent geometry bug.
//
// Internally Length is stored in millimeters and Angle in radians. Raw
// float64 values appear only at the kernel adapter boundary.
package quant

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidUnit is returned when a unit name is not recognized.
var ErrInvalidUnit = errors.New("invalid unit")

// Eps is the tolerance used for quantity comparison, in canonical units
// (millimeters for Length, radians for Angle). Geometric kernels have their
// own internal epsilons; this one only governs value equality in this layer.
var Eps = 1e-9

// Length is a physical length. The zero value is a zero length.
type Length struct {
	mm float64
}

// millimeters per named length unit.
var lengthUnits = map[string]float64{
	"mm": 1, "millimeter": 1, "millimeters": 1,
	"cm": 10, "centimeter": 10, "centimeters": 10,
	"dm": 100, "decimeter": 100, "decimeters": 100,
	"m": 1000, "meter": 1000, "meters": 1000,
	"in": 25.4, "inch": 25.4, "inches": 25.4,
	"ft": 304.8, "foot": 304.8, "feet": 304.8,
	"yd": 914.4, "yard": 914.4, "yards": 914.4,
}

// Millimeters returns a Length of v millimeters.
func Millimeters(v float64) Length { return Length{mm: v} }

// Centimeters returns a Length of v centimeters.
func Centimeters(v float64) Length { return Length{mm: v * 10} }

// Decimeters returns a Length of v decimeters.
func Decimeters(v float64) Length { return Length{mm: v * 100} }

// Meters returns a Length of v meters.
func Meters(v float64) Length { return Length{mm: v * 1000} }

// Inches returns a Length of v inches.
func Inches(v float64) Length { return Length{mm: v * 25.4} }

// Feet returns a Length of v feet.
func Feet(v float64) Length { return Length{mm: v * 304.8} }

// Yards returns a Length of v yards.
func Yards(v float64) Length { return Length{mm: v * 914.4} }

// ParseLength parses a string like "5 mm", "3.25in" or "-2 meters".
// Unknown units fail with ErrInvalidUnit.
func ParseLength(s string) (Length, error) {
	value, unit, err := splitQuantity(s)
	if err != nil {
		return Length{}, err
	}
	factor, ok := lengthUnits[unit]
	if !ok {
		return Length{}, fmt.Errorf("parse length %q: %w: %q", s, ErrInvalidUnit, unit)
	}
	return Length{mm: value * factor}, nil
}

// MM returns the length in millimeters. This is the canonical unit handed
// to kernel adapters.
func (l Length) MM() float64 { return l.mm }

// M returns the length in meters.
func (l Length) M() float64 { return l.mm / 1000 }

// In converts the length to the named unit for display or export.
// Unknown units fail with ErrInvalidUnit.
func (l Length) In(unit string) (float64, error) {
	factor, ok := lengthUnits[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return 0, fmt.Errorf("convert length: %w: %q", ErrInvalidUnit, unit)
	}
	return l.mm / factor, nil
}

// Add returns l + o.
func (l Length) Add(o Length) Length { return Length{mm: l.mm + o.mm} }

// Sub returns l - o.
func (l Length) Sub(o Length) Length { return Length{mm: l.mm - o.mm} }

// Mul returns the length scaled by a dimensionless factor.
func (l Length) Mul(k float64) Length { return Length{mm: l.mm * k} }

// Div returns the length divided by a dimensionless factor.
func (l Length) Div(k float64) Length { return Length{mm: l.mm / k} }

// Neg returns the negated length.
func (l Length) Neg() Length { return Length{mm: -l.mm} }

// Abs returns the absolute length.
func (l Length) Abs() Length { return Length{mm: math.Abs(l.mm)} }

// Ratio returns the dimensionless ratio l / o.
func (l Length) Ratio(o Length) float64 { return l.mm / o.mm }

// Eq reports whether two lengths are equal within Eps.
func (l Length) Eq(o Length) bool { return math.Abs(l.mm-o.mm) < Eps }

// Less reports whether l is strictly smaller than o, beyond Eps.
func (l Length) Less(o Length) bool { return o.mm-l.mm > Eps }

// IsZero reports whether the length is zero within Eps.
func (l Length) IsZero() bool { return math.Abs(l.mm) < Eps }

// IsPositive reports whether the length is strictly positive beyond Eps.
func (l Length) IsPositive() bool { return l.mm > Eps }

// String formats the length in millimeters.
func (l Length) String() string {
	return strconv.FormatFloat(l.mm, 'g', -1, 64) + "mm"
}

// splitQuantity separates "12.5 mm" (space optional) into value and unit.
func splitQuantity(s string) (float64, string, error) {
	s = strings.TrimSpace(s)
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' {
			break
		}
		i--
	}
	numPart := strings.TrimSpace(s[:i])
	unitPart := strings.ToLower(strings.TrimSpace(s[i:]))
	if numPart == "" || unitPart == "" {
		return 0, "", fmt.Errorf("parse quantity %q: %w: missing value or unit", s, ErrInvalidUnit)
	}
	value, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return 0, "", fmt.Errorf("parse quantity %q: %w", s, err)
	}
	return value, unitPart, nil
}
