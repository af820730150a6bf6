package quant

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Area is a physical area, stored in square millimeters. Areas are produced
// by shape queries and are not accepted as construction parameters.
type Area struct {
	mm2 float64
}

var areaUnits = map[string]float64{
	"mm2": 1, "mm²": 1,
	"cm2": 100, "cm²": 100,
	"m2": 1e6, "m²": 1e6,
	"in2": 645.16, "in²": 645.16,
}

// SquareMillimeters returns an Area of v mm².
func SquareMillimeters(v float64) Area { return Area{mm2: v} }

// SquareMeters returns an Area of v m².
func SquareMeters(v float64) Area { return Area{mm2: v * 1e6} }

// MM2 returns the area in square millimeters.
func (a Area) MM2() float64 { return a.mm2 }

// M2 returns the area in square meters.
func (a Area) M2() float64 { return a.mm2 / 1e6 }

// In converts the area to the named unit ("mm2", "cm2", "m2", "in2").
func (a Area) In(unit string) (float64, error) {
	factor, ok := areaUnits[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return 0, fmt.Errorf("convert area: %w: %q", ErrInvalidUnit, unit)
	}
	return a.mm2 / factor, nil
}

// Add returns a + o.
func (a Area) Add(o Area) Area { return Area{mm2: a.mm2 + o.mm2} }

// Eq reports whether two areas are equal within tol (relative, dimensionless).
func (a Area) Eq(o Area, tol float64) bool {
	return relClose(a.mm2, o.mm2, tol)
}

// IsZero reports whether the area is zero within Eps.
func (a Area) IsZero() bool { return math.Abs(a.mm2) < Eps }

// String formats the area in square millimeters.
func (a Area) String() string {
	return strconv.FormatFloat(a.mm2, 'g', -1, 64) + "mm2"
}

// Volume is a physical volume, stored in cubic millimeters. Volumes are
// produced by shape queries and are not accepted as construction parameters.
type Volume struct {
	mm3 float64
}

var volumeUnits = map[string]float64{
	"mm3": 1, "mm³": 1,
	"cm3": 1e3, "cm³": 1e3,
	"m3": 1e9, "m³": 1e9,
	"in3": 16387.064, "in³": 16387.064,
}

// CubicMillimeters returns a Volume of v mm³.
func CubicMillimeters(v float64) Volume { return Volume{mm3: v} }

// CubicMeters returns a Volume of v m³.
func CubicMeters(v float64) Volume { return Volume{mm3: v * 1e9} }

// MM3 returns the volume in cubic millimeters.
func (v Volume) MM3() float64 { return v.mm3 }

// M3 returns the volume in cubic meters.
func (v Volume) M3() float64 { return v.mm3 / 1e9 }

// In converts the volume to the named unit ("mm3", "cm3", "m3", "in3").
func (v Volume) In(unit string) (float64, error) {
	factor, ok := volumeUnits[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return 0, fmt.Errorf("convert volume: %w: %q", ErrInvalidUnit, unit)
	}
	return v.mm3 / factor, nil
}

// Add returns v + o.
func (v Volume) Add(o Volume) Volume { return Volume{mm3: v.mm3 + o.mm3} }

// Eq reports whether two volumes are equal within tol (relative, dimensionless).
func (v Volume) Eq(o Volume, tol float64) bool {
	return relClose(v.mm3, o.mm3, tol)
}

// IsZero reports whether the volume is zero within Eps.
func (v Volume) IsZero() bool { return math.Abs(v.mm3) < Eps }

// String formats the volume in cubic millimeters.
func (v Volume) String() string {
	return strconv.FormatFloat(v.mm3, 'g', -1, 64) + "mm3"
}

// relClose reports whether a and b agree to within tol, relative to the
// larger magnitude, falling back to absolute comparison near zero.
func relClose(a, b, tol float64) bool {
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		return diff < tol
	}
	return diff < tol*scale
}
