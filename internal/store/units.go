package store

import (
	"fmt"
	"strconv"
)

// Weight units.
const (
	UnitKg = "kg"
	UnitLb = "lb"
)

const lbPerKg = 2.20462262185

// KgToLb converts kilograms to pounds.
func KgToLb(kg float64) float64 { return kg * lbPerKg }

// LbToKg converts pounds to kilograms.
func LbToKg(lb float64) float64 { return lb / lbPerKg }

// ToKg converts a weight entered in unit to kilograms.
func ToKg(w float64, unit string) float64 {
	if unit == UnitLb {
		return LbToKg(w)
	}
	return w
}

// FormatWeight renders a stored kilogram weight in the display unit,
// dropping a trailing ".0" (e.g. "100 kg", "220.5 lb").
func FormatWeight(kg float64, unit string) string {
	w := kg
	if unit == UnitLb {
		w = KgToLb(kg)
	} else {
		unit = UnitKg
	}
	return fmt.Sprintf("%s %s", strconv.FormatFloat(roundTo(w, 1), 'f', -1, 64), unit)
}

func roundTo(v float64, places int) float64 {
	p := 1.0
	for i := 0; i < places; i++ {
		p *= 10
	}
	if v < 0 {
		return -float64(int64(-v*p+0.5)) / p
	}
	return float64(int64(v*p+0.5)) / p
}
