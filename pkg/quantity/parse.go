package quantity

import (
	"fmt"
	"strconv"
	"strings"
)

var unitsByName = map[string]Unit{
	"":       One,
	"m":      Meter,
	"km":     Kilometer,
	"au":     AstronomicalUnit,
	"AU":     AstronomicalUnit,
	"pc":     Parsec,
	"kpc":    Kiloparsec,
	"s":      Second,
	"d":      Day,
	"yr":     JulianYear,
	"rad":    Radian,
	"deg":    Degree,
	"arcmin": Arcminute,
	"arcsec": Arcsecond,
	"mas":    Milliarcsecond,
	"km/s":   KilometerPerSecond,
	"mas/yr": MilliarcsecondPerYear,
}

// UnitByName resolves a unit symbol from the built-in table.
func UnitByName(name string) (Unit, error) {
	u, ok := unitsByName[strings.TrimSpace(name)]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, name)
	}
	return u, nil
}

// Parse reads a scalar quantity of the form "<number><unit>", with optional
// whitespace between the two, e.g. "1.5 kpc", "10deg", "-11.1 km/s".
func Parse(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	i := len(s)
	for i > 0 {
		if _, err := strconv.ParseFloat(s[:i], 64); err == nil {
			break
		}
		i--
	}
	if i == 0 {
		return Quantity{}, fmt.Errorf("parse quantity %q: no leading number", s)
	}
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("parse quantity %q: %w", s, err)
	}
	u, err := UnitByName(s[i:])
	if err != nil {
		return Quantity{}, fmt.Errorf("parse quantity %q: %w", s, err)
	}
	return New(v, u), nil
}
