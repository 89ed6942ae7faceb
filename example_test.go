package astrolabe_test

import (
	"fmt"
	"strings"

	"github.com/mkleist/astrolabe"
	"github.com/mkleist/astrolabe/pkg/quantity"
	"github.com/mkleist/astrolabe/pkg/representation"
	"github.com/mkleist/astrolabe/pkg/transform"
)

func ExampleSystem_Path() {
	sys, err := astrolabe.New()
	if err != nil {
		panic(err)
	}
	route, err := sys.Path("galactic", "lsr")
	if err != nil {
		panic(err)
	}
	fmt.Println(strings.Join(route, " -> "))
	// Output: galactic -> icrs -> lsr
}

func ExampleSystem_Transform() {
	sys, err := astrolabe.New()
	if err != nil {
		panic(err)
	}

	// Sagittarius A* in equatorial coordinates.
	pos, err := representation.NewSphericalQ(
		quantity.New(266.41684, quantity.Degree),
		quantity.New(-29.00781, quantity.Degree),
		quantity.New(8.2, quantity.Kiloparsec),
	)
	if err != nil {
		panic(err)
	}

	out, err := sys.Transform(transform.Motion{Position: pos}, "icrs", "galactic")
	if err != nil {
		panic(err)
	}
	gal := out.Position.(*representation.Spherical)
	fmt.Printf("b = %.2f deg\n", gal.Lat().Quantity().MustTo(quantity.Degree).Value())
	// Output: b = -0.05 deg
}
