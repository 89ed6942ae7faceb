package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkleist/astrolabe/pkg/quantity"
	"github.com/mkleist/astrolabe/pkg/representation"
	"github.com/mkleist/astrolabe/pkg/transform"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <kind> <component>...",
	Short: "Convert a coordinate between representations and frames",
	Long: `Parses a point in the given representation kind and converts it.

Components are quantities like "10deg", "1.5 kpc" or "4 AU". UnitSpherical
takes two components; every other kind takes three.

Examples:
  astrolabe convert spherical 10deg 20deg 1kpc --to cartesian
  astrolabe convert cartesian 1AU 0AU 0AU --src icrs --dst galactic`,
	Args: cobra.RangeArgs(3, 4),
	Run: func(cmd *cobra.Command, args []string) {
		rep, err := parsePoint(args[0], args[1:])
		if err != nil {
			fmt.Printf("Error parsing coordinate: %v\n", err)
			os.Exit(1)
		}

		src, _ := cmd.Flags().GetString("src")
		dst, _ := cmd.Flags().GetString("dst")
		if (src == "") != (dst == "") {
			fmt.Println("Error: --src and --dst must be given together")
			os.Exit(1)
		}
		if src != "" {
			sys, err := newSystem(cmd)
			if err != nil {
				fmt.Printf("Error initializing astrolabe: %v\n", err)
				os.Exit(1)
			}
			out, err := sys.Transform(transform.Motion{Position: rep}, src, dst)
			if err != nil {
				fmt.Printf("Error transforming: %v\n", err)
				os.Exit(1)
			}
			rep = out.Position
		}

		if toName, _ := cmd.Flags().GetString("to"); toName != "" {
			kind, err := representation.KindFromName(toName)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			if rep, err = representation.RepresentAs(rep, kind); err != nil {
				fmt.Printf("Error converting: %v\n", err)
				os.Exit(1)
			}
		}
		fmt.Println(rep)
	},
}

// parsePoint builds a representation from a kind name and component strings.
func parsePoint(kindName string, comps []string) (representation.Representation, error) {
	kind, err := representation.KindFromName(kindName)
	if err != nil {
		return nil, err
	}
	qs := make([]quantity.Quantity, len(comps))
	for i, c := range comps {
		if qs[i], err = quantity.Parse(c); err != nil {
			return nil, err
		}
	}
	if kind == representation.KindUnitSpherical {
		if len(qs) != 2 {
			return nil, fmt.Errorf("unitspherical takes 2 components, got %d", len(qs))
		}
		return representation.NewUnitSphericalQ(qs[0], qs[1])
	}
	if len(qs) != 3 {
		return nil, fmt.Errorf("%s takes 3 components, got %d", kind, len(qs))
	}
	switch kind {
	case representation.KindCartesian:
		return representation.NewCartesian(qs[0], qs[1], qs[2])
	case representation.KindSpherical:
		return representation.NewSphericalQ(qs[0], qs[1], qs[2])
	case representation.KindPhysicsSpherical:
		return representation.NewPhysicsSpherical(qs[0], qs[1], qs[2])
	case representation.KindCylindrical:
		return representation.NewCylindrical(qs[0], qs[1], qs[2])
	}
	return nil, fmt.Errorf("unsupported kind %s", kind)
}

func init() {
	convertCmd.Flags().String("to", "", "Target representation kind")
	convertCmd.Flags().String("src", "", "Source frame for a frame transform")
	convertCmd.Flags().String("dst", "", "Destination frame for a frame transform")
	rootCmd.AddCommand(convertCmd)
}
