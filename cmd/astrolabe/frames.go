package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkleist/astrolabe/internal/catalog"
	"github.com/mkleist/astrolabe/internal/presentation/tui"
)

var frameDocs = map[string]string{
	"icrs": `## ICRS

The International Celestial Reference System: a barycentric equatorial frame.
Right ascension maps to longitude and declination to latitude.`,
	"galactic": `## Galactic

The IAU 1958 galactic coordinate frame at its J2000 ICRS orientation. Related
to ICRS by a fixed rotation through the north galactic pole.`,
	"lsr": `## LSR

The Local Standard of Rest: axis-aligned and co-spatial with ICRS, moving
with the mean local circular velocity. Transforms shift velocities by the
solar motion (Schönrich et al. 2010 by default) and leave positions alone.`,
}

// framesCmd represents the frames command
var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "List the registered reference frames",
	Run: func(cmd *cobra.Command, args []string) {
		sys, err := newSystem(cmd)
		if err != nil {
			fmt.Printf("Error initializing astrolabe: %v\n", err)
			os.Exit(1)
		}

		withDoc, _ := cmd.Flags().GetBool("doc")
		if !withDoc {
			for _, name := range sys.Frames() {
				fmt.Println(name)
			}
			return
		}

		var sb strings.Builder
		for _, name := range sys.Frames() {
			doc, ok := frameDocs[name]
			if !ok {
				doc = fmt.Sprintf("## %s", name)
				if f, found := sys.Graph().Frame(name); found {
					if n, isNamed := f.(catalog.Named); isNamed && n.Description != "" {
						doc += "\n\n" + n.Description
					}
				}
			}
			sb.WriteString(doc)
			sb.WriteString("\n\n")
		}

		out := sb.String()
		if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
			width, _, err := term.GetSize(fd)
			if err != nil {
				width = 0
			}
			if render, err := tui.NewRenderer(width); err == nil {
				if rendered, err := render(out); err == nil {
					out = rendered
				}
			}
		}
		fmt.Print(out)
	},
}

func init() {
	framesCmd.Flags().Bool("doc", false, "Render a description of each frame")
	rootCmd.AddCommand(framesCmd)
}
