package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the frame graph visualization",
	Long:  `Outputs a Mermaid diagram of the registered frames and transform edges, optionally highlighting the route between two frames.`,
	Run: func(cmd *cobra.Command, args []string) {
		sys, err := newSystem(cmd)
		if err != nil {
			fmt.Printf("Error initializing astrolabe: %v\n", err)
			os.Exit(1)
		}

		var route []string
		src, _ := cmd.Flags().GetString("route-src")
		dst, _ := cmd.Flags().GetString("route-dst")
		if src != "" && dst != "" {
			if route, err = sys.Path(src, dst); err != nil {
				fmt.Printf("Error finding route: %v\n", err)
				os.Exit(1)
			}
		}

		fmt.Print(sys.Mermaid(route...))
	},
}

func init() {
	graphCmd.Flags().String("route-src", "", "Highlight the route starting at this frame")
	graphCmd.Flags().String("route-dst", "", "Highlight the route ending at this frame")
	rootCmd.AddCommand(graphCmd)
}
