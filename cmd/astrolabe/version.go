package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkleist/astrolabe"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of astrolabe",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("astrolabe version %s\n", strings.TrimSpace(astrolabe.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
