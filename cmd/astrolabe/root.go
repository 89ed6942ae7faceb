package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkleist/astrolabe"
	"github.com/mkleist/astrolabe/internal/logging"
	"github.com/mkleist/astrolabe/internal/presentation/tui"
)

var rootCmd = &cobra.Command{
	Use:   "astrolabe",
	Short: "Astrolabe converts astronomical coordinates between representations and frames",
	Long: `Astrolabe is a typed coordinate algebra: unit-aware quantities, five
interconvertible representations and a directed graph of reference-frame
transforms. Extra frames can be loaded from YAML catalogs.`,
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner()
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log verbosity (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringArray("catalog", nil, "YAML frame catalog to load (repeatable)")
}

// newSystem builds a System from the persistent flags.
func newSystem(cmd *cobra.Command) (*astrolabe.System, error) {
	levelName, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	opts := []astrolabe.Option{astrolabe.WithLogger(logging.New(level))}
	catalogs, _ := cmd.Flags().GetStringArray("catalog")
	for _, c := range catalogs {
		opts = append(opts, astrolabe.WithCatalog(c))
	}
	return astrolabe.New(opts...)
}
