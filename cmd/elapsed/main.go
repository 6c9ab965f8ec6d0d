package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	var cfgPath string

	rootCmd := &cobra.Command{
		Use:           "elapsed",
		Short:         "Annotate ISO-8601 timestamps in text with the time elapsed since them",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default $XDG_CONFIG_HOME/elapsed/config.toml)")

	rootCmd.AddCommand(annotateCmd(&cfgPath))
	rootCmd.AddCommand(scanCmd(&cfgPath))
	rootCmd.AddCommand(watchCmd(&cfgPath))
	rootCmd.AddCommand(openCmd())
	rootCmd.AddCommand(doctorCmd(&cfgPath))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
