package main

import (
	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/elapsed/internal/open"
)

func openCmd() *cobra.Command {
	var match int

	cmd := &cobra.Command{
		Use:   "open <file>",
		Short: "Open a file in $EDITOR at the line of a timestamp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return open.OpenAtMatch(args[0], match)
		},
	}

	cmd.Flags().IntVar(&match, "match", 0, "Index of the timestamp to jump to (0-based, as listed by scan)")

	return cmd
}
