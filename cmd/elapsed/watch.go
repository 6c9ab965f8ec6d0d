package main

import (
	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/elapsed/internal/tui"
)

func watchCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>...",
		Short: "Show files with live elapsed-time annotations",
		Long: `Opens a TUI showing each file with elapsed time appended to lines that hold a
timestamp. Annotations refresh when a file changes on disk and every refresh
interval (30s by default). Tab switches between files.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*cfgPath, true)
			if err != nil {
				return err
			}
			defer e.close()

			return tui.Run(args, e.refreshOptions())
		},
	}
}
