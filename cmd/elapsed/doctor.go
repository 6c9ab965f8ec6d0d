package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/elapsed/internal/annotate"
	"github.com/Zuo-Peng/elapsed/internal/config"
	"github.com/Zuo-Peng/elapsed/internal/render"
)

func doctorCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: show the resolved config and a sample annotation",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := *cfgPath
			if path == "" {
				path = config.DefaultPath()
			}

			fmt.Println("=== Config ===")
			if _, err := os.Stat(path); err != nil {
				fmt.Printf("  File: %s (NOT FOUND, using defaults)\n", path)
			} else {
				fmt.Printf("  File: %s (OK)\n", path)
			}

			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			fmt.Printf("  Interval:  %s\n", cfg.Interval.Duration)
			fmt.Printf("  Debounce:  %s\n", cfg.Debounce.Duration)
			fmt.Printf("  Future:    %s\n", cfg.FuturePolicy())
			fmt.Printf("  Color:     %s (italic=%t)\n", cfg.Color, cfg.Italic)
			fmt.Printf("  Log level: %s\n", cfg.LogLevel)
			if cfg.LogFile != "" {
				fmt.Printf("  Log file:  %s\n", cfg.LogFile)
			}

			fmt.Println("\n=== Sample ===")
			sample := annotate.Format((time.Hour + time.Minute + time.Second).Milliseconds(), cfg.FuturePolicy())
			fmt.Printf("  2024-01-01T00:00:00Z%s\n", render.StyleFor(cfg.Style()).Render(sample))

			return nil
		},
	}
}
