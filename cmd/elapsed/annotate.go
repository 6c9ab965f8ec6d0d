package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Zuo-Peng/elapsed/internal/refresh"
	"github.com/Zuo-Peng/elapsed/internal/render"
	"github.com/Zuo-Peng/elapsed/internal/surface"
)

func annotateCmd(cfgPath *string) *cobra.Command {
	var lineNumbers, plain bool

	cmd := &cobra.Command{
		Use:   "annotate <file>...",
		Short: "Print files with elapsed time appended to every line holding a timestamp",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*cfgPath, false)
			if err != nil {
				return err
			}
			defer e.close()

			// styled output only on a terminal
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				plain = true
			}

			sink := render.NewBuffer()
			ctrl := refresh.New(sink, e.refreshOptions())
			defer ctrl.Close()

			for i, path := range args {
				doc, err := surface.LoadFile(path)
				if err != nil {
					return err
				}

				ctrl.SetActive(doc)
				ctrl.Refresh()
				decos, _ := sink.Get(doc.ID())

				if len(args) > 1 {
					if i > 0 {
						fmt.Println()
					}
					fmt.Printf("==> %s <==\n", path)
				}
				fmt.Print(render.Document(doc, decos, render.Options{
					LineNumbers: lineNumbers,
					Plain:       plain,
				}))
				sink.Clear(doc.ID())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&lineNumbers, "number", "n", false, "Prefix lines with line numbers")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable ANSI styling")

	return cmd
}
