package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/elapsed/internal/annotate"
	"github.com/Zuo-Peng/elapsed/internal/scan"
	"github.com/Zuo-Peng/elapsed/internal/surface"
)

func scanCmd(cfgPath *string) *cobra.Command {
	var first, last int

	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "List timestamps in a file as TSV",
		Long: `List every timestamp found in a file, one per line, as TSV:
  line, startOffset, endOffset, timestamp, elapsed

Offsets are byte offsets into the file, lines are 1-based. Use --first and
--last to limit the scan to a range of lines.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*cfgPath, false)
			if err != nil {
				return err
			}
			defer e.close()

			doc, err := surface.LoadFile(args[0])
			if err != nil {
				return err
			}

			limited := cmd.Flags().Changed("first") || cmd.Flags().Changed("last")
			matches := scanRange(doc, first, last, limited)

			if len(matches) == 0 {
				fmt.Fprintln(os.Stderr, "No timestamps found.")
				return nil
			}

			annotations := annotate.Annotate(matches, doc, time.Now(), annotate.Options{
				Future: e.cfg.FuturePolicy(),
			})
			for _, a := range annotations {
				elapsed := strings.TrimSuffix(strings.TrimPrefix(a.Text, " ("), ")")
				fmt.Printf("%d\t%d\t%d\t%s\t%s\n",
					a.Line+1,
					a.Match.Start,
					a.Match.End,
					a.Match.Raw,
					elapsed,
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&first, "first", 1, "First line to scan (1-based)")
	cmd.Flags().IntVar(&last, "last", 0, "Last line to scan (0 = end of file)")

	return cmd
}

// scanRange scans doc, or only lines first..last (1-based, inclusive) when
// limited is set. A last of 0 or less means the end of the document.
func scanRange(doc *surface.Document, first, last int, limited bool) []scan.Match {
	if !limited {
		return scan.Scan(doc.Text())
	}
	if last <= 0 {
		last = doc.LineCount()
	}
	return scan.ScanLines(doc.Text(), first-1, last-1)
}
