package open

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/Zuo-Peng/elapsed/internal/scan"
	"github.com/Zuo-Peng/elapsed/internal/surface"
)

// MatchLine returns the 1-based line of the n-th (0-based) timestamp in doc.
func MatchLine(doc *surface.Document, n int) (int, error) {
	matches := scan.Scan(doc.Text())
	if len(matches) == 0 {
		return 0, fmt.Errorf("no timestamps in %s", doc.ID())
	}
	if n < 0 || n >= len(matches) {
		return 0, fmt.Errorf("match %d out of range (found %d)", n, len(matches))
	}
	return doc.PositionAt(matches[n].Start).Line + 1, nil
}

// OpenAtMatch opens path in $EDITOR at the line of timestamp n.
func OpenAtMatch(path string, n int) error {
	doc, err := surface.LoadFile(path)
	if err != nil {
		return err
	}

	lineNum, err := MatchLine(doc, n)
	if err != nil {
		return err
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "less"
	}

	return editorCommand(editor, doc.ID(), lineNum).Run()
}

func editorCommand(editor, filePath string, lineNum int) *exec.Cmd {
	var cmd *exec.Cmd

	switch {
	case strings.Contains(editor, "vim") || strings.Contains(editor, "nvim"):
		cmd = exec.Command(editor, fmt.Sprintf("+%d", lineNum), filePath)
	case strings.Contains(editor, "code"):
		cmd = exec.Command(editor, "--goto", filePath+":"+strconv.Itoa(lineNum))
	case strings.Contains(editor, "less"):
		cmd = exec.Command(editor, "+"+strconv.Itoa(lineNum), filePath)
	default:
		cmd = exec.Command(editor, filePath)
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}
