// Package picker runs an external interactive selection program and speaks
// its line protocol: one candidate per stdin line, the chosen line on stdout.
package picker

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"gomoji/internal/emoji"
)

// Command describes how to invoke a picker program.
type Command struct {
	Name string
	Args []string
}

// Encode renders one candidate as a protocol line. Image candidates carry
// the icon annotation some pickers (fuzzel) understand:
// "<name>\x00icon\x1f<absolute-path>".
func Encode(c emoji.Candidate) string {
	if c.IconPath != "" {
		return c.Display + "\x00icon\x1f" + c.IconPath
	}
	return c.Display
}

// Run spawns the picker, streams the candidates to its stdin, closes stdin
// and waits for the program to exit. The entire stdout, trimmed of
// surrounding whitespace, is the selection; empty means the user declined.
//
// The wait is unbounded. Cancelling the picker (escape, window closed)
// surfaces as a non-zero exit with empty output, which is the normal "no
// selection" path rather than an error; only a failure to spawn or a broken
// stdout stream propagates.
func Run(cmd Command, cands []emoji.Candidate) (string, error) {
	c := exec.Command(cmd.Name, cmd.Args...)

	stdin, err := c.StdinPipe()
	if err != nil {
		return "", err
	}
	var stdout bytes.Buffer
	c.Stdout = &stdout

	if err := c.Start(); err != nil {
		return "", fmt.Errorf("starting picker %s: %w", cmd.Name, err)
	}

	writeCandidates(stdin, cands)

	if err := c.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("waiting for picker %s: %w", cmd.Name, err)
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}

// writeCandidates feeds the protocol lines and always closes the pipe so
// the picker sees EOF. Write errors are not failures: a picker is free to
// stop reading as soon as the user has chosen.
func writeCandidates(w io.WriteCloser, cands []emoji.Candidate) {
	defer w.Close()
	bw := bufio.NewWriter(w)
	for _, c := range cands {
		if _, err := bw.WriteString(Encode(c) + "\n"); err != nil {
			return
		}
	}
	bw.Flush()
}
