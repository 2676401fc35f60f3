// Package clipboard writes a resolved selection to the system clipboard
// using one of three transfer modes, and raises the outcome notification.
package clipboard

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"

	atotto "github.com/atotto/clipboard"

	"gomoji/internal/emoji"
)

const (
	wlCopy     = "wl-copy"
	notifySend = "notify-send"
)

// Copy dispatches the selection to exactly one transfer mode. Unicode
// selections are plain text; image selections are either a one-entry URI
// list (asPath) or the raw PNG bytes.
func Copy(sel emoji.Selection, imageDir string, asPath bool) error {
	if sel.Kind == emoji.KindUnicode {
		return CopyText(sel.Emoji)
	}
	path := filepath.Join(imageDir, sel.Emoji)
	if asPath {
		return CopyPath(path)
	}
	return CopyImage(path)
}

// CopyText places plain text on the clipboard. wl-copy is preferred so the
// content type is explicit; when it is not on PATH (X11 or non-Linux
// session) the cross-platform library takes over.
func CopyText(text string) error {
	if _, err := exec.LookPath(wlCopy); err != nil {
		return atotto.WriteAll(text)
	}
	return exec.Command(wlCopy, text, "-t", "text/plain").Run()
}

// CopyPath places a file reference on the clipboard as a URI list with a
// single entry.
func CopyPath(path string) error {
	return exec.Command(wlCopy, FileURI(path), "-t", "text/uri-list").Run()
}

// CopyImage reads the PNG in full and streams the bytes to the clipboard
// owner's stdin. The buffer is handed to exec as the process stdin, so the
// pipe is closed on every exit path and the child never blocks on input.
func CopyImage(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	cmd := exec.Command(wlCopy, "-t", "image/png")
	cmd.Stdin = bytes.NewReader(data)
	return cmd.Run()
}

// FileURI renders an absolute path as a file:// URI list entry.
func FileURI(path string) string {
	return "file://" + path
}

// Notify raises a short transient desktop notification. Fire and forget: a
// missing notify-send must never fail the run.
func Notify(msg string) {
	_ = exec.Command(notifySend, msg, "-t", "1000").Run()
}
