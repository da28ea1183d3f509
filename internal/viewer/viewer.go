// Package viewer hands a rendered message to the user, either through an
// external terminal browser or as plain text on a writer.
package viewer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/shineum/tmpmail/internal/render"
)

// DefaultBrowser is the terminal browser used when none is configured.
const DefaultBrowser = "w3m"

// MissingDependencyError is returned when the configured browser binary
// cannot be found.
type MissingDependencyError struct {
	Name string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("could not find %s, make sure it is installed and in your PATH", e.Name)
}

// Document is a rendered message and the scratch file it was written to.
type Document struct {
	Path string
	HTML string
}

// Viewer displays documents.
type Viewer struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New creates a Viewer attached to the process's standard streams.
func New() *Viewer {
	return &Viewer{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
}

// NewWithWriter creates a Viewer that writes to w and reads no input.
// This is useful for testing.
func NewWithWriter(w io.Writer) *Viewer {
	return &Viewer{stdin: strings.NewReader(""), stdout: w, stderr: w}
}

// Check reports whether the program named by browser can be found,
// returning *MissingDependencyError when it cannot.
func Check(browser string) error {
	_, _, err := lookup(browser)
	return err
}

// lookup resolves the browser command line to an executable and its extra
// arguments. An empty command line selects DefaultBrowser.
func lookup(browser string) (string, []string, error) {
	fields := strings.Fields(browser)
	if len(fields) == 0 {
		fields = []string{DefaultBrowser}
	}

	bin, err := exec.LookPath(fields[0])
	if err != nil {
		return "", nil, &MissingDependencyError{Name: fields[0]}
	}
	return bin, fields[1:], nil
}

// Check verifies the browser ahead of any network work.
func (v *Viewer) Check(browser string) error {
	return Check(browser)
}

// Show displays doc. In raw-text mode the markup is stripped and the text is
// written out; otherwise browser is run on the document's path and Show
// blocks until it exits. browser may carry extra arguments ("lynx -nocolor").
func (v *Viewer) Show(ctx context.Context, doc Document, browser string, rawText bool) error {
	if rawText {
		_, err := fmt.Fprintln(v.stdout, render.ToPlainText(doc.HTML))
		return err
	}

	bin, args, err := lookup(browser)
	if err != nil {
		return err
	}

	args = append(args, doc.Path)
	slog.Debug("launching browser", "browser", bin, "args", args)

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = v.stdin
	cmd.Stdout = v.stdout
	cmd.Stderr = v.stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("browser %s failed: %w", bin, err)
	}
	return nil
}
