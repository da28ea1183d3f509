package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/atotto/clipboard"

	"github.com/shineum/tmpmail/internal/address"
	"github.com/shineum/tmpmail/internal/inbox"
	"github.com/shineum/tmpmail/internal/provider"
	"github.com/shineum/tmpmail/internal/render"
	"github.com/shineum/tmpmail/internal/viewer"
)

// AddressSource hands out the active address. *address.Manager satisfies it.
type AddressSource interface {
	Resolve() (address.Address, error)
	Generate(custom string) (address.Address, error)
}

// DocumentStore persists rendered messages. *storage.Store satisfies it.
type DocumentStore interface {
	WriteDocument(html string) (string, error)
}

// Displayer shows a rendered message. *viewer.Viewer satisfies it.
type Displayer interface {
	Check(browser string) error
	Show(ctx context.Context, doc viewer.Document, browser string, rawText bool) error
}

// App wires the components an action needs.
type App struct {
	Addresses AddressSource
	Provider  provider.Provider
	Documents DocumentStore
	Viewer    Displayer

	// Clipboard copies text to the system clipboard. Defaults to SystemClipboard.
	Clipboard func(text string) error

	Stdout io.Writer
	Stderr io.Writer

	Version        string
	DefaultBrowser string
}

// Run parses args, executes the resulting command and returns the process
// exit status. Failures print a single "Error: ..." line to Stderr.
// Commands that display a message verify the browser before contacting the
// provider.
func (a *App) Run(ctx context.Context, args []string) int {
	cmd, err := Parse(args, Options{Browser: a.DefaultBrowser})
	if err == nil && cmd.displays && !cmd.Options.RawText {
		err = a.Viewer.Check(cmd.Options.Browser)
	}
	if err == nil {
		slog.Debug("dispatching", "command", cmd.Name, "value", cmd.Value)
		err = cmd.run(a, ctx, cmd)
	}
	if err != nil {
		fmt.Fprintf(a.Stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

func (a *App) help(_ context.Context, _ Command) error {
	return writeUsage(a.Stdout, a.DefaultBrowser)
}

func (a *App) version(_ context.Context, _ Command) error {
	_, err := fmt.Fprintln(a.Stdout, a.Version)
	return err
}

func (a *App) generate(_ context.Context, cmd Command) error {
	addr, err := a.Addresses.Generate(cmd.Value)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.Stdout, addr)
	return err
}

func (a *App) copyAddress(_ context.Context, _ Command) error {
	addr, err := a.Addresses.Resolve()
	if err != nil {
		return err
	}

	copyFn := a.Clipboard
	if copyFn == nil {
		copyFn = SystemClipboard
	}
	if err := copyFn(addr.String()); err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.Stdout, addr)
	return err
}

func (a *App) list(ctx context.Context, _ Command) error {
	addr, err := a.Addresses.Resolve()
	if err != nil {
		return err
	}

	summaries, err := a.Provider.ListMessages(ctx, addr)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.Stdout, inbox.Format(addr.String(), summaries))
	return err
}

func (a *App) recent(ctx context.Context, cmd Command) error {
	addr, err := a.Addresses.Resolve()
	if err != nil {
		return err
	}

	summaries, err := a.Provider.ListMessages(ctx, addr)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		return &InboxEmptyError{Address: addr.String()}
	}

	return a.show(ctx, addr, summaries[0].ID, cmd.Options)
}

func (a *App) view(ctx context.Context, cmd Command) error {
	id, err := strconv.Atoi(cmd.Value)
	if err != nil {
		return fmt.Errorf("invalid message id %q: %w", cmd.Value, err)
	}

	addr, err := a.Addresses.Resolve()
	if err != nil {
		return err
	}
	return a.show(ctx, addr, id, cmd.Options)
}

// show fetches, renders, stores and displays one message.
func (a *App) show(ctx context.Context, addr address.Address, id int, opts Options) error {
	msg, err := a.Provider.ReadMessage(ctx, addr, id)
	if err != nil {
		return err
	}

	doc := render.Render(addr.String(), msg, func(filename string) string {
		return a.Provider.AttachmentURL(addr, id, filename)
	})

	path, err := a.Documents.WriteDocument(doc)
	if err != nil {
		return err
	}

	return a.Viewer.Show(ctx, viewer.Document{Path: path, HTML: doc}, opts.Browser, opts.RawText)
}

// SystemClipboard copies text with the platform clipboard utility.
func SystemClipboard(text string) error {
	if clipboard.Unsupported {
		return &viewer.MissingDependencyError{Name: "a clipboard utility (xclip, xsel or wl-copy)"}
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
