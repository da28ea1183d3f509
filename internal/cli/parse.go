// Package cli parses the command line and runs the selected action.
package cli

import (
	"context"
	"strings"
)

// Options accumulates the settings flags that precede an action.
type Options struct {
	// Browser is the command used to display HTML messages.
	Browser string

	// RawText strips the markup and prints the message instead of
	// launching the browser.
	RawText bool
}

// Command is the outcome of parsing: the action to run, its argument and the
// options accumulated up to it.
type Command struct {
	Name    string
	Value   string
	Options Options

	run actionFunc
	// displays is set for commands that end in showing a message.
	displays bool
}

type actionFunc func(a *App, ctx context.Context, cmd Command) error

// valueMode says whether a flag consumes the following argument.
type valueMode int

const (
	noValue valueMode = iota
	requiredValue
	optionalValue
)

// step is one row of the dispatch table. Exactly one of mutate and action
// is set: mutators update the options and parsing continues, actions end
// parsing immediately.
type step struct {
	name     string
	value    valueMode
	mutate   func(opts *Options, value string)
	action   actionFunc
	displays bool
}

var (
	helpStep     = step{name: "help", action: (*App).help}
	versionStep  = step{name: "version", action: (*App).version}
	generateStep = step{name: "generate", value: optionalValue, action: (*App).generate}
	copyStep     = step{name: "copy", action: (*App).copyAddress}
	recentStep   = step{name: "recent", action: (*App).recent, displays: true}
	browserStep  = step{name: "browser", value: requiredValue, mutate: func(opts *Options, v string) { opts.Browser = v }}
	textStep     = step{name: "text", mutate: func(opts *Options, _ string) { opts.RawText = true }}
)

var dispatchTable = map[string]step{
	"-h":         helpStep,
	"--help":     helpStep,
	"--version":  versionStep,
	"-g":         generateStep,
	"--generate": generateStep,
	"-c":         copyStep,
	"--copy":     copyStep,
	"-r":         recentStep,
	"--recent":   recentStep,
	"-b":         browserStep,
	"--browser":  browserStep,
	"-t":         textStep,
	"--text":     textStep,
}

// Parse walks args left to right, applying option flags to a copy of
// defaults until the first action-producing argument. Arguments after that
// are never examined. With no action the inbox is listed.
func Parse(args []string, defaults Options) (Command, error) {
	opts := defaults

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if isMessageID(arg) {
			return Command{Name: "view", Value: arg, Options: opts, run: (*App).view, displays: true}, nil
		}

		st, ok := dispatchTable[arg]
		if !ok {
			return Command{}, &UnknownOptionError{Option: arg}
		}

		var value string
		switch st.value {
		case requiredValue:
			if i+1 >= len(args) {
				return Command{}, &MissingValueError{Option: arg}
			}
			i++
			value = args[i]
		case optionalValue:
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
				value = args[i]
			}
		}

		if st.mutate != nil {
			st.mutate(&opts, value)
			continue
		}
		return Command{Name: st.name, Value: value, Options: opts, run: st.action, displays: st.displays}, nil
	}

	return Command{Name: "list", Options: opts, run: (*App).list}, nil
}

// isMessageID reports whether arg looks like a numeric message id.
func isMessageID(arg string) bool {
	if arg == "" {
		return false
	}
	for _, r := range arg {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
