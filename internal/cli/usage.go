package cli

import (
	"fmt"
	"io"
)

const usageText = `tmpmail - a temporary email right from your terminal

Usage: tmpmail [-h] [--version] [-g [ADDRESS]] [-c] [-t] [-b BROWSER] [-r | ID]

When called with no option, the inbox of the current address is listed.
An address is generated on first use.

Options:
  -h, --help                Show this help and exit
  -g, --generate [ADDRESS]  Generate a new email address, either randomly
                            or the given ADDRESS
  -c, --copy                Copy the email address to the clipboard
  -r, --recent              View the most recent message
  -t, --text                View the message as plain text, with all HTML
                            tags removed
  -b, --browser BROWSER     Browser used to display the message
                            (default: %s)
  --version                 Print the version and exit

Environment:
  TMPMAIL_CONFIG     path of the YAML configuration file
  TMPMAIL_DIR        directory holding the address and the last message
  TMPMAIL_BROWSER    default browser
  TMPMAIL_BASE_URL   provider API endpoint
  LOG_LEVEL          debug, info, warn or error (logs go to stderr)
`

func writeUsage(w io.Writer, defaultBrowser string) error {
	_, err := fmt.Fprintf(w, usageText, defaultBrowser)
	return err
}
