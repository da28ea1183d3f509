// Package render assembles a fetched message into a displayable HTML
// document and converts such documents to plain text.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/shineum/tmpmail/internal/mail"
)

// LinkFunc returns the download URL of the named attachment.
type LinkFunc func(filename string) string

// Render builds the HTML document for msg as received by to. The header
// block is always present and carries a Date line when the provider sent
// one. The body is the HTML body verbatim when there is one, otherwise the
// text body inside a <pre> block; the two are never mixed. Attachments are
// listed after the body with their type and size, linked through link when
// non-nil.
func Render(to string, msg *mail.Message, link LinkFunc) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<pre><b>To: </b>%s\n<b>From: </b>%s\n<b>Subject: </b>%s",
		html.EscapeString(to),
		html.EscapeString(msg.From),
		html.EscapeString(msg.Subject),
	)
	if msg.Date != "" {
		fmt.Fprintf(&b, "\n<b>Date: </b>%s", html.EscapeString(msg.Date))
	}
	b.WriteString("</pre>\n")

	b.WriteString(Body(msg))

	if len(msg.Attachments) > 0 {
		b.WriteString("\n<br><b>[Attachments]</b><br>\n")
		for _, att := range msg.Attachments {
			name := html.EscapeString(att.Filename)
			if link != nil {
				name = fmt.Sprintf("<a href=\"%s\">%s</a>", html.EscapeString(link(att.Filename)), name)
			}
			fmt.Fprintf(&b, "%s%s<br>\n", name, attachmentInfo(att))
		}
	}

	return b.String()
}

// Body selects the displayable body of msg.
func Body(msg *mail.Message) string {
	if msg.HTMLBody != "" {
		return msg.HTMLBody
	}
	return "<pre>" + html.EscapeString(msg.TextBody) + "</pre>"
}

// attachmentInfo describes the type and size of an attachment, e.g.
// " (application/pdf, 1.5 KB)".
func attachmentInfo(att mail.Attachment) string {
	var parts []string
	if att.ContentType != "" {
		parts = append(parts, att.ContentType)
	}
	if att.Size > 0 {
		parts = append(parts, formatSize(att.Size))
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + html.EscapeString(strings.Join(parts, ", ")) + ")"
}

func formatSize(bytes int64) string {
	const (
		kb = 1024
		mb = kb * 1024
	)

	switch {
	case bytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(mb))
	case bytes >= kb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(kb))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
