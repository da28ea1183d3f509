// Package inbox renders an inbox listing as an aligned text table.
package inbox

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/shineum/tmpmail/internal/mail"
)

// Delimiter separates the fields of an encoded row. It is deliberately not
// whitespace so subjects keep their internal spaces.
const Delimiter = "||"

// columnGap is printed between aligned columns.
const columnGap = "  "

// emptyInbox is printed in place of the table when there are no messages.
const emptyInbox = "No new mail"

// Format renders the inbox of addr. The result has no trailing newline.
func Format(addr string, summaries []mail.Summary) string {
	header := fmt.Sprintf("[ Inbox for %s ]\n\n", addr)
	if len(summaries) == 0 {
		return header + emptyInbox
	}

	rows := make([]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, EncodeRow(strconv.Itoa(s.ID), s.From, s.Subject))
	}

	return header + Align(rows)
}

// escape marks the next byte of an encoded field as literal.
const escape = '\\'

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// EncodeRow joins fields with Delimiter. Pipes and escape characters inside
// a field are escaped, so SplitRow returns exactly the original fields even
// when a field starts or ends with a pipe. Line breaks become spaces.
func EncodeRow(fields ...string) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString(Delimiter)
		}
		f = lineBreaks.Replace(f)
		for j := 0; j < len(f); j++ {
			if f[j] == '|' || f[j] == escape {
				b.WriteByte(escape)
			}
			b.WriteByte(f[j])
		}
	}
	return b.String()
}

// SplitRow is the inverse of EncodeRow. It splits only on unescaped
// Delimiter, never on whitespace.
func SplitRow(row string) []string {
	var (
		cells []string
		cell  strings.Builder
	)
	for i := 0; i < len(row); i++ {
		switch {
		case row[i] == escape && i+1 < len(row):
			i++
			cell.WriteByte(row[i])
		case strings.HasPrefix(row[i:], Delimiter):
			cells = append(cells, cell.String())
			cell.Reset()
			i += len(Delimiter) - 1
		default:
			cell.WriteByte(row[i])
		}
	}
	return append(cells, cell.String())
}

// Align splits each row with SplitRow and pads every column to its widest
// cell, measured in terminal cells. The last column is never padded.
func Align(rows []string) string {
	cells := make([][]string, len(rows))
	var widths []int

	for i, row := range rows {
		cells[i] = SplitRow(row)
		for j, cell := range cells[i] {
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}

	var b strings.Builder
	for i, row := range cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j == len(row)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(runewidth.FillRight(cell, widths[j]))
			b.WriteString(columnGap)
		}
	}
	return b.String()
}
