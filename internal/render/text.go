package render

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToPlainText strips all markup from an HTML document. Block elements start
// new lines, whitespace is collapsed outside <pre>, script and style content
// is dropped, and entities are decoded. Links keep their target after the
// link text.
func ToPlainText(doc string) string {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		// html.Parse only fails on reader errors, which a strings.Reader never returns.
		return doc
	}

	var w textWriter
	w.walk(root, false)
	return strings.TrimSpace(w.b.String())
}

// blockBreaks is the number of line breaks placed around block elements.
var blockBreaks = map[atom.Atom]int{
	atom.P:          2,
	atom.Pre:        2,
	atom.Table:      2,
	atom.Blockquote: 2,
	atom.H1:         2,
	atom.H2:         2,
	atom.H3:         2,
	atom.H4:         2,
	atom.H5:         2,
	atom.H6:         2,
	atom.Div:        1,
	atom.Tr:         1,
	atom.Li:         1,
	atom.Ul:         1,
	atom.Ol:         1,
	atom.Hr:         1,
	atom.Section:    1,
	atom.Article:    1,
	atom.Header:     1,
	atom.Footer:     1,
}

type textWriter struct {
	b      strings.Builder
	breaks int
	space  bool
}

func (w *textWriter) walk(n *html.Node, pre bool) {
	switch n.Type {
	case html.TextNode:
		if pre {
			w.raw(n.Data)
		} else {
			w.inline(n.Data)
		}
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Head, atom.Title:
			return
		case atom.Br:
			w.lineFeed()
			return
		case atom.Pre:
			pre = true
		}
	}

	breaks := 0
	if n.Type == html.ElementNode {
		breaks = blockBreaks[n.DataAtom]
	}
	w.lineBreak(breaks)

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, pre)
	}

	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		w.linkTarget(n)
	}
	w.lineBreak(breaks)
}

// inline writes text with runs of whitespace collapsed to a single space.
func (w *textWriter) inline(s string) {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r < 0x80 && isSpace(byte(r))
	})
	if len(words) == 0 {
		if s != "" && w.b.Len() > 0 {
			w.space = true
		}
		return
	}

	if isSpace(s[0]) && w.b.Len() > 0 {
		w.space = true
	}
	w.flush()
	w.b.WriteString(strings.Join(words, " "))
	w.space = isSpace(s[len(s)-1])
}

// raw writes preformatted text unchanged.
func (w *textWriter) raw(s string) {
	if s == "" {
		return
	}
	w.flush()
	w.b.WriteString(s)
}

// lineBreak requests at least n line breaks before the next text.
func (w *textWriter) lineBreak(n int) {
	if n == 0 || w.b.Len() == 0 {
		return
	}
	if n > w.breaks {
		w.breaks = n
	}
	w.space = false
}

// lineFeed adds one line break, so consecutive <br> elements accumulate.
func (w *textWriter) lineFeed() {
	if w.b.Len() == 0 {
		return
	}
	w.breaks++
	w.space = false
}

func (w *textWriter) flush() {
	if w.breaks > 0 {
		w.b.WriteString(strings.Repeat("\n", w.breaks))
		w.breaks = 0
	} else if w.space {
		w.b.WriteByte(' ')
	}
	w.space = false
}

func (w *textWriter) linkTarget(n *html.Node) {
	var href string
	for _, attr := range n.Attr {
		if attr.Key == "href" {
			href = attr.Val
		}
	}
	if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
		return
	}
	if strings.TrimSpace(textContent(n)) == href {
		return
	}
	w.space = true
	w.flush()
	w.b.WriteString("<" + href + ">")
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
