package goquery

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Elements rendered as paragraphs: separated from siblings by a blank line.
var paragraphElements = map[atom.Atom]bool{
	atom.Address:    true,
	atom.Article:    true,
	atom.Blockquote: true,
	atom.Dl:         true,
	atom.Fieldset:   true,
	atom.Figure:     true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Hr:         true,
	atom.Main:       true,
	atom.Ol:         true,
	atom.P:          true,
	atom.Pre:        true,
	atom.Section:    true,
	atom.Table:      true,
	atom.Ul:         true,
}

// Elements that start on a new line.
var lineElements = map[atom.Atom]bool{
	atom.Aside:      true,
	atom.Caption:    true,
	atom.Dd:         true,
	atom.Details:    true,
	atom.Dialog:     true,
	atom.Div:        true,
	atom.Dt:         true,
	atom.Figcaption: true,
	atom.Form:       true,
	atom.Li:         true,
	atom.Summary:    true,
	atom.Td:         true,
	atom.Th:         true,
	atom.Tr:         true,
}

// Elements whose text is never visible.
var invisibleElements = map[atom.Atom]bool{
	atom.Head:     true,
	atom.Noscript: true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Template: true,
	atom.Title:    true,
}

// textWriter accumulates visible text, tracking trailing newlines so that
// nested block boundaries never stack up into extra blank lines.
type textWriter struct {
	sb       strings.Builder
	newlines int
}

func (w *textWriter) text(s string, preformatted bool) {
	if !preformatted {
		s = collapseInline(s)
		if s == " " && w.newlines > 0 {
			return
		}
	}
	if s == "" || w.sb.Len() == 0 && strings.TrimSpace(s) == "" {
		return
	}
	w.sb.WriteString(s)
	w.newlines = len(s) - len(strings.TrimRight(s, "\n"))
}

func (w *textWriter) lineBreak(n int) {
	if w.sb.Len() == 0 {
		return
	}
	for w.newlines < n {
		w.sb.WriteByte('\n')
		w.newlines++
	}
}

// blockText renders the visible text of nodes, separating block-level
// elements with line breaks. The result still needs NormalizeText.
func blockText(nodes []*html.Node) string {
	w := &textWriter{}

	var walk func(n *html.Node, pre bool)
	walk = func(n *html.Node, pre bool) {
		switch n.Type {
		case html.TextNode:
			w.text(n.Data, pre)
			return
		case html.CommentNode, html.DoctypeNode:
			return
		case html.ElementNode:
			if invisibleElements[n.DataAtom] {
				return
			}
			if n.DataAtom == atom.Br {
				w.lineBreak(w.newlines + 1)
				return
			}
		}

		breaks := 0
		switch {
		case paragraphElements[n.DataAtom]:
			breaks = 2
		case lineElements[n.DataAtom]:
			breaks = 1
		}

		w.lineBreak(breaks)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, pre || n.DataAtom == atom.Pre)
		}
		w.lineBreak(breaks)
	}

	for _, n := range nodes {
		walk(n, false)
	}
	return w.sb.String()
}

// collapseInline replaces whitespace runs with single spaces the way a
// browser renders inline text, keeping one leading and trailing space.
func collapseInline(s string) string {
	if s == "" {
		return ""
	}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return " "
	}
	out := strings.Join(fields, " ")
	if r, _ := utf8.DecodeRuneInString(s); unicode.IsSpace(r) {
		out = " " + out
	}
	if r, _ := utf8.DecodeLastRuneInString(s); unicode.IsSpace(r) {
		out += " "
	}
	return out
}

// NormalizeText collapses whitespace inside each line, collapses runs of
// blank lines to a single blank line, and trims leading and trailing
// whitespace.
func NormalizeText(s string) string {
	var out []string
	blank := false
	for _, line := range strings.Split(s, "\n") {
		line = collapseSpaces(line)
		if line == "" {
			blank = len(out) > 0
			continue
		}
		if blank {
			out = append(out, "")
			blank = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
