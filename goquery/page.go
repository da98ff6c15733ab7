package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/clinicscrape"
	"golang.org/x/net/html"
)

// Page is a parsed HTML document plus the context of one resolution call.
// A Page is never mutated after NewPage returns.
type Page struct {
	URL   string
	Debug bool

	doc   *goquery.Document
	text  string
	lines []string
}

// NewPage parses rawHTML fetched from pageURL.
func NewPage(rawHTML, pageURL string, debug bool) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, clinicscrape.Errorf(clinicscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	var text, lined strings.Builder
	for _, n := range doc.Nodes {
		collectText(n, &text, &lined)
	}

	return &Page{
		URL:   pageURL,
		Debug: debug,
		doc:   doc,
		text:  text.String(),
		lines: strings.Split(lined.String(), "\n"),
	}, nil
}

// Document returns the parsed document.
func (p *Page) Document() *goquery.Document {
	return p.doc
}

// Text returns the visible text with text nodes joined by spaces.
func (p *Page) Text() string {
	return p.text
}

// Lines returns the visible text split at block boundaries and line breaks.
// Lines are not trimmed and may be empty.
func (p *Page) Lines() []string {
	return p.lines
}

// invisibleElements hold no user-visible text.
var invisibleElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"head":     true,
}

// blockElements start a new line in Lines.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"footer": true, "form": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "header": true, "hr": true,
	"li": true, "main": true, "nav": true, "ol": true, "p": true,
	"section": true, "table": true, "td": true, "th": true, "tr": true,
	"ul": true,
}

func collectText(n *html.Node, text, lined *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		text.WriteString(n.Data)
		text.WriteByte(' ')
		lined.WriteString(n.Data)
		return
	case html.ElementNode:
		if invisibleElements[n.Data] {
			return
		}
	}

	block := n.Type == html.ElementNode && blockElements[n.Data]
	if block {
		lined.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, text, lined)
	}
	if block {
		lined.WriteByte('\n')
	}
}

// collapseSpace replaces whitespace runs with single spaces and trims.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
