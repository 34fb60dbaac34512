// Package extract answers CSS-selector queries over an HTML string. Every
// function parses, queries and returns in one call; no parser state survives
// between calls. Queries that match nothing, including malformed selectors,
// yield empty results rather than errors.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// NoDescription is returned by MetaDescription when the page carries no
// description meta tag.
const NoDescription = "No description found."

// Node is a handle to one matched element. It stays valid independently of
// the HTML string it was selected from.
type Node struct {
	sel *goquery.Selection
}

func (n Node) Text() string {
	return strings.TrimSpace(n.sel.Text())
}

func (n Node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

func (n Node) Html() string {
	h, err := n.sel.Html()
	if err != nil {
		return ""
	}
	return h
}

// Select returns every element matching selector, in document order. The
// result is empty, never nil-valued absence, when nothing matches.
func Select(html, selector string) []Node {
	doc, err := parse(html)
	if err != nil {
		return []Node{}
	}
	nodes := []Node{}
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		nodes = append(nodes, Node{sel: sel})
	})
	return nodes
}

func Text(nodes []Node) []string {
	texts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		texts = append(texts, n.Text())
	}
	return texts
}

// Hrefs returns the href attribute of each node that carries one. Nodes
// without an href are skipped, not null-padded.
func Hrefs(nodes []Node) []string {
	hrefs := []string{}
	for _, n := range nodes {
		if href, ok := n.Attr("href"); ok {
			hrefs = append(hrefs, href)
		}
	}
	return hrefs
}

func Links(html string) []string {
	return Hrefs(Select(html, "a[href]"))
}

// Images returns the src of every image that has one.
func Images(html string) []string {
	srcs := []string{}
	for _, n := range Select(html, "img") {
		if src, ok := n.Attr("src"); ok {
			srcs = append(srcs, src)
		}
	}
	return srcs
}

// MetaDescription returns the content of the description meta tag, or the
// NoDescription sentinel.
func MetaDescription(html string) string {
	nodes := Select(html, `meta[name="description"]`)
	if len(nodes) == 0 {
		return NoDescription
	}
	if content, ok := nodes[0].Attr("content"); ok {
		return content
	}
	return NoDescription
}

// Title returns the page title, trimmed, or the empty string.
func Title(html string) string {
	nodes := Select(html, "title")
	if len(nodes) == 0 {
		return ""
	}
	return nodes[0].Text()
}

// Headings returns the text of every heading at the given level. Levels
// outside 1..6 match nothing.
func Headings(html string, level int) []string {
	if level < 1 || level > 6 {
		return []string{}
	}
	return Text(Select(html, fmt.Sprintf("h%d", level)))
}

func Paragraphs(html string) []string {
	return Text(Select(html, "p"))
}

// FindText returns every text node whose content contains keyword,
// case-insensitive. Script and style bodies are not text.
func FindText(htmlStr, keyword string) []string {
	doc, err := parse(htmlStr)
	if err != nil {
		return []string{}
	}
	lower := strings.ToLower(keyword)
	hits := []string{}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" && strings.Contains(strings.ToLower(text), lower) {
				hits = append(hits, text)
			}
			return
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range doc.Nodes {
		walk(root)
	}
	return hits
}

// Tables returns the cell text of every table: one entry per table, one row
// per tr, one string per th or td cell.
func Tables(html string) [][][]string {
	doc, err := parse(html)
	if err != nil {
		return [][][]string{}
	}
	tables := [][][]string{}
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		rows := [][]string{}
		table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			cells := []string{}
			tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, strings.TrimSpace(cell.Text()))
			})
			rows = append(rows, cells)
		})
		tables = append(tables, rows)
	})
	return tables
}

func parse(html string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}
