// Package ingest turns web pages into indexed evidence: fetch allowed
// URLs, extract readable text, screen it for relevance to the topic,
// then chunk, embed, and store what survives.
package ingest

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Article is the readable content of a fetched page.
type Article struct {
	Title string
	Text  string
}

// ExtractArticle parses HTML and returns the page title and its
// visible text. Script, style, noscript, and iframe subtrees are
// skipped.
func ExtractArticle(htmlContent string) (Article, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return Article{}, fmt.Errorf("parse HTML: %w", err)
	}

	var a Article
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			case "title":
				if a.Title == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					a.Title = strings.TrimSpace(n.FirstChild.Data)
				}
				return
			}
		}

		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	a.Text = strings.TrimSpace(buf.String())

	// Fall back to the first heading when the page has no <title>.
	if a.Title == "" {
		a.Title = firstHeading(doc)
	}

	return a, nil
}

func firstHeading(doc *html.Node) string {
	var found string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != "" {
			return
		}
		if n.Type == html.ElementNode && (n.Data == "h1" || n.Data == "h2") {
			var buf strings.Builder
			collectText(n, &buf)
			found = strings.TrimSpace(buf.String())
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return found
}

func collectText(n *html.Node, buf *strings.Builder) {
	if n.Type == html.TextNode {
		buf.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, buf)
	}
}
