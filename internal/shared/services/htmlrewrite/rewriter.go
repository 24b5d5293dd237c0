// Package htmlrewrite prepares raw theme HTML for embedding in the dashboard
// preview iframe. Relative asset references are rebased onto the public
// file-serving endpoint for the theme, required meta tags are ensured, and a
// small block of normalization CSS is injected so arbitrary uploaded themes
// render consistently inside the preview frame.
//
// The rewrite operates on a parsed DOM rather than on the raw text, so quoting
// and nesting edge cases in the markup cannot corrupt the output.
package htmlrewrite

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// normalizationCSS is injected into every previewed page. It resets the few
// properties that otherwise make uploaded themes overflow the preview iframe.
const normalizationCSS = `
*, *::before, *::after { box-sizing: border-box; }
html, body { margin: 0; padding: 0; }
img, video { max-width: 100%; height: auto; }
`

// cssURLPattern matches url(...) tokens in inline CSS. CSS is not markup, so
// attribute-level CSS is still rewritten textually after the DOM pass has
// isolated it.
var cssURLPattern = regexp.MustCompile(`url\(\s*['"]?([^'")]+)['"]?\s*\)`)

// schemePattern matches URLs that carry an explicit scheme (https:, data:,
// mailto:, tel:, javascript:, ...). Those are never rebased.
var schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// Rewriter rebases relative asset references in theme HTML onto a public
// files endpoint.
type Rewriter struct {
	// filesBase is the absolute prefix assets are rebased onto,
	// e.g. "https://host/custom-theme/cth_abc/files".
	filesBase string

	// hasLocalStylesheet indicates a style.css exists beside the served page;
	// when true and the page does not already reference style.css, a link to
	// it is injected.
	hasLocalStylesheet bool
}

// NewRewriter builds a Rewriter for one theme. baseURL is the public serving
// prefix (no trailing slash), themeID the path segment identifying the theme.
func NewRewriter(baseURL, themeID string, hasLocalStylesheet bool) *Rewriter {
	return &Rewriter{
		filesBase:          fmt.Sprintf("%s/%s/files", strings.TrimRight(baseURL, "/"), themeID),
		hasLocalStylesheet: hasLocalStylesheet,
	}
}

// Rewrite parses the page, applies all rewrite rules, and serializes it back.
func (r *Rewriter) Rewrite(page []byte) ([]byte, error) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme HTML: %w", err)
	}

	r.walk(doc)

	head := findElement(doc, atom.Head)
	if head != nil {
		r.ensureMetaTags(head)
		r.ensureStylesheetLink(doc, head)
		r.injectNormalizationCSS(head)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("failed to render rewritten HTML: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Rewriter) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		r.rewriteElement(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.walk(c)
	}
}

func (r *Rewriter) rewriteElement(n *html.Node) {
	for i := range n.Attr {
		attr := &n.Attr[i]
		switch attr.Key {
		case "src", "href":
			attr.Val = r.rebase(attr.Val)
		case "srcset":
			attr.Val = r.rewriteSrcset(attr.Val)
		case "style":
			attr.Val = r.rewriteCSS(attr.Val)
		}
	}

	// <style> blocks hold raw CSS in a single text child.
	if n.DataAtom == atom.Style && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
		n.FirstChild.Data = r.rewriteCSS(n.FirstChild.Data)
	}
}

// rebase rewrites a single URL unless it is absolute, protocol-relative, a
// fragment, or carries a non-HTTP scheme (data:, mailto:, tel:, javascript:).
func (r *Rewriter) rebase(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" ||
		strings.HasPrefix(u, "#") ||
		strings.HasPrefix(u, "//") ||
		schemePattern.MatchString(u) {
		return raw
	}

	u = strings.TrimPrefix(u, "./")
	u = strings.TrimLeft(u, "/")
	return r.filesBase + "/" + u
}

// rewriteSrcset applies rebase to every entry of a srcset list while
// preserving size descriptors ("image.png 2x, small.png 480w").
func (r *Rewriter) rewriteSrcset(raw string) string {
	entries := strings.Split(raw, ",")
	for i, entry := range entries {
		fields := strings.Fields(strings.TrimSpace(entry))
		if len(fields) == 0 {
			continue
		}
		fields[0] = r.rebase(fields[0])
		entries[i] = strings.Join(fields, " ")
	}
	return strings.Join(entries, ", ")
}

func (r *Rewriter) rewriteCSS(css string) string {
	return cssURLPattern.ReplaceAllStringFunc(css, func(match string) string {
		sub := cssURLPattern.FindStringSubmatch(match)
		if len(sub) < 2 {
			return match
		}
		return fmt.Sprintf("url('%s')", r.rebase(sub[1]))
	})
}

// ensureMetaTags inserts charset and viewport meta elements at the start of
// head when the page does not declare them.
func (r *Rewriter) ensureMetaTags(head *html.Node) {
	hasCharset := false
	hasViewport := false
	for c := head.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.DataAtom != atom.Meta {
			continue
		}
		if getAttr(c, "charset") != "" {
			hasCharset = true
		}
		if strings.EqualFold(getAttr(c, "name"), "viewport") {
			hasViewport = true
		}
	}

	if !hasViewport {
		head.InsertBefore(&html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Meta,
			Data:     "meta",
			Attr: []html.Attribute{
				{Key: "name", Val: "viewport"},
				{Key: "content", Val: "width=device-width, initial-scale=1"},
			},
		}, head.FirstChild)
	}
	if !hasCharset {
		head.InsertBefore(&html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Meta,
			Data:     "meta",
			Attr:     []html.Attribute{{Key: "charset", Val: "utf-8"}},
		}, head.FirstChild)
	}
}

// ensureStylesheetLink injects a link to the theme's style.css when the file
// exists on disk and the page does not already reference it. The whole
// document is scanned for existing references since themes sometimes carry
// links outside head. The injected href goes through the same files endpoint
// as every other asset.
func (r *Rewriter) ensureStylesheetLink(doc, head *html.Node) {
	if !r.hasLocalStylesheet {
		return
	}

	var referenced bool
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Link {
			if strings.Contains(getAttr(n, "href"), "style.css") {
				referenced = true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)
	if referenced {
		return
	}

	head.AppendChild(&html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Link,
		Data:     "link",
		Attr: []html.Attribute{
			{Key: "rel", Val: "stylesheet"},
			{Key: "href", Val: r.filesBase + "/style.css"},
		},
	})
}

func (r *Rewriter) injectNormalizationCSS(head *html.Node) {
	style := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Style,
		Data:     "style",
	}
	style.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: normalizationCSS,
	})
	head.AppendChild(style)
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
