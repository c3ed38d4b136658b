package analyzer

import (
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"
)

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// NormalizeJD trims a pasted JD and flattens HTML paste (common when
// copying straight from a job board) into markdown so the catalog
// matches prose instead of markup. Plain text passes through
// unchanged, so normalization never perturbs already-clean input.
func NormalizeJD(text string) string {
	text = strings.TrimSpace(text)
	if !looksLikeHTML(text) {
		return text
	}
	if md, err := htmltomarkdown.ConvertString(text); err == nil {
		if md = strings.TrimSpace(md); md != "" {
			return md
		}
	}
	// Conversion failed; a plain tag strip still beats matching markup.
	return strings.TrimSpace(htmlTagRe.ReplaceAllString(text, " "))
}

// looksLikeHTML parses the text and reports whether it contains real
// element structure. Stray angle brackets ("<3 years", "a < b") parse
// as text and stay untouched.
func looksLikeHTML(s string) bool {
	if !strings.ContainsRune(s, '<') {
		return false
	}
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return false
	}
	return countElements(doc) > 0
}

// countElements counts element nodes excluding the html/head/body
// scaffolding the parser synthesizes around every input.
func countElements(n *html.Node) int {
	count := 0
	if n.Type == html.ElementNode {
		switch n.Data {
		case "html", "head", "body":
		default:
			count++
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countElements(c)
	}
	return count
}
