package site

import (
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
)

// BrokenLink is a local reference to a page or stylesheet the site does not
// contain.
type BrokenLink struct {
	Page   string
	Target string
}

// CheckLinks parses every page and reports href targets ending in .html or
// .css that resolve to files missing from the site. Image sources are not
// checked because images live outside the generated output.
func (s *Site) CheckLinks() []BrokenLink {
	if s == nil {
		return nil
	}

	var broken []BrokenLink
	for _, page := range s.Pages {
		for _, target := range localTargets(page.Content) {
			resolved, ok := resolve(page.Path, target)
			if !ok {
				continue
			}
			if !s.Has(resolved) {
				broken = append(broken, BrokenLink{Page: page.Path, Target: resolved})
			}
		}
	}
	return broken
}

func localTargets(content string) []string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil
	}

	var targets []string
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && (node.Data == "a" || node.Data == "link") {
			for _, attr := range node.Attr {
				if attr.Key == "href" {
					targets = append(targets, attr.Val)
				}
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return targets
}

// resolve maps target onto a site relative path. External, absolute and
// non page targets are skipped.
func resolve(pagePath, target string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(target))
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" || strings.HasPrefix(u.Path, "/") {
		return "", false
	}
	ext := strings.ToLower(path.Ext(u.Path))
	if ext != ".html" && ext != ".css" {
		return "", false
	}
	resolved := path.Join(path.Dir(pagePath), u.Path)
	if resolved == ".." || strings.HasPrefix(resolved, "../") {
		return "", false
	}
	return resolved, true
}
