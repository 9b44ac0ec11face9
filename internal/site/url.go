package site

import (
	"path"
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

// PostsLabel is the collection whose file names carry a date prefix.
const PostsLabel = "posts"

// postName matches "2024-01-02-title" post file stems.
var postName = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-(.+)$`)

// splitPostName returns the date prefix and the remaining stem of a post
// file name. ok is false when the stem has no date prefix.
func splitPostName(stem string) (date, rest string, ok bool) {
	m := postName.FindStringSubmatch(stem)
	if m == nil {
		return "", stem, false
	}
	return m[1], m[2], true
}

// pageURL derives a page URL from its slash-separated source path:
// "about.md" -> "/about.html", "docs/index.md" -> "/docs/".
func pageURL(rel string) string {
	dir, file := path.Split(rel)
	stem := stripExt(file)
	if stem == "index" {
		return "/" + dir
	}
	return "/" + dir + stem + ".html"
}

// docURL derives a collection document URL: "/<label>/<slug>/".
// Directory segments are slugged too; posts lose their date prefix.
func docURL(label, rel string) string {
	segments := strings.Split(rel, "/")
	last := len(segments) - 1
	segments[last] = stripExt(segments[last])
	if label == PostsLabel {
		_, segments[last], _ = splitPostName(segments[last])
	}

	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, slug.Make(label))
	for _, s := range segments {
		if sl := slug.Make(s); sl != "" {
			parts = append(parts, sl)
		}
	}
	return "/" + strings.Join(parts, "/") + "/"
}

// outputPath maps a published URL to a slash-separated file path:
// "/a/b/" -> "a/b/index.md", "/a/b.html" -> "a/b.md", "/a/b" -> "a/b.md".
func outputPath(url string) string {
	p := strings.TrimLeft(url, "/")
	switch {
	case p == "" || strings.HasSuffix(p, "/"):
		return p + "index.md"
	case path.Ext(p) == ".html" || path.Ext(p) == ".htm":
		return stripExt(p) + ".md"
	case path.Ext(p) == "":
		return p + ".md"
	default:
		return p
	}
}

// stripExt removes the final extension of a file name or path.
func stripExt(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

// baseName returns the last element of a slash-separated path.
func baseName(rel string) string {
	return path.Base(rel)
}
