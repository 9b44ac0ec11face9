package paginate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Runs of path separators collapse to one.
	repeatedSlashes = regexp.MustCompile(`/{2,}`)

	// URLs ending in /name.ext keep "/name" as their pagination base.
	extensionURL = regexp.MustCompile(`^(.*/[^.]*)(\.[^.]+)$`)
)

// Permalink returns the path of page within a split of total pages.
// Page 1 always returns base unchanged so the first part keeps the
// original URL. Other pages substitute :num and :max in template, append
// it to base, then collapse duplicate slashes.
func Permalink(base, template string, page, total int) string {
	if page == 1 {
		return base
	}

	r := strings.NewReplacer(
		":num", strconv.Itoa(page),
		":max", strconv.Itoa(total),
	)
	return collapseSlashes(base + r.Replace(template))
}

// Title returns the display title of page within a split of total pages.
// An empty format keeps original; so does page 1 unless retitleFirst is set.
func Title(format, original string, page, total int, retitleFirst bool) string {
	if format == "" || (page == 1 && !retitleFirst) {
		return original
	}

	r := strings.NewReplacer(
		":title", original,
		":num", strconv.Itoa(page),
		":max", strconv.Itoa(total),
	)
	return r.Replace(format)
}

// collapseSlashes replaces every run of "/" with a single "/".
func collapseSlashes(path string) string {
	return repeatedSlashes.ReplaceAllString(path, "/")
}

// urlBase splits an item URL into the base used for page permalinks and
// the path of the view-all page.
//
//	/docs/guide.html -> /docs/guide, /docs/guide/view-all/
//	/docs/guide/     -> /docs/guide/, /docs/guide/view-all/
func urlBase(url, singlePage string) (base, single string) {
	if m := extensionURL.FindStringSubmatch(url); m != nil {
		base = m[1]
	} else {
		base = url
	}
	return base, collapseSlashes(base + singlePage)
}
