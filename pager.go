package paginate

import (
	"fmt"
	"maps"
	"slices"
)

// Navigation is the navigation data of one derived item.
// Zero page numbers and empty paths mean "not applicable" (no next page on
// the last part, no previous page on the first).
type Navigation struct {
	Paginated bool
	PageNum   int
	PagePath  string

	FirstPage     int
	FirstPagePath string
	LastPage      int
	LastPagePath  string

	NextPage         int
	NextPagePath     string
	PreviousPage     int
	PreviousPagePath string

	TotalPages int

	IsFirst         bool
	IsLast          bool
	HasNext         bool
	HasPrevious     bool
	NextIsLast      bool
	PreviousIsFirst bool

	Trail      []TrailEntry
	SEO        string
	SinglePage string
}

// Pager exposes a Navigation to the rendering layer. It is immutable.
type Pager struct {
	nav Navigation
}

// NewPager returns a Pager holding a copy of nav.
func NewPager(nav Navigation) *Pager {
	nav.Trail = slices.Clone(nav.Trail)
	return &Pager{nav: nav}
}

// Navigation returns a copy of the pager's data.
func (p *Pager) Navigation() Navigation {
	nav := p.nav
	nav.Trail = slices.Clone(nav.Trail)
	return nav
}

// aliases maps alias keys to the canonical key they mirror.
var aliases = map[string]string{
	"activated":     "paginated",
	"first_path":    "first_page_path",
	"next_path":     "next_page_path",
	"has_prev":      "has_previous",
	"previous_path": "previous_page_path",
	"prev_path":     "previous_page_path",
	"last_path":     "last_page_path",
	"prev_page":     "previous_page",
	"prev_is_first": "previous_is_first",
	"page_num":      "page",
	"pages":         "total_pages",
	"view_all":      "single_page",
}

// Aliases returns a copy of the alias table (alias -> canonical key).
func Aliases() map[string]string {
	return maps.Clone(aliases)
}

// canonical projects the navigation onto its canonical keys.
func (p *Pager) canonical() map[string]any {
	n := &p.nav
	return map[string]any{
		"first_page":         optInt(n.FirstPage),
		"first_page_path":    optString(n.FirstPagePath),
		"last_page":          optInt(n.LastPage),
		"last_page_path":     optString(n.LastPagePath),
		"next_page":          optInt(n.NextPage),
		"next_page_path":     optString(n.NextPagePath),
		"page":               optInt(n.PageNum),
		"page_path":          optString(n.PagePath),
		"page_trail":         optTrail(n.Trail),
		"previous_page":      optInt(n.PreviousPage),
		"previous_page_path": optString(n.PreviousPagePath),
		"total_pages":        optInt(n.TotalPages),

		"has_next":          optFlag(n.Paginated, n.HasNext),
		"has_previous":      optFlag(n.Paginated, n.HasPrevious),
		"is_first":          optFlag(n.Paginated, n.IsFirst),
		"is_last":           optFlag(n.Paginated, n.IsLast),
		"next_is_last":      optFlag(n.Paginated, n.NextIsLast),
		"previous_is_first": optFlag(n.Paginated, n.PreviousIsFirst),
		"paginated":         optFlag(n.Paginated, n.Paginated),
		"seo":               optString(n.SEO),
		"single_page":       optString(n.SinglePage),
	}
}

// Map returns the flat key set consumed by templates: every canonical key
// plus every alias, each alias resolved from its canonical value.
func (p *Pager) Map() map[string]any {
	m := p.canonical()
	for alias, key := range aliases {
		m[alias] = m[key]
	}
	return m
}

// Get looks up a canonical or alias key.
func (p *Pager) Get(key string) (any, bool) {
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	v, ok := p.canonical()[key]
	return v, ok
}

// String implements fmt.Stringer for debug output.
func (p *Pager) String() string {
	return fmt.Sprintf("Pager{page %d/%d %s}", p.nav.PageNum, p.nav.TotalPages, p.nav.PagePath)
}

// optInt returns nil for an unset page number.
func optInt(n int) any {
	if n == 0 {
		return nil
	}
	return n
}

// optTrail returns nil for an empty trail.
func optTrail(trail []TrailEntry) any {
	if len(trail) == 0 {
		return nil
	}
	return trailMaps(trail)
}

// optString returns nil for an unset path or string.
// optFlag leaves navigation flags unset on a pager outside a split, such
// as the single page's.
func optFlag(paginated, b bool) any {
	if !paginated {
		return nil
	}
	return b
}

func optString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// seoLink renders one SEO link tag, or "" when disabled.
func seoLink(rel, url string, enabled bool) string {
	if !enabled {
		return ""
	}
	return fmt.Sprintf("  <link rel=\"%s\" href=\"%s\" />\n", rel, url)
}
