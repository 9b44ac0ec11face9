package paginate

// TrailEntry is one link in a page trail.
type TrailEntry struct {
	Num   int
	Path  string
	Title string
}

// Map projects the entry for the rendering layer.
func (e TrailEntry) Map() map[string]any {
	return map[string]any{
		"num":   e.Num,
		"path":  e.Path,
		"title": e.Title,
	}
}

// BuildTrail returns the trail of pages around page.
//
// With a zero window the trail lists every page. Otherwise the window is
// before+after+1 pages wide starting at page-before; near either end it
// shifts inward instead of shrinking, so page 1 of 10 with before=2,
// after=2 shows pages 1-5 and page 10 shows 6-10.
//
// The raw window sizes are used as given: a window wider than the split
// simply covers all pages.
func BuildTrail(base, title string, page, total int, window TrailConfig, permalink string) []TrailEntry {
	before, after := window.Before, window.After

	var start, end int
	if before == 0 && after == 0 {
		start, end = 1, total
	} else {
		start = max(page-before, 1)
		end = start + before + after
		if end > total {
			end = total
			start = max(total-before-after, 1)
		}
	}

	trail := make([]TrailEntry, 0, max(end-start+1, 0))
	for i := start; i <= end; i++ {
		trail = append(trail, TrailEntry{
			Num:   i,
			Path:  Permalink(base, permalink, i, total),
			Title: Title(window.Title, title, i, total, false),
		})
	}
	return trail
}

// trailMaps projects a trail for the rendering layer.
func trailMaps(trail []TrailEntry) []map[string]any {
	out := make([]map[string]any, len(trail))
	for i, e := range trail {
		out[i] = e.Map()
	}
	return out
}
