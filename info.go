package paginate

// Kind tells a derived item's position in its split.
type Kind string

// Derived item kinds.
const (
	KindFirst Kind = "first"
	KindLast  Kind = "last"
	KindPart  Kind = "part"
	KindFull  Kind = "full"
)

// kindOf returns the kind of page num out of total. A single-part split is
// reported as first.
func kindOf(num, total int) Kind {
	switch {
	case num == 1:
		return KindFirst
	case num == total:
		return KindLast
	default:
		return KindPart
	}
}

// PaginationInfo identifies a derived item within its split.
// CurrentPage and TotalPages are zero for the single-page item.
type PaginationInfo struct {
	CurrentPage int
	TotalPages  int
	Kind        Kind
	GroupID     string
}

// Map projects the info as the "pagination_info" front matter object.
func (pi PaginationInfo) Map() map[string]any {
	m := map[string]any{
		"type": string(pi.Kind),
		"id":   pi.GroupID,
	}
	if pi.Kind != KindFull {
		m["curr_page"] = pi.CurrentPage
		m["total_pages"] = pi.TotalPages
	}
	return m
}

// DerivedItem is one output of a split: a host item with merged front
// matter, its navigation and its position.
type DerivedItem struct {
	Item  Item
	Pager *Pager
	Info  PaginationInfo
}
