package site

import (
	"slices"
	"sort"

	paginate "github.com/alnah/go-paginate"
	"github.com/maruel/natural"
)

// PagesLabel is the collection holding files outside any _<name> directory.
const PagesLabel = "pages"

// Collection is an ordered set of documents.
type Collection struct {
	label string
	docs  []*Document
}

// Compile-time interface implementation check.
var _ paginate.Collection = (*Collection)(nil)

func (c *Collection) Label() string { return c.label }

// Items returns the documents as paginate items.
func (c *Collection) Items() []paginate.Item {
	items := make([]paginate.Item, len(c.docs))
	for i, d := range c.docs {
		items[i] = d
	}
	return items
}

// Docs returns a copy of the document list.
func (c *Collection) Docs() []*Document {
	return slices.Clone(c.docs)
}

// NewItem creates an empty document sharing the original's source path and
// URL. It is safe for concurrent use.
func (c *Collection) NewItem(original paginate.Item) paginate.Item {
	d := &Document{
		collection: c.label,
		url:        original.URL(),
		data:       make(map[string]any),
	}
	if src, ok := original.(*Document); ok {
		d.rel = src.rel
	} else {
		d.rel = original.Name()
	}
	return d
}

// Replace removes originals and appends derived in order. Items that are
// not site documents are ignored.
func (c *Collection) Replace(originals, derived []paginate.Item) {
	drop := make(map[*Document]bool, len(originals))
	for _, it := range originals {
		if d, ok := it.(*Document); ok {
			drop[d] = true
		}
	}

	kept := make([]*Document, 0, len(c.docs)+len(derived))
	for _, d := range c.docs {
		if !drop[d] {
			kept = append(kept, d)
		}
	}
	for _, it := range derived {
		if d, ok := it.(*Document); ok {
			kept = append(kept, d)
		}
	}
	c.docs = kept
}

// sortDocs orders documents naturally by source path ("part2" before "part10").
func sortDocs(docs []*Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		return natural.Less(docs[i].rel, docs[j].rel)
	})
}
