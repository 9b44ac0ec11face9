package paginate

import (
	"fmt"
	"maps"
)

// Front matter keys read or written by the paginator.
const (
	KeyTitle          = "title"
	KeyLayout         = "layout"
	KeyDate           = "date"
	KeyPermalink      = "permalink"
	KeyPaginate       = "paginate"
	KeyPaginationInfo = "pagination_info"
	KeyPager          = "pager"
)

// Item is a host content item: a document or page with front matter.
// Data returns the live front matter map; implementations must never return nil.
type Item interface {
	Content() string
	SetContent(content string)
	Data() map[string]any
	URL() string
	Name() string
}

// ItemFactory creates a new, empty derived item from an original.
// The returned item keeps the host's path rules (collection, directory);
// the paginator copies front matter and content into it.
type ItemFactory func(original Item) Item

// Document is an in-memory Item.
type Document struct {
	url     string
	name    string
	content string
	data    map[string]any
}

// Compile-time interface implementation check.
var _ Item = (*Document)(nil)

// NewDocument creates a Document. A nil data map is replaced with an empty one.
func NewDocument(url, name, content string, data map[string]any) *Document {
	if data == nil {
		data = make(map[string]any)
	}
	return &Document{url: url, name: name, content: content, data: data}
}

// Clone returns a copy with its own front matter map. Values are shared.
func (d *Document) Clone() *Document {
	return NewDocument(d.url, d.name, d.content, maps.Clone(d.data))
}

func (d *Document) Content() string           { return d.content }
func (d *Document) SetContent(content string) { d.content = content }
func (d *Document) Data() map[string]any      { return d.data }
func (d *Document) URL() string               { return d.url }
func (d *Document) Name() string              { return d.name }

// DocumentFactory is the default ItemFactory. It returns an empty Document
// at the original's URL and name.
func DocumentFactory(original Item) Item {
	return NewDocument(original.URL(), original.Name(), "", nil)
}

// inheritData shallow-copies the original's front matter into derived.
func inheritData(original, derived Item) {
	maps.Copy(derived.Data(), original.Data())
}

// title returns the item's "title" front matter as a string.
func title(item Item) string {
	return stringValue(item.Data()[KeyTitle])
}

// stringValue renders scalar front matter values as strings.
func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
