package site

import (
	paginate "github.com/alnah/go-paginate"
)

// Document is a content file loaded from disk.
type Document struct {
	rel        string // source path relative to the site root, slash-separated
	collection string
	url        string
	content    string
	data       map[string]any
}

// Compile-time interface implementation check.
var _ paginate.Item = (*Document)(nil)

func (d *Document) Content() string           { return d.content }
func (d *Document) SetContent(content string) { d.content = content }
func (d *Document) Data() map[string]any      { return d.data }
func (d *Document) URL() string               { return d.url }
func (d *Document) Name() string              { return baseName(d.rel) }

// Rel returns the source path relative to the site root.
func (d *Document) Rel() string { return d.rel }

// Collection returns the label of the collection holding the document.
func (d *Document) Collection() string { return d.collection }

// OutputURL returns where the document is published: its permalink front
// matter when set, else its URL.
func (d *Document) OutputURL() string {
	if p, ok := d.data[paginate.KeyPermalink].(string); ok && p != "" {
		return p
	}
	return d.url
}
