// Package site loads a Jekyll-style source tree into paginate collections
// and writes the result back as Markdown files with front matter.
//
// Layout rules:
//   - files under a top-level _<name>/ directory belong to collection <name>
//   - other .md, .markdown and .html files belong to the pages collection
//   - hidden entries and other underscore directories are skipped
package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	paginate "github.com/alnah/go-paginate"
	"github.com/alnah/go-paginate/internal/fileutil"
	"github.com/alnah/go-paginate/internal/frontmatter"
	"github.com/maruel/natural"
	"go.uber.org/multierr"
)

// Sentinel errors for site operations.
var (
	ErrNotDirectory    = errors.New("source is not a directory")
	ErrDuplicateOutput = errors.New("two documents publish to the same path")
)

// reserved lists underscore directories that hold site machinery, not content.
var reserved = []string{"_site", "_layouts", "_includes", "_data", "_sass", "_plugins", "_drafts", "_paginated"}

// contentExts lists the file extensions loaded as documents.
var contentExts = []string{".md", ".markdown", ".html"}

// Options configures Load.
type Options struct {
	// Exclude lists directories to skip, absolute or relative to the root.
	Exclude []string
}

// Site is a loaded source tree.
type Site struct {
	root        string
	collections map[string]*Collection
}

// Compile-time interface implementation check.
var _ paginate.Site = (*Site)(nil)

// Load walks root and groups its content files into collections.
// Every unreadable or malformed file is reported in the returned error.
func Load(root string, opts Options) (*Site, error) {
	if !fileutil.DirExists(root) {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root: %w", err)
	}
	excluded := make(map[string]bool, len(opts.Exclude))
	for _, ex := range opts.Exclude {
		if !filepath.IsAbs(ex) {
			ex = filepath.Join(absRoot, ex)
		}
		excluded[filepath.Clean(ex)] = true
	}

	s := &Site{
		root:        absRoot,
		collections: map[string]*Collection{PagesLabel: {label: PagesLabel}},
	}

	var errs error
	walkErr := filepath.WalkDir(absRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = multierr.Append(errs, err)
			return nil
		}
		if p == absRoot {
			return nil
		}

		rel, err := filepath.Rel(absRoot, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		name := d.Name()

		if d.IsDir() {
			if excluded[p] || skipDir(rel, name) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") ||
			!slices.Contains(contentExts, strings.ToLower(path.Ext(name))) {
			return nil
		}

		doc, err := s.load(p, rel)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", rel, err))
			return nil
		}
		coll := s.collections[doc.collection]
		if coll == nil {
			coll = &Collection{label: doc.collection}
			s.collections[doc.collection] = coll
		}
		coll.docs = append(coll.docs, doc)
		return nil
	})
	errs = multierr.Append(errs, walkErr)
	if errs != nil {
		return nil, errs
	}

	for _, c := range s.collections {
		sortDocs(c.docs)
	}
	return s, nil
}

// skipDir reports whether a directory is outside the content tree.
func skipDir(rel, name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	if !strings.HasPrefix(name, "_") {
		return false
	}
	// only top-level underscore directories can be collections
	return strings.Contains(rel, "/") || slices.Contains(reserved, name)
}

// load reads one content file.
func (s *Site) load(abs, rel string) (*Document, error) {
	src, err := os.ReadFile(abs) // #nosec G304 -- path comes from walking the site root
	if err != nil {
		return nil, err
	}
	fm, body, err := frontmatter.Split(src)
	if err != nil {
		return nil, err
	}

	doc := &Document{collection: PagesLabel, rel: rel, content: body, data: fm}

	first, inner, inColl := strings.Cut(rel, "/")
	if inColl && strings.HasPrefix(first, "_") {
		doc.collection = strings.TrimPrefix(first, "_")
		doc.url = docURL(doc.collection, inner)
	} else {
		doc.url = pageURL(rel)
	}

	stem := stripExt(baseName(rel))
	if doc.collection == PostsLabel {
		if date, rest, ok := splitPostName(stem); ok {
			stem = rest
			if _, has := fm[paginate.KeyDate]; !has {
				fm[paginate.KeyDate] = date
			}
		}
	}

	if _, has := fm[paginate.KeyTitle]; !has {
		title := ""
		if path.Ext(rel) != ".html" {
			title = firstHeading(body)
		}
		if title == "" {
			title = stem
		}
		fm[paginate.KeyTitle] = title
	}

	if p, ok := fm[paginate.KeyPermalink].(string); ok && p != "" {
		doc.url = p
	}
	return doc, nil
}

// Root returns the absolute source directory.
func (s *Site) Root() string { return s.root }

// Collection implements paginate.Site.
func (s *Site) Collection(name string) (paginate.Collection, bool) {
	c, ok := s.collections[name]
	if !ok {
		return nil, false
	}
	return c, true
}

// Collections returns the loaded collections in natural label order.
func (s *Site) Collections() []*Collection {
	out := make([]*Collection, 0, len(s.collections))
	for _, c := range s.collections {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return natural.Less(out[i].label, out[j].label) })
	return out
}

// Output is one planned file write.
type Output struct {
	Path string // slash-separated, relative to the destination
	Doc  *Document
}

// Plan returns the files Write would produce, ordered by path.
func (s *Site) Plan() ([]Output, error) {
	var plan []Output
	seen := make(map[string]string)
	for _, c := range s.Collections() {
		for _, d := range c.docs {
			out := outputPath(d.OutputURL())
			if prev, dup := seen[out]; dup {
				return nil, fmt.Errorf("%w: %s (%s and %s)", ErrDuplicateOutput, out, prev, d.rel)
			}
			seen[out] = d.rel
			plan = append(plan, Output{Path: out, Doc: d})
		}
	}
	sort.Slice(plan, func(i, j int) bool { return natural.Less(plan[i].Path, plan[j].Path) })
	return plan, nil
}

// Write renders every document under dest and returns the written paths.
func (s *Site) Write(dest string) ([]string, error) {
	plan, err := s.Plan()
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, len(plan))
	for _, o := range plan {
		target, err := fileutil.SafeJoin(dest, o.Path)
		if err != nil {
			return written, err
		}
		data, err := frontmatter.Join(o.Doc.data, o.Doc.content)
		if err != nil {
			return written, fmt.Errorf("%s: %w", o.Doc.rel, err)
		}
		if err := fileutil.WriteFileAtomic(target, data, 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", o.Path, err)
		}
		written = append(written, target)
	}
	return written, nil
}
