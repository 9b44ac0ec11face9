// Package paginate splits a long content item into linked sub-pages plus a
// "view all" rendition, for static publishing pipelines.
//
// # Quick Start
//
// Build a paginator from a config and split a document:
//
//	p := paginate.NewPaginator(paginate.DefaultConfig())
//
//	doc := paginate.NewDocument("/guide/", "guide.md",
//	    "Intro<!--page-->Setup<!--page-->Usage",
//	    map[string]any{"title": "Guide", "layout": "post"})
//
//	items, err := p.Split(doc)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Split returns one derived item per page followed by the single-page item.
// An item without the separator yields no derived items and must be left
// untouched by the caller.
//
// # Derived Items
//
// Every derived item carries merged front matter plus two objects for the
// rendering layer:
//
//   - "pagination_info": {curr_page, total_pages, type, id}, where type is
//     first, last, part or full and id is shared by all items of one split.
//   - "pager": the navigation map built by Pager.Map, with canonical keys
//     (previous_page, next_page_path, page_trail, seo, ...) and their aliases
//     (prev_page, next_path, view_all, ...).
//
// # Permalinks
//
// Page 1 always keeps the original URL. Later pages append the permalink
// template with :num and :max substituted:
//
//	paginate.Permalink("/guide/", "/:num/", 2, 3) // "/guide/2/"
//
// # Front Matter Stages
//
// Stage tables (all, first, last, others, single) are merged onto derived
// items. Two special values are recognised:
//
//	"/"      remove the key from the derived item
//	"$"      copy the same key from the original item
//	"$name"  copy the "name" key from the original item
//
// layout, date and permalink are always restored after merging.
//
// # Site Generation
//
// Generator applies the paginator to whole collections of a Site, selecting
// items either by the separator (Config.Auto) or by a truthy "paginate"
// front matter key, and replaces originals with their derived items:
//
//	gen := paginate.NewGenerator(cfg, paginate.WithObserver(obs), paginate.WithWorkers(4))
//	report, err := gen.Generate(ctx, site)
//
// A failing item is reported and skipped; other items are still processed.
package paginate
