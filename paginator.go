package paginate

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Option configures a Paginator or Generator.
type Option func(*options)

// options holds the collaborators shared by Paginator and Generator.
type options struct {
	observer Observer
	factory  ItemFactory
	groupID  func() string
	workers  int
}

// defaultWorkers is used when no worker count is specified.
const defaultWorkers = 1

func newOptions(opts []Option) options {
	o := options{
		observer: NopObserver{},
		factory:  DocumentFactory,
		groupID:  newGroupID,
		workers:  defaultWorkers,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithObserver sets the diagnostics receiver. Nil restores the no-op default.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs == nil {
			obs = NopObserver{}
		}
		o.observer = obs
	}
}

// WithItemFactory sets how derived items are created from an original.
// Generator ignores it and asks each Collection instead.
func WithItemFactory(f ItemFactory) Option {
	return func(o *options) {
		if f != nil {
			o.factory = f
		}
	}
}

// WithGroupID replaces the group id generator. It must be safe for
// concurrent use and return a distinct value per call.
func WithGroupID(f func() string) Option {
	return func(o *options) {
		if f != nil {
			o.groupID = f
		}
	}
}

// WithWorkers sets how many items the Generator splits concurrently.
// Panics if n < 1 (programmer error).
func WithWorkers(n int) Option {
	if n < 1 {
		panic("paginate: WithWorkers count must be positive")
	}
	return func(o *options) {
		o.workers = n
	}
}

// newGroupID returns a time-ordered UUID, falling back to a random one.
func newGroupID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Paginator splits items into derived pages. It holds no mutable state and
// is safe for concurrent use.
type Paginator struct {
	cfg  Config
	opts options
}

// NewPaginator creates a Paginator. cfg is copied; stage tables are cloned
// so later changes to the caller's maps have no effect.
func NewPaginator(cfg Config, opts ...Option) *Paginator {
	cfg.Properties = cfg.Properties.Clone()
	cfg.UserProperties = cfg.UserProperties.Clone()
	return &Paginator{cfg: cfg, opts: newOptions(opts)}
}

// Config returns the paginator's configuration.
func (p *Paginator) Config() Config {
	return p.cfg
}

// Split cuts item on the separator and returns one derived item per part
// followed by the single-page item. Content without a separator returns an
// empty result: the item is not paginated and must be left in place.
func (p *Paginator) Split(item Item) ([]*DerivedItem, error) {
	return p.split(item, p.opts.factory)
}

func (p *Paginator) split(item Item, factory ItemFactory) ([]*DerivedItem, error) {
	if item == nil {
		return nil, ErrNilItem
	}

	cfg := &p.cfg
	parts := strings.Split(item.Content(), cfg.Separator)
	if len(parts) == 1 {
		return nil, nil
	}

	var header, footer string
	parts[0], header = cutHeader(parts[0], cfg.Header)
	parts[len(parts)-1], footer = cutFooter(parts[len(parts)-1], cfg.Footer)

	s := &splitState{
		cfg:     cfg,
		item:    item,
		factory: factory,
		total:   len(parts),
		groupID: p.opts.groupID(),
		siteURL: cfg.siteURL(),
	}
	s.base, s.single = urlBase(item.URL(), cfg.SinglePage)

	derived := make([]*DerivedItem, 0, len(parts)+1)
	for i, chunk := range parts {
		derived = append(derived, s.part(i+1, header+chunk+footer))
	}
	derived = append(derived, s.full())

	if cfg.Debug {
		p.opts.observer.Debug(fmt.Sprintf("split %s into %d+1 pages (group %s)", item.URL(), s.total, s.groupID))
	}
	return derived, nil
}

// cutHeader separates the header from the first part. Without the marker
// the whole part is content.
func cutHeader(part, marker string) (content, header string) {
	if marker == "" {
		return part, ""
	}
	before, after, found := strings.Cut(part, marker)
	if !found {
		return part, ""
	}
	return after, before
}

// cutFooter separates the footer from the last part. Without the marker
// the whole part is content. The footer ends at a second marker, if any.
func cutFooter(part, marker string) (content, footer string) {
	if marker == "" {
		return part, ""
	}
	before, after, found := strings.Cut(part, marker)
	if !found {
		return part, ""
	}
	footer, _, _ = strings.Cut(after, marker)
	return before, footer
}

// splitState carries the values shared by every page of one split.
type splitState struct {
	cfg     *Config
	item    Item
	factory ItemFactory
	total   int
	groupID string
	siteURL string
	base    string
	single  string
}

// permalink returns the path of page num in this split.
func (s *splitState) permalink(num int) string {
	return Permalink(s.base, s.cfg.Permalink, num, s.total)
}

// part builds the derived item for page num.
func (s *splitState) part(num int, content string) *DerivedItem {
	cfg := s.cfg
	first, last := num == 1, num == s.total

	nav := Navigation{
		Paginated:       true,
		PageNum:         num,
		PagePath:        s.permalink(num),
		FirstPage:       1,
		FirstPagePath:   s.base,
		LastPage:        s.total,
		LastPagePath:    s.permalink(s.total),
		TotalPages:      s.total,
		SinglePage:      s.single,
		IsFirst:         first,
		IsLast:          last,
		PreviousIsFirst: num == 2,
		NextIsLast:      num == s.total-1,
		HasPrevious:     num >= 2,
		HasNext:         num < s.total,
	}
	if !first {
		nav.PreviousPage = num - 1
		nav.PreviousPagePath = s.permalink(num - 1)
	}
	if !last {
		nav.NextPage = num + 1
		nav.NextPagePath = s.permalink(num + 1)
	}

	derived := s.factory(s.item)
	inheritData(s.item, derived)

	window := cfg.Trail
	window.Title = cfg.trailTitle()
	nav.Trail = BuildTrail(s.base, title(derived), num, s.total, window, cfg.Permalink)

	var seo strings.Builder
	seo.WriteString(seoLink("canonical", s.siteURL+s.single, cfg.SEOCanonical))
	if nav.PreviousPagePath != "" {
		seo.WriteString(seoLink("prev", s.siteURL+nav.PreviousPagePath, true))
	}
	if nav.NextPagePath != "" {
		seo.WriteString(seoLink("next", s.siteURL+nav.NextPagePath, true))
	}
	nav.SEO = seo.String()

	pager := NewPager(nav)

	ApplyStage(s.item, derived, StageAll, cfg.Properties, cfg.UserProperties)
	if first {
		ApplyStage(s.item, derived, StageFirst, cfg.Properties, cfg.UserProperties)
	}
	if last {
		ApplyStage(s.item, derived, StageLast, cfg.Properties, cfg.UserProperties)
	}
	if !first && !last {
		ApplyStage(s.item, derived, StageOthers, cfg.Properties, cfg.UserProperties)
	}

	// layout, date and permalink are never overridable by stage tables.
	data := derived.Data()
	restore(data, s.item.Data(), KeyLayout)
	restore(data, s.item.Data(), KeyDate)
	data[KeyPermalink] = nav.PagePath

	// A "/" stage entry removes title from the merge; the original still applies.
	src, ok := data[KeyTitle]
	if !ok {
		src, ok = s.item.Data()[KeyTitle]
	}
	if ok {
		data[KeyTitle] = Title(cfg.Title, stringValue(src), num, s.total, cfg.RetitleFirst)
	}

	info := PaginationInfo{
		CurrentPage: num,
		TotalPages:  s.total,
		Kind:        kindOf(num, s.total),
		GroupID:     s.groupID,
	}
	data[KeyPaginationInfo] = info.Map()
	data[KeyPager] = pager.Map()

	derived.SetContent(content)
	return &DerivedItem{Item: derived, Pager: pager, Info: info}
}

// full builds the single-page item holding the original content.
func (s *splitState) full() *DerivedItem {
	cfg := s.cfg

	derived := s.factory(s.item)
	inheritData(s.item, derived)

	ApplyStage(s.item, derived, StageAll, cfg.Properties, cfg.UserProperties)
	ApplyStage(s.item, derived, StageSingle, cfg.Properties, cfg.UserProperties)

	info := PaginationInfo{Kind: KindFull, GroupID: s.groupID}
	pager := NewPager(Navigation{
		FirstPagePath: s.base,
		TotalPages:    s.total,
		SEO:           seoLink("canonical", s.siteURL+s.single, cfg.SEOCanonical),
	})

	data := derived.Data()
	data[KeyPaginationInfo] = info.Map()
	data[KeyPermalink] = s.single
	restore(data, s.item.Data(), KeyLayout)
	restore(data, s.item.Data(), KeyDate)
	restore(data, s.item.Data(), KeyTitle)
	data[KeyPager] = pager.Map()

	derived.SetContent(s.item.Content())
	return &DerivedItem{Item: derived, Pager: pager, Info: info}
}

// restore copies key from src to dst, removing it from dst when src lacks it.
func restore(dst, src map[string]any, key string) {
	if v, ok := src[key]; ok {
		dst[key] = v
		return
	}
	delete(dst, key)
}
