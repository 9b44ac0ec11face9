package paginate

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
)

// Default marker and template values.
const (
	DefaultSeparator  = "<!--page-->"
	DefaultHeader     = "<!--page_header-->"
	DefaultFooter     = "<!--page_footer-->"
	DefaultPermalink  = "/:num/"
	DefaultSinglePage = "/view-all/"
	DefaultAutogen    = "jekyll-paginate-content"
)

// DefaultCollections are processed when no collection is configured.
var DefaultCollections = []string{"posts", "pages"}

// Stage selects which front matter overlay applies to a derived item.
type Stage string

// Property stages, applied in the order all, then the positional stage.
const (
	StageAll    Stage = "all"
	StageFirst  Stage = "first"
	StageLast   Stage = "last"
	StageOthers Stage = "others"
	StageSingle Stage = "single"
)

// Stages lists every known stage.
var Stages = []Stage{StageAll, StageFirst, StageLast, StageOthers, StageSingle}

// IsValid reports whether s is a known stage.
func (s Stage) IsValid() bool {
	return slices.Contains(Stages, s)
}

// Properties is a front matter overlay.
type Properties map[string]any

// StageProperties maps stages to their overlays.
type StageProperties map[Stage]Properties

// Clone returns a deep-enough copy: stage tables are copied, values are shared.
func (sp StageProperties) Clone() StageProperties {
	if sp == nil {
		return nil
	}
	out := make(StageProperties, len(sp))
	for stage, props := range sp {
		out[stage] = maps.Clone(props)
	}
	return out
}

// DefaultProperties returns the built-in stage tables: generated parts are
// hidden and untagged, the first part keeps the original taxonomy, and the
// single page drops the autogen marker.
func DefaultProperties() StageProperties {
	return StageProperties{
		StageAll: {
			"autogen":    DefaultAutogen,
			"hidden":     true,
			"tag":        nil,
			"tags":       nil,
			"category":   nil,
			"categories": nil,
		},
		StageFirst: {
			"hidden":     false,
			"tag":        "$",
			"tags":       "$",
			"category":   "$",
			"categories": "$",
		},
		StageOthers: {},
		StageLast:   {},
		StageSingle: {
			"autogen": nil,
		},
	}
}

// TrailConfig sizes the page trail window.
// Before and After of zero mean "show every page".
type TrailConfig struct {
	Before int
	After  int
	Title  string // title format for trail entries (empty = Config.Title)
}

// Config holds pagination settings. Build it once per run with DefaultConfig
// and treat it as read-only afterwards; it is safe to share across goroutines.
type Config struct {
	Enabled     bool
	Debug       bool
	Collections []string
	Auto        bool // select by separator instead of "paginate" front matter

	Separator string
	Header    string
	Footer    string

	Permalink    string // appended to the base URL, :num and :max placeholders
	SinglePage   string // appended to the base URL for the view-all page
	Title        string // :title, :num and :max placeholders (empty = keep title)
	RetitleFirst bool
	Trail        TrailConfig

	SiteURL      string // prefix for SEO links
	SEOCanonical bool

	Properties     StageProperties
	UserProperties StageProperties
}

// DefaultConfig returns a Config with the standard markers and templates.
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		Collections:  slices.Clone(DefaultCollections),
		Separator:    DefaultSeparator,
		Header:       DefaultHeader,
		Footer:       DefaultFooter,
		Permalink:    DefaultPermalink,
		SinglePage:   DefaultSinglePage,
		SEOCanonical: true,
		Properties:   DefaultProperties(),
	}
}

// Validate checks settings that would otherwise produce degraded output.
// Split never validates; call this once at startup.
func (c *Config) Validate() error {
	if c.Separator == "" {
		return ErrEmptySeparator
	}
	if c.Separator == c.Header || c.Separator == c.Footer {
		return fmt.Errorf("%w: %q", ErrMarkerCollision, c.Separator)
	}
	if c.Permalink == "" {
		return ErrEmptyPermalink
	}
	if !strings.Contains(c.Permalink, ":num") {
		return fmt.Errorf("%w: %q", ErrMissingPageNum, c.Permalink)
	}
	if c.Trail.Before < 0 || c.Trail.After < 0 {
		return fmt.Errorf("%w: before=%d after=%d", ErrNegativeTrail, c.Trail.Before, c.Trail.After)
	}
	for _, sp := range []StageProperties{c.Properties, c.UserProperties} {
		for stage := range sp {
			if !stage.IsValid() {
				return fmt.Errorf("%w: %q", ErrUnknownStage, stage)
			}
		}
	}
	return nil
}

// collectionSplit separates a comma-delimited collection list.
var collectionSplit = regexp.MustCompile(`,\s*`)

// ParseCollections merges a comma-delimited collection string with a list,
// dropping blanks and duplicates while keeping first-seen order.
// An empty result falls back to DefaultCollections.
func ParseCollections(collection string, collections []string) []string {
	var all []string
	if collection != "" {
		all = append(all, collectionSplit.Split(collection, -1)...)
	}
	all = append(all, collections...)

	seen := make(map[string]bool, len(all))
	out := make([]string, 0, len(all))
	for _, name := range all {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	if len(out) == 0 {
		return slices.Clone(DefaultCollections)
	}
	return out
}

// siteURL returns the SEO prefix without its trailing slash.
func (c *Config) siteURL() string {
	return strings.TrimRight(c.SiteURL, "/")
}

// trailTitle returns the title format used for trail entries.
func (c *Config) trailTitle() string {
	if c.Trail.Title != "" {
		return c.Trail.Title
	}
	return c.Title
}
