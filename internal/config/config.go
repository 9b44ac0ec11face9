package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	paginate "github.com/alnah/go-paginate"
	"github.com/alnah/go-paginate/internal/fileutil"
	"github.com/alnah/go-paginate/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidURL      = errors.New("url must start with http:// or https://")
)

// Field length limits.
const (
	MaxURLLength      = 2048
	MaxMarkerLength   = 200 // separator, header, footer
	MaxTemplateLength = 500 // permalink, single_page, title formats
	MaxPathLength     = 4096
)

// Config is the subset of a Jekyll-style _config.yml read by mdpaginate.
// Keys outside paginate_content that are not listed here are ignored so a
// real site config can be used as is.
type Config struct {
	URL         string          `yaml:"url"`
	Canonical   string          `yaml:"canonical"` // preferred over url for SEO links
	Source      string          `yaml:"source"`
	Destination string          `yaml:"destination"`
	Paginate    PaginateContent `yaml:"paginate_content"`
}

// PaginateContent is the paginate_content block. Empty strings and nil
// pointers fall back to the library defaults.
type PaginateContent struct {
	Enabled      *bool       `yaml:"enabled"` // nil = enabled
	Debug        bool        `yaml:"debug"`
	Collection   StringList  `yaml:"collection"` // "posts, docs" or a list
	Collections  []string    `yaml:"collections"`
	Auto         bool        `yaml:"auto"`
	Separator    string      `yaml:"separator"`
	Header       string      `yaml:"header"`
	Footer       string      `yaml:"footer"`
	Permalink    string      `yaml:"permalink"`
	SinglePage   string      `yaml:"single_page"`
	SEOCanonical *bool       `yaml:"seo_canonical"` // nil = true
	Title        string      `yaml:"title"`
	RetitleFirst bool        `yaml:"retitle_first"`
	Trail        TrailConfig `yaml:"trail"`

	Properties map[string]map[string]any `yaml:"properties"`
}

// TrailConfig is the paginate_content.trail block.
type TrailConfig struct {
	Before int    `yaml:"before"`
	After  int    `yaml:"after"`
	Title  string `yaml:"title"`
}

// StringList accepts a comma-delimited string or a YAML list.
type StringList []string

// UnmarshalYAML implements yaml.BytesUnmarshaler.
func (s *StringList) UnmarshalYAML(data []byte) error {
	var v any
	if err := yamlutil.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*s = nil
	case string:
		if strings.Trim(t, ", ") == "" {
			*s = nil
			return nil
		}
		*s = paginate.ParseCollections(t, nil)
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			out = append(out, fmt.Sprint(e))
		}
		*s = out
	default:
		return fmt.Errorf("collection: expected string or list, got %T", v)
	}
	return nil
}

// Validate checks field lengths, URLs, trail sizes and stage names.
// Called automatically by LoadConfig, but available for callers that build
// a Config by hand.
func (c *Config) Validate() error {
	for _, u := range []struct{ name, value string }{{"url", c.URL}, {"canonical", c.Canonical}} {
		if u.value == "" {
			continue
		}
		if err := validateFieldLength(u.name, u.value, MaxURLLength); err != nil {
			return err
		}
		if !fileutil.IsURL(u.value) {
			return fmt.Errorf("%s: %w, got %q", u.name, ErrInvalidURL, u.value)
		}
	}
	if err := validateFieldLength("source", c.Source, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("destination", c.Destination, MaxPathLength); err != nil {
		return err
	}

	p := &c.Paginate
	for _, f := range []struct {
		name  string
		value string
		max   int
	}{
		{"paginate_content.separator", p.Separator, MaxMarkerLength},
		{"paginate_content.header", p.Header, MaxMarkerLength},
		{"paginate_content.footer", p.Footer, MaxMarkerLength},
		{"paginate_content.permalink", p.Permalink, MaxTemplateLength},
		{"paginate_content.single_page", p.SinglePage, MaxTemplateLength},
		{"paginate_content.title", p.Title, MaxTemplateLength},
		{"paginate_content.trail.title", p.Trail.Title, MaxTemplateLength},
	} {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if p.Trail.Before < 0 {
		return fmt.Errorf("paginate_content.trail.before: %w, got %d", paginate.ErrNegativeTrail, p.Trail.Before)
	}
	if p.Trail.After < 0 {
		return fmt.Errorf("paginate_content.trail.after: %w, got %d", paginate.ErrNegativeTrail, p.Trail.After)
	}
	if p.Permalink != "" && !strings.Contains(p.Permalink, ":num") {
		return fmt.Errorf("paginate_content.permalink: %w", paginate.ErrMissingPageNum)
	}
	for stage := range p.Properties {
		if !paginate.Stage(stage).IsValid() {
			return fmt.Errorf("paginate_content.properties.%s: %w", stage, paginate.ErrUnknownStage)
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns an empty configuration: every setting falls back to
// the library defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// SiteURL returns the prefix used for SEO links: canonical, then url.
func (c *Config) SiteURL() string {
	if c.Canonical != "" {
		return c.Canonical
	}
	return c.URL
}

// PaginateConfig converts the file settings to a library configuration.
func (c *Config) PaginateConfig() paginate.Config {
	p := &c.Paginate
	out := paginate.DefaultConfig()

	out.Enabled = p.Enabled == nil || *p.Enabled
	out.Debug = p.Debug
	out.Collections = paginate.ParseCollections("", append(append([]string(nil), p.Collection...), p.Collections...))
	out.Auto = p.Auto
	out.Separator = orDefault(p.Separator, out.Separator)
	out.Header = orDefault(p.Header, out.Header)
	out.Footer = orDefault(p.Footer, out.Footer)
	out.Permalink = orDefault(p.Permalink, out.Permalink)
	out.SinglePage = orDefault(p.SinglePage, out.SinglePage)
	out.SEOCanonical = p.SEOCanonical == nil || *p.SEOCanonical
	out.Title = p.Title
	out.RetitleFirst = p.RetitleFirst
	out.Trail = paginate.TrailConfig{Before: p.Trail.Before, After: p.Trail.After, Title: p.Trail.Title}
	out.SiteURL = c.SiteURL()

	if len(p.Properties) > 0 {
		out.UserProperties = make(paginate.StageProperties, len(p.Properties))
		for stage, props := range p.Properties {
			out.UserProperties[paginate.Stage(stage)] = paginate.Properties(props)
		}
	}
	return out
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
//
// Unknown keys inside paginate_content are rejected; other top-level keys
// are ignored.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes and validates config data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yamlutil.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := checkPaginateKeys(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// checkPaginateKeys decodes the paginate_content block strictly.
func checkPaginateKeys(data []byte) error {
	var raw struct {
		Block map[string]any `yaml:"paginate_content"`
	}
	if err := yamlutil.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Block) == 0 {
		return nil
	}
	block, err := yamlutil.Marshal(raw.Block)
	if err != nil {
		return err
	}
	var pc PaginateContent
	return yamlutil.UnmarshalStrict(block, &pc)
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// the current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-paginate", name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
