package main

import (
	"strconv"
	"strings"

	paginate "github.com/alnah/go-paginate"
	"github.com/alnah/go-paginate/internal/config"
)

// envPrefix starts every recognized environment variable.
const envPrefix = "MDPAGINATE_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without editing _config.yml.
type envConfig struct {
	ConfigPath  string   // MDPAGINATE_CONFIG: config file path
	SourceDir   string   // MDPAGINATE_SOURCE_DIR: site root
	OutputDir   string   // MDPAGINATE_OUTPUT_DIR: output directory
	SiteURL     string   // MDPAGINATE_SITE_URL: SEO link prefix
	Collections []string // MDPAGINATE_COLLECTIONS: comma-separated names
	Separator   string   // MDPAGINATE_SEPARATOR: page separator marker
	Permalink   string   // MDPAGINATE_PERMALINK: part permalink template
	Auto        *bool    // MDPAGINATE_AUTO: separator-based selection
	Workers     int      // MDPAGINATE_WORKERS: parallel workers
}

// knownEnvVars lists valid MDPAGINATE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDPAGINATE_CONFIG":      true,
	"MDPAGINATE_SOURCE_DIR":  true,
	"MDPAGINATE_OUTPUT_DIR":  true,
	"MDPAGINATE_SITE_URL":    true,
	"MDPAGINATE_COLLECTIONS": true,
	"MDPAGINATE_SEPARATOR":   true,
	"MDPAGINATE_PERMALINK":   true,
	"MDPAGINATE_AUTO":        true,
	"MDPAGINATE_WORKERS":     true,
}

// loadEnvConfig reads the MDPAGINATE_* values through getenv.
// Malformed booleans and integers are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MDPAGINATE_CONFIG"),
		SourceDir:  getenv("MDPAGINATE_SOURCE_DIR"),
		OutputDir:  getenv("MDPAGINATE_OUTPUT_DIR"),
		SiteURL:    getenv("MDPAGINATE_SITE_URL"),
		Separator:  getenv("MDPAGINATE_SEPARATOR"),
		Permalink:  getenv("MDPAGINATE_PERMALINK"),
	}

	if names := getenv("MDPAGINATE_COLLECTIONS"); strings.Trim(names, ", ") != "" {
		cfg.Collections = paginate.ParseCollections(names, nil)
	}

	if auto := getenv("MDPAGINATE_AUTO"); auto != "" {
		if b, err := strconv.ParseBool(auto); err == nil {
			cfg.Auto = &b
		}
	}

	if workers := getenv("MDPAGINATE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// unknownEnvVars returns the unrecognized MDPAGINATE_* variable names in
// environ, so typos like MDPAGINATE_OUTPUT can be reported.
func unknownEnvVars(environ []string) []string {
	var unknown []string
	for _, env := range environ {
		name, _, _ := strings.Cut(env, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// applyEnvConfig overlays set environment values on the file config.
// CLI flags are applied afterwards by mergeFlags.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.SourceDir != "" {
		cfg.Source = env.SourceDir
	}
	if env.OutputDir != "" {
		cfg.Destination = env.OutputDir
	}
	if env.SiteURL != "" {
		cfg.Canonical = env.SiteURL
	}

	p := &cfg.Paginate
	if len(env.Collections) > 0 {
		p.Collection = env.Collections
		p.Collections = nil
	}
	if env.Separator != "" {
		p.Separator = env.Separator
	}
	if env.Permalink != "" {
		p.Permalink = env.Permalink
	}
	if env.Auto != nil {
		p.Auto = *env.Auto
	}
}
