package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared by every invocation.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// ioFlags holds source, output and worker flags.
type ioFlags struct {
	output  string
	workers int
	dryRun  bool
	exclude []string
}

// paginateFlags holds pagination overrides. Zero values mean "not set";
// use cliFlags.changed for flags whose zero value is meaningful.
type paginateFlags struct {
	collections    []string
	auto           bool
	separator      string
	header         string
	footer         string
	permalink      string
	singlePage     string
	title          string
	retitleFirst   bool
	trailBefore    int
	trailAfter     int
	trailTitle     string
	siteURL        string
	noSEOCanonical bool
	disabled       bool
}

// cliFlags holds every parsed flag.
type cliFlags struct {
	common   commonFlags
	io       ioFlags
	paginate paginateFlags
	version  bool

	// changed records the long names of flags given on the command line.
	changed map[string]bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show warnings and errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
}

// addIOFlags adds output and worker flags to a FlagSet.
func addIOFlags(fs *flag.FlagSet, f *ioFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default <source>/_paginated)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "print the files that would be written")
	fs.StringSliceVar(&f.exclude, "exclude", nil, "directories to skip, relative to the source")
}

// addPaginateFlags adds pagination flags to a FlagSet.
func addPaginateFlags(fs *flag.FlagSet, f *paginateFlags) {
	fs.StringSliceVar(&f.collections, "collection", nil, "collections to paginate (repeatable or comma-separated)")
	fs.BoolVarP(&f.auto, "auto", "a", false, "paginate every item containing the separator")
	fs.StringVar(&f.separator, "separator", "", "page separator marker")
	fs.StringVar(&f.header, "header", "", "header marker")
	fs.StringVar(&f.footer, "footer", "", "footer marker")
	fs.StringVar(&f.permalink, "permalink", "", "part permalink template (:num, :max)")
	fs.StringVar(&f.singlePage, "single-page", "", "single page permalink")
	fs.StringVar(&f.title, "title", "", "part title template (:title, :num, :max)")
	fs.BoolVar(&f.retitleFirst, "retitle-first", false, "apply the title template to the first part")
	fs.IntVar(&f.trailBefore, "trail-before", 0, "trail entries before the current page (0 = all)")
	fs.IntVar(&f.trailAfter, "trail-after", 0, "trail entries after the current page (0 = all)")
	fs.StringVar(&f.trailTitle, "trail-title", "", "trail entry title template")
	fs.StringVar(&f.siteURL, "site-url", "", "site URL used for SEO links")
	fs.BoolVar(&f.noSEOCanonical, "no-seo-canonical", false, "omit the canonical link")
	fs.BoolVar(&f.disabled, "disable", false, "copy the site without paginating")
}

// parseFlags parses command-line flags and returns positional args.
// Usage is written to w on -h or a parse error.
func parseFlags(args []string, w io.Writer) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("mdpaginate", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &cliFlags{changed: make(map[string]bool)}

	addCommonFlags(fs, &f.common)
	addIOFlags(fs, &f.io)
	addPaginateFlags(fs, &f.paginate)
	fs.BoolVarP(&f.version, "version", "V", false, "show version information")

	fs.Usage = func() { printUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.changed[fl.Name] = true })

	return f, fs.Args(), nil
}
