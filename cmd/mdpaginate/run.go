package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	paginate "github.com/alnah/go-paginate"
	"github.com/alnah/go-paginate/internal/config"
	"github.com/alnah/go-paginate/internal/fileutil"
	"github.com/alnah/go-paginate/internal/hints"
	"github.com/alnah/go-paginate/internal/site"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
)

// Sentinel errors for CLI operations.
var (
	ErrTooManyArgs = errors.New("expected at most one source directory")
	ErrWriteOutput = errors.New("failed to write output")
)

// defaultOutputDir is created under the source when no output is given.
const defaultOutputDir = "_paginated"

// configCandidates are looked up in the source directory when no config
// file is named.
var configCandidates = []string{"_config.yml", "_config.yaml"}

// runMain parses args, runs the pipeline and returns the exit code.
func runMain(args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:]
	}

	flags, positional, err := parseFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "mdpaginate %s\n", Version)
		return ExitSuccess
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := run(ctx, positional, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run loads the site, paginates it and writes the result.
func run(ctx context.Context, positional []string, flags *cliFlags, env *Environment) error {
	if len(positional) > 1 {
		return fmt.Errorf("%w, got %d", ErrTooManyArgs, len(positional))
	}
	if err := validateWorkers(flags.io.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)

	// Source before the config file, so <source>/_config.yml can be found
	source := "."
	if len(positional) == 1 {
		source = positional[0]
	} else if envCfg.SourceDir != "" {
		source = envCfg.SourceDir
	}

	cfg, cfgPath, err := loadConfig(flags.common.config, envCfg.ConfigPath, source)
	if err != nil {
		return err
	}
	if len(positional) == 0 && envCfg.SourceDir == "" && cfg.Source != "" {
		source = cfg.Source
	}

	// Precedence: CLI flags > env vars > config file > defaults
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	pcfg := cfg.PaginateConfig()
	if err := pcfg.Validate(); err != nil {
		return err
	}

	log := newLogger(env.Stderr, logLevel(flags.common.quiet, pcfg.Debug))
	defer func() { _ = log.Sync() }()

	for _, name := range unknownEnvVars(env.Environ()) {
		log.Warn("unknown environment variable (typo?)", zap.String("name", name))
	}
	if cfgPath != "" {
		log.Debug("loaded config", zap.String("path", cfgPath))
	}

	output, err := filepath.Abs(resolveOutputDir(cfg, source))
	if err != nil {
		return fmt.Errorf("resolving output: %w", err)
	}
	excluded := append([]string{output}, flags.io.exclude...)

	s, err := site.Load(source, site.Options{Exclude: excluded})
	if err != nil {
		if errors.Is(err, site.ErrNotDirectory) {
			return fmt.Errorf("loading site: %w%s", err, hints.ForSourceDirectory())
		}
		return fmt.Errorf("loading site: %w", err)
	}

	workers := flags.io.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	workers = resolvePoolSize(workers)
	log.Debug("generator ready", zap.Int("workers", workers), zap.Strings("collections", pcfg.Collections))

	gen := paginate.NewGenerator(pcfg,
		paginate.WithObserver(logObserver{log: log}),
		paginate.WithWorkers(workers),
	)
	report, genErr := gen.Generate(ctx, s)
	if ctx.Err() != nil {
		return fmt.Errorf("generation interrupted: %w%s", ctx.Err(), hints.ForInterrupted())
	}

	parts, copies, failed := report.Totals()
	if pcfg.Enabled && copies == 0 && failed == 0 {
		log.Warn("nothing was paginated" + hints.ForNoPaginatedItems(pcfg.Auto, pcfg.Separator, pcfg.Collections))
	}

	if flags.io.dryRun {
		return printPlan(s, env, genErr, failed)
	}

	written, err := s.Write(output)
	if err != nil {
		if errors.Is(err, site.ErrDuplicateOutput) {
			return err
		}
		return fmt.Errorf("%w: %w%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Paginated %d items into %d parts, wrote %d files to %s\n",
			copies, parts, len(written), output)
	}
	return itemFailures(genErr, failed)
}

// printPlan lists the files a run would write.
func printPlan(s *site.Site, env *Environment, genErr error, failed int) error {
	plan, err := s.Plan()
	if err != nil {
		return err
	}
	for _, o := range plan {
		fmt.Fprintln(env.Stdout, o.Path)
	}
	return itemFailures(genErr, failed)
}

// itemFailures wraps the combined item errors with their count.
func itemFailures(genErr error, failed int) error {
	if genErr == nil {
		return nil
	}
	return fmt.Errorf("%d item(s) failed: %w", failed, genErr)
}

// loadConfig resolves the config file: --config, then MDPAGINATE_CONFIG,
// then _config.yml in the source directory. No file means defaults.
// Returns the loaded path, empty for defaults.
func loadConfig(flagName, envName, source string) (*config.Config, string, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		for _, candidate := range configCandidates {
			p, err := filepath.Abs(filepath.Join(source, candidate))
			if err == nil && fileutil.FileExists(p) {
				name = p
				break
			}
		}
	}
	if name == "" {
		return config.DefaultConfig(), "", nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, "", fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, "", fmt.Errorf("loading config: %w", err)
	}
	return cfg, name, nil
}

// resolveOutputDir returns the output directory: destination from flags,
// env or config, else <source>/_paginated.
func resolveOutputDir(cfg *config.Config, source string) string {
	if cfg.Destination != "" {
		return cfg.Destination
	}
	return filepath.Join(source, defaultOutputDir)
}

// mergeFlags applies explicitly set CLI flags to cfg. CLI wins.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.io.output != "" {
		cfg.Destination = flags.io.output
	}
	if flags.paginate.siteURL != "" {
		cfg.Canonical = flags.paginate.siteURL
	}

	p := &cfg.Paginate
	f := &flags.paginate
	changed := flags.changed

	if changed["collection"] {
		p.Collection = f.collections
		p.Collections = nil
	}
	if changed["auto"] {
		p.Auto = f.auto
	}
	if changed["retitle-first"] {
		p.RetitleFirst = f.retitleFirst
	}
	if changed["trail-before"] {
		p.Trail.Before = f.trailBefore
	}
	if changed["trail-after"] {
		p.Trail.After = f.trailAfter
	}
	if f.noSEOCanonical {
		p.SEOCanonical = boolPtr(false)
	}
	if f.disabled {
		p.Enabled = boolPtr(false)
	}
	if flags.common.verbose {
		p.Debug = true
	}

	for _, s := range []struct {
		value string
		dst   *string
	}{
		{f.separator, &p.Separator},
		{f.header, &p.Header},
		{f.footer, &p.Footer},
		{f.permalink, &p.Permalink},
		{f.singlePage, &p.SinglePage},
		{f.title, &p.Title},
		{f.trailTitle, &p.Trail.Title},
	} {
		if s.value != "" {
			*s.dst = s.value
		}
	}
}

func boolPtr(b bool) *bool { return &b }
