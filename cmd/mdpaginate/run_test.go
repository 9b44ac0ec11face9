package main

// Notes:
// - runMain: exit codes and output for flag handling, config resolution and
//   full runs over a temp site. Environment is injected, so tests run in
//   parallel without touching the process environment.
// - We don't test SIGINT delivery; cancellation is covered by the generator.

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupSite creates a temp site root with the given files.
func setupSite(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", rel, err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
	return root
}

// testEnv returns an Environment with buffers and the given variables.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	environ := make([]string, 0, len(vars))
	for k, v := range vars {
		environ = append(environ, k+"="+v)
	}
	return &Environment{
		Stdout:  &stdout,
		Stderr:  &stderr,
		Getenv:  func(k string) string { return vars[k] },
		Environ: func() []string { return environ },
	}, &stdout, &stderr
}

// readOutput reads a file under the output directory.
func readOutput(t *testing.T, dir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

var blogSite = map[string]string{
	"_config.yml":                "url: https://example.com\npaginate_content:\n  title: ':title (:num of :max)'\n",
	"_posts/2024-01-02-guide.md": "---\npaginate: true\ntitle: Guide\n---\nA<!--page-->B",
	"_posts/2024-02-03-short.md": "---\ntitle: Short\n---\nno split<!--page-->here",
	"about.md":                   "# About\n\nplain",
}

// ---------------------------------------------------------------------------
// TestRunMain - Flags and exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "version",
			args:         []string{"mdpaginate", "--version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"mdpaginate dev"},
		},
		{
			name:         "help",
			args:         []string{"mdpaginate", "-h"},
			wantCode:     ExitSuccess,
			wantInStderr: []string{"Usage: mdpaginate", "--permalink"},
		},
		{
			name:         "unknown flag",
			args:         []string{"mdpaginate", "--bogus"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"bogus"},
		},
		{
			name:         "too many args",
			args:         []string{"mdpaginate", "a", "b"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"at most one source"},
		},
		{
			name:         "negative workers",
			args:         []string{"mdpaginate", "--workers", "-1", "."},
			wantCode:     ExitUsage,
			wantInStderr: []string{"invalid worker count"},
		},
		{
			name:         "named config not found",
			args:         []string{"mdpaginate", "-c", "no-such-config-name", "."},
			wantCode:     ExitUsage,
			wantInStderr: []string{"config file not found", "hint:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(nil)
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d\nstderr: %s", code, tt.wantCode, stderr)
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout)
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Site - Full runs over a temp site
// ---------------------------------------------------------------------------

func TestRunMain_Site(t *testing.T) {
	t.Parallel()

	root := setupSite(t, blogSite)
	env, stdout, stderr := testEnv(nil)

	if code := runMain([]string{"mdpaginate", root}, env); code != ExitSuccess {
		t.Fatalf("runMain() = %d\nstderr: %s", code, stderr)
	}

	if !strings.Contains(stdout.String(), "Paginated 1 items into 2 parts, wrote 5 files") {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr.String(), "[posts] Generated 2+1 pages") {
		t.Errorf("stderr should log the generated pages, got %q", stderr)
	}

	out := filepath.Join(root, defaultOutputDir)
	part2 := readOutput(t, out, "posts/guide/2/index.md")
	for _, want := range []string{"Guide (2 of 2)", "https://example.com/posts/guide/", "curr_page: 2"} {
		if !strings.Contains(part2, want) {
			t.Errorf("part 2 missing %q:\n%s", want, part2)
		}
	}
	if !strings.HasSuffix(part2, "\n---\nB") {
		t.Errorf("part 2 body: %q", part2)
	}

	short := readOutput(t, out, "posts/short/index.md")
	if !strings.Contains(short, "<!--page-->") {
		t.Errorf("unflagged post should be copied unsplit:\n%s", short)
	}
	readOutput(t, out, "posts/guide/view-all/index.md")
	readOutput(t, out, "about.md")
}

func TestRunMain_SecondRunSkipsOutput(t *testing.T) {
	t.Parallel()

	root := setupSite(t, blogSite)
	out := filepath.Join(root, "public")

	for i := range 2 {
		env, _, stderr := testEnv(nil)
		if code := runMain([]string{"mdpaginate", "-q", "-o", out, root}, env); code != ExitSuccess {
			t.Fatalf("run %d: runMain() = %d\nstderr: %s", i+1, code, stderr)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "public")); !os.IsNotExist(err) {
		t.Errorf("output directory was loaded as content on the second run: %v", err)
	}
}

func TestRunMain_DryRun(t *testing.T) {
	t.Parallel()

	root := setupSite(t, blogSite)
	env, stdout, stderr := testEnv(nil)

	if code := runMain([]string{"mdpaginate", "--dry-run", root}, env); code != ExitSuccess {
		t.Fatalf("runMain() = %d\nstderr: %s", code, stderr)
	}

	want := "about.md\nposts/guide/2/index.md\nposts/guide/index.md\nposts/guide/view-all/index.md\nposts/short/index.md\n"
	if stdout.String() != want {
		t.Errorf("dry run plan:\n%s\nwant:\n%s", stdout, want)
	}
	if _, err := os.Stat(filepath.Join(root, defaultOutputDir)); !os.IsNotExist(err) {
		t.Errorf("dry run created the output directory: %v", err)
	}
}

func TestRunMain_EnvAndFlagPrecedence(t *testing.T) {
	t.Parallel()

	root := setupSite(t, blogSite)
	env, stdout, stderr := testEnv(map[string]string{
		"MDPAGINATE_AUTO":      "true",
		"MDPAGINATE_PERMALINK": "/env-:num/",
		"MDPAGINATE_TYPO":      "x",
	})

	args := []string{"mdpaginate", "-n", "--permalink", "/part-:num/", "--collection", "posts", root}
	if code := runMain(args, env); code != ExitSuccess {
		t.Fatalf("runMain() = %d\nstderr: %s", code, stderr)
	}

	plan := stdout.String()
	for _, want := range []string{"posts/short/part-2/index.md", "posts/guide/part-2/index.md"} {
		if !strings.Contains(plan, want) {
			t.Errorf("plan missing %s (auto from env, permalink from flag):\n%s", want, plan)
		}
	}
	if strings.Contains(plan, "env-2") {
		t.Errorf("flag permalink should win over env:\n%s", plan)
	}
	if !strings.Contains(stderr.String(), "MDPAGINATE_TYPO") {
		t.Errorf("expected unknown variable warning, got %q", stderr)
	}
}

func TestRunMain_NothingPaginated(t *testing.T) {
	t.Parallel()

	root := setupSite(t, map[string]string{"about.md": "plain"})
	env, _, stderr := testEnv(nil)

	if code := runMain([]string{"mdpaginate", "-n", root}, env); code != ExitSuccess {
		t.Fatalf("runMain() = %d\nstderr: %s", code, stderr)
	}
	if !strings.Contains(stderr.String(), "nothing was paginated") || !strings.Contains(stderr.String(), "paginate: true") {
		t.Errorf("expected hint, got %q", stderr)
	}
}

func TestRunMain_SiteErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		files      map[string]string
		args       func(root string) []string
		wantCode   int
		wantStderr string
	}{
		{
			name:       "missing source",
			args:       func(root string) []string { return []string{filepath.Join(root, "missing")} },
			wantCode:   ExitIO,
			wantStderr: "hint:",
		},
		{
			name:       "malformed front matter",
			files:      map[string]string{"bad.md": "---\ntitle: open"},
			args:       func(root string) []string { return []string{root} },
			wantCode:   ExitUsage,
			wantStderr: "bad.md",
		},
		{
			name:       "invalid config",
			files:      map[string]string{"_config.yml": "paginate_content:\n  permalink: /no-number/\n"},
			args:       func(root string) []string { return []string{root} },
			wantCode:   ExitUsage,
			wantStderr: ":num",
		},
		{
			name:       "unknown paginate key",
			files:      map[string]string{"_config.yml": "paginate_content:\n  seperator: x\n"},
			args:       func(root string) []string { return []string{root} },
			wantCode:   ExitUsage,
			wantStderr: "failed to parse config",
		},
		{
			name:       "invalid site url flag",
			args:       func(root string) []string { return []string{"--site-url", "example.com", root} },
			wantCode:   ExitUsage,
			wantStderr: "http",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := setupSite(t, tt.files)
			env, _, stderr := testEnv(nil)

			code := runMain(append([]string{"mdpaginate"}, tt.args(root)...), env)
			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d\nstderr: %s", code, tt.wantCode, stderr)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr should contain %q, got %q", tt.wantStderr, stderr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMergeFlags - CLI over config
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	f, _, err := parseFlags([]string{
		"-o", "out", "-v", "--site-url", "https://cli.example",
		"--trail-before", "0", "--no-seo-canonical", "--disable", "--separator", "<!--cut-->",
	}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}

	cfg, _, err := loadConfig("", "", t.TempDir())
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	cfg.Paginate.Trail.Before = 3
	cfg.Paginate.Trail.After = 2
	cfg.Paginate.Separator = "<!--file-->"

	mergeFlags(f, cfg)

	p := cfg.PaginateConfig()
	if cfg.Destination != "out" || p.SiteURL != "https://cli.example" {
		t.Errorf("destination = %q, site url = %q", cfg.Destination, p.SiteURL)
	}
	if p.Trail.Before != 0 || p.Trail.After != 2 {
		t.Errorf("trail = %+v, want before reset and after kept", p.Trail)
	}
	if p.SEOCanonical || p.Enabled || !p.Debug {
		t.Errorf("SEOCanonical = %v, Enabled = %v, Debug = %v", p.SEOCanonical, p.Enabled, p.Debug)
	}
	if p.Separator != "<!--cut-->" {
		t.Errorf("Separator = %q", p.Separator)
	}
}
