package paginate

// Notes:
// - Permalink: page 1 keeps the base, later pages substitute :num/:max and
//   never contain doubled slashes.
// - Title: empty format and page 1 keep the original unless retitleFirst.
// - urlBase: extension URLs drop the extension, folder URLs are used as is.

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestPermalink - Page path templating
// ---------------------------------------------------------------------------

func TestPermalink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		base     string
		template string
		page     int
		total    int
		want     string
	}{
		{
			name:     "page 1 returns base unchanged",
			base:     "/guide/",
			template: "/:num/",
			page:     1,
			total:    3,
			want:     "/guide/",
		},
		{
			name:     "page 1 ignores template even with doubled slashes in base",
			base:     "/guide//",
			template: "/:num/",
			page:     1,
			total:    3,
			want:     "/guide//",
		},
		{
			name:     "placeholders in base are left alone",
			base:     "/notes-:num-:max/",
			template: "/:num/",
			page:     2,
			total:    3,
			want:     "/notes-:num-:max/2/",
		},
		{
			name:     "page 2 appends template",
			base:     "/guide/",
			template: "/:num/",
			page:     2,
			total:    3,
			want:     "/guide/2/",
		},
		{
			name:     "max placeholder",
			base:     "/guide/",
			template: "/page-:num-of-:max/",
			page:     3,
			total:    7,
			want:     "/guide/page-3-of-7/",
		},
		{
			name:     "extension base without trailing slash",
			base:     "/docs/guide",
			template: "/:num/",
			page:     2,
			total:    2,
			want:     "/docs/guide/2/",
		},
		{
			name:     "repeated slashes collapse",
			base:     "/guide///",
			template: "//:num//",
			page:     4,
			total:    5,
			want:     "/guide/4/",
		},
		{
			name:     "empty template degrades to base",
			base:     "/guide/",
			template: "",
			page:     2,
			total:    3,
			want:     "/guide/",
		},
		{
			name:     "multi-digit page numbers",
			base:     "/a/",
			template: ":num.html",
			page:     12,
			total:    12,
			want:     "/a/12.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Permalink(tt.base, tt.template, tt.page, tt.total)
			if got != tt.want {
				t.Errorf("Permalink(%q, %q, %d, %d) = %q, want %q", tt.base, tt.template, tt.page, tt.total, got, tt.want)
			}
		})
	}
}

func TestPermalink_NoDoubledSlashes(t *testing.T) {
	t.Parallel()

	bases := []string{"/", "/a/", "/a", "/a/b/", "//a//b//"}
	templates := []string{"/:num/", ":num/", "//:num", "/p/:num/:max/"}

	for _, base := range bases {
		for _, tpl := range templates {
			for page := 2; page <= 5; page++ {
				got := Permalink(base, tpl, page, 5)
				if strings.Contains(got, "//") {
					t.Errorf("Permalink(%q, %q, %d, 5) = %q, contains //", base, tpl, page, got)
				}
			}
		}
	}
}

// ---------------------------------------------------------------------------
// TestTitle - Title templating
// ---------------------------------------------------------------------------

func TestTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		format       string
		original     string
		page         int
		total        int
		retitleFirst bool
		want         string
	}{
		{
			name:     "empty format keeps original",
			format:   "",
			original: "Guide",
			page:     2,
			total:    3,
			want:     "Guide",
		},
		{
			name:     "page 1 keeps original",
			format:   ":title - :num/:max",
			original: "Guide",
			page:     1,
			total:    3,
			want:     "Guide",
		},
		{
			name:         "page 1 retitled when requested",
			format:       ":title - :num/:max",
			original:     "Guide",
			page:         1,
			total:        3,
			retitleFirst: true,
			want:         "Guide - 1/3",
		},
		{
			name:     "later pages substituted",
			format:   ":title (part :num of :max)",
			original: "Guide",
			page:     2,
			total:    3,
			want:     "Guide (part 2 of 3)",
		},
		{
			name:     "placeholders inside the title are not expanded",
			format:   ":title #:num",
			original: "Use :num wisely",
			page:     2,
			total:    2,
			want:     "Use :num wisely #2",
		},
		{
			name:         "empty format with retitleFirst keeps original",
			format:       "",
			original:     "Guide",
			page:         1,
			total:        2,
			retitleFirst: true,
			want:         "Guide",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Title(tt.format, tt.original, tt.page, tt.total, tt.retitleFirst)
			if got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestURLBase - Base URL derivation
// ---------------------------------------------------------------------------

func TestURLBase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		url        string
		singlePage string
		wantBase   string
		wantSingle string
	}{
		{
			name:       "folder URL",
			url:        "/blog/guide/",
			singlePage: "/view-all/",
			wantBase:   "/blog/guide/",
			wantSingle: "/blog/guide/view-all/",
		},
		{
			name:       "extension URL",
			url:        "/blog/guide.html",
			singlePage: "/view-all/",
			wantBase:   "/blog/guide",
			wantSingle: "/blog/guide/view-all/",
		},
		{
			name:       "dotted directory keeps last segment extension rule",
			url:        "/v1.2/guide.html",
			singlePage: "/all/",
			wantBase:   "/v1.2/guide",
			wantSingle: "/v1.2/guide/all/",
		},
		{
			name:       "root URL",
			url:        "/",
			singlePage: "/view-all/",
			wantBase:   "/",
			wantSingle: "/view-all/",
		},
		{
			name:       "suffix without leading slash",
			url:        "/guide/",
			singlePage: "everything.html",
			wantBase:   "/guide/",
			wantSingle: "/guide/everything.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			base, single := urlBase(tt.url, tt.singlePage)
			if base != tt.wantBase {
				t.Errorf("base = %q, want %q", base, tt.wantBase)
			}
			if single != tt.wantSingle {
				t.Errorf("single = %q, want %q", single, tt.wantSingle)
			}
		})
	}
}
