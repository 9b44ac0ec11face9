package frontmatter

// Notes:
// - Split: missing, empty, closing-at-EOF and unterminated blocks.
// - Join: delimiters always written; key order checked by position.

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestSplit - Delimiter handling
// ---------------------------------------------------------------------------

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		wantKeys map[string]any
		wantBody string
		wantErr  error
	}{
		{
			name:     "no front matter",
			src:      "# Title\n\nbody",
			wantKeys: map[string]any{},
			wantBody: "# Title\n\nbody",
		},
		{
			name:     "front matter and body",
			src:      "---\ntitle: Guide\npaginate: true\n---\nbody<!--page-->more",
			wantKeys: map[string]any{"title": "Guide", "paginate": true},
			wantBody: "body<!--page-->more",
		},
		{
			name:     "empty block",
			src:      "---\n---\nbody",
			wantKeys: map[string]any{},
			wantBody: "body",
		},
		{
			name:     "closing delimiter at end of file",
			src:      "---\ntitle: Only\n---",
			wantKeys: map[string]any{"title": "Only"},
			wantBody: "",
		},
		{
			name:     "CRLF line endings",
			src:      "---\r\ntitle: Win\r\n---\r\nline\r\n",
			wantKeys: map[string]any{"title": "Win"},
			wantBody: "line\n",
		},
		{
			name:    "unterminated block",
			src:     "---\ntitle: Open\nbody",
			wantErr: ErrUnterminated,
		},
		{
			name:    "list instead of map",
			src:     "---\n- a\n- b\n---\nbody",
			wantErr: ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fm, body, err := Split([]byte(tt.src))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
			if len(fm) != len(tt.wantKeys) {
				t.Errorf("front matter = %v, want %v", fm, tt.wantKeys)
			}
			for k, v := range tt.wantKeys {
				if fm[k] != v {
					t.Errorf("front matter[%q] = %v, want %v", k, fm[k], v)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestJoin - Rendering
// ---------------------------------------------------------------------------

func TestJoin(t *testing.T) {
	t.Parallel()

	out, err := Join(map[string]any{"title": "Guide", "layout": "post", "permalink": "/g/2/"}, "body")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(out)

	if !strings.HasPrefix(s, "---\n") || !strings.HasSuffix(s, "\n---\nbody") {
		t.Errorf("output = %q, want delimited block then body", s)
	}
	layout, permalink, title := strings.Index(s, "layout:"), strings.Index(s, "permalink:"), strings.Index(s, "title:")
	if layout < 0 || layout > permalink || permalink > title {
		t.Errorf("keys not in order: %q", s)
	}
}

func TestJoin_Empty(t *testing.T) {
	t.Parallel()

	out, err := Join(nil, "body")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "---\n---\nbody" {
		t.Errorf("output = %q", out)
	}
}

func TestJoinThenSplit(t *testing.T) {
	t.Parallel()

	out, err := Join(map[string]any{"title": "Part 2", "hidden": true}, "second part\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fm, body, err := Split(out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fm["title"] != "Part 2" || fm["hidden"] != true || body != "second part\n" {
		t.Errorf("Split(Join()) = %v, %q", fm, body)
	}
}
