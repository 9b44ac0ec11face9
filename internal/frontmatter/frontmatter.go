// Package frontmatter reads and writes the YAML block at the top of a
// content file.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/alnah/go-paginate/internal/yamlutil"
)

// Sentinel errors for front matter operations.
var (
	ErrUnterminated = errors.New("front matter has no closing delimiter")
	ErrInvalid      = errors.New("invalid front matter")
)

const delimiter = "---"

var (
	opening = []byte(delimiter + "\n")
	closing = []byte("\n" + delimiter + "\n")
	tail    = []byte("\n" + delimiter)
)

// Split separates the front matter of src from its body.
// Content without an opening delimiter has no front matter: the map is
// empty and body is the whole input. CRLF line endings are normalized.
func Split(src []byte) (map[string]any, string, error) {
	src = bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))
	fm := make(map[string]any)

	if !bytes.HasPrefix(src, opening) {
		return fm, string(src), nil
	}

	rest := src[len(opening):]

	var block, body []byte
	switch {
	case bytes.HasPrefix(rest, opening):
		// empty block: "---\n---\n"
		body = rest[len(opening):]
	case bytes.Equal(rest, []byte(delimiter)):
		// empty block at end of file
	default:
		idx := bytes.Index(rest, closing)
		if idx >= 0 {
			block, body = rest[:idx], rest[idx+len(closing):]
		} else if bytes.HasSuffix(rest, tail) {
			block = rest[:len(rest)-len(tail)]
		} else {
			return nil, "", ErrUnterminated
		}
	}

	if len(bytes.TrimSpace(block)) > 0 {
		if err := yamlutil.Unmarshal(block, &fm); err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		if fm == nil {
			fm = make(map[string]any)
		}
	}
	return fm, string(body), nil
}

// Join renders fm as a front matter block followed by body. Keys are
// written in natural order so output is stable.
func Join(fm map[string]any, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(opening)
	if len(fm) > 0 {
		data, err := yamlutil.MarshalOrdered(fm)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		buf.Write(data)
		if !bytes.HasSuffix(data, []byte("\n")) {
			buf.WriteByte('\n')
		}
	}
	buf.Write(opening)
	buf.WriteString(body)
	return buf.Bytes(), nil
}
