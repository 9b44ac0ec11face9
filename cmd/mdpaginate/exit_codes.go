package main

import (
	"errors"
	"os"

	paginate "github.com/alnah/go-paginate"
	"github.com/alnah/go-paginate/internal/config"
	"github.com/alnah/go-paginate/internal/fileutil"
	"github.com/alnah/go-paginate/internal/frontmatter"
	"github.com/alnah/go-paginate/internal/site"
)

// Exit codes for the mdpaginate CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Site written, no item failed
	ExitGeneral = 1 // Item failures or unexpected error
	ExitUsage   = 2 // Invalid flags, config, or source content
	ExitIO      = 3 // Source unreadable, output unwritable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidURL) ||
		errors.Is(err, paginate.ErrEmptySeparator) ||
		errors.Is(err, paginate.ErrEmptyPermalink) ||
		errors.Is(err, paginate.ErrMissingPageNum) ||
		errors.Is(err, paginate.ErrNegativeTrail) ||
		errors.Is(err, paginate.ErrUnknownStage) ||
		errors.Is(err, paginate.ErrMarkerCollision) ||
		errors.Is(err, frontmatter.ErrInvalid) ||
		errors.Is(err, frontmatter.ErrUnterminated) ||
		errors.Is(err, site.ErrDuplicateOutput) ||
		errors.Is(err, ErrInvalidWorkers) ||
		errors.Is(err, ErrTooManyArgs) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, site.ErrNotDirectory) ||
		errors.Is(err, fileutil.ErrPathTraversal) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	return ExitGeneral
}
