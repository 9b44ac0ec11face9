package paginate

import "errors"

// Sentinel errors for library operations.
var (
	ErrNilItem       = errors.New("item cannot be nil")
	ErrNilSite       = errors.New("site cannot be nil")
	ErrItemPanic     = errors.New("item split panicked")
	ErrItemCancelled = errors.New("item skipped after cancellation")

	// Config validation errors.
	ErrEmptySeparator  = errors.New("separator cannot be empty")
	ErrEmptyPermalink  = errors.New("permalink template cannot be empty")
	ErrMissingPageNum  = errors.New("permalink template must contain :num")
	ErrNegativeTrail   = errors.New("trail window cannot be negative")
	ErrUnknownStage    = errors.New("unknown property stage")
	ErrMarkerCollision = errors.New("separator, header and footer markers must differ")
)
