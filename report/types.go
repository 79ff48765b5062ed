package report

import "errors"

// Sentinel errors returned by the report package.
var (
	// ErrBadResult indicates a result that does not line up with the
	// catalog it is reported against: an out-of-range signal index or a
	// row width mismatch.
	ErrBadResult = errors.New("report: result does not match catalog")

	// ErrEmptyCatalog indicates a report request over no signals.
	ErrEmptyCatalog = errors.New("report: catalog holds no signals")
)
