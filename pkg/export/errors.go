package export

import "errors"

var (
	// ErrUnsupportedFormat is returned for format strings outside csv, json
	// and xlsx.
	ErrUnsupportedFormat = errors.New("unsupported export format")
	// ErrEncodeFailed wraps encoder errors from the underlying writers.
	ErrEncodeFailed = errors.New("failed to encode personas")
)
