package score

import "errors"

var (
	ErrLengthMismatch = errors.New("gold and model lengths differ")
	ErrMalformedLine  = errors.New("malformed tagged line")
)
