package http

import "errors"

var (
	errInvalidBody  = errors.New("invalid request body")
	errInvalidRules = errors.New("invalid rules")
)
