package webhook

import "errors"

var (
	ErrInvalidToken = errors.New("invalid webhook token")
	ErrIPNotAllowed = errors.New("ip not whitelisted")
	ErrRateLimited  = errors.New("rate limit exceeded")
)
