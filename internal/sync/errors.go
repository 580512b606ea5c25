package sync

import "errors"

var (
	ErrAlreadyProcessing = errors.New("document is already being processed")
	ErrInvalidPayload    = errors.New("invalid webhook payload")
)
