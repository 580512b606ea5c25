package middleware

import (
	"task-metadata-sync/pkg/log"
)

type Middleware struct {
	l      log.Logger
	apiKey string
}

// New creates the shared HTTP middleware. An empty apiKey disables Auth.
func New(l log.Logger, apiKey string) Middleware {
	return Middleware{
		l:      l,
		apiKey: apiKey,
	}
}
