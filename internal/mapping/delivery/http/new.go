package http

import (
	"github.com/gin-gonic/gin"

	"task-metadata-sync/internal/mapping"
	"task-metadata-sync/pkg/log"
)

// Handler is the public interface for the resolve HTTP delivery layer.
type Handler interface {
	Resolve(c *gin.Context)
}

type handler struct {
	l        log.Logger
	resolver mapping.Resolver
	rules    mapping.Rules
}

// New creates a resolve handler. rules are used when a request carries none.
func New(l log.Logger, resolver mapping.Resolver, rules mapping.Rules) Handler {
	return &handler{
		l:        l,
		resolver: resolver,
		rules:    rules.Clone(),
	}
}
