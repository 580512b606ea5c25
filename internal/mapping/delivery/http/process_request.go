package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"task-metadata-sync/internal/mapping"
)

// processResolveReq binds the body and validates supplied rules. The second
// return value lists one message per invalid rule.
func (h *handler) processResolveReq(c *gin.Context) (resolveReq, []string, error) {
	var req resolveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, nil, errInvalidBody
	}
	if req.Rules == nil {
		return req, nil, nil
	}
	if err := mapping.Validate(*req.Rules); err != nil {
		return req, splitJoined(err), errInvalidRules
	}
	return req, nil, nil
}

// splitJoined flattens an errors.Join result into its messages.
func splitJoined(err error) []string {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		msgs := make([]string, 0, len(joined.Unwrap()))
		for _, e := range joined.Unwrap() {
			msgs = append(msgs, e.Error())
		}
		return msgs
	}
	return strings.Split(err.Error(), "\n")
}
