package http

import "github.com/gin-gonic/gin"

// processSyncReq binds and validates the single document sync body.
func (h *handler) processSyncReq(c *gin.Context) (syncReq, error) {
	var req syncReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}
