package http

import (
	"github.com/gin-gonic/gin"

	"task-metadata-sync/pkg/response"
)

// SyncDocument godoc
// @Summary     Sync one document
// @Description Resolves the document's tasks and writes the header updates back when they change it.
// @Tags        Documents
// @Accept      json
// @Produce     json
// @Param       body body syncReq true "Document ID"
// @Success     200  {object} syncResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     404  {object} response.Resp "Document not found"
// @Failure     409  {object} response.Resp "Document is already being processed"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/documents/sync [POST]
func (h *handler) SyncDocument(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSyncReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ProcessDocument(ctx, req.ID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, newSyncResp(out))
}

// SyncAll godoc
// @Summary     Sync every document
// @Description Runs a sync pass over every document in the store. Per-document failures are reported, not fatal.
// @Tags        Documents
// @Produce     json
// @Success     200  {object} syncAllResp
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/documents/sync-all [POST]
func (h *handler) SyncAll(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ProcessAll(ctx)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, newSyncAllResp(out))
}
