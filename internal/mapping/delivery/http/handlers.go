package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"task-metadata-sync/internal/model"
	"task-metadata-sync/pkg/frontmatter"
	"task-metadata-sync/pkg/response"
)

// Resolve godoc
// @Summary     Resolve frontmatter updates for a document
// @Description Parses the task lines of a markdown document and returns the header updates the mapping rules produce, plus a preview of the merged content and its decoded header. Nothing is stored.
// @Tags        Mapping
// @Accept      json
// @Produce     json
// @Param       body body resolveReq true "Document content and optional rules"
// @Success     200  {object} resolveResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/resolve [POST]
func (h *handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	req, ruleErrs, err := h.processResolveReq(c)
	if err != nil {
		response.Error(c, err, ruleErrs)
		return
	}

	rules := h.rules
	if req.Rules != nil {
		rules = *req.Rules
	}

	out := h.resolver.ResolveDocument(ctx, req.Content, rules)

	merged, changed, err := frontmatter.Merge(req.Content, toFields(out.Updates))
	if err != nil {
		if errors.Is(err, frontmatter.ErrInvalidHeader) {
			response.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "frontmatter.Merge: %v", err)
		response.InternalError(c, err)
		return
	}

	header, err := frontmatter.Fields(merged)
	if err != nil {
		h.l.Errorf(ctx, "frontmatter.Fields: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newResolveResp(out, merged, changed, header))
}

func toFields(updates []model.Update) []frontmatter.Field {
	fields := make([]frontmatter.Field, 0, len(updates))
	for _, u := range updates {
		fields = append(fields, frontmatter.Field{Key: u.Key, Value: u.Value.Interface(), Overwrite: u.Overwrite})
	}
	return fields
}
