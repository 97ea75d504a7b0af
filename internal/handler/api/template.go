package api

import (
	"net/http"

	reqdto "collective-lifecycle/internal/handler/dto/request"
	resdto "collective-lifecycle/internal/handler/dto/response"
	"collective-lifecycle/internal/handler/httperr"
	"collective-lifecycle/internal/usecase/commands"
	"collective-lifecycle/internal/usecase/queries"
	"collective-lifecycle/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TemplateHandler struct {
	cmds commands.TemplateCommands
	q    queries.TemplateQueries
}

func NewTemplateHandler(cmds commands.TemplateCommands, q queries.TemplateQueries) *TemplateHandler {
	return &TemplateHandler{cmds: cmds, q: q}
}

// @Summary Get collective offer template
// @Tags collective-templates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Success 200 {object} resdto.TemplateResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /collective/templates/{id} [get]
func (h *TemplateHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respondTemplate(c, id, actor)
}

// @Summary Archive collective offer templates
// @Tags collective-templates
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.ArchiveRequest true "Template IDs"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /collective/templates/archive [patch]
func (h *TemplateHandler) Archive(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.ArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.ArchiveTemplates(c.Request.Context(), req.IDs, actor); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Publish collective offer template
// @Tags collective-templates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Success 200 {object} resdto.TemplateResponse
// @Failure 422 {object} httperr.Response
// @Router /collective/templates/{id}/publish [patch]
func (h *TemplateHandler) Publish(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.PublishTemplate(c.Request.Context(), id, actor); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondTemplate(c, id, actor)
}

// @Summary Hide or show collective offer template
// @Tags collective-templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Param request body reqdto.SetActiveRequest true "Visibility"
// @Success 200 {object} resdto.TemplateResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /collective/templates/{id}/active [patch]
func (h *TemplateHandler) SetActive(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	var err error
	if *req.IsActive {
		err = h.cmds.ShowTemplate(c.Request.Context(), id, actor)
	} else {
		err = h.cmds.HideTemplate(c.Request.Context(), id, actor)
	}
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondTemplate(c, id, actor)
}

func (h *TemplateHandler) respondTemplate(c *gin.Context, id uuid.UUID, actor shared.Actor) {
	view, err := h.q.Get(c.Request.Context(), id, actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromTemplateView(view)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
