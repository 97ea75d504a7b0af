package api

import (
	"net/http"

	reqdto "collective-lifecycle/internal/handler/dto/request"
	resdto "collective-lifecycle/internal/handler/dto/response"
	"collective-lifecycle/internal/handler/httperr"
	"collective-lifecycle/internal/handler/middleware"
	"collective-lifecycle/internal/usecase/commands"
	"collective-lifecycle/internal/usecase/queries"
	"collective-lifecycle/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferHandler struct {
	cmds commands.OfferCommands
	q    queries.OfferQueries
}

func NewOfferHandler(cmds commands.OfferCommands, q queries.OfferQueries) *OfferHandler {
	return &OfferHandler{cmds: cmds, q: q}
}

// @Summary List collective offers
// @Description List the offers of the caller's offerer with derived status and actions
// @Tags collective-offers
// @Produce json
// @Security BearerAuth
// @Param offererId query string false "Offerer ID (admins only for other offerers)"
// @Param status query []string false "Displayed statuses" collectionFormat(multi)
// @Param soldOut query bool false "Sold out filter"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.OfferListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /collective/offers [get]
func (h *OfferHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var query reqdto.ListOffersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", detail(err))
		return
	}

	views, next, err := h.q.List(c.Request.Context(), filter, actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromOfferViews(views, next)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get collective offer
// @Description Get an offer with its displayed status, allowed actions and latest booking
// @Tags collective-offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /collective/offers/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respondOffer(c, id, actor, http.StatusOK)
}

// @Summary Archive collective offers
// @Description Archive several offers at once; nothing is archived if one of them refuses
// @Tags collective-offers
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.ArchiveRequest true "Offer IDs"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /collective/offers/archive [patch]
func (h *OfferHandler) Archive(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.ArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.ArchiveOffers(c.Request.Context(), req.IDs, actor); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Publish collective offer
// @Description Submit a draft offer for validation
// @Tags collective-offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /collective/offers/{id}/publish [patch]
func (h *OfferHandler) Publish(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.PublishOffer(c.Request.Context(), id, actor); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondOffer(c, id, actor, http.StatusOK)
}

// @Summary Edit collective offer dates
// @Description Change the event and booking limit dates of an offer's stock
// @Tags collective-offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.EditDatesRequest true "New dates"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /collective/offers/{id}/dates [patch]
func (h *OfferHandler) EditDates(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.EditDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if req.IsEmpty() {
		httperr.AbortWithError(c, http.StatusBadRequest, commands.ErrInvalidDates, "No date to update", nil)
		return
	}
	if err := h.cmds.EditOfferDates(c.Request.Context(), id, req.ToCommand(), actor); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondOffer(c, id, actor, http.StatusOK)
}

// @Summary Cancel collective offer booking
// @Description Cancel the live booking of an offer. Also served on the public API for providers.
// @Tags collective-offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /collective/offers/{id}/cancel [post]
func (h *OfferHandler) Cancel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.CancelOffer(c.Request.Context(), id, actor); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respondOffer(c, id, actor, http.StatusOK)
}

func (h *OfferHandler) respondOffer(c *gin.Context, id uuid.UUID, actor shared.Actor, status int) {
	view, err := h.q.Get(c.Request.Context(), id, actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromOfferView(view)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(status, res)
}

func requireActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
	}
	return actor, ok
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
