package api

import (
	"net/http"

	resdto "collective-lifecycle/internal/handler/dto/response"
	"collective-lifecycle/internal/handler/middleware"
	"collective-lifecycle/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the institution side, where redactors book stocks.
type BookingHandler struct {
	cmds commands.BookingCommands
}

func NewBookingHandler(cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Book a collective stock
// @Description Create a PENDING booking. Replaying the same Idempotency-Key returns the first booking.
// @Tags adage
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stock ID"
// @Param Idempotency-Key header string false "Idempotency key"
// @Success 201 {object} resdto.BookingCreatedResponse
// @Success 200 {object} resdto.BookingCreatedResponse "Replayed request"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /adage/stocks/{id}/bookings [post]
func (h *BookingHandler) Book(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	stockID, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.cmds.BookStock(c.Request.Context(), commands.BookStockRequest{
		StockID:        stockID,
		RedactorID:     actor.UserID,
		IdempotencyKey: c.GetHeader(middleware.HeaderIdempotencyKey),
	})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.Header("Location", "/api/adage/bookings/"+result.BookingID.String())
	c.JSON(status, resdto.BookingCreatedResponse{BookingID: result.BookingID, IsReplayed: result.IsReplayed})
}

// @Summary Confirm a collective booking
// @Tags adage
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /adage/bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.ConfirmBooking(c.Request.Context(), bookingID, actor); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
