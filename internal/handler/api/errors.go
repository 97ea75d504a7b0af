package api

import (
	"log/slog"
	"net/http"

	"collective-lifecycle/internal/handler/httperr"
	"collective-lifecycle/internal/pkg/errs"
	"collective-lifecycle/internal/usecase/commands"
	"collective-lifecycle/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var usecaseErrors = []httperr.Rule{
	{Target: queries.ErrOfferNotFound, Status: http.StatusNotFound, Code: "OFFER_NOT_FOUND", Message: "Offer not found"},
	{Target: commands.ErrOfferNotFound, Status: http.StatusNotFound, Code: "OFFER_NOT_FOUND", Message: "Offer not found"},
	{Target: queries.ErrTemplateNotFound, Status: http.StatusNotFound, Code: "TEMPLATE_NOT_FOUND", Message: "Template not found"},
	{Target: commands.ErrTemplateNotFound, Status: http.StatusNotFound, Code: "TEMPLATE_NOT_FOUND", Message: "Template not found"},
	{Target: commands.ErrStockNotFound, Status: http.StatusNotFound, Code: "STOCK_NOT_FOUND", Message: "Stock not found"},
	{Target: commands.ErrBookingNotFound, Status: http.StatusNotFound, Code: "BOOKING_NOT_FOUND", Message: "Booking not found"},
	{Target: queries.ErrForbidden, Status: http.StatusForbidden, Code: "FORBIDDEN", Message: "Access denied"},
	{Target: commands.ErrForbidden, Status: http.StatusForbidden, Code: "FORBIDDEN", Message: "Access denied"},
	{Target: commands.ErrActionNotAllowed, Status: http.StatusUnprocessableEntity, Code: "ACTION_NOT_ALLOWED", Message: "Action not allowed"},
	{Target: commands.ErrNotCancellable, Status: http.StatusUnprocessableEntity, Code: "NOT_CANCELLABLE", Message: "Booking cannot be cancelled"},
	{Target: commands.ErrNoLiveBooking, Status: http.StatusUnprocessableEntity, Code: "NO_LIVE_BOOKING", Message: "No booking to cancel"},
	{Target: commands.ErrStockNotBookable, Status: http.StatusConflict, Code: "STOCK_NOT_BOOKABLE", Message: "Stock not bookable"},
	{Target: commands.ErrDuplicateRequest, Status: http.StatusConflict, Code: "DUPLICATE_REQUEST", Message: "Duplicate request"},
	{Target: commands.ErrInvalidDates, Status: http.StatusBadRequest, Code: "INVALID_DATES", Message: "Invalid dates"},
	{Target: queries.ErrInvalidCursor, Status: http.StatusBadRequest, Code: "INVALID_CURSOR", Message: "Invalid cursor"},
}

// abortWithUsecaseError maps use case sentinels to statuses; anything unknown is a 500.
func abortWithUsecaseError(c *gin.Context, err error) {
	if rule, ok := httperr.Match(err, usecaseErrors); ok {
		httperr.AbortWithRule(c, err, rule, detail(err))
		return
	}

	slog.Error("unhandled use case error", "path", c.FullPath(), "error", err,
		"stack", errs.ExtractStackLines(err, 8))
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func detail(err error) any {
	if d := errs.Details(err); len(d) > 0 {
		return d
	}
	return nil
}
