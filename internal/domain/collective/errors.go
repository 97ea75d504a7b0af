package collective

import "errors"

var (
	ErrActionNotAllowed = errors.New("action not allowed for displayed status")
	ErrStockNotBookable = errors.New("stock is not bookable")
	ErrNoLiveBooking    = errors.New("stock has no live booking")
	ErrNotCancellable   = errors.New("booking already used or reimbursed")
	ErrInvalidDates     = errors.New("invalid stock dates")
)

// Require returns ErrActionNotAllowed unless the read model grants action.
func Require(m ReadModel, action AllowedAction) error {
	if !m.Allows(action) {
		return ErrActionNotAllowed
	}
	return nil
}
