package collective

import "errors"

var ErrUnknownValue = errors.New("unknown enum value")

type ValidationStatus string

const (
	ValidationDraft    ValidationStatus = "DRAFT"
	ValidationPending  ValidationStatus = "PENDING"
	ValidationApproved ValidationStatus = "APPROVED"
	ValidationRejected ValidationStatus = "REJECTED"
)

func AllValidationStatuses() []ValidationStatus {
	return []ValidationStatus{ValidationDraft, ValidationPending, ValidationApproved, ValidationRejected}
}

func (v ValidationStatus) String() string {
	return string(v)
}

func (v ValidationStatus) IsValid() bool {
	switch v {
	case ValidationDraft, ValidationPending, ValidationApproved, ValidationRejected:
		return true
	default:
		return false
	}
}

func NewValidationStatus(s string) (ValidationStatus, error) {
	v := ValidationStatus(s)
	if !v.IsValid() {
		return "", ErrUnknownValue
	}
	return v, nil
}

type BookingStatus string

const (
	BookingPending    BookingStatus = "PENDING"
	BookingConfirmed  BookingStatus = "CONFIRMED"
	BookingUsed       BookingStatus = "USED"
	BookingCancelled  BookingStatus = "CANCELLED"
	BookingReimbursed BookingStatus = "REIMBURSED"
)

func AllBookingStatuses() []BookingStatus {
	return []BookingStatus{BookingPending, BookingConfirmed, BookingUsed, BookingCancelled, BookingReimbursed}
}

func (b BookingStatus) String() string {
	return string(b)
}

func (b BookingStatus) IsValid() bool {
	switch b {
	case BookingPending, BookingConfirmed, BookingUsed, BookingCancelled, BookingReimbursed:
		return true
	default:
		return false
	}
}

// IsLive reports whether the booking holds the stock's single seat.
func (b BookingStatus) IsLive() bool {
	return b != BookingCancelled
}

func NewBookingStatus(s string) (BookingStatus, error) {
	b := BookingStatus(s)
	if !b.IsValid() {
		return "", ErrUnknownValue
	}
	return b, nil
}

type DisplayedStatus string

const (
	StatusDraft      DisplayedStatus = "DRAFT"
	StatusPending    DisplayedStatus = "PENDING"
	StatusRejected   DisplayedStatus = "REJECTED"
	StatusArchived   DisplayedStatus = "ARCHIVED"
	StatusActive     DisplayedStatus = "ACTIVE"
	StatusInactive   DisplayedStatus = "INACTIVE"
	StatusExpired    DisplayedStatus = "EXPIRED"
	StatusPrebooked  DisplayedStatus = "PREBOOKED"
	StatusBooked     DisplayedStatus = "BOOKED"
	StatusEnded      DisplayedStatus = "ENDED"
	StatusCancelled  DisplayedStatus = "CANCELLED"
	StatusReimbursed DisplayedStatus = "REIMBURSED"
)

func AllDisplayedStatuses() []DisplayedStatus {
	return []DisplayedStatus{
		StatusDraft, StatusPending, StatusRejected, StatusArchived, StatusActive, StatusInactive,
		StatusExpired, StatusPrebooked, StatusBooked, StatusEnded, StatusCancelled, StatusReimbursed,
	}
}

// TemplateDisplayedStatuses is the subset a template can resolve to.
func TemplateDisplayedStatuses() []DisplayedStatus {
	return []DisplayedStatus{StatusDraft, StatusPending, StatusRejected, StatusArchived, StatusActive, StatusInactive}
}

func (s DisplayedStatus) String() string {
	return string(s)
}

func (s DisplayedStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusRejected, StatusArchived, StatusActive, StatusInactive,
		StatusExpired, StatusPrebooked, StatusBooked, StatusEnded, StatusCancelled, StatusReimbursed:
		return true
	default:
		return false
	}
}

func NewDisplayedStatus(s string) (DisplayedStatus, error) {
	d := DisplayedStatus(s)
	if !d.IsValid() {
		return "", ErrUnknownValue
	}
	return d, nil
}

type AllowedAction string

const (
	ActionEditDetails         AllowedAction = "CAN_EDIT_DETAILS"
	ActionEditDates           AllowedAction = "CAN_EDIT_DATES"
	ActionEditInstitution     AllowedAction = "CAN_EDIT_INSTITUTION"
	ActionEditDiscount        AllowedAction = "CAN_EDIT_DISCOUNT"
	ActionDuplicate           AllowedAction = "CAN_DUPLICATE"
	ActionCancel              AllowedAction = "CAN_CANCEL"
	ActionArchive             AllowedAction = "CAN_ARCHIVE"
	ActionPublish             AllowedAction = "CAN_PUBLISH"
	ActionHide                AllowedAction = "CAN_HIDE"
	ActionCreateBookableOffer AllowedAction = "CAN_CREATE_BOOKABLE_OFFER"
)

func AllAllowedActions() []AllowedAction {
	return []AllowedAction{
		ActionEditDetails, ActionEditDates, ActionEditInstitution, ActionEditDiscount, ActionDuplicate,
		ActionCancel, ActionArchive, ActionPublish, ActionHide, ActionCreateBookableOffer,
	}
}

func (a AllowedAction) String() string {
	return string(a)
}

func (a AllowedAction) IsValid() bool {
	switch a {
	case ActionEditDetails, ActionEditDates, ActionEditInstitution, ActionEditDiscount, ActionDuplicate,
		ActionCancel, ActionArchive, ActionPublish, ActionHide, ActionCreateBookableOffer:
		return true
	default:
		return false
	}
}

// ActorKind distinguishes a human pro user from an integration provider.
type ActorKind string

const (
	ActorPro       ActorKind = "PRO"
	ActorPublicAPI ActorKind = "PUBLIC_API"
)

func (k ActorKind) String() string {
	return string(k)
}

func (k ActorKind) IsValid() bool {
	switch k {
	case ActorPro, ActorPublicAPI:
		return true
	default:
		return false
	}
}
