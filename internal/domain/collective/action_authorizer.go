package collective

import (
	"fmt"
	"slices"
	"time"
)

// DefaultEndedActionsWindow is how long after the event end an ENDED offer keeps its extra actions.
const DefaultEndedActionsWindow = 48 * time.Hour

var publicAPIRestricted = []AllowedAction{
	ActionEditDetails,
	ActionEditDates,
	ActionEditInstitution,
	ActionEditDiscount,
}

type ActionAuthorizer struct {
	EndedActionsWindow time.Duration
}

func NewActionAuthorizer(endedWindow time.Duration) ActionAuthorizer {
	return ActionAuthorizer{EndedActionsWindow: endedWindow}
}

// Allowed returns the static action set for a status. The result is a fresh slice.
func (a ActionAuthorizer) Allowed(status DisplayedStatus, isPublicAPI, isTemplate bool) []AllowedAction {
	var base []AllowedAction
	if isTemplate {
		base = templateActions(status)
	} else {
		base = offerActions(status)
	}
	return restrict(base, isPublicAPI)
}

// AllowedAt layers the temporal rule on the offer table: once the event ended more than
// EndedActionsWindow ago, an ENDED offer can only be duplicated.
func (a ActionAuthorizer) AllowedAt(now time.Time, status DisplayedStatus, isPublicAPI bool, end *time.Time) []AllowedAction {
	if status == StatusEnded && IsPastEnd(now, end, a.EndedActionsWindow) {
		return []AllowedAction{ActionDuplicate}
	}
	return a.Allowed(status, isPublicAPI, false)
}

func restrict(base []AllowedAction, isPublicAPI bool) []AllowedAction {
	out := make([]AllowedAction, 0, len(base))
	for _, action := range base {
		if isPublicAPI && slices.Contains(publicAPIRestricted, action) {
			continue
		}
		out = append(out, action)
	}
	return out
}

func offerActions(status DisplayedStatus) []AllowedAction {
	switch status {
	case StatusDraft:
		return []AllowedAction{ActionEditDetails, ActionEditDates, ActionEditInstitution, ActionEditDiscount, ActionDuplicate, ActionArchive, ActionPublish}
	case StatusPending:
		return []AllowedAction{ActionDuplicate}
	case StatusRejected:
		return []AllowedAction{ActionDuplicate, ActionArchive}
	case StatusArchived:
		return []AllowedAction{ActionDuplicate}
	case StatusActive:
		return []AllowedAction{ActionEditDetails, ActionEditDates, ActionEditInstitution, ActionEditDiscount, ActionDuplicate, ActionArchive, ActionCancel}
	case StatusInactive:
		return []AllowedAction{ActionEditDetails, ActionEditDates, ActionEditInstitution, ActionEditDiscount, ActionDuplicate, ActionArchive}
	case StatusExpired:
		return []AllowedAction{ActionEditDates, ActionDuplicate, ActionArchive}
	case StatusPrebooked:
		return []AllowedAction{ActionEditDetails, ActionEditDates, ActionEditInstitution, ActionEditDiscount, ActionDuplicate, ActionCancel}
	case StatusBooked:
		return []AllowedAction{ActionEditDiscount, ActionDuplicate, ActionCancel}
	case StatusEnded:
		return []AllowedAction{ActionEditDiscount, ActionDuplicate, ActionCancel}
	case StatusReimbursed:
		return []AllowedAction{ActionDuplicate}
	case StatusCancelled:
		return []AllowedAction{ActionDuplicate}
	}
	panic(fmt.Sprintf("collective: no offer actions for status %q", string(status)))
}

// booking-derived statuses have no template actions
func templateActions(status DisplayedStatus) []AllowedAction {
	switch status {
	case StatusDraft:
		return []AllowedAction{ActionEditDetails, ActionArchive, ActionPublish}
	case StatusPending:
		return []AllowedAction{ActionDuplicate}
	case StatusRejected:
		return []AllowedAction{ActionDuplicate, ActionArchive}
	case StatusArchived:
		return []AllowedAction{ActionDuplicate}
	case StatusActive:
		return []AllowedAction{ActionEditDetails, ActionDuplicate, ActionArchive, ActionCreateBookableOffer, ActionHide}
	case StatusInactive:
		return []AllowedAction{ActionEditDetails, ActionDuplicate, ActionArchive, ActionCreateBookableOffer, ActionPublish}
	case StatusExpired, StatusPrebooked, StatusBooked, StatusEnded, StatusReimbursed, StatusCancelled:
		return []AllowedAction{}
	}
	panic(fmt.Sprintf("collective: no template actions for status %q", string(status)))
}
