package collective

import (
	"fmt"
	"time"
)

type CancellationReason string

const (
	ReasonOfferer                             CancellationReason = "OFFERER"
	ReasonBeneficiary                         CancellationReason = "BENEFICIARY"
	ReasonExpired                             CancellationReason = "EXPIRED"
	ReasonFraud                               CancellationReason = "FRAUD"
	ReasonRefusedByInstitute                  CancellationReason = "REFUSED_BY_INSTITUTE"
	ReasonRefusedByHeadmaster                 CancellationReason = "REFUSED_BY_HEADMASTER"
	ReasonPublicAPI                           CancellationReason = "PUBLIC_API"
	ReasonFinanceIncident                     CancellationReason = "FINANCE_INCIDENT"
	ReasonBackoffice                          CancellationReason = "BACKOFFICE"
	ReasonBackofficeEventCancelled            CancellationReason = "BACKOFFICE_EVENT_CANCELLED"
	ReasonBackofficeOverbooking               CancellationReason = "BACKOFFICE_OVERBOOKING"
	ReasonBackofficeBeneficiaryRequest        CancellationReason = "BACKOFFICE_BENEFICIARY_REQUEST"
	ReasonBackofficeOfferModified             CancellationReason = "BACKOFFICE_OFFER_MODIFIED"
	ReasonBackofficeOfferWithWrongInformation CancellationReason = "BACKOFFICE_OFFER_WITH_WRONG_INFORMATION"
	ReasonOffererConnectAs                    CancellationReason = "OFFERER_CONNECT_AS"
)

func AllCancellationReasons() []CancellationReason {
	return []CancellationReason{
		ReasonOfferer, ReasonBeneficiary, ReasonExpired, ReasonFraud, ReasonRefusedByInstitute,
		ReasonRefusedByHeadmaster, ReasonPublicAPI, ReasonFinanceIncident, ReasonBackoffice,
		ReasonBackofficeEventCancelled, ReasonBackofficeOverbooking, ReasonBackofficeBeneficiaryRequest,
		ReasonBackofficeOfferModified, ReasonBackofficeOfferWithWrongInformation, ReasonOffererConnectAs,
	}
}

func (r CancellationReason) String() string {
	return string(r)
}

func (r CancellationReason) IsValid() bool {
	for _, known := range AllCancellationReasons() {
		if r == known {
			return true
		}
	}
	return false
}

func NewCancellationReason(s string) (CancellationReason, error) {
	r := CancellationReason(s)
	if !r.IsValid() {
		return "", ErrUnknownValue
	}
	return r, nil
}

type CancellationKind string

const (
	KindNormal         CancellationKind = "NORMAL"
	KindExpired        CancellationKind = "EXPIRED"
	KindAdministrative CancellationKind = "ADMINISTRATIVE"
)

// Classify maps every reason to its status-derivation kind.
// Keep the switch exhaustive: the exhaustive linter fails the build on a missing case.
func Classify(reason CancellationReason) CancellationKind {
	switch reason {
	case ReasonExpired:
		return KindExpired
	case ReasonFraud,
		ReasonFinanceIncident,
		ReasonBackoffice,
		ReasonBackofficeEventCancelled,
		ReasonBackofficeOverbooking,
		ReasonBackofficeBeneficiaryRequest,
		ReasonBackofficeOfferModified,
		ReasonBackofficeOfferWithWrongInformation,
		ReasonOffererConnectAs:
		return KindAdministrative
	case ReasonOfferer,
		ReasonBeneficiary,
		ReasonRefusedByInstitute,
		ReasonRefusedByHeadmaster,
		ReasonPublicAPI:
		return KindNormal
	}
	panic(fmt.Sprintf("collective: unclassified cancellation reason %q", string(reason)))
}

// CancellationPolicy holds the product windows used to compute a booking's cancellation deadline.
type CancellationPolicy struct {
	GraceWindow       time.Duration
	BeforeEventCutoff time.Duration
}

func NewCancellationPolicy(grace, cutoff time.Duration) CancellationPolicy {
	return CancellationPolicy{GraceWindow: grace, BeforeEventCutoff: cutoff}
}

// LimitDate returns min(created + grace, beginning - cutoff). Without a beginning only the grace window applies.
func (p CancellationPolicy) LimitDate(beginning *time.Time, created time.Time) time.Time {
	limit := created.Add(p.GraceWindow)
	if beginning == nil {
		return limit
	}
	if cutoff := beginning.Add(-p.BeforeEventCutoff); cutoff.Before(limit) {
		return cutoff
	}
	return limit
}
